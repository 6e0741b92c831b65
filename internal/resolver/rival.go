package resolver

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/vkorchagin/matchref/internal/pkg/models"
)

// ResolveRival finds the indirect rival in a history table: the row flagged
// as the anchor team's own most recent meeting carries links to both
// participants, and the rival is the one at the table's fixed link index
// (the anchor's own link always occupies the opposite position).
//
// The row's match id becomes the anchor match id, which is the page to open
// for the head-to-head lookup, not the rival's own page. If the team id,
// name or anchor id cannot be extracted the whole resolution yields nil;
// partial references are never returned.
func ResolveRival(doc *goquery.Document, spec TableSpec) *models.RivalReference {
	var ref *models.RivalReference
	doc.Find(rowSelector(spec)).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if strings.TrimSpace(row.AttrOr(attrRoleFlag, "")) != models.AnchorFlag {
			return true
		}
		ref = rivalFromRow(row, spec)
		return false
	})
	return ref
}

func rivalFromRow(row *goquery.Selection, spec TableSpec) *models.RivalReference {
	links := teamLinks(row)
	if spec.RivalLinkIndex < 0 || spec.RivalLinkIndex >= len(links) {
		return nil
	}
	link := links[spec.RivalLinkIndex]

	teamID := teamIDFromLink(link)
	teamName := strings.TrimSpace(link.Text())
	anchorID := matchIDFromRow(row, spec)
	if teamID == "" || teamName == "" || anchorID == "" {
		return nil
	}
	return &models.RivalReference{
		TeamID:        teamID,
		TeamName:      teamName,
		AnchorMatchID: anchorID,
	}
}

// teamLinks collects the row's links that carry a team(<digits>) reference,
// in document order. Other links (match report, odds) are ignored.
func teamLinks(row *goquery.Selection) []*goquery.Selection {
	var links []*goquery.Selection
	row.Find("a").Each(func(_ int, a *goquery.Selection) {
		if teamIDPattern.MatchString(a.AttrOr(attrOnClick, "")) {
			links = append(links, a)
		}
	})
	return links
}

// teamIDFromLink extracts the digits from the team(<digits>) callback
// attribute, or "" when the link carries no parseable reference.
func teamIDFromLink(a *goquery.Selection) string {
	m := teamIDPattern.FindStringSubmatch(a.AttrOr(attrOnClick, ""))
	if m == nil {
		return ""
	}
	return m[1]
}
