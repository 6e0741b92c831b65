package resolver

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/vkorchagin/matchref/internal/pkg/models"
)

// ParseRow turns one table row into a canonical MatchRecord. Rows with fewer
// than 12 cells, or whose home or away name comes out empty, are discarded by
// returning nil; that is an expected occurrence in these tables, not an error.
func ParseRow(row *goquery.Selection, spec TableSpec) *models.MatchRecord {
	cells := row.Find("td")
	if cells.Length() < minCells {
		return nil
	}

	home := teamText(cells.Eq(cellHome))
	away := teamText(cells.Eq(cellAway))
	if home == "" || away == "" {
		return nil
	}

	rec := &models.MatchRecord{
		MatchID:  matchIDFromRow(row, spec),
		Home:     home,
		Away:     away,
		LeagueID: strings.TrimSpace(row.AttrOr(attrLeague, "")),
		Date:     strings.TrimSpace(cells.Eq(cellDate).Text()),
		RoleFlag: strings.TrimSpace(row.AttrOr(attrRoleFlag, "")),
	}

	rec.ScoreRaw, rec.ScoreCanonical = parseScore(cells.Eq(cellScore), spec.ScoreClass)

	rec.HandicapRaw = handicapText(cells.Eq(cellHandicap))
	rec.HandicapValue, rec.HandicapCanon, _ = NormalizeHandicap(rec.HandicapRaw)

	return rec
}

// teamText prefers the text of an embedded link over the cell's full text;
// some rows render the team as plain text with no link.
func teamText(cell *goquery.Selection) string {
	if a := cell.Find("a").First(); a.Length() > 0 {
		if name := strings.TrimSpace(a.Text()); name != "" {
			return name
		}
	}
	return strings.TrimSpace(cell.Text())
}

// parseScore extracts the first digits-digits pair from the score cell,
// preferring the span whose class matches the table's score hint. The same
// visual column uses a different class suffix per table. Anything without a
// parseable pair yields the unknown sentinel for both forms.
//
// The canonical form uses ':' as separator so it can never be confused with
// a negative handicap elsewhere.
func parseScore(cell *goquery.Selection, scoreClass string) (raw, canonical string) {
	text := ""
	if span := cell.Find("span." + scoreClass).First(); span.Length() > 0 {
		text = strings.TrimSpace(span.Text())
	}
	if text == "" {
		text = strings.TrimSpace(cell.Text())
	}
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return models.NoValue, models.NoValue
	}
	return m[1] + "-" + m[2], m[1] + ":" + m[2]
}

// handicapText prefers the cell's machine-readable attribute when present
// and meaningful, otherwise the visible text.
func handicapText(cell *goquery.Selection) string {
	if v := strings.TrimSpace(cell.AttrOr(attrHandicap, "")); v != "" && v != models.NoValue {
		return v
	}
	return strings.TrimSpace(cell.Text())
}

// matchIDFromRow reads the site-native match id from the row's id attribute,
// passed through opaquely.
func matchIDFromRow(row *goquery.Selection, spec TableSpec) string {
	id := strings.TrimSpace(row.AttrOr("id", ""))
	return strings.TrimPrefix(id, spec.RowPrefix)
}
