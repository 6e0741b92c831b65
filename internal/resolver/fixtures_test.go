package resolver

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// fixtureRow builds one table row in the site's layout: league, date, home,
// score, away, six filler cells, handicap. Twelve cells total unless
// truncated.
type fixtureRow struct {
	id           string
	league       string
	isLast       bool
	date         string
	home         string
	homeTeamID   string
	score        string
	scoreClass   string
	away         string
	awayTeamID   string
	handicap     string
	handicapAttr string
	truncated    bool // emit too few cells
}

func (r fixtureRow) html() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<tr id=%q`, r.id))
	if r.league != "" {
		b.WriteString(fmt.Sprintf(` league=%q`, r.league))
	}
	if r.isLast {
		b.WriteString(` islast="1"`)
	}
	b.WriteString(">")
	b.WriteString("<td>League</td>")
	b.WriteString(fmt.Sprintf("<td>%s</td>", r.date))
	b.WriteString(fmt.Sprintf("<td>%s</td>", teamCell(r.home, r.homeTeamID)))
	if r.scoreClass != "" {
		b.WriteString(fmt.Sprintf(`<td><span class=%q>%s</span></td>`, r.scoreClass, r.score))
	} else {
		b.WriteString(fmt.Sprintf("<td>%s</td>", r.score))
	}
	b.WriteString(fmt.Sprintf("<td>%s</td>", teamCell(r.away, r.awayTeamID)))
	if r.truncated {
		b.WriteString("</tr>")
		return b.String()
	}
	for i := 0; i < 6; i++ {
		b.WriteString("<td></td>")
	}
	if r.handicapAttr != "" {
		b.WriteString(fmt.Sprintf(`<td data-o=%q>%s</td>`, r.handicapAttr, r.handicap))
	} else {
		b.WriteString(fmt.Sprintf("<td>%s</td>", r.handicap))
	}
	b.WriteString("</tr>")
	return b.String()
}

func teamCell(name, teamID string) string {
	if name == "" {
		return ""
	}
	if teamID == "" {
		return name
	}
	return fmt.Sprintf(`<a onclick="team(%s)">%s</a>`, teamID, name)
}

func fixtureDoc(t *testing.T, spec TableSpec, rows ...fixtureRow) *goquery.Document {
	t.Helper()
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<html><body><table id=%q><tbody>`, spec.ID))
	for _, r := range rows {
		b.WriteString(r.html())
	}
	b.WriteString("</tbody></table></body></html>")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}
