package resolver

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/vkorchagin/matchref/internal/pkg/models"
)

// ScanTable iterates the rows of one table in document order, parses each
// through ParseRow and drops discards. Document order is significant: the
// head-to-head and comparative lookups treat the first matching row as the
// most relevant one.
//
// A non-empty leagueFilter drops records whose LeagueID is present and
// different. Records with no league attribute pass the filter: absence means
// "unknown", not "other league".
func ScanTable(doc *goquery.Document, spec TableSpec, leagueFilter string) []models.MatchRecord {
	var records []models.MatchRecord
	doc.Find(rowSelector(spec)).Each(func(_ int, row *goquery.Selection) {
		rec := ParseRow(row, spec)
		if rec == nil {
			return
		}
		if leagueFilter != "" && rec.LeagueID != "" && rec.LeagueID != leagueFilter {
			return
		}
		records = append(records, *rec)
	})
	return records
}

func rowSelector(spec TableSpec) string {
	return fmt.Sprintf("#%s tr[id^=%q]", spec.ID, spec.RowPrefix)
}
