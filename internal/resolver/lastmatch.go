package resolver

import (
	"sort"
	"strings"
	"time"

	"github.com/vkorchagin/matchref/internal/pkg/models"
)

// dateLayouts the site has been observed to use in the date cell.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "02.01.2006", "2006-01-02 15:04"}

// oldestDate is where unparseable or missing dates sort, so a dated record
// always wins over an undated one.
var oldestDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// SelectLast picks the most recent match where team played the given role.
// The sort is stable, so two candidates with the same parsed date keep their
// document order and the earlier row wins. Returns nil when no record
// qualifies.
func SelectLast(records []models.MatchRecord, team string, role models.Role) *models.MatchRecord {
	var candidates []models.MatchRecord
	for _, rec := range records {
		if matchesRole(&rec, team, role) {
			candidates = append(candidates, rec)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return parseRecordDate(candidates[i].Date).After(parseRecordDate(candidates[j].Date))
	})
	return &candidates[0]
}

// SelectLastWindow is the bounded variant for tables that can only be paged
// through live interaction: it takes the first structural match within the
// first limit records in document order, without sorting. Callers must not
// assume true global recency from this mode. A limit <= 0 falls back to a
// small default window.
func SelectLastWindow(records []models.MatchRecord, team string, role models.Role, limit int) *models.MatchRecord {
	if limit <= 0 {
		limit = 8
	}
	if limit > len(records) {
		limit = len(records)
	}
	for i := 0; i < limit; i++ {
		if matchesRole(&records[i], team, role) {
			return &records[i]
		}
	}
	return nil
}

func matchesRole(rec *models.MatchRecord, team string, role models.Role) bool {
	if role == models.RoleHome {
		return strings.EqualFold(rec.Home, team)
	}
	return strings.EqualFold(rec.Away, team)
}

func parseRecordDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return oldestDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return oldestDate
}
