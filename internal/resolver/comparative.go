package resolver

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/vkorchagin/matchref/internal/pkg/models"
)

// ResolveComparative finds the historical meeting of two named teams in the
// given table, in either role. The first matching row in document order wins;
// the scan does not continue looking for a "better" match. Locality reports
// which side team took in that row, independent of the main match's roles.
//
// An empty or not-available team or opponent name short-circuits to nil
// without scanning.
func ResolveComparative(doc *goquery.Document, spec TableSpec, team, opponent, leagueFilter string) *models.ComparativeResult {
	if !validTeamName(team) || !validTeamName(opponent) {
		return nil
	}
	for _, rec := range ScanTable(doc, spec, leagueFilter) {
		teamHome := strings.EqualFold(rec.Home, team) && strings.EqualFold(rec.Away, opponent)
		teamAway := strings.EqualFold(rec.Away, team) && strings.EqualFold(rec.Home, opponent)
		if !teamHome && !teamAway {
			continue
		}
		locality := models.RoleHome
		if teamAway {
			locality = models.RoleAway
		}
		return &models.ComparativeResult{
			Score:         rec.ScoreCanonical,
			HandicapCanon: rec.HandicapCanon,
			Locality:      locality,
		}
	}
	return nil
}

func validTeamName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && name != models.NoValue
}
