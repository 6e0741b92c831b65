package resolver

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/vkorchagin/matchref/internal/pkg/models"
)

// ResolveH2H finds the direct head-to-head record of two team ids in the
// given table. The pair is matched as a set, so swapping rivalAID and
// rivalBID finds the same row with RivalARole flipped.
//
// Rows are skipped when either team id is missing or when the score does not
// parse as a played result; an unplayed fixture row between the right teams
// is not a head-to-head record. Missing ids in the query short-circuit to
// not-found without scanning.
func ResolveH2H(doc *goquery.Document, spec TableSpec, rivalAID, rivalBID string) models.H2HResult {
	result := models.H2HResult{HandicapCanon: models.NoValue}
	if rivalAID == "" || rivalBID == "" {
		return result
	}

	doc.Find(rowSelector(spec)).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		links := teamLinks(row)
		if len(links) < 2 {
			return true
		}
		homeID := teamIDFromLink(links[0])
		awayID := teamIDFromLink(links[1])
		if homeID == "" || awayID == "" {
			return true
		}
		if !sameTeamSet(homeID, awayID, rivalAID, rivalBID) {
			return true
		}

		cells := row.Find("td")
		if cells.Length() < minCells {
			return true
		}
		raw, _ := parseScore(cells.Eq(cellScore), spec.ScoreClass)
		if raw == models.NoValue {
			return true
		}
		goals := strings.SplitN(raw, "-", 2)
		homeGoals, _ := strconv.Atoi(goals[0])
		awayGoals, _ := strconv.Atoi(goals[1])

		result.Found = true
		result.HomeGoals = homeGoals
		result.AwayGoals = awayGoals
		result.HomeTeam = strings.TrimSpace(links[0].Text())
		result.AwayTeam = strings.TrimSpace(links[1].Text())
		if _, canonical, ok := NormalizeHandicap(handicapText(cells.Eq(cellHandicap))); ok {
			result.HandicapCanon = canonical
		}
		result.RivalARole = models.RoleAway
		if rivalAID == homeID {
			result.RivalARole = models.RoleHome
		}
		return false
	})
	return result
}

func sameTeamSet(homeID, awayID, aID, bID string) bool {
	return (homeID == aID && awayID == bID) || (homeID == bID && awayID == aID)
}
