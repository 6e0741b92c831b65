// Package analysis sequences the multi-hop lookups for one main match: last
// home/away matches, indirect rivals from both history tables, the
// head-to-head between the two resolved rivals on the anchor page, and both
// comparative lookups. The resolution core stays pure; this package owns the
// fetch ordering and the bulk fan-out.
package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vkorchagin/matchref/internal/pkg/config"
	"github.com/vkorchagin/matchref/internal/pkg/models"
	"github.com/vkorchagin/matchref/internal/resolver"
	"github.com/vkorchagin/matchref/internal/source"
)

// Request identifies one main match to analyze. Home and Away are the
// display names of the main match's sides; LeagueID optionally restricts the
// history scans to one league.
type Request struct {
	MatchID  string `json:"match_id"`
	Home     string `json:"home"`
	Away     string `json:"away"`
	LeagueID string `json:"league_id,omitempty"`
}

// MatchAnalysis is everything resolved for one main match. Missing hops stay
// nil / not-found; Err is only set by the bulk pipeline when the main page
// could not be fetched at all.
type MatchAnalysis struct {
	MatchID string `json:"match_id"`

	LastHome *models.MatchRecord `json:"last_home,omitempty"`
	LastAway *models.MatchRecord `json:"last_away,omitempty"`

	HomeRival *models.RivalReference `json:"home_rival,omitempty"`
	AwayRival *models.RivalReference `json:"away_rival,omitempty"`
	RivalH2H  models.H2HResult       `json:"rival_h2h"`

	HomeComparative *models.ComparativeResult `json:"home_comparative,omitempty"`
	AwayComparative *models.ComparativeResult `json:"away_comparative,omitempty"`

	Err string `json:"error,omitempty"`
}

type Analyzer struct {
	src          source.PageSource
	analysisPath string
	window       int
}

func NewAnalyzer(src source.PageSource, cfg *config.Config) *Analyzer {
	return &Analyzer{
		src:          src,
		analysisPath: cfg.Source.AnalysisPath,
		window:       cfg.Resolver.LastMatchWindow,
	}
}

// Analyze fetches the match's analysis page and runs every lookup on it.
// Only a failed fetch of the main page is an error; every downstream miss
// (no anchor row, no head-to-head, filtered-out comparative) is an ordinary
// empty result.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*MatchAnalysis, error) {
	doc, err := a.src.Fetch(ctx, fmt.Sprintf(a.analysisPath, req.MatchID))
	if err != nil {
		return nil, fmt.Errorf("fetch analysis page for match %s: %w", req.MatchID, err)
	}

	result := &MatchAnalysis{
		MatchID:  req.MatchID,
		RivalH2H: models.H2HResult{HandicapCanon: models.NoValue},
	}

	homeRecords := resolver.ScanTable(doc, resolver.HomeHistory, req.LeagueID)
	awayRecords := resolver.ScanTable(doc, resolver.AwayHistory, req.LeagueID)
	result.LastHome = a.selectLast(homeRecords, req.Home, models.RoleHome)
	result.LastAway = a.selectLast(awayRecords, req.Away, models.RoleAway)

	result.HomeRival = resolver.ResolveRival(doc, resolver.HomeHistory)
	result.AwayRival = resolver.ResolveRival(doc, resolver.AwayHistory)

	if result.HomeRival != nil && result.AwayRival != nil {
		result.RivalH2H = a.rivalH2H(ctx, result.HomeRival, result.AwayRival)
	}

	if result.AwayRival != nil {
		result.HomeComparative = resolver.ResolveComparative(
			doc, resolver.HomeHistory, req.Home, result.AwayRival.TeamName, req.LeagueID)
	}
	if result.HomeRival != nil {
		result.AwayComparative = resolver.ResolveComparative(
			doc, resolver.AwayHistory, req.Away, result.HomeRival.TeamName, req.LeagueID)
	}

	return result, nil
}

func (a *Analyzer) selectLast(records []models.MatchRecord, team string, role models.Role) *models.MatchRecord {
	if a.window > 0 {
		return resolver.SelectLastWindow(records, team, role, a.window)
	}
	return resolver.SelectLast(records, team, role)
}

// rivalH2H opens the home rival's anchor match page and looks the two rivals
// up there. A failed anchor fetch degrades to not-found; it never aborts the
// rest of the analysis.
func (a *Analyzer) rivalH2H(ctx context.Context, homeRival, awayRival *models.RivalReference) models.H2HResult {
	anchorDoc, err := a.src.Fetch(ctx, fmt.Sprintf(a.analysisPath, homeRival.AnchorMatchID))
	if err != nil {
		slog.Warn("anchor page fetch failed, skipping rival head-to-head",
			"anchor_match_id", homeRival.AnchorMatchID, "error", err)
		return models.H2HResult{HandicapCanon: models.NoValue}
	}
	return resolver.ResolveH2H(anchorDoc, resolver.HeadToHead, homeRival.TeamID, awayRival.TeamID)
}
