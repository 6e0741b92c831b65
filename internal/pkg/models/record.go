package models

// Role marks which side of a match a team occupied.
type Role string

const (
	RoleHome Role = "home"
	RoleAway Role = "away"
)

// Sentinels used across the resolution core.
const (
	// NoValue marks an unknown score, handicap or team reference.
	NoValue = "-"
	// AnchorFlag is the role-flag value marking the row that represents the
	// anchor team's own most recent meeting in a history table.
	AnchorFlag = "1"
)

// MatchRecord is one historical or head-to-head match row in canonical form.
// It is transient: rebuilt from the document on every lookup, never persisted
// with identity.
type MatchRecord struct {
	MatchID string `json:"match_id"`
	Home    string `json:"home"`
	Away    string `json:"away"`

	ScoreRaw       string `json:"score_raw"`       // "H-A" or "-"
	ScoreCanonical string `json:"score"`           // "H:A" or "-"
	HandicapRaw    string `json:"handicap_raw"`    // as shown in the source cell
	HandicapCanon  string `json:"handicap"`        // normalized decimal, "0", or "-"
	HandicapValue  float64 `json:"handicap_value"` // 0 when HandicapCanon == "-"

	LeagueID string `json:"league_id,omitempty"` // "" = unknown, never excluded by a filter
	Date     string `json:"date,omitempty"`      // raw text, parsed only for recency ordering
	RoleFlag string `json:"role_flag,omitempty"` // AnchorFlag marks the anchor row
}

// HasHandicap reports whether the row carried a parseable handicap line.
func (r *MatchRecord) HasHandicap() bool {
	return r.HandicapCanon != NoValue
}

// RivalReference identifies the indirect rival found via a history table:
// the team the anchor side met most recently, plus the match page that
// anchors the follow-up head-to-head lookup.
type RivalReference struct {
	TeamID        string `json:"team_id"`
	TeamName      string `json:"team_name"`
	AnchorMatchID string `json:"anchor_match_id"`
}

// H2HResult is the outcome of a direct head-to-head lookup between two
// resolved team ids. Found=false means the table held no played meeting of
// the pair; it is not an error.
type H2HResult struct {
	Found         bool   `json:"found"`
	HomeGoals     int    `json:"home_goals"`
	AwayGoals     int    `json:"away_goals"`
	HandicapCanon string `json:"handicap"`
	RivalARole    Role   `json:"rival_a_role"`
	HomeTeam      string `json:"home_team"`
	AwayTeam      string `json:"away_team"`
}

// ComparativeResult is the first historical meeting of two named teams in
// either order. Locality reports which side the queried team took in that
// row, independent of its role in the main match.
type ComparativeResult struct {
	Score         string `json:"score"`
	HandicapCanon string `json:"handicap"`
	Locality      Role   `json:"locality"`
}
