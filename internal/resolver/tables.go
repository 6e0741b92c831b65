// Package resolver implements the match reference resolution core: parsing
// history and head-to-head tables into canonical match records, normalizing
// Asian-Handicap lines, and the multi-hop lookups built on top of them
// (last match, indirect rival, head-to-head, comparative).
//
// Every function here is a pure, synchronous read of an already-fetched
// document. Malformed rows are discarded, never surfaced as errors; lookups
// that find nothing return nil or an explicit not-found value.
package resolver

import "regexp"

// TableSpec pins down the markup contract of one table on the analysis page.
// The rival link index differs between the home and away history tables
// because the anchor team's own link occupies the opposite position in each.
type TableSpec struct {
	ID             string // element id of the table
	RowPrefix      string // row ids are RowPrefix + digits; the digits are the match id
	ScoreClass     string // class of the span holding the score in the score cell
	RivalLinkIndex int    // which team link in the anchor row is the rival
}

var (
	// HomeHistory is the anchor team's home-side history table.
	HomeHistory = TableSpec{ID: "table_v1", RowPrefix: "tr1_", ScoreClass: "fscore_1", RivalLinkIndex: 1}
	// AwayHistory is the anchor team's away-side history table.
	AwayHistory = TableSpec{ID: "table_v2", RowPrefix: "tr2_", ScoreClass: "fscore_2", RivalLinkIndex: 0}
	// HeadToHead is the direct-meetings table between the two main teams.
	HeadToHead = TableSpec{ID: "table_v3", RowPrefix: "tr3_", ScoreClass: "fscore_3"}
)

// Fixed 0-based cell positions of this site's table layout. Rows with fewer
// than minCells cells are discarded.
const (
	cellLeague   = 0
	cellDate     = 1
	cellHome     = 2
	cellScore    = 3
	cellAway     = 4
	cellHandicap = 11
	minCells     = 12
)

// Row attributes carrying machine-readable values.
const (
	attrLeague   = "league"
	attrRoleFlag = "islast"
	attrHandicap = "data-o"
	attrOnClick  = "onclick"
)

var (
	scorePattern  = regexp.MustCompile(`(\d+)-(\d+)`)
	teamIDPattern = regexp.MustCompile(`team\((\d+)\)`)
)
