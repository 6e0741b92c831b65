package resolver

import (
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/vkorchagin/matchref/internal/pkg/models"
)

func h2hFixture(t *testing.T) *goquery.Document {
	return fixtureDoc(t, HeadToHead,
		// Unplayed fixture between the right pair: must be skipped.
		fixtureRow{
			id:   "tr3_9",
			date: "2024-08-01",
			home: "Beta FC", homeTeamID: "22",
			score: "vs", scoreClass: "fscore_3",
			away: "Delta FC", awayTeamID: "44",
		},
		fixtureRow{
			id:   "tr3_10",
			date: "2024-02-10",
			home: "Delta FC", homeTeamID: "44",
			score: "3-1", scoreClass: "fscore_3",
			away: "Beta FC", awayTeamID: "22",
			handicapAttr: "0.5",
		},
		fixtureRow{
			id:   "tr3_11",
			date: "2023-10-01",
			home: "Beta FC", homeTeamID: "22",
			score: "0-0", scoreClass: "fscore_3",
			away: "Delta FC", awayTeamID: "44",
		},
	)
}

func TestResolveH2HFindsFirstPlayedMeeting(t *testing.T) {
	doc := h2hFixture(t)
	got := ResolveH2H(doc, HeadToHead, "22", "44")
	if !got.Found {
		t.Fatal("ResolveH2H not found, want found")
	}
	if got.HomeGoals != 3 || got.AwayGoals != 1 {
		t.Errorf("score = %d-%d, want 3-1", got.HomeGoals, got.AwayGoals)
	}
	if got.HomeTeam != "Delta FC" || got.AwayTeam != "Beta FC" {
		t.Errorf("teams = %q / %q, want Delta FC / Beta FC", got.HomeTeam, got.AwayTeam)
	}
	if got.HandicapCanon != "0.5" {
		t.Errorf("handicap = %q, want 0.5", got.HandicapCanon)
	}
	// Beta FC (22) was away in that row.
	if got.RivalARole != models.RoleAway {
		t.Errorf("RivalARole = %q, want away", got.RivalARole)
	}
}

func TestResolveH2HSetEquality(t *testing.T) {
	doc := h2hFixture(t)
	ab := ResolveH2H(doc, HeadToHead, "22", "44")
	ba := ResolveH2H(doc, HeadToHead, "44", "22")
	if !ab.Found || !ba.Found {
		t.Fatal("both orders must find the meeting")
	}
	if ab.HomeGoals != ba.HomeGoals || ab.AwayGoals != ba.AwayGoals ||
		ab.HomeTeam != ba.HomeTeam || ab.AwayTeam != ba.AwayTeam ||
		ab.HandicapCanon != ba.HandicapCanon {
		t.Errorf("swapped ids changed the row: %+v vs %+v", ab, ba)
	}
	if ab.RivalARole == ba.RivalARole {
		t.Errorf("RivalARole must flip when ids swap, got %q both times", ab.RivalARole)
	}
}

func TestResolveH2HNotFound(t *testing.T) {
	doc := h2hFixture(t)
	if got := ResolveH2H(doc, HeadToHead, "22", "99"); got.Found {
		t.Fatalf("ResolveH2H = %+v, want not found for an absent pair", got)
	}
}

func TestResolveH2HEmptyIDsShortCircuit(t *testing.T) {
	doc := h2hFixture(t)
	if got := ResolveH2H(doc, HeadToHead, "", "44"); got.Found {
		t.Fatalf("ResolveH2H = %+v, want not found for an empty id", got)
	}
	if got := ResolveH2H(doc, HeadToHead, "22", ""); got.Found {
		t.Fatalf("ResolveH2H = %+v, want not found for an empty id", got)
	}
}

func TestResolveH2HMissingHandicap(t *testing.T) {
	doc := fixtureDoc(t, HeadToHead,
		fixtureRow{
			id:   "tr3_1",
			home: "Beta FC", homeTeamID: "22",
			score: "1-0", scoreClass: "fscore_3",
			away: "Delta FC", awayTeamID: "44",
			handicap: "-",
		},
	)
	got := ResolveH2H(doc, HeadToHead, "22", "44")
	if !got.Found {
		t.Fatal("ResolveH2H not found, want found")
	}
	if got.HandicapCanon != models.NoValue {
		t.Errorf("handicap = %q, want the not-available sentinel", got.HandicapCanon)
	}
}
