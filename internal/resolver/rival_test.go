package resolver

import "testing"

func TestResolveRivalHomeHistory(t *testing.T) {
	// The anchor row in the home-history table: the anchor team's own link is
	// first, so the rival is the second team link.
	doc := fixtureDoc(t, HomeHistory,
		fixtureRow{
			id: "tr1_2000", league: "9",
			date: "2024-02-01",
			home: "Alpha FC", homeTeamID: "11",
			score: "1-1", scoreClass: "fscore_1",
			away: "Gamma FC", awayTeamID: "33",
		},
		fixtureRow{
			id: "tr1_3000", league: "9", isLast: true,
			date: "2024-03-02",
			home: "Alpha FC", homeTeamID: "11",
			score: "2-1", scoreClass: "fscore_1",
			away: "Beta FC", awayTeamID: "22",
			handicapAttr: "-0.5/1",
		},
	)

	ref := ResolveRival(doc, HomeHistory)
	if ref == nil {
		t.Fatal("ResolveRival returned nil, want a reference")
	}
	if ref.TeamID != "22" || ref.TeamName != "Beta FC" {
		t.Errorf("rival = %q (%s), want Beta FC (22)", ref.TeamName, ref.TeamID)
	}
	if ref.AnchorMatchID != "3000" {
		t.Errorf("AnchorMatchID = %q, want 3000 (the anchor row's own id, not the rival's page)", ref.AnchorMatchID)
	}
}

func TestResolveRivalAwayHistory(t *testing.T) {
	// In the away-history table the anchor team's link occupies the second
	// position, so the rival comes from link index 0.
	doc := fixtureDoc(t, AwayHistory,
		fixtureRow{
			id: "tr2_4000", isLast: true,
			date: "2024-03-05",
			home: "Delta FC", homeTeamID: "44",
			score: "0-2", scoreClass: "fscore_2",
			away: "Omega FC", awayTeamID: "55",
		},
	)

	ref := ResolveRival(doc, AwayHistory)
	if ref == nil {
		t.Fatal("ResolveRival returned nil, want a reference")
	}
	if ref.TeamID != "44" || ref.TeamName != "Delta FC" || ref.AnchorMatchID != "4000" {
		t.Errorf("ResolveRival = %+v, want Delta FC (44) anchored at 4000", ref)
	}
}

func TestResolveRivalNoAnchorRow(t *testing.T) {
	doc := fixtureDoc(t, HomeHistory,
		fixtureRow{id: "tr1_1", home: "Alpha FC", homeTeamID: "11", score: "1-0", away: "Beta FC", awayTeamID: "22"},
	)
	if ref := ResolveRival(doc, HomeHistory); ref != nil {
		t.Fatalf("ResolveRival = %+v, want nil without an anchor row", ref)
	}
}

func TestResolveRivalMissingTeamID(t *testing.T) {
	// The rival link has no team(<digits>) reference: no partial result.
	doc := fixtureDoc(t, HomeHistory,
		fixtureRow{
			id: "tr1_5000", isLast: true,
			home: "Alpha FC", homeTeamID: "11",
			score: "2-1", away: "Beta FC", // away rendered without a link
		},
	)
	if ref := ResolveRival(doc, HomeHistory); ref != nil {
		t.Fatalf("ResolveRival = %+v, want nil when the rival id is missing", ref)
	}
}
