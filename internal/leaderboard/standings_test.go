package leaderboard

import (
	"strings"
	"testing"
)

func TestBuildBestScorePerUser(t *testing.T) {
	s := Build([]Entry{
		{UserID: "u1", Name: "Ada", Score: 60},
		{UserID: "u1", Name: "Ada", Score: 85},
		{UserID: "u2", Name: "Bob", Score: 45},
	})

	if len(s.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(s.Entries))
	}
	if s.Entries[0].UserID != "u1" || s.Entries[0].Score != 85 {
		t.Errorf("top entry = %+v, want u1 with best score 85", s.Entries[0])
	}
}

func TestBuildDenseRanksWithTies(t *testing.T) {
	s := Build([]Entry{
		{UserID: "u1", Name: "Ada", Score: 90},
		{UserID: "u2", Name: "Bob", Score: 90},
		{UserID: "u3", Name: "Cyd", Score: 30},
	})

	if s.Entries[0].Rank != 1 || s.Entries[1].Rank != 1 {
		t.Errorf("tied ranks = %d, %d, want 1, 1", s.Entries[0].Rank, s.Entries[1].Rank)
	}
	if s.Entries[2].Rank != 2 {
		t.Errorf("third rank = %d, want 2 (dense)", s.Entries[2].Rank)
	}
}

func TestBuildAssignsBadges(t *testing.T) {
	s := Build([]Entry{
		{UserID: "u1", Name: "Ada", Score: 90},
		{UserID: "u2", Name: "Bob", Score: 50},
		{UserID: "u3", Name: "Cyd", Score: 10},
	})

	wants := []string{"Ally", "Advocate", "Aware"}
	for i, want := range wants {
		if !strings.Contains(s.Entries[i].Badge, want) {
			t.Errorf("entry %d badge = %q, want %q tier", i, s.Entries[i].Badge, want)
		}
	}
}

func TestTopAndRankOf(t *testing.T) {
	s := Build([]Entry{
		{UserID: "u1", Name: "Ada", Score: 90},
		{UserID: "u2", Name: "Bob", Score: 70},
		{UserID: "u3", Name: "Cyd", Score: 50},
	})

	top := s.Top(2)
	if len(top) != 2 || top[0].UserID != "u1" {
		t.Errorf("Top(2) = %+v", top)
	}
	if got := s.Top(10); len(got) != 3 {
		t.Errorf("Top(10) = %d entries, want all 3", len(got))
	}

	e, ok := s.RankOf("u3")
	if !ok || e.Rank != 3 {
		t.Errorf("RankOf(u3) = %+v, %v, want rank 3", e, ok)
	}
	if _, ok := s.RankOf("nobody"); ok {
		t.Error("RankOf(nobody) should be false")
	}
}
