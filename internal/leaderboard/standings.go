// Package leaderboard ranks users by their best recorded empathy score.
// It consumes plain {id, name, score, badge} tuples; how scores were
// produced is not its concern.
package leaderboard

import (
	"sort"

	"github.com/walkinmyshoes/wims/internal/empathy"
)

// Entry is one user's best result.
type Entry struct {
	UserID string
	Name   string
	Score  float64
	Badge  string
	Rank   int
}

// Standings is an ordered leaderboard.
type Standings struct {
	Entries []Entry
}

// Build collapses raw score records to one best-score entry per user,
// orders them descending, and assigns dense 1-based ranks (ties share
// a rank).
func Build(records []Entry) *Standings {
	best := make(map[string]Entry)
	for _, r := range records {
		cur, ok := best[r.UserID]
		if !ok || r.Score > cur.Score {
			best[r.UserID] = r
		}
	}

	entries := make([]Entry, 0, len(best))
	for _, e := range best {
		e.Badge = empathy.Classify(e.Score).Badge()
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})

	rank := 0
	var prevScore float64
	for i := range entries {
		if i == 0 || entries[i].Score != prevScore {
			rank++
		}
		entries[i].Rank = rank
		prevScore = entries[i].Score
	}

	return &Standings{Entries: entries}
}

// Top returns the first n entries.
func (s *Standings) Top(n int) []Entry {
	if n > len(s.Entries) {
		n = len(s.Entries)
	}
	return s.Entries[:n]
}

// RankOf returns the entry for a user, or false if the user has no
// recorded score.
func (s *Standings) RankOf(userID string) (Entry, bool) {
	for _, e := range s.Entries {
		if e.UserID == userID {
			return e, true
		}
	}
	return Entry{}, false
}
