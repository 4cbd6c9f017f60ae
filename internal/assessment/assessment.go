// Package assessment holds the pre- and post-session knowledge checks
// that feed the knowledge-gain term of the empathy score.
package assessment

// Assessment is one completed (or pending) knowledge check.
type Assessment struct {
	Completed bool
	Answers   []string
	Score     float64 // 0-100
}

// Store holds the pre and post assessments for a session.
type Store struct {
	Pre  Assessment
	Post Assessment
}

// SetPre records the pre-session assessment result.
func (s *Store) SetPre(answers []string, score float64) {
	s.Pre = Assessment{Completed: true, Answers: answers, Score: score}
}

// SetPost records the post-session assessment result.
func (s *Store) SetPost(answers []string, score float64) {
	s.Post = Assessment{Completed: true, Answers: answers, Score: score}
}

// KnowledgeGain is post minus pre in points. It may be negative; clamping
// is a scoring policy decision, not the store's.
func (s *Store) KnowledgeGain() float64 {
	return s.Post.Score - s.Pre.Score
}

// Reset clears both assessments.
func (s *Store) Reset() {
	s.Pre = Assessment{}
	s.Post = Assessment{}
}
