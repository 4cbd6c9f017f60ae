package assessment

import "testing"

func TestKnowledgeGain(t *testing.T) {
	var s Store
	s.SetPre([]string{"a", "b"}, 20)
	s.SetPost([]string{"c", "d"}, 60)

	if !s.Pre.Completed || !s.Post.Completed {
		t.Error("assessments not marked completed")
	}
	if got := s.KnowledgeGain(); got != 40 {
		t.Errorf("KnowledgeGain = %v, want 40", got)
	}
}

func TestKnowledgeGainNegative(t *testing.T) {
	var s Store
	s.SetPre(nil, 80)
	s.SetPost(nil, 50)

	if got := s.KnowledgeGain(); got != -30 {
		t.Errorf("KnowledgeGain = %v, want -30 (not clamped)", got)
	}
}

func TestReset(t *testing.T) {
	var s Store
	s.SetPre([]string{"x"}, 90)
	s.SetPost([]string{"y"}, 95)
	s.Reset()

	if s.Pre.Completed || s.Post.Completed {
		t.Error("reset did not clear completion")
	}
	if s.KnowledgeGain() != 0 {
		t.Error("reset did not clear scores")
	}
}
