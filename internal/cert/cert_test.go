package cert

import (
	"strings"
	"testing"
)

func TestNewCertificate(t *testing.T) {
	c := New("Ada", 85.4, 3)

	if !strings.HasPrefix(c.ID, "cert_") {
		t.Errorf("ID = %q, want cert_ prefix", c.ID)
	}
	if c.UserName != "Ada" {
		t.Errorf("UserName = %q, want Ada", c.UserName)
	}
	if c.Score != 85 {
		t.Errorf("Score = %d, want 85", c.Score)
	}
	if c.ScenariosCompleted != 3 {
		t.Errorf("ScenariosCompleted = %d, want 3", c.ScenariosCompleted)
	}
	if !strings.Contains(c.Badge, "Ally") {
		t.Errorf("Badge = %q, want Ally badge for score 85", c.Badge)
	}
	if c.Date == "" {
		t.Error("Date empty")
	}
}

func TestNewCertificateDefaultsName(t *testing.T) {
	c := New("", 50, 1)
	if c.UserName != "Empathy Champion" {
		t.Errorf("UserName = %q, want placeholder", c.UserName)
	}
	if !strings.Contains(c.Badge, "Advocate") {
		t.Errorf("Badge = %q, want Advocate badge for score 50", c.Badge)
	}
}

func TestNewCertificateIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c := New("x", 10, 0)
		if seen[c.ID] {
			t.Fatalf("duplicate certificate ID %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestScoreClampedToDisplayRange(t *testing.T) {
	if got := New("x", -12, 0).Score; got != 0 {
		t.Errorf("Score = %d, want 0 for negative total", got)
	}
	if got := New("x", 131, 0).Score; got != 100 {
		t.Errorf("Score = %d, want 100 for oversized total", got)
	}
}

func TestRenderContainsRecordFields(t *testing.T) {
	c := New("Grace", 72, 4)
	out := Render(c, 80)

	for _, want := range []string{"Grace", "72/100", c.ID, c.Badge} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered certificate missing %q", want)
		}
	}
}
