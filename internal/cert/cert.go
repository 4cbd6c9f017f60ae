// Package cert creates the durable certificate records produced at the
// end of a training run. Records are immutable once created; rendering
// and export are presentation concerns layered on top.
package cert

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/walkinmyshoes/wims/internal/empathy"
)

// Certificate is the immutable record of a completed training run.
type Certificate struct {
	ID                 string
	UserName           string
	Score              int // rounded to 0-100 display range
	Date               string
	ScenariosCompleted int
	Badge              string
}

// New creates a certificate from a final score. IDs combine the creation
// time with a random suffix so concurrent generations never collide.
func New(userName string, score float64, scenariosCompleted int) Certificate {
	now := time.Now()
	suffix := strings.Split(uuid.NewString(), "-")[0]
	name := userName
	if name == "" {
		name = "Empathy Champion"
	}

	return Certificate{
		ID:                 fmt.Sprintf("cert_%d_%s", now.UnixMilli(), suffix),
		UserName:           name,
		Score:              clampScore(score),
		Date:               now.Format("2006-01-02"),
		ScenariosCompleted: scenariosCompleted,
		Badge:              empathy.Classify(score).Badge(),
	}
}

// clampScore rounds and pins the display score to 0-100. The underlying
// total is unclamped; the certificate shows the presentable range.
func clampScore(score float64) int {
	n := int(math.Round(score))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
