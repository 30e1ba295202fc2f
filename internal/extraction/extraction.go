// Package extraction turns free text into skill sets. The deterministic
// extractor scans text against the compiled vocabulary; the generative
// extractor prefers a model and falls back to the deterministic one.
package extraction

import (
	"context"

	"github.com/spigell/jobmate/internal/skills"
)

// Extractor finds skills in text. Implementations never fail: when nothing is
// found they return an empty SkillSet.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, text string) skills.SkillSet
}

// Status represents runtime information about an extractor.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by extractors that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Describe returns status entries for the provided extractors.
func Describe(extractors ...Extractor) []Status {
	statuses := make([]Status, 0, len(extractors))
	for _, ex := range extractors {
		if ex == nil {
			continue
		}
		if reporter, ok := ex.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    ex.Name(),
			Enabled: true,
		})
	}
	return statuses
}
