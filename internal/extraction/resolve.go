package extraction

import (
	"context"
	"errors"

	"github.com/spigell/jobmate/internal/skills"
)

// Resolve turns a tagged input into a normalized SkillSet. Structured input
// bypasses extraction. A zero input is the only error.
func Resolve(ctx context.Context, in skills.Input, ex Extractor) (skills.SkillSet, error) {
	if in.IsZero() {
		return skills.SkillSet{}, skills.ErrMissingInput
	}

	if set, ok := in.SkillSet(); ok {
		return set.Normalized(), nil
	}

	if ex == nil {
		return skills.SkillSet{}, errors.New("extractor is required for raw text input")
	}

	text, _ := in.Text()
	return ex.Extract(ctx, text), nil
}
