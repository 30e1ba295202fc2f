package ai

import (
	"context"
	"errors"

	"github.com/spigell/jobmate/internal/skills"
)

// ErrMalformedResponse marks a model answer that could not be parsed into skills.
var ErrMalformedResponse = errors.New("malformed model response")

// SkillExtractor asks a text-generation model for the categorized skills of a text.
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, text string) (skills.SkillSet, error)
}
