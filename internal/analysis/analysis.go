// Package analysis runs the whole matching pipeline for one job and one candidate.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/jobmate/internal/extraction"
	"github.com/spigell/jobmate/internal/i18n"
	"github.com/spigell/jobmate/internal/logger"
	"github.com/spigell/jobmate/internal/matching"
	"github.com/spigell/jobmate/internal/skills"
	"github.com/spigell/jobmate/internal/suggestions"
)

// Analyzer is safe for concurrent use as long as its extractor is.
type Analyzer struct {
	extractor extraction.Extractor
	localizer i18n.Localizer
	logger    *zap.Logger
	now       func() time.Time
}

// New returns an Analyzer. loc may be nil for English texts.
func New(extractor extraction.Extractor, loc i18n.Localizer, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		extractor: extractor,
		localizer: loc,
		logger:    log,
		now:       time.Now,
	}
}

// Analyze resolves both inputs concurrently, scores them and builds the suggestions.
// It fails only when an input is missing.
func (a *Analyzer) Analyze(ctx context.Context, job, candidate skills.Input) (*Report, error) {
	started := a.now()
	var jobSkills, candidateSkills skills.SkillSet

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		set, err := extraction.Resolve(gctx, job, a.extractor)
		if err != nil {
			return fmt.Errorf("resolve job skills: %w", err)
		}
		jobSkills = set
		return nil
	})
	g.Go(func() error {
		set, err := extraction.Resolve(gctx, candidate, a.extractor)
		if err != nil {
			return fmt.Errorf("resolve candidate skills: %w", err)
		}
		candidateSkills = set
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Debug("resolved skills",
		append(logger.SkillSetFields("job", jobSkills), logger.SkillSetFields("candidate", candidateSkills)...)...,
	)

	result := matching.Score(jobSkills, candidateSkills)
	interpretation := matching.Interpret(result.Score, a.localizer)
	cards := suggestions.Generate(jobSkills, candidateSkills, a.localizer)

	report := &Report{
		ID:              uuid.New(),
		CreatedAt:       a.now().UTC(),
		Language:        languageOf(a.localizer),
		JobInput:        job.Kind(),
		CandidateInput:  candidate.Kind(),
		JobSkills:       jobSkills,
		CandidateSkills: candidateSkills,
		Match:           result,
		Interpretation:  interpretation,
		Suggestions:     cards,
	}

	a.logger.Info("analysis finished",
		zap.String("report_id", report.ID.String()),
		zap.Float64("score", result.Score),
		zap.String("tier", string(interpretation.Tier)),
		zap.Int("suggestions", len(cards)),
		zap.Duration("elapsed", a.now().Sub(started)),
	)

	return report, nil
}

func languageOf(loc i18n.Localizer) string {
	if l, ok := loc.(interface{ Language() string }); ok {
		return l.Language()
	}
	return i18n.DefaultLanguage
}
