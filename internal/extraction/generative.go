package extraction

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/jobmate/internal/ai"
	"github.com/spigell/jobmate/internal/logger"
	"github.com/spigell/jobmate/internal/skills"
	"github.com/spigell/jobmate/internal/utils"
)

const (
	// GenerativeName identifies the model backed extractor in logs and statuses.
	GenerativeName = "generative"

	DefaultTimeout = 30 * time.Second
)

// Generative asks a model for the skills and falls back to another extractor
// when the model call fails, times out, or comes back empty. The call is made
// once and never retried.
type Generative struct {
	extractor ai.SkillExtractor
	fallback  Extractor
	timeout   time.Duration
	logger    *zap.Logger
}

func NewGenerative(extractor ai.SkillExtractor, fallback Extractor, timeout time.Duration, log *zap.Logger) *Generative {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Generative{
		extractor: extractor,
		fallback:  fallback,
		timeout:   timeout,
		logger:    log,
	}
}

func (g *Generative) Name() string {
	return GenerativeName
}

// Extract returns the model result or, on any failure, exactly what the fallback returns.
func (g *Generative) Extract(ctx context.Context, text string) skills.SkillSet {
	res := g.Attempt(ctx, text)
	if set, ok := res.SkillSet(); ok {
		g.logger.Debug("generative extraction succeeded", logger.SkillSetFields("extracted", set)...)
		return set
	}

	fields := []zap.Field{zap.String("reason", string(res.Reason()))}
	if res.Err() != nil {
		fields = append(fields, zap.Error(res.Err()))
	}
	if res.Reason() == ReasonTimeout {
		fields = append(fields, zap.Duration("timeout", g.timeout))
	}
	if g.fallback == nil {
		g.logger.Warn("generative extraction failed without fallback", fields...)
		return skills.NewSkillSet(nil)
	}

	fields = append(fields, zap.String("fallback", g.fallback.Name()))
	if res.Reason() == ReasonUnavailable {
		g.logger.Debug("falling back to another extractor", fields...)
	} else {
		g.logger.Info("falling back to another extractor", fields...)
	}

	return g.fallback.Extract(ctx, text)
}

// Attempt performs the single bounded model call and classifies its outcome.
func (g *Generative) Attempt(ctx context.Context, text string) Result {
	if g.extractor == nil {
		return Failed(ReasonUnavailable, nil)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	set, err := utils.Await(callCtx, func(ctx context.Context) (skills.SkillSet, error) {
		return g.extractor.ExtractSkills(ctx, text)
	})
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Failed(ReasonTimeout, err)
	case errors.Is(err, ai.ErrMalformedResponse):
		return Failed(ReasonMalformed, err)
	case err != nil:
		return Failed(ReasonCallFailed, err)
	}

	set = set.Normalized()
	if set.IsEmpty() {
		return Failed(ReasonEmpty, nil)
	}
	return Extracted(set)
}

func (g *Generative) Status() Status {
	status := Status{
		Name:    GenerativeName,
		Enabled: g.extractor != nil,
		Details: map[string]string{"timeout": g.timeout.String()},
	}
	if g.extractor == nil {
		status.Reason = "no generative extractor configured"
	}
	if g.fallback != nil {
		status.Details["fallback"] = g.fallback.Name()
	}
	return status
}
