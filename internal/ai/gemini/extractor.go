package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/jobmate/internal/ai"
	"github.com/spigell/jobmate/internal/skills"
	"github.com/spigell/jobmate/internal/utils"
)

const (
	defaultMaxLogLength = 200
	systemInstruction   = "You are a precise recruiting assistant. You only answer with JSON that follows the requested schema."
)

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateJSON(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

// Extractor implements ai.SkillExtractor on top of a Gemini generator.
type Extractor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.SkillExtractor = (*Extractor)(nil)

func NewExtractor(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// ExtractSkills asks the model for the skills of the text. Answers that are not
// a JSON object wrap ai.ErrMalformedResponse.
func (e *Extractor) ExtractSkills(ctx context.Context, text string) (skills.SkillSet, error) {
	if strings.TrimSpace(text) == "" {
		return skills.SkillSet{}, fmt.Errorf("text is required")
	}

	prompt := buildPrompt(text)

	e.logger.Debug("gemini extract skills request",
		zap.String("model", e.generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateJSON(ctx, systemInstruction, prompt)
	if err != nil {
		return skills.SkillSet{}, err
	}

	e.logger.Debug("gemini extract skills response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
	)

	return parseResponse(raw)
}

func buildPrompt(text string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Extract skills, technologies and soft_skills as JSON from:\n{{TEXT}}"
	}
	return strings.ReplaceAll(template, "{{TEXT}}", strings.TrimSpace(text))
}

func parseResponse(raw string) (skills.SkillSet, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return skills.SkillSet{}, fmt.Errorf("%w: %v", ai.ErrMalformedResponse, err)
	}

	return skills.FromMap(data), nil
}

// extractJSON strips markdown code fences and any text around the outermost object.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	raw = strings.TrimSpace(raw)

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		raw = raw[start : end+1]
	}
	return raw
}
