package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/jobmate/internal/skills"
)

const (
	FieldProvider  = "ai_provider"
	FieldModel     = "ai_model"
	FieldExtractor = "extractor"
)

// StringField is a key/value pair that is dropped when either side is blank.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the pairs into trimmed zap string fields, skipping blank ones.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		value := strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}
	return result
}

// WithFields attaches fields to the logger. A nil logger becomes a no-op one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// CommonFields describes the model a generative extractor talks to.
func CommonFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// ForExtractor returns a child logger tagged with the extractor name and, if known, its model.
func ForExtractor(logger *zap.Logger, extractor, provider, model string) *zap.Logger {
	fields := StringFields(StringField{Key: FieldExtractor, Value: extractor})
	fields = append(fields, CommonFields(provider, model)...)
	return WithFields(logger, fields...)
}

// SkillSetFields reports the size of every category of the set, e.g. job_technologies=3.
func SkillSetFields(prefix string, set skills.SkillSet) []zap.Field {
	fields := make([]zap.Field, 0, len(skills.Categories))
	for _, c := range skills.Categories {
		key := string(c)
		if prefix != "" {
			key = prefix + "_" + key
		}
		fields = append(fields, zap.Int(key, len(set.Get(c))))
	}
	return fields
}
