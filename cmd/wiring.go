package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jobmate/internal/ai/gemini"
	"github.com/spigell/jobmate/internal/extraction"
	"github.com/spigell/jobmate/internal/i18n"
	"github.com/spigell/jobmate/internal/logger"
	"github.com/spigell/jobmate/internal/secrets"
	"github.com/spigell/jobmate/internal/vocabulary"
)

// deps bundles what every command needs.
type deps struct {
	config     *Config
	logger     *zap.Logger
	vocabulary *vocabulary.Vocabulary
	patterns   *vocabulary.Patterns
	extractor  extraction.Extractor
	localizer  *i18n.Translator
}

func setup(ctx context.Context) *deps {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	l.Debug("starting", zap.String("version", resolveVersion()), zap.String("language", config.Language))

	vocab, err := loadVocabulary(config)
	if err != nil {
		l.Fatal("loading vocabulary", zap.Error(err), zap.String("path", config.Vocabulary))
	}
	patterns := vocabulary.Compile(vocab)
	l.Debug("compiled vocabulary", zap.Int("rules", patterns.Len()), zap.Int("entries", vocab.Len()))

	localizer, err := newLocalizer(config, l)
	if err != nil {
		l.Fatal("loading translations", zap.Error(err), zap.String("locales", config.Locales))
	}

	deterministic := extraction.NewDeterministic(patterns)
	extractor := newExtractor(ctx, config.AI, deterministic, l)

	for _, st := range extraction.Describe(extractor, deterministic) {
		fields := []zap.Field{zap.String("name", st.Name), zap.Bool("enabled", st.Enabled)}
		if st.Reason != "" {
			fields = append(fields, zap.String("reason", st.Reason))
		}
		for k, v := range st.Details {
			fields = append(fields, zap.String(k, v))
		}
		l.Debug("extractor", fields...)
	}

	return &deps{
		config:     config,
		logger:     l,
		vocabulary: vocab,
		patterns:   patterns,
		extractor:  extractor,
		localizer:  localizer,
	}
}

func loadVocabulary(config *Config) (*vocabulary.Vocabulary, error) {
	if path := strings.TrimSpace(config.Vocabulary); path != "" {
		return vocabulary.Load(path)
	}
	return vocabulary.Default(), nil
}

func newLocalizer(config *Config, l *zap.Logger) (*i18n.Translator, error) {
	catalog, err := i18n.NewCatalog(l)
	if err != nil {
		return nil, err
	}
	if dir := strings.TrimSpace(config.Locales); dir != "" {
		if err := catalog.LoadDir(dir); err != nil {
			return nil, err
		}
	}

	lang := i18n.ResolveLanguage(config.Language, systemLocale(), catalog.Languages(), i18n.DefaultLanguage)
	return catalog.For(lang), nil
}

// systemLocale turns LC_ALL or LANG (bg_BG.UTF-8) into a language tag (bg-BG).
func systemLocale() string {
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	locale, _, _ = strings.Cut(locale, ".")
	return strings.ReplaceAll(locale, "_", "-")
}

// newExtractor wraps the deterministic extractor with the generative one. Any
// problem with the model setup only disables the generative strategy.
func newExtractor(ctx context.Context, cfg *AIConfig, deterministic extraction.Extractor, l *zap.Logger) extraction.Extractor {
	if cfg == nil || !cfg.Enabled {
		return extraction.NewGenerative(nil, deterministic, 0, l)
	}

	extractorLogger := logger.ForExtractor(l, extraction.GenerativeName, gemini.Provider, cfg.Gemini.Model)

	skillExtractor, err := newGeminiExtractor(ctx, cfg, extractorLogger)
	if err != nil {
		l.Warn("skipping generative extraction", zap.Error(err))
		return extraction.NewGenerative(nil, deterministic, cfg.Timeout, extractorLogger)
	}

	return extraction.NewGenerative(skillExtractor, deterministic, cfg.Timeout, extractorLogger)
}

func newGeminiExtractor(ctx context.Context, cfg *AIConfig, l *zap.Logger) (*gemini.Extractor, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != gemini.Provider {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, l)
	if err != nil {
		return nil, err
	}

	return gemini.NewExtractor(generator, cfg.Gemini.MaxLogLength, l), nil
}
