// Package i18n provides the user facing strings of suggestions and score messages.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const DefaultLanguage = "en"

//go:embed locales/*.json
var embedded embed.FS

// Localizer supplies the message stored under a dotted key, with {name}
// placeholders replaced from params.
type Localizer interface {
	Message(key string, params map[string]string) (string, bool)
}

// Catalog holds flattened messages per language.
type Catalog struct {
	messages map[string]map[string]string
	logger   *zap.Logger
}

// NewCatalog returns a catalog preloaded with the built-in languages.
func NewCatalog(logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Catalog{messages: make(map[string]map[string]string), logger: logger}
	if err := c.loadFS(embedded, "locales"); err != nil {
		return nil, fmt.Errorf("load built-in locales: %w", err)
	}
	return c, nil
}

// LoadDir adds or replaces languages from every <lang>.json file of dir.
func (c *Catalog) LoadDir(dir string) error {
	return c.loadFS(os.DirFS(dir), ".")
}

func (c *Catalog) loadFS(fsys fs.FS, dir string) error {
	files, err := fs.Glob(fsys, filepath.ToSlash(filepath.Join(dir, "*.json")))
	if err != nil {
		return err
	}

	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		var tree map[string]any
		if err := json.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("parse %s: %w", file, err)
		}

		lang := strings.ToLower(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
		flat := make(map[string]string)
		flatten("", tree, flat)
		c.messages[lang] = flat

		c.logger.Debug("loaded translations", zap.String("language", lang), zap.Int("messages", len(flat)))
	}

	return nil
}

// Languages returns the loaded languages, sorted.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// For returns a Localizer for lang. Missing keys fall back to English.
func (c *Catalog) For(lang string) *Translator {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := c.messages[lang]; !ok {
		if lang != "" {
			c.logger.Warn("language not found, falling back", zap.String("language", lang), zap.String("fallback", DefaultLanguage))
		}
		lang = DefaultLanguage
	}
	return &Translator{catalog: c, lang: lang}
}

// Translator is a Catalog bound to one language.
type Translator struct {
	catalog *Catalog
	lang    string
}

func (t *Translator) Language() string {
	return t.lang
}

func (t *Translator) Message(key string, params map[string]string) (string, bool) {
	msg, ok := t.catalog.messages[t.lang][key]
	if !ok && t.lang != DefaultLanguage {
		msg, ok = t.catalog.messages[DefaultLanguage][key]
	}
	if !ok {
		return "", false
	}
	return format(msg, params), true
}

// Text returns the localized message or the formatted fallback when loc is nil or lacks the key.
func Text(loc Localizer, key, fallback string, params map[string]string) string {
	if loc != nil {
		if msg, ok := loc.Message(key, params); ok {
			return msg
		}
	}
	return format(fallback, params)
}

func format(msg string, params map[string]string) string {
	if len(params) == 0 {
		return msg
	}

	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}
