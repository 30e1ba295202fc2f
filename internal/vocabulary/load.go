package vocabulary

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/spigell/jobmate/internal/skills"
)

// keyDelimiter keeps dotted skill names such as "node.js" as single keys.
const keyDelimiter = "::"

// Load reads a vocabulary file (yaml, json or toml, by extension).
//
//	categories:
//	  technologies: [go, rust]
//	special:
//	  go: '\bgo(?:lang)?\b'
//
// When categories are present they replace the built-in ones. Special rules
// are merged over the built-in table.
func Load(path string) (*Vocabulary, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read vocabulary %q: %w", path, err)
	}

	categories := defaultCategories
	if raw := v.GetStringMapStringSlice("categories"); len(raw) > 0 {
		categories = make(map[skills.Category][]string, len(raw))
		for name, names := range raw {
			c, ok := skills.ParseCategory(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q in %s", ErrUnknownCategory, name, path)
			}
			categories[c] = names
		}
	}

	special := make(map[string]string, len(defaultSpecial))
	for name, rule := range defaultSpecial {
		special[name] = rule
	}
	for name, rule := range v.GetStringMapString("special") {
		special[name] = rule
	}

	vocab, err := New(categories, special)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary %q: %w", path, err)
	}
	return vocab, nil
}
