package vocabulary

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/spigell/jobmate/internal/skills"
)

// ErrUnknownCategory is returned when a vocabulary names a category outside skills.Categories.
var ErrUnknownCategory = errors.New("unknown skill category")

// Vocabulary is the immutable table of canonical skill names per category plus
// the hand written matching rules for names a generated rule cannot express.
type Vocabulary struct {
	categories map[skills.Category][]string
	special    map[string]string
}

// New validates and copies the provided tables. Names are normalized and
// deduplicated per category while keeping their original order. Special rules
// are keyed by normalized name and must compile.
func New(categories map[skills.Category][]string, special map[string]string) (*Vocabulary, error) {
	v := &Vocabulary{
		categories: make(map[skills.Category][]string, len(categories)),
		special:    make(map[string]string, len(special)),
	}

	for c, names := range categories {
		if _, ok := skills.ParseCategory(string(c)); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}

		seen := make(map[string]struct{}, len(names))
		list := make([]string, 0, len(names))
		for _, name := range names {
			n := skills.NormalizeName(name)
			if n == "" {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			list = append(list, n)
		}
		v.categories[c] = list
	}

	for name, rule := range special {
		n := skills.NormalizeName(name)
		if n == "" {
			continue
		}
		rule = caseInsensitive(rule)
		if _, err := regexp.Compile(rule); err != nil {
			return nil, fmt.Errorf("compile special rule for %q: %w", n, err)
		}
		v.special[n] = rule
	}

	return v, nil
}

// Categories returns the categories that hold at least one name, in skills.Categories order.
func (v *Vocabulary) Categories() []skills.Category {
	out := make([]skills.Category, 0, len(skills.Categories))
	for _, c := range skills.Categories {
		if len(v.categories[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Names returns a copy of the canonical names listed under the category.
func (v *Vocabulary) Names(c skills.Category) []string {
	names := v.categories[c]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Special returns a copy of the special-case rule table.
func (v *Vocabulary) Special() map[string]string {
	out := make(map[string]string, len(v.special))
	for k, rule := range v.special {
		out[k] = rule
	}
	return out
}

// SpecialNames returns the names that have a special rule, sorted.
func (v *Vocabulary) SpecialNames() []string {
	out := make([]string, 0, len(v.special))
	for k := range v.special {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of names across categories. A name listed in two categories counts twice.
func (v *Vocabulary) Len() int {
	total := 0
	for _, names := range v.categories {
		total += len(names)
	}
	return total
}
