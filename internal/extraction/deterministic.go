package extraction

import (
	"context"
	"strconv"
	"strings"

	"github.com/spigell/jobmate/internal/skills"
	"github.com/spigell/jobmate/internal/vocabulary"
)

// DeterministicName identifies the pattern based extractor in logs and statuses.
const DeterministicName = "deterministic"

// Deterministic matches every compiled vocabulary rule against the whole text.
type Deterministic struct {
	patterns *vocabulary.Patterns
}

func NewDeterministic(patterns *vocabulary.Patterns) *Deterministic {
	return &Deterministic{patterns: patterns}
}

func (d *Deterministic) Name() string {
	return DeterministicName
}

// Extract adds a name to every category the vocabulary lists it under when its rule matches.
func (d *Deterministic) Extract(_ context.Context, text string) skills.SkillSet {
	found := make(map[skills.Category][]string, len(skills.Categories))
	if d == nil || d.patterns == nil || strings.TrimSpace(text) == "" {
		return skills.NewSkillSet(found)
	}

	matched := make(map[string]bool, d.patterns.Len())
	for _, entry := range d.patterns.Entries() {
		hit, seen := matched[entry.Name]
		if !seen {
			re, ok := d.patterns.Rule(entry.Name)
			hit = ok && re.MatchString(text)
			matched[entry.Name] = hit
		}
		if hit {
			found[entry.Category] = append(found[entry.Category], entry.Name)
		}
	}

	return skills.NewSkillSet(found)
}

func (d *Deterministic) Status() Status {
	rules := 0
	if d != nil && d.patterns != nil {
		rules = d.patterns.Len()
	}
	return Status{
		Name:    DeterministicName,
		Enabled: rules > 0,
		Details: map[string]string{"rules": strconv.Itoa(rules)},
	}
}
