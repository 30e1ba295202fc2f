package vocabulary

import (
	"regexp"
	"strings"

	"github.com/spigell/jobmate/internal/skills"
)

const (
	wordBoundary = `\b`
	leftGuard    = `(?:^|[^\w])`
	rightGuard   = `(?:[^\w]|$)`
)

// Entry is one canonical name listed under one category.
type Entry struct {
	Category skills.Category
	Name     string
}

// Patterns holds one compiled rule per canonical name. It is safe for concurrent use.
type Patterns struct {
	entries []Entry
	names   []string
	sources map[string]string
	rules   map[string]*regexp.Regexp
}

// Compile builds the matching rules for every name of the vocabulary.
// The result depends only on the vocabulary: the same input always yields the
// same rule sources in the same order.
func Compile(v *Vocabulary) *Patterns {
	p := &Patterns{
		sources: make(map[string]string),
		rules:   make(map[string]*regexp.Regexp),
	}

	for _, c := range skills.Categories {
		for _, name := range v.categories[c] {
			p.entries = append(p.entries, Entry{Category: c, Name: name})
			if _, ok := p.sources[name]; ok {
				continue
			}

			source, ok := v.special[name]
			if !ok {
				source = generateRule(name)
			}

			p.names = append(p.names, name)
			p.sources[name] = source
			// special rules are checked in New, generated ones are escaped
			p.rules[name] = regexp.MustCompile(source)
		}
	}

	return p
}

// Entries returns every (category, name) pair in vocabulary order.
func (p *Patterns) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Names returns the unique canonical names in vocabulary order.
func (p *Patterns) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Rule returns the compiled rule of the name.
func (p *Patterns) Rule(name string) (*regexp.Regexp, bool) {
	re, ok := p.rules[name]
	return re, ok
}

// Source returns the rule source of the name or an empty string.
func (p *Patterns) Source(name string) string {
	return p.sources[name]
}

// Len returns the number of compiled rules.
func (p *Patterns) Len() int {
	return len(p.names)
}

func generateRule(name string) string {
	words := strings.Fields(name)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}

	var b strings.Builder
	b.WriteString("(?i)")
	if isWordByte(name[0]) {
		b.WriteString(wordBoundary)
	} else {
		b.WriteString(leftGuard)
	}
	b.WriteString(strings.Join(quoted, `\s+`))
	if isWordByte(name[len(name)-1]) {
		b.WriteString(wordBoundary)
	} else {
		b.WriteString(rightGuard)
	}
	return b.String()
}

func caseInsensitive(rule string) string {
	if strings.HasPrefix(rule, "(?i)") {
		return rule
	}
	return "(?i)" + rule
}

// isWordByte mirrors the ASCII class used by \w and \b.
func isWordByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
