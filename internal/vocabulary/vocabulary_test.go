package vocabulary

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spigell/jobmate/internal/skills"
)

func TestNewNormalizesAndKeepsOrder(t *testing.T) {
	t.Parallel()

	v, err := New(map[skills.Category][]string{
		skills.CategoryTechnologies: {"Rust", " go ", "rust", ""},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := v.Names(skills.CategoryTechnologies)
	if !reflect.DeepEqual(got, []string{"rust", "go"}) {
		t.Fatalf("unexpected names: %v", got)
	}

	got[0] = "mutated"
	if v.Names(skills.CategoryTechnologies)[0] != "rust" {
		t.Fatalf("names must be returned as a copy")
	}

	if cats := v.Categories(); !reflect.DeepEqual(cats, []skills.Category{skills.CategoryTechnologies}) {
		t.Fatalf("unexpected categories: %v", cats)
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := New(map[skills.Category][]string{"languages": {"english"}}, nil)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}

	_, err = New(nil, map[string]string{"broken": `(`})
	if err == nil {
		t.Fatalf("expected error for invalid special rule")
	}
}

func TestDefaultVocabulary(t *testing.T) {
	t.Parallel()

	v := Default()
	if v.Len() == 0 {
		t.Fatalf("expected built-in names")
	}
	if len(v.Categories()) != len(skills.Categories) {
		t.Fatalf("expected every category to be populated, got %v", v.Categories())
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	t.Parallel()

	first := Compile(Default())
	second := Compile(Default())

	if !reflect.DeepEqual(first.Names(), second.Names()) {
		t.Fatalf("names differ between compilations")
	}
	for _, name := range first.Names() {
		if first.Source(name) != second.Source(name) {
			t.Fatalf("rule for %q differs: %q vs %q", name, first.Source(name), second.Source(name))
		}
	}
}

func TestGeneratedRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expect string
	}{
		{name: "python", expect: `(?i)\bpython\b`},
		{name: "time management", expect: `(?i)\btime\s+management\b`},
		{name: "ci/cd", expect: `(?i)\bci/cd\b`},
		{name: "c++", expect: `(?i)\bc\+\+(?:[^\w]|$)`},
		{name: ".net", expect: `(?i)(?:^|[^\w])\.net\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := generateRule(tt.name); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestSpecialRuleOverridesGenerated(t *testing.T) {
	t.Parallel()

	v, err := New(
		map[skills.Category][]string{skills.CategoryTechnologies: {"golang", "kubernetes"}},
		map[string]string{"kubernetes": `\b(?:kubernetes|k8s)\b`},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := Compile(v)
	if got := p.Source("kubernetes"); got != `(?i)\b(?:kubernetes|k8s)\b` {
		t.Fatalf("unexpected special source: %q", got)
	}
	if got := p.Source("golang"); got != `(?i)\bgolang\b` {
		t.Fatalf("unexpected generated source: %q", got)
	}

	re, ok := p.Rule("kubernetes")
	if !ok || !re.MatchString("Deployed services to K8S clusters") {
		t.Fatalf("expected alias to match")
	}
}

// writtenAs holds names whose rule only accepts a specific spelling.
var writtenAs = map[string]string{"go": "Go"}

func TestEveryDefaultNameMatchesItself(t *testing.T) {
	t.Parallel()

	p := Compile(Default())
	for _, name := range p.Names() {
		re, ok := p.Rule(name)
		if !ok {
			t.Fatalf("missing rule for %q", name)
		}
		written := name
		if w, ok := writtenAs[name]; ok {
			written = w
		}
		for _, text := range []string{written, "I know " + written + " well.", "(" + written + ")"} {
			if !re.MatchString(text) {
				t.Fatalf("rule %q for %q does not match %q", p.Source(name), name, text)
			}
		}
	}
}

func TestSpecialRulesRejectLookalikes(t *testing.T) {
	t.Parallel()

	p := Compile(Default())
	tests := []struct {
		name string
		text string
	}{
		{name: "c++", text: "abc++ def"},
		{name: "c#", text: "music#tag"},
		{name: "javascript", text: "Built with Node.js"},
		{name: "java", text: "We use JavaScript"},
		{name: "typescript", text: "results, stats"},
		{name: "go", text: "Let's go to the office."},
		{name: "go", text: "good to go"},
	}

	for _, tt := range tests {
		re, _ := p.Rule(tt.name)
		if re.MatchString(tt.text) {
			t.Fatalf("rule %q for %q unexpectedly matched %q", p.Source(tt.name), tt.name, tt.text)
		}
	}
}

func TestGoRuleAcceptsLanguageSpellings(t *testing.T) {
	t.Parallel()

	re, _ := Compile(Default()).Rule("go")
	for _, text := range []string{"Backend in Go and Rust", "GO, SQL", "golang", "Golang developer", "go lang"} {
		if !re.MatchString(text) {
			t.Fatalf("rule %q does not match %q", re.String(), text)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "vocabulary.yaml")
	content := `categories:
  technologies:
    - Go
    - Node.js
    - Elixir
  soft_skills:
    - Communication
special:
  elixir: '\belixir(?:-lang)?\b'
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write vocabulary: %v", err)
	}

	v, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := v.Names(skills.CategoryTechnologies); !reflect.DeepEqual(got, []string{"go", "node.js", "elixir"}) {
		t.Fatalf("unexpected technologies: %v", got)
	}
	if got := v.Names(skills.CategorySkills); len(got) != 0 {
		t.Fatalf("file categories must replace the built-in ones, got %v", got)
	}

	p := Compile(v)
	if got := p.Source("elixir"); got != `(?i)\belixir(?:-lang)?\b` {
		t.Fatalf("unexpected elixir rule: %q", got)
	}
	if got := p.Source("node.js"); got != defaultSpecial["node.js"] {
		t.Fatalf("expected built-in special rule to survive, got %q", got)
	}
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	if err := os.WriteFile(path, []byte("categories:\n  languages: [english]\n"), 0o600); err != nil {
		t.Fatalf("write vocabulary: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
