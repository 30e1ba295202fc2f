package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/jobmate/internal/extraction"
	"github.com/spigell/jobmate/internal/i18n"
	"github.com/spigell/jobmate/internal/matching"
	"github.com/spigell/jobmate/internal/skills"
	"github.com/spigell/jobmate/internal/suggestions"
	"github.com/spigell/jobmate/internal/vocabulary"
)

func newAnalyzer(t *testing.T, loc i18n.Localizer, log *zap.Logger) *Analyzer {
	t.Helper()
	a := New(extraction.NewDeterministic(vocabulary.Compile(vocabulary.Default())), loc, log)
	a.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return a
}

func TestAnalyzeStructuredInputs(t *testing.T) {
	t.Parallel()

	job := skills.Structured(skills.NewSkillSet(map[skills.Category][]string{
		skills.CategoryTechnologies: {"python", "react"},
		skills.CategorySoftSkills:   {"communication"},
	}))
	candidate := skills.Structured(skills.NewSkillSet(map[skills.Category][]string{
		skills.CategoryTechnologies: {"python", "docker"},
	}))

	core, observed := observer.New(zapcore.InfoLevel)
	report, err := newAnalyzer(t, nil, zap.New(core)).Analyze(context.Background(), job, candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Match.Score != 33.33 {
		t.Fatalf("expected 33.33, got %v", report.Match.Score)
	}
	if report.Interpretation.Tier != matching.TierLow {
		t.Fatalf("unexpected tier: %s", report.Interpretation.Tier)
	}
	if report.ID == uuid.Nil {
		t.Fatalf("expected report id")
	}
	if !report.CreatedAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp: %v", report.CreatedAt)
	}
	if report.Language != i18n.DefaultLanguage || report.JobInput != "structured" {
		t.Fatalf("unexpected metadata: %s %s", report.Language, report.JobInput)
	}
	if len(report.Suggestions) == 0 || report.Suggestions[0].ID != suggestions.IDMissingSkills {
		t.Fatalf("unexpected suggestions: %+v", report.Suggestions)
	}

	if got := len(observed.FilterMessage("analysis finished").All()); got != 1 {
		t.Fatalf("expected one summary log, got %d", got)
	}
}

func TestAnalyzeRawText(t *testing.T) {
	t.Parallel()

	catalog, err := i18n.NewCatalog(nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	job := skills.RawText("We are hiring: Go, Kubernetes and PostgreSQL. Strong communication.")
	candidate := skills.RawText("Five years of Golang and k8s. Good at communication.")

	report, err := newAnalyzer(t, catalog.For("bg"), nil).Analyze(context.Background(), job, candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Match.Score != 75 {
		t.Fatalf("expected 75, got %v (job %+v, candidate %+v)", report.Match.Score, report.JobSkills, report.CandidateSkills)
	}
	if report.Interpretation.Tier != matching.TierMedium {
		t.Fatalf("unexpected tier: %s", report.Interpretation.Tier)
	}
	if report.Language != "bg" {
		t.Fatalf("unexpected language: %s", report.Language)
	}
	if report.Suggestions[0].Title != "Липсващи умения" {
		t.Fatalf("expected localized suggestions, got %q", report.Suggestions[0].Title)
	}
}

func TestAnalyzeMissingInput(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, nil, nil)
	if _, err := a.Analyze(context.Background(), skills.Input{}, skills.RawText("go")); !errors.Is(err, skills.ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if _, err := a.Analyze(context.Background(), skills.RawText("go"), skills.Input{}); !errors.Is(err, skills.ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
}

func TestReportByCategory(t *testing.T) {
	t.Parallel()

	job := skills.Structured(skills.NewSkillSet(map[skills.Category][]string{
		skills.CategoryTechnologies: {"go", "rust"},
	}))
	candidate := skills.Structured(skills.NewSkillSet(map[skills.Category][]string{
		skills.CategoryTechnologies: {"go", "java"},
		skills.CategorySoftSkills:   {"leadership"},
	}))

	report, err := newAnalyzer(t, nil, nil).Analyze(context.Background(), job, candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byCategory := report.ReportByCategory()
	if _, ok := byCategory[skills.CategorySkills]; ok {
		t.Fatalf("empty categories must be left out")
	}

	tech := byCategory[skills.CategoryTechnologies]
	expect := CategoryReport{Required: 2, Matched: []string{"go"}, Missing: []string{"rust"}, Extra: []string{"java"}}
	if !reflect.DeepEqual(tech, expect) {
		t.Fatalf("expected %+v, got %+v", expect, tech)
	}

	soft := byCategory[skills.CategorySoftSkills]
	if soft.Required != 0 || !reflect.DeepEqual(soft.Extra, []string{"leadership"}) || soft.Missing == nil {
		t.Fatalf("unexpected soft skills report: %+v", soft)
	}
}

func TestDumpToTmpFile(t *testing.T) {
	t.Parallel()

	report, err := newAnalyzer(t, nil, nil).Analyze(context.Background(), skills.RawText("Go"), skills.RawText("Rust"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name, err := report.DumpToTmpFile()
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	defer os.Remove(name)

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode dump: %v", err)
	}
	if decoded.ID != report.ID || decoded.Match.Score != report.Match.Score {
		t.Fatalf("dump does not match report: %+v", decoded)
	}
}

func TestWriteReportRemovesPartialFile(t *testing.T) {
	t.Parallel()

	file, err := os.Create(filepath.Join(t.TempDir(), "report.json"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// json cannot encode an infinite score
	if err := writeReport(file, map[string]float64{"score": math.Inf(1)}); err == nil {
		t.Fatal("expected encode error")
	}
	if _, err := os.Stat(file.Name()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected partial file to be removed, stat: %v", err)
	}
}

func TestAnalyzeConcurrently(t *testing.T) {
	t.Parallel()

	catalog, err := i18n.NewCatalog(nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	deterministic := extraction.NewDeterministic(vocabulary.Compile(vocabulary.Default()))
	a := New(extraction.NewGenerative(nil, deterministic, 0, nil), catalog.For("en"), nil)

	pairs := [][2]string{
		{"Go, Kubernetes and PostgreSQL", "Golang and k8s"},
		{"Python, Docker, communication", "Python and leadership"},
		{"C++ and Node.js", "Rust"},
	}

	expect := make([]float64, len(pairs))
	for i, p := range pairs {
		report, err := a.Analyze(context.Background(), skills.RawText(p[0]), skills.RawText(p[1]))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expect[i] = report.Match.Score
	}

	var wg sync.WaitGroup
	for i := 0; i < 24; i++ {
		idx := i % len(pairs)
		wg.Add(1)
		go func() {
			defer wg.Done()

			report, err := a.Analyze(context.Background(), skills.RawText(pairs[idx][0]), skills.RawText(pairs[idx][1]))
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if report.Match.Score != expect[idx] {
				t.Errorf("pair %d: expected %v, got %v", idx, expect[idx], report.Match.Score)
			}
		}()
	}
	wg.Wait()
}
