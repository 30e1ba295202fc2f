package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/jobmate/internal/matching"
	"github.com/spigell/jobmate/internal/skills"
	"github.com/spigell/jobmate/internal/suggestions"
)

// Report is the result bundle of one analysis.
type Report struct {
	ID              uuid.UUID               `json:"id"`
	CreatedAt       time.Time               `json:"created_at"`
	Language        string                  `json:"language"`
	JobInput        string                  `json:"job_input"`
	CandidateInput  string                  `json:"candidate_input"`
	JobSkills       skills.SkillSet         `json:"job_skills"`
	CandidateSkills skills.SkillSet         `json:"candidate_skills"`
	Match           matching.Result         `json:"match"`
	Interpretation  matching.Interpretation `json:"interpretation"`
	Suggestions     []suggestions.Card      `json:"suggestions"`
}

// CategoryReport lists what matched, what is missing and what the candidate has on top.
type CategoryReport struct {
	Required int      `json:"required"`
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
	Extra    []string `json:"extra"`
}

// ReportByCategory groups the skills of the report by category. Categories that
// neither side has are left out.
func (r *Report) ReportByCategory() map[skills.Category]CategoryReport {
	report := make(map[skills.Category]CategoryReport, len(skills.Categories))
	for _, c := range skills.Categories {
		job := r.JobSkills.Get(c)
		candidate := r.CandidateSkills.Get(c)
		if len(job) == 0 && len(candidate) == 0 {
			continue
		}

		m := r.Match.PerCategory[c]
		entry := CategoryReport{
			Required: len(job),
			Matched:  nonNil(m.MatchedSkills),
			Missing:  nonNil(m.MissingSkills),
			Extra:    make([]string, 0),
		}
		for _, s := range candidate {
			if !r.JobSkills.Contains(c, s) {
				entry.Extra = append(entry.Extra, s)
			}
		}
		report[c] = entry
	}
	return report
}

// DumpToTmpFile writes the report as indented JSON to a new temporary file and returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobmate_report_*.json")
	if err != nil {
		return "", err
	}
	if err := writeReport(file, r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// writeReport encodes the report into file and closes it. A file that could not
// be fully written is removed.
func writeReport(file *os.File, v any) error {
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	err := enc.Encode(v)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(file.Name())
		return fmt.Errorf("write report %s: %w", file.Name(), err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
