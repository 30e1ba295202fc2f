// Package matching scores a candidate's skills against a job's and interprets the score.
package matching

import (
	"math"

	"github.com/spigell/jobmate/internal/skills"
)

// CategoryMatch is the per-category part of a Result.
type CategoryMatch struct {
	Required      int      `json:"required"`
	Matched       int      `json:"matched"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// Result holds the pooled score and the breakdown of every category the job requires.
type Result struct {
	Score       float64                           `json:"score"`
	PerCategory map[skills.Category]CategoryMatch `json:"per_category"`
}

// Score pools required and matched counts over every category in which the job
// requires something, and returns round(100*matched/required, 2).
//
// This is a micro-average: a category with many required skills weighs more
// than one with few. Categories the job leaves empty do not count at all, and
// a job that requires nothing scores 0.
func Score(job, candidate skills.SkillSet) Result {
	result := Result{PerCategory: make(map[skills.Category]CategoryMatch, len(skills.Categories))}

	var required, matched int
	for _, c := range skills.Categories {
		want := skills.Normalize(job.Get(c))
		if len(want) == 0 {
			continue
		}

		have := skills.Normalize(candidate.Get(c))
		m := compare(want, have)

		result.PerCategory[c] = m
		required += m.Required
		matched += m.Matched
	}

	if required == 0 {
		return result
	}

	result.Score = round2(100 * float64(matched) / float64(required))
	return result
}

// compare splits sorted want into the members present in sorted have and the rest.
func compare(want, have []string) CategoryMatch {
	m := CategoryMatch{
		Required:      len(want),
		MatchedSkills: make([]string, 0, len(want)),
		MissingSkills: make([]string, 0, len(want)),
	}

	i := 0
	for _, w := range want {
		for i < len(have) && have[i] < w {
			i++
		}
		if i < len(have) && have[i] == w {
			m.MatchedSkills = append(m.MatchedSkills, w)
		} else {
			m.MissingSkills = append(m.MissingSkills, w)
		}
	}

	m.Matched = len(m.MatchedSkills)
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
