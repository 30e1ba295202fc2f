package documents

import (
	"strings"
	"unicode/utf8"
)

// Structure reports which usual resume sections a text appears to contain.
type Structure struct {
	HasContactInfo    bool     `json:"has_contact_info"`
	HasEducation      bool     `json:"has_education"`
	HasExperience     bool     `json:"has_experience"`
	HasSkills         bool     `json:"has_skills"`
	HasProjects       bool     `json:"has_projects"`
	HasCertifications bool     `json:"has_certifications"`
	MissingSections   []string `json:"missing_sections"`
	WordCount         int      `json:"word_count"`
	CharCount         int      `json:"char_count"`
}

type section struct {
	name       string
	indicators []string
	flag       func(*Structure) *bool
}

var sections = []section{
	{"Contact Information", []string{"email", "phone", "linkedin", "github", "website", "@"}, func(s *Structure) *bool { return &s.HasContactInfo }},
	{"Education", []string{"education", "academic", "degree", "university", "college"}, func(s *Structure) *bool { return &s.HasEducation }},
	{"Work Experience", []string{"experience", "work history", "employment", "career"}, func(s *Structure) *bool { return &s.HasExperience }},
	{"Skills", []string{"skills", "technologies", "programming", "languages"}, func(s *Structure) *bool { return &s.HasSkills }},
	{"Projects", []string{"projects", "portfolio", "achievements"}, func(s *Structure) *bool { return &s.HasProjects }},
	{"Certifications", []string{"certifications", "certificates", "certified", "awards"}, func(s *Structure) *bool { return &s.HasCertifications }},
}

// Analyze looks for section indicators anywhere in the text. It is a keyword
// heuristic, so a word such as "experience" in a sentence counts too.
func Analyze(text string) Structure {
	lower := strings.ToLower(text)
	st := Structure{
		MissingSections: make([]string, 0, len(sections)),
		WordCount:       len(strings.Fields(text)),
		CharCount:       utf8.RuneCountInString(text),
	}

	for _, sec := range sections {
		found := false
		for _, indicator := range sec.indicators {
			if strings.Contains(lower, indicator) {
				found = true
				break
			}
		}

		*sec.flag(&st) = found
		if !found {
			st.MissingSections = append(st.MissingSections, sec.name)
		}
	}

	return st
}
