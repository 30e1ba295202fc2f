package skills

import "sort"

// Category groups skills for scoring and suggestions.
type Category string

const (
	CategorySkills       Category = "skills"
	CategoryTechnologies Category = "technologies"
	CategorySoftSkills   Category = "soft_skills"
)

// Categories lists every known category in a stable order.
var Categories = []Category{CategorySkills, CategoryTechnologies, CategorySoftSkills}

// ParseCategory returns the category with the given name.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// SkillSet is a categorized collection of normalized skill names.
// Each category is kept sorted and free of duplicates.
type SkillSet struct {
	Skills       []string `json:"skills"`
	Technologies []string `json:"technologies"`
	SoftSkills   []string `json:"soft_skills"`
}

// NewSkillSet builds a SkillSet from raw per-category values, normalizing each one.
func NewSkillSet(values map[Category][]string) SkillSet {
	var set SkillSet
	for _, c := range Categories {
		set.set(c, Normalize(values[c]))
	}
	return set
}

// Get returns the members of the category. Unknown categories are empty.
func (s SkillSet) Get(c Category) []string {
	switch c {
	case CategorySkills:
		return s.Skills
	case CategoryTechnologies:
		return s.Technologies
	case CategorySoftSkills:
		return s.SoftSkills
	default:
		return nil
	}
}

func (s *SkillSet) set(c Category, values []string) {
	switch c {
	case CategorySkills:
		s.Skills = values
	case CategoryTechnologies:
		s.Technologies = values
	case CategorySoftSkills:
		s.SoftSkills = values
	}
}

// Normalized returns a copy of the set with every category re-normalized.
func (s SkillSet) Normalized() SkillSet {
	var out SkillSet
	for _, c := range Categories {
		out.set(c, Normalize(s.Get(c)))
	}
	return out
}

// Len returns the number of members across all categories, counting overlaps once per category.
func (s SkillSet) Len() int {
	return len(s.Skills) + len(s.Technologies) + len(s.SoftSkills)
}

// IsEmpty reports whether every category is empty.
func (s SkillSet) IsEmpty() bool {
	return s.Len() == 0
}

// Union returns the sorted members of all categories combined.
func (s SkillSet) Union(categories ...Category) []string {
	if len(categories) == 0 {
		categories = Categories
	}

	seen := make(map[string]struct{})
	for _, c := range categories {
		for _, skill := range s.Get(c) {
			seen[skill] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Contains reports whether the category holds the (already normalized) skill.
func (s SkillSet) Contains(c Category, skill string) bool {
	members := s.Get(c)
	idx := sort.SearchStrings(members, skill)
	return idx < len(members) && members[idx] == skill
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
