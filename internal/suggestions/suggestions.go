// Package suggestions builds the improvement cards shown next to a match score.
package suggestions

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spigell/jobmate/internal/i18n"
	"github.com/spigell/jobmate/internal/skills"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities: high=1, medium=2, low=3.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

type Action string

const (
	ActionAdd       Action = "add"
	ActionHighlight Action = "highlight"
	ActionSuggest   Action = "suggest"
)

const (
	IDMissingSkills      = "missing_skills"
	IDSkillsToHighlight  = "skills_to_highlight"
	IDMatchingSkills     = "matching_skills"
	IDSkillsToLearn      = "skills_to_learn"
	IDProfileEnhancement = "profile_enhancement"
)

const (
	MaxCards = 5

	maxMissing   = 10
	maxHighlight = 5
	maxMatching  = 5
	maxLearn     = 2
)

type Item struct {
	Text   string `json:"text"`
	Action Action `json:"action"`
}

type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
	Items       []Item   `json:"items"`
}

var defaultTexts = map[string]string{
	"suggestions.missing_skills.title":               "Missing Skills",
	"suggestions.missing_skills.description":         "The job asks for these skills. Add the ones you have to your profile.",
	"suggestions.skills_to_highlight.title":          "Skills to Highlight",
	"suggestions.skills_to_highlight.description":    "You have these skills beyond the requirements. Make them visible as extra value.",
	"suggestions.matching_skills.title":              "Matching Skills",
	"suggestions.matching_skills.description":        "These skills match the job. Put them near the top of your profile.",
	"suggestions.skills_to_learn.title":              "Skills to Learn",
	"suggestions.skills_to_learn.description":        "Start with these to close the biggest gaps.",
	"suggestions.skills_to_learn.item":               "Learn {skill}",
	"suggestions.profile_enhancement.title":          "Profile Enhancement",
	"suggestions.profile_enhancement.description":    "General improvements that make any profile stronger.",
	"suggestions.profile_enhancement.items.quantify": "Quantify your achievements with numbers and results",
	"suggestions.profile_enhancement.items.keywords": "Use keywords from the job description",
	"suggestions.profile_enhancement.items.summary":  "Write a short summary tailored to the role",
}

var profileItemKeys = []string{"quantify", "keywords", "summary"}

// Generate returns at most MaxCards cards ordered by priority, keeping the
// build order among equal priorities. The profile enhancement card is always present.
// loc may be nil, in which case English texts are used.
func Generate(job, candidate skills.SkillSet, loc i18n.Localizer) []Card {
	g := generator{
		loc:   loc,
		title: cases.Title(language.English),
	}

	job, candidate = job.Normalized(), candidate.Normalized()
	jobAll := job.Union()
	candidateAll := candidate.Union()

	missing := difference(jobAll, candidateAll)
	extra := difference(candidate.Union(skills.CategorySkills, skills.CategoryTechnologies), jobAll)
	matching := intersection(jobAll, candidateAll)

	cards := make([]Card, 0, MaxCards)

	if len(missing) > 0 {
		cards = append(cards, g.card(IDMissingSkills, PriorityHigh, "skills", g.items(missing, maxMissing, ActionAdd)))
	}
	if len(extra) > 0 {
		cards = append(cards, g.card(IDSkillsToHighlight, PriorityHigh, "skills", g.items(extra, maxHighlight, ActionHighlight)))
	}
	if len(matching) > 0 {
		cards = append(cards, g.card(IDMatchingSkills, PriorityMedium, "skills", g.items(matching, maxMatching, ActionHighlight)))
	}
	if len(missing) > 0 {
		cards = append(cards, g.card(IDSkillsToLearn, PriorityMedium, "learning", g.learnItems(missing)))
	}
	cards = append(cards, g.card(IDProfileEnhancement, PriorityLow, "profile", g.profileItems()))

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Priority.Rank() < cards[j].Priority.Rank()
	})

	if len(cards) > MaxCards {
		cards = cards[:MaxCards]
	}
	return cards
}

// generator carries per call state; a cases.Caser must not be shared between goroutines.
type generator struct {
	loc   i18n.Localizer
	title cases.Caser
}

func (g generator) text(key string, params map[string]string) string {
	return i18n.Text(g.loc, key, defaultTexts[key], params)
}

func (g generator) card(id string, priority Priority, category string, items []Item) Card {
	return Card{
		ID:          id,
		Title:       g.text("suggestions."+id+".title", nil),
		Description: g.text("suggestions."+id+".description", nil),
		Priority:    priority,
		Category:    category,
		Items:       items,
	}
}

func (g generator) items(names []string, limit int, action Action) []Item {
	if len(names) > limit {
		names = names[:limit]
	}
	out := make([]Item, 0, len(names))
	for _, n := range names {
		out = append(out, Item{Text: g.title.String(n), Action: action})
	}
	return out
}

func (g generator) learnItems(missing []string) []Item {
	if len(missing) > maxLearn {
		missing = missing[:maxLearn]
	}
	out := make([]Item, 0, len(missing))
	for _, n := range missing {
		out = append(out, Item{
			Text:   g.text("suggestions.skills_to_learn.item", map[string]string{"skill": g.title.String(n)}),
			Action: ActionSuggest,
		})
	}
	return out
}

func (g generator) profileItems() []Item {
	out := make([]Item, 0, len(profileItemKeys))
	for _, key := range profileItemKeys {
		out = append(out, Item{
			Text:   g.text("suggestions.profile_enhancement.items."+key, nil),
			Action: ActionSuggest,
		})
	}
	return out
}

// difference returns the members of sorted a missing from sorted b, in order.
func difference(a, b []string) []string {
	out := make([]string, 0, len(a))
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j >= len(b) || b[j] != v {
			out = append(out, v)
		}
	}
	return out
}

func intersection(a, b []string) []string {
	out := make([]string, 0)
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j < len(b) && b[j] == v {
			out = append(out, v)
		}
	}
	return out
}
