package vocabulary

import "github.com/spigell/jobmate/internal/skills"

var defaultCategories = map[skills.Category][]string{
	skills.CategorySkills: {
		"agile", "scrum", "kanban", "machine learning", "data science", "data analysis",
		"ai", "devops", "ci/cd", "rest api", "microservices", "unit testing",
		"system design", "project management", "ux design",
	},
	skills.CategoryTechnologies: {
		"python", "javascript", "typescript", "java", "c++", "c#", "php", "ruby", "go",
		"rust", "kotlin", "swift", "sql", "react", "angular", "vue", "node.js", "django",
		"flask", ".net", "spring", "mysql", "postgresql", "mongodb", "redis",
		"elasticsearch", "aws", "azure", "gcp", "docker", "kubernetes", "terraform",
		"jenkins", "git", "linux", "html", "css", "sass", "jquery", "bootstrap",
		"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn", "graphql", "kafka",
		"jira", "confluence", "slack",
	},
	skills.CategorySoftSkills: {
		"communication", "teamwork", "leadership", "problem solving", "critical thinking",
		"time management", "adaptability", "collaboration", "creativity",
		"attention to detail", "mentoring", "presentation",
	},
}

// defaultSpecial covers names with symbols, dots or a common alias.
var defaultSpecial = map[string]string{
	"c++":              `(?i)(?:^|[^\w+])c\+\+(?:[^\w+]|$)`,
	"c#":               `(?i)(?:^|[^\w#])c#(?:[^\w#]|$)`,
	".net":             `(?i)(?:(?:^|[^\w.])\.net|\bdotnet)\b`,
	"node.js":          `(?i)\bnode\.?js\b`,
	"javascript":       `(?i)(?:\bjavascript\b|(?:^|[^\w.])js\b)`,
	"typescript":       `(?i)(?:\btypescript\b|(?:^|[^\w.])ts\b)`,
	"go":               `(?i)\b(?:golang|go\s+lang|(?-i:Go|GO))\b`,
	"react":            `(?i)\breact(?:\.?js)?\b`,
	"vue":              `(?i)\bvue(?:\.?js)?\b`,
	"kubernetes":       `(?i)\b(?:kubernetes|k8s)\b`,
	"postgresql":       `(?i)\bpostgres(?:ql)?\b`,
	"aws":              `(?i)\b(?:aws|amazon\s+web\s+services)\b`,
	"gcp":              `(?i)\b(?:gcp|google\s+cloud(?:\s+platform)?)\b`,
	"html":             `(?i)\bhtml5?\b`,
	"css":              `(?i)\bcss3?\b`,
	"scikit-learn":     `(?i)\b(?:scikit-learn|sklearn)\b`,
	"machine learning": `(?i)\b(?:machine\s+learning|ml)\b`,
	"ci/cd":            `(?i)\bci\s*/\s*cd\b`,
	"rest api":         `(?i)\brest(?:ful)?\s+apis?\b`,
	"problem solving":  `(?i)\bproblem[\s-]+solving\b`,
	"teamwork":         `(?i)\b(?:teamwork|team\s+player)\b`,
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	v, err := New(defaultCategories, defaultSpecial)
	if err != nil {
		// the built-in tables are covered by tests
		panic(err)
	}
	return v
}
