package skills

import "errors"

// ErrMissingInput is returned when a caller supplies neither text nor a skill set.
var ErrMissingInput = errors.New("input is required")

type inputKind int

const (
	inputNone inputKind = iota
	inputRawText
	inputStructured
)

// Input is either raw text that still needs extraction or an already extracted SkillSet.
// The zero value is an absent input.
type Input struct {
	kind inputKind
	text string
	set  SkillSet
}

// RawText wraps free text such as a job posting or a CV body.
func RawText(text string) Input {
	return Input{kind: inputRawText, text: text}
}

// Structured wraps a pre-extracted skill set, bypassing extraction.
func Structured(set SkillSet) Input {
	return Input{kind: inputStructured, set: set}
}

// Text returns the raw text and true when the input is RawText.
func (in Input) Text() (string, bool) {
	return in.text, in.kind == inputRawText
}

// SkillSet returns the skill set and true when the input is Structured.
func (in Input) SkillSet() (SkillSet, bool) {
	return in.set, in.kind == inputStructured
}

// IsZero reports whether the input carries nothing.
func (in Input) IsZero() bool {
	return in.kind == inputNone
}

// Kind names the input variant for logging.
func (in Input) Kind() string {
	switch in.kind {
	case inputRawText:
		return "raw_text"
	case inputStructured:
		return "structured"
	default:
		return "none"
	}
}
