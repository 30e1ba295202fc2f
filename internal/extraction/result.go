package extraction

import "github.com/spigell/jobmate/internal/skills"

// Reason explains why a preferred strategy did not produce a skill set.
type Reason string

const (
	ReasonUnavailable Reason = "unavailable"
	ReasonCallFailed  Reason = "call_failed"
	ReasonMalformed   Reason = "malformed"
	ReasonTimeout     Reason = "timeout"
	ReasonEmpty       Reason = "empty"
)

// Result is the outcome of a single strategy attempt: either Extracted or Failed.
type Result struct {
	set    skills.SkillSet
	ok     bool
	reason Reason
	err    error
}

func Extracted(set skills.SkillSet) Result {
	return Result{set: set, ok: true}
}

// Failed records the reason and the underlying error, if any. The error is kept for logging only.
func Failed(reason Reason, err error) Result {
	return Result{reason: reason, err: err}
}

// SkillSet returns the extracted set and true for an Extracted result.
func (r Result) SkillSet() (skills.SkillSet, bool) {
	return r.set, r.ok
}

func (r Result) Reason() Reason {
	return r.reason
}

func (r Result) Err() error {
	return r.err
}
