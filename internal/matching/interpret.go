package matching

import "github.com/spigell/jobmate/internal/i18n"

// Tier is the qualitative reading of a score.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

const (
	lowUpperBound    = 50
	mediumUpperBound = 80
)

var defaultMessages = map[Tier]string{
	TierLow:    "Your profile needs significant improvements to match this job.",
	TierMedium: "Your profile partially matches this job. Focus on the missing skills.",
	TierHigh:   "Your profile is a strong match for this job.",
}

// Interpretation is the tier of a score with a user facing message.
type Interpretation struct {
	Tier    Tier   `json:"tier"`
	Message string `json:"message"`
}

// TierFor returns low below 50, medium below 80 and high otherwise.
func TierFor(score float64) Tier {
	switch {
	case score < lowUpperBound:
		return TierLow
	case score < mediumUpperBound:
		return TierMedium
	default:
		return TierHigh
	}
}

// Interpret maps the score to its tier. The message comes from loc when it has
// one and falls back to English otherwise; loc may be nil.
func Interpret(score float64, loc i18n.Localizer) Interpretation {
	tier := TierFor(score)
	return Interpretation{
		Tier:    tier,
		Message: i18n.Text(loc, "match.tier."+string(tier), defaultMessages[tier], nil),
	}
}
