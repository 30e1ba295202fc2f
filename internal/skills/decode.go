package skills

import (
	"github.com/mitchellh/mapstructure"
)

// FromMap builds a SkillSet from loosely typed data such as a decoded JSON
// object. A category whose value is missing or is not a list is treated as
// empty, and non-string members are dropped.
func FromMap(data map[string]any) SkillSet {
	values := make(map[Category][]string, len(Categories))
	for _, c := range Categories {
		values[c] = DecodeCategory(data[string(c)])
	}
	return NewSkillSet(values)
}

// DecodeCategory converts a loosely typed category value to normalized names.
func DecodeCategory(v any) []string {
	if v == nil {
		return []string{}
	}

	var items []any
	if err := mapstructure.Decode(v, &items); err != nil {
		return []string{}
	}
	return NormalizeAny(items)
}
