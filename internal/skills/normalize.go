package skills

import (
	"strings"
)

// Normalize lowercases, trims and collapses whitespace in every entry, drops
// empty ones and returns the unique results in sorted order.
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if n := NormalizeName(v); n != "" {
			seen[n] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// NormalizeAny is Normalize for loosely typed input. Entries that are not
// strings are dropped.
func NormalizeAny(values []any) []string {
	strs := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			strs = append(strs, s)
		}
	}
	return Normalize(strs)
}

// NormalizeName normalizes a single skill name.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
