package normalize

import "strings"

// Unescape replaces the literal two-character escape sequences the backend
// leaves in generated strings with their single-character equivalents. Each
// pattern is processed once, left to right, non-overlapping, in a fixed
// order so the backslash-backslash pass cannot re-introduce a sequence
// already consumed by an earlier pass. Idempotent on strings that carry no
// escape sequences.
func Unescape(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	s = strings.ReplaceAll(s, `\t`, "\t")
	return s
}
