package textproc

import (
	"regexp"
	"strings"
)

var (
	spaceRun = regexp.MustCompile(`\s+`)
	punctRun = regexp.MustCompile(`([.!?]){2,}`)
)

// Normalize produces the canonical form of user input. The same form is used
// as the key for classification, knowledge lookup, and feedback aggregation,
// so callers must never re-normalize differently.
func Normalize(input string) string {
	s := strings.TrimSpace(input)
	s = spaceRun.ReplaceAllString(s, " ")
	s = punctRun.ReplaceAllString(s, "$1")
	return strings.ToLower(s)
}
