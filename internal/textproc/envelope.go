package textproc

import (
	"encoding/json"
	"regexp"
	"strings"
)

var answerField = regexp.MustCompile(`"answer"\s*:\s*"((?:[^"\\]|\\.)*)"`)

// Canonicalize cleans up text produced by the generation service before it is
// shown to a user: control characters are stripped, escaped newlines, tabs and
// quotes become literal characters, and a double-encoded JSON envelope exposing
// an "answer" field is unwrapped. Idempotent on already-clean text.
func Canonicalize(text string) string {
	s := stripControl(text)
	s = unescape(s)
	if answer, ok := DecodeAnswerEnvelope(s); ok {
		return strings.TrimSpace(answer)
	}
	return strings.TrimSpace(s)
}

// DecodeAnswerEnvelope unwraps a JSON object carrying its answer as a field.
// Strict parsing is attempted first, then best-effort field extraction for
// replies that are almost-but-not-quite valid JSON.
func DecodeAnswerEnvelope(s string) (string, bool) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "{") {
		return "", false
	}

	var env struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(t), &env); err == nil && env.Answer != "" {
		return env.Answer, true
	}

	if m := answerField.FindStringSubmatch(t); m != nil {
		return unescape(m[1]), true
	}

	return "", false
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	r := strings.NewReplacer(
		`\n`, "\n",
		`\t`, "\t",
		`\"`, `"`,
	)
	return r.Replace(s)
}
