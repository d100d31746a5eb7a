package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"collapses spaces", "what   is    autism", "what is autism"},
		{"dedupes punctuation", "really??!!", "really?!"},
		{"lowercases", "What Is AUTISM?", "what is autism?"},
		{"trims", "  hello  ", "hello"},
		{"mixed", "  How   do I   help???  ", "how do i help?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"What are some sensory strategies for autism?",
		"  multiple   spaces!!!  ",
		"",
		"already normalized text",
	}

	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", s)
	}
}
