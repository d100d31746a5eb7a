package knowledge

import (
	"strings"
)

// Topic is a curated knowledge-base entry. Entries are loaded once at process
// start and never mutated, so concurrent reads need no synchronization.
type Topic struct {
	Key        string
	Summary    string
	Strategies []string
	Keywords   []string
	References []string
}

// Base holds the curated topics in a fixed order so composed answers are
// deterministic.
type Base struct {
	topics []Topic
	byKey  map[string]int
}

func NewBase() *Base {
	topics := builtinTopics()
	byKey := make(map[string]int, len(topics))
	for i, t := range topics {
		byKey[t.Key] = i
	}
	return &Base{topics: topics, byKey: byKey}
}

func (b *Base) Topics() []Topic {
	return b.topics
}

func (b *Base) Lookup(key string) (Topic, bool) {
	i, ok := b.byKey[key]
	if !ok {
		return Topic{}, false
	}
	return b.topics[i], true
}

// FindRelevant returns topics matching the detected topic keys, falling back
// to a keyword search over the whole base when nothing was detected.
func (b *Base) FindRelevant(question string, detectedTopics []string) []Topic {
	var relevant []Topic
	seen := make(map[string]bool)

	for _, key := range detectedTopics {
		if t, ok := b.Lookup(key); ok && !seen[t.Key] {
			relevant = append(relevant, t)
			seen[t.Key] = true
		}
	}

	if len(relevant) > 0 {
		return relevant
	}

	terms := ExtractSearchTerms(question)
	for _, t := range b.topics {
		if topicMatchesTerms(t, terms) {
			relevant = append(relevant, t)
		}
	}

	return relevant
}

// ExtractSearchTerms scans the question for a fixed vocabulary of common
// terms, tolerating small typos via FuzzyMatch.
func ExtractSearchTerms(question string) []string {
	lower := strings.ToLower(question)

	var found []string
	for _, term := range commonTerms {
		if strings.Contains(lower, term) || FuzzyMatch(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

// FuzzyMatch reports whether any word of text is within a small positional
// distance of term: characters are compared index by index, so substitutions
// and transpositions like "sensroy" match while insertions and deletions
// shift every later position and usually do not.
func FuzzyMatch(text, term string) bool {
	const threshold = 2

	for _, word := range strings.Fields(text) {
		diff := len(word) - len(term)
		if diff < 0 {
			diff = -diff
		}
		if diff > threshold {
			continue
		}

		distance := 0
		longest := len(word)
		if len(term) > longest {
			longest = len(term)
		}
		for i := 0; i < longest; i++ {
			var a, b byte
			if i < len(word) {
				a = word[i]
			}
			if i < len(term) {
				b = term[i]
			}
			if a != b {
				distance++
			}
			if distance > threshold {
				break
			}
		}
		if distance <= threshold {
			return true
		}
	}
	return false
}

func topicMatchesTerms(t Topic, terms []string) bool {
	parts := []string{t.Summary}
	parts = append(parts, t.Strategies...)
	parts = append(parts, t.Keywords...)
	allText := strings.ToLower(strings.Join(parts, " "))

	for _, term := range terms {
		if strings.Contains(allText, term) {
			return true
		}
	}
	return false
}

var commonTerms = []string{
	"school", "education", "iep", "504", "teacher", "classroom",
	"sensory", "sound", "noise", "touch", "texture", "light",
	"communication", "speech", "language", "nonverbal", "talking",
	"behavior", "meltdown", "tantrum", "stimming", "routine",
	"social", "friends", "interaction", "play", "conversation",
	"therapy", "treatment", "intervention", "aba", "occupational",
	"diagnosis", "assessment", "evaluation", "early", "signs",
	"family", "parent", "sibling", "support", "help",
	"adult", "employment", "job", "work", "independence",
	"insurance", "funding", "medicaid", "government", "financial",
}
