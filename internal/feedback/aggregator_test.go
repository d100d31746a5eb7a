package feedback

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregator() *Aggregator {
	return NewAggregator(Config{MinPatternTotal: 3, LowPositiveRate: 0.5, TopPatternsLimit: 5})
}

func TestParseVote(t *testing.T) {
	v, err := ParseVote("positive")
	require.NoError(t, err)
	assert.Equal(t, VotePositive, v)

	v, err = ParseVote("negative")
	require.NoError(t, err)
	assert.Equal(t, VoteNegative, v)

	_, err = ParseVote("meh")
	assert.Error(t, err)
	_, err = ParseVote("")
	assert.Error(t, err)
}

func TestRecordRunningTotals(t *testing.T) {
	a := newAggregator()

	ack := a.Record("f1", VotePositive, "What helps with sensory overload?", "answer")
	assert.Equal(t, Ack{PositiveTotal: 1, NegativeTotal: 0}, ack)

	ack = a.Record("f2", VoteNegative, "What helps with sensory overload?", "answer")
	assert.Equal(t, Ack{PositiveTotal: 1, NegativeTotal: 1}, ack)

	ack = a.Record("f3", VotePositive, "How do I request an IEP?", "answer")
	assert.Equal(t, Ack{PositiveTotal: 2, NegativeTotal: 1}, ack)
}

func TestRecordNormalizesQuestionKey(t *testing.T) {
	a := newAggregator()

	a.Record("f1", VotePositive, "  What helps with   sensory overload??  ", "answer")
	a.Record("f2", VotePositive, "what helps with sensory overload?", "answer")

	a.mu.Lock()
	defer a.mu.Unlock()
	require.Len(t, a.positive, 1)
	assert.Equal(t, 2, a.positive["what helps with sensory overload?"].Count)
}

func TestDerivePatternTags(t *testing.T) {
	tests := []struct {
		name       string
		normalized string
		want       []string
	}{
		{
			"question word plus topic plus short",
			"what about sensory issues?",
			[]string{"what_questions", "sensory_topics", "simple_questions"},
		},
		{
			"first question word wins",
			"how and why does stimming happen here today friend",
			[]string{"how_questions"},
		},
		{
			"multiple topics",
			"sensory and communication strategies for school mornings",
			[]string{"sensory_topics", "communication_topics"},
		},
		{
			"complex question",
			"when my daughter comes home from school she is overwhelmed and cries for hours",
			[]string{"when_questions", "complex_questions"},
		},
		{
			"mid-length no buckets",
			"tips for calmer bedtime routines please", // 6 words
			nil,
		},
		{
			"question word must be a prefix",
			"tell me what to do", // 5 words
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePatternTags(tt.normalized))
		})
	}
}

func TestAnalyticsEmpty(t *testing.T) {
	a := newAggregator()

	analytics := a.Analytics()
	assert.Zero(t, analytics.TotalFeedback)
	assert.Zero(t, analytics.PositiveRate)
	assert.Empty(t, analytics.TopPatterns)
	assert.Empty(t, analytics.Improvements)
}

func TestAnalyticsTotalsAndRate(t *testing.T) {
	a := newAggregator()

	a.Record("f1", VotePositive, "question one", "a")
	a.Record("f2", VotePositive, "question two", "a")
	a.Record("f3", VoteNegative, "question three", "a")

	analytics := a.Analytics()
	assert.Equal(t, 3, analytics.TotalFeedback)
	assert.Equal(t, 2, analytics.PositiveCount)
	assert.Equal(t, 1, analytics.NegativeCount)
	assert.InDelta(t, 2.0/3.0, analytics.PositiveRate, 1e-9)
}

func TestImprovementsThreshold(t *testing.T) {
	a := newAggregator()

	// Two negatives on a sensory question: below the minimum total, no
	// improvement yet.
	a.Record("f1", VoteNegative, "what helps with sensory overload?", "a")
	a.Record("f2", VoteNegative, "what helps with sensory meltdowns?", "a")

	analytics := a.Analytics()
	for _, imp := range analytics.Improvements {
		assert.NotEqual(t, "sensory_topics", imp.Pattern)
	}

	// Third negative crosses the threshold.
	a.Record("f3", VoteNegative, "what helps with sensory overload at school?", "a")

	analytics = a.Analytics()
	var found *Improvement
	for i := range analytics.Improvements {
		if analytics.Improvements[i].Pattern == "sensory_topics" {
			found = &analytics.Improvements[i]
		}
	}
	require.NotNil(t, found, "sensory_topics should be flagged for improvement")
	assert.Equal(t, 3, found.TotalCount)
	assert.Zero(t, found.PositiveRate)
	assert.Equal(t, suggestions["sensory_topics"], found.Suggestion)
}

func TestImprovementsRequireLowRate(t *testing.T) {
	a := newAggregator()

	// Half positive exactly: rate 0.5 is not below the threshold.
	a.Record("f1", VotePositive, "sensory question one two three four five six", "a")
	a.Record("f2", VotePositive, "sensory question one two three four five six", "a")
	a.Record("f3", VoteNegative, "sensory question one two three four five six", "a")
	a.Record("f4", VoteNegative, "sensory question one two three four five six", "a")

	analytics := a.Analytics()
	for _, imp := range analytics.Improvements {
		assert.NotEqual(t, "sensory_topics", imp.Pattern)
	}
}

func TestTopPatternsOrderingAndLimit(t *testing.T) {
	a := NewAggregator(Config{MinPatternTotal: 3, LowPositiveRate: 0.5, TopPatternsLimit: 2})

	a.Record("f1", VoteNegative, "what about sensory issues?", "a")
	a.Record("f2", VotePositive, "what about sensory rooms?", "a")
	a.Record("f3", VotePositive, "what next?", "a")

	analytics := a.Analytics()
	require.Len(t, analytics.TopPatterns, 2)

	// what_questions and simple_questions both total 3; alphabetical tie-break
	// puts simple first, and sensory_topics (total 2) is cut by the limit.
	assert.Equal(t, "simple_questions", analytics.TopPatterns[0].Pattern)
	assert.Equal(t, "what_questions", analytics.TopPatterns[1].Pattern)
}

func TestRecordArrivalOrderIndependent(t *testing.T) {
	votes := []Vote{VotePositive, VoteNegative, VoteNegative, VotePositive}

	forward := newAggregator()
	for i, v := range votes {
		forward.Record(fmt.Sprintf("f%d", i), v, "how do i handle sensory meltdowns?", "a")
	}

	reversed := newAggregator()
	for i := len(votes) - 1; i >= 0; i-- {
		reversed.Record(fmt.Sprintf("r%d", i), votes[i], "how do i handle sensory meltdowns?", "a")
	}

	fa := forward.Analytics()
	ra := reversed.Analytics()
	assert.Equal(t, fa.TotalFeedback, ra.TotalFeedback)
	assert.Equal(t, fa.PositiveCount, ra.PositiveCount)
	assert.Equal(t, fa.NegativeCount, ra.NegativeCount)
	assert.Equal(t, fa.TopPatterns, ra.TopPatterns)
	assert.Equal(t, fa.Improvements, ra.Improvements)
}
