package classifier

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-assist/backend/internal/knowledge"
	"github.com/aurora-assist/backend/internal/llm"
)

func newDeterministic(t *testing.T) *Deterministic {
	t.Helper()
	return NewDeterministic(knowledge.NewBase(), 0.3, 1.0)
}

func TestDeterministicKeywordMatch(t *testing.T) {
	d := newDeterministic(t)

	result := d.Classify(context.Background(), "what are some sensory strategies for autism?")
	assert.True(t, result.InDomain)
	assert.InDelta(t, 0.6, result.Confidence, 1e-9)
	assert.Contains(t, result.Reasoning, "autism")
	assert.Contains(t, result.Reasoning, "sensory")
	assert.Contains(t, result.DetectedTopics, "sensory_processing")
}

func TestDeterministicOffTopic(t *testing.T) {
	d := newDeterministic(t)

	result := d.Classify(context.Background(), "what's the best pizza topping?")
	assert.False(t, result.InDomain)
	assert.Zero(t, result.Confidence)
	assert.Empty(t, result.DetectedTopics)
}

func TestDeterministicEmptyQuestion(t *testing.T) {
	d := newDeterministic(t)

	result := d.Classify(context.Background(), "")
	assert.False(t, result.InDomain)
	assert.Zero(t, result.Confidence)
}

func TestDeterministicConfidenceCap(t *testing.T) {
	d := newDeterministic(t)

	// Four distinct terms would score 1.2 uncapped.
	result := d.Classify(context.Background(), "autistic child with sensory meltdown needs an iep")
	assert.True(t, result.InDomain)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestDeterministicConfidenceMonotonic(t *testing.T) {
	d := newDeterministic(t)

	one := d.Classify(context.Background(), "tell me about autism")
	two := d.Classify(context.Background(), "tell me about autism and stimming")
	three := d.Classify(context.Background(), "tell me about autism, stimming and echolalia")

	assert.Less(t, one.Confidence, two.Confidence)
	assert.Less(t, two.Confidence, three.Confidence)
	assert.LessOrEqual(t, three.Confidence, 1.0)
}

func TestDeterministicFuzzyMisspellings(t *testing.T) {
	d := newDeterministic(t)

	tests := []struct {
		question string
		keyword  string
	}{
		{"he identifies as an autist, what should i know?", "autism"},
		{"is aspergers part of the spectrum?", "asperger"},
		{"how to handle a melt down in public", "meltdown"},
		{"sansory overload at the supermarket", "sensory"},
		{"is stiming normal?", "stimming"},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			result := d.Classify(context.Background(), tt.question)
			assert.True(t, result.InDomain)
			assert.Contains(t, result.Reasoning, tt.keyword)
		})
	}
}

func TestDeterministicDistinctMatchesCountedOnce(t *testing.T) {
	d := newDeterministic(t)

	// "autism" appears as an exact keyword and also satisfies the fuzzy
	// pattern; it must count as a single match.
	result := d.Classify(context.Background(), "autism autism autism")
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
}

type stubIntentService struct {
	judgment *llm.IntentJudgment
	err      error
}

func (s *stubIntentService) ClassifyQuestion(_ context.Context, _ string) (*llm.IntentJudgment, error) {
	return s.judgment, s.err
}

func TestDelegatedVerdict(t *testing.T) {
	d := NewDelegated(&stubIntentService{judgment: &llm.IntentJudgment{
		IsAutismRelated: true,
		Confidence:      0.95,
		Reasoning:       "question asks about sensory regulation",
		DetectedTopics:  []string{"sensory_processing"},
	}})

	result := d.Classify(context.Background(), "sensory question")
	assert.True(t, result.InDomain)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, []string{"sensory_processing"}, result.DetectedTopics)
}

func TestDelegatedFailsOpen(t *testing.T) {
	d := NewDelegated(&stubIntentService{err: errors.New("upstream timeout")})

	result := d.Classify(context.Background(), "anything at all")
	assert.True(t, result.InDomain)
	assert.Equal(t, 0.3, result.Confidence)
	assert.Equal(t, "Classification service unavailable, proceeding with caution", result.Reasoning)
}

func TestDelegatedClampsConfidence(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"above one", 1.7, 1.0},
		{"below zero", -0.2, 0.0},
		{"nan-free passthrough", 0.42, 0.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDelegated(&stubIntentService{judgment: &llm.IntentJudgment{
				IsAutismRelated: true,
				Confidence:      tt.in,
			}})
			result := d.Classify(context.Background(), "q")
			require.False(t, math.IsNaN(result.Confidence))
			assert.Equal(t, tt.want, result.Confidence)
		})
	}
}
