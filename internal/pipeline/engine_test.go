package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-assist/backend/internal/classifier"
	"github.com/aurora-assist/backend/internal/feedback"
	"github.com/aurora-assist/backend/internal/generator"
	"github.com/aurora-assist/backend/internal/knowledge"
	"github.com/aurora-assist/backend/internal/references"
)

type stubClassifier struct {
	result classifier.Result
	seen   string
}

func (s *stubClassifier) Classify(_ context.Context, question string) classifier.Result {
	s.seen = question
	return s.result
}

type panickingClassifier struct{}

func (panickingClassifier) Classify(_ context.Context, _ string) classifier.Result {
	panic("classifier exploded")
}

func newTestEngine(cls classifier.Strategy) *Engine {
	kb := knowledge.NewBase()
	return NewEngine(Options{
		Classifier: cls,
		Generator:  generator.New(kb, nil),
		References: references.NewCatalog(),
		Feedback:   feedback.NewAggregator(feedback.Config{}),
	})
}

func deterministicEngine() *Engine {
	kb := knowledge.NewBase()
	return NewEngine(Options{
		Classifier: classifier.NewDeterministic(kb, 0.3, 1.0),
		Generator:  generator.New(kb, nil),
		References: references.NewCatalog(),
		Feedback:   feedback.NewAggregator(feedback.Config{}),
	})
}

func TestProcessQuestionOnTopic(t *testing.T) {
	e := deterministicEngine()

	result := e.ProcessQuestion(context.Background(), Request{
		Question: "What are some sensory strategies for autism?",
	})

	require.NotNil(t, result)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.True(t, result.IsAutismRelated)
	assert.InDelta(t, 0.6, result.Confidence, 1e-9)
	assert.NotEmpty(t, result.Answer)
	assert.Contains(t, result.Answer, "Sensory Processing")
	assert.NotEmpty(t, result.References)
	assert.LessOrEqual(t, len(result.References), 4)
	assert.GreaterOrEqual(t, result.ResponseTimeMS, 0)
}

func TestProcessQuestionOffTopic(t *testing.T) {
	e := deterministicEngine()

	result := e.ProcessQuestion(context.Background(), Request{
		Question: "What's the best pizza topping?",
	})

	require.NotNil(t, result)
	assert.Equal(t, StatusOffTopic, result.Status)
	assert.False(t, result.IsAutismRelated)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, offTopicAnswer, result.Answer)
	assert.NotNil(t, result.References)
	assert.Empty(t, result.References)
}

func TestProcessQuestionFailOpenClassifier(t *testing.T) {
	// A delegated classifier whose backing service is down still yields an
	// answer: fail-open verdict, knowledge-base generation.
	e := newTestEngine(&stubClassifier{result: classifier.Result{
		InDomain:   true,
		Confidence: 0.3,
		Reasoning:  "Classification service unavailable, proceeding with caution",
	}})

	result := e.ProcessQuestion(context.Background(), Request{
		Question: "How can I support my nonverbal daughter?",
	})

	require.NotNil(t, result)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.True(t, result.IsAutismRelated)
	assert.Equal(t, 0.3, result.Confidence)
	assert.NotEmpty(t, result.Answer)
}

func TestProcessQuestionDefaultReferences(t *testing.T) {
	// In-domain question whose text matches no reference keywords falls back
	// to the default high-credibility set.
	e := newTestEngine(&stubClassifier{result: classifier.Result{
		InDomain:   true,
		Confidence: 0.9,
	}})

	result := e.ProcessQuestion(context.Background(), Request{Question: "zzz qqq"})

	require.NotNil(t, result)
	assert.Equal(t, StatusSuccess, result.Status)
	require.Len(t, result.References, 4)
	assert.Equal(t, "Autism Speaks Resource Library", result.References[0].Title)
}

func TestProcessQuestionErrorTerminal(t *testing.T) {
	e := newTestEngine(panickingClassifier{})

	result := e.ProcessQuestion(context.Background(), Request{
		Question: "What helps with meltdowns?",
	})

	require.NotNil(t, result)
	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, errorAnswer, result.Answer)
	assert.True(t, result.IsAutismRelated)
	assert.Zero(t, result.Confidence)
	require.Len(t, result.References, 3)
	assert.Equal(t, "Crisis Text Line", result.References[0].Title)
}

func TestProcessQuestionFoldsFileContent(t *testing.T) {
	stub := &stubClassifier{result: classifier.Result{InDomain: true, Confidence: 0.6}}
	e := NewEngine(Options{
		Classifier:       stub,
		Generator:        generator.New(knowledge.NewBase(), nil),
		References:       references.NewCatalog(),
		Feedback:         feedback.NewAggregator(feedback.Config{}),
		FileContentLimit: 20,
	})

	e.ProcessQuestion(context.Background(), Request{
		Question:    "What does this report say?",
		FileContent: "sensory profile notes" + strings.Repeat("x", 100),
	})

	assert.Contains(t, stub.seen, "sensory profile note")
	assert.NotContains(t, stub.seen, "x")
}

func TestProcessFeedback(t *testing.T) {
	e := deterministicEngine()

	ack, err := e.ProcessFeedback("f1", "positive", "What helps with sensory overload?", "an answer")
	require.NoError(t, err)
	assert.Equal(t, 1, ack.PositiveTotal)
	assert.Zero(t, ack.NegativeTotal)

	ack, err = e.ProcessFeedback("f2", "negative", "What helps with sensory overload?", "an answer")
	require.NoError(t, err)
	assert.Equal(t, 1, ack.PositiveTotal)
	assert.Equal(t, 1, ack.NegativeTotal)
}

func TestProcessFeedbackRejectsInvalidVote(t *testing.T) {
	e := deterministicEngine()

	_, err := e.ProcessFeedback("f1", "shrug", "question", "answer")
	assert.Error(t, err)
}

func TestFeedbackAnalyticsImprovementLoop(t *testing.T) {
	e := deterministicEngine()

	for i, q := range []string{
		"What helps with sensory overload?",
		"What helps with sensory meltdowns?",
		"What helps with sensory issues at school?",
	} {
		_, err := e.ProcessFeedback(string(rune('a'+i)), "negative", q, "an answer")
		require.NoError(t, err)
	}

	analytics := e.FeedbackAnalytics()
	assert.Equal(t, 3, analytics.TotalFeedback)
	assert.Equal(t, 3, analytics.NegativeCount)

	patterns := make([]string, 0, len(analytics.Improvements))
	for _, imp := range analytics.Improvements {
		patterns = append(patterns, imp.Pattern)
	}
	assert.Contains(t, patterns, "sensory_topics")
}
