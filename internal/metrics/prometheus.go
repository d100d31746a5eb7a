package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QuestionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aurora_question_duration_seconds",
			Help:    "Question processing duration in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"status"},
	)

	QuestionTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aurora_question_total",
			Help: "Total number of questions processed",
		},
		[]string{"status"},
	)

	ClassificationConfidence = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aurora_classification_confidence",
			Help:    "Intent classification confidence scores",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	FeedbackVotes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aurora_feedback_votes_total",
			Help: "Total feedback votes recorded",
		},
		[]string{"vote"},
	)

	LLMTokensUsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aurora_llm_tokens_used",
			Help: "Total LLM tokens used",
		},
		[]string{"type"},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aurora_cache_hits_total",
			Help: "Total answer cache hits",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aurora_cache_misses_total",
			Help: "Total answer cache misses",
		},
	)
)

func Init() {
	prometheus.MustRegister(QuestionDuration)
	prometheus.MustRegister(QuestionTotal)
	prometheus.MustRegister(ClassificationConfidence)
	prometheus.MustRegister(FeedbackVotes)
	prometheus.MustRegister(LLMTokensUsed)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
