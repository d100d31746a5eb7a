package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aurora-assist/backend/internal/cache/redis"
	"github.com/aurora-assist/backend/internal/classifier"
	"github.com/aurora-assist/backend/internal/feedback"
	"github.com/aurora-assist/backend/internal/generator"
	"github.com/aurora-assist/backend/internal/metrics"
	"github.com/aurora-assist/backend/internal/references"
	"github.com/aurora-assist/backend/internal/storage/models"
	"github.com/aurora-assist/backend/internal/storage/sqlite"
	"github.com/aurora-assist/backend/internal/textproc"
	"github.com/aurora-assist/backend/pkg/logger"
	"github.com/aurora-assist/backend/pkg/utils"
)

const (
	StatusSuccess  = "success"
	StatusOffTopic = "off_topic"
	StatusError    = "error"

	offTopicAnswer = "I appreciate your question, but this is not my area of expertise. I'm Aurora, and I'm specifically designed to provide information and support related to Autism Spectrum Disorder. For questions outside of autism, I'd recommend consulting with appropriate professionals or specialized resources."

	errorAnswer = "I'm sorry, I'm experiencing some technical difficulties right now. As a Beta assistant, I can sometimes encounter issues. Please try rephrasing your question or try again in a moment. If you need immediate support, please consult with healthcare professionals or autism support organizations."
)

type Request struct {
	Question    string
	FileContent string
}

// Result is the externally visible contract of one processed question.
type Result struct {
	Answer          string               `json:"answer"`
	References      []references.Summary `json:"references"`
	IsAutismRelated bool                 `json:"isAutismRelated"`
	Confidence      float64              `json:"confidence"`
	ResponseTimeMS  int                  `json:"responseTime"`
	Status          string               `json:"status"`
}

// Engine composes the gatekeeper, expert, and scholar layers into a single
// question-processing pipeline, plus the feedback loop. It holds only shared
// read-only catalogs and the injected feedback aggregator, so one instance
// serves all requests.
type Engine struct {
	classifier classifier.Strategy
	generator  *generator.Generator
	refs       *references.Catalog
	feedback   *feedback.Aggregator
	db         *sqlite.Client
	cache      *redis.Client

	maxReferences    int
	fileContentLimit int
}

type Options struct {
	Classifier classifier.Strategy
	Generator  *generator.Generator
	References *references.Catalog
	Feedback   *feedback.Aggregator

	// DB and Cache are optional best-effort collaborators.
	DB    *sqlite.Client
	Cache *redis.Client

	MaxReferences    int
	FileContentLimit int
}

func NewEngine(opts Options) *Engine {
	if opts.MaxReferences <= 0 {
		opts.MaxReferences = 4
	}
	if opts.FileContentLimit <= 0 {
		opts.FileContentLimit = 2000
	}
	return &Engine{
		classifier:       opts.Classifier,
		generator:        opts.Generator,
		refs:             opts.References,
		feedback:         opts.Feedback,
		db:               opts.DB,
		cache:            opts.Cache,
		maxReferences:    opts.MaxReferences,
		fileContentLimit: opts.FileContentLimit,
	}
}

// ProcessQuestion runs the full pipeline. It never returns an error: every
// internal failure resolves to a well-formed result, with the error terminal
// attaching the crisis reference set.
func (e *Engine) ProcessQuestion(ctx context.Context, req Request) (result *Result) {
	start := time.Now()
	questionID := uuid.New().String()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Pipeline failure recovered",
				zap.String("question_id", questionID),
				zap.Any("panic", r),
			)
			result = e.errorResult(start)
			e.observe(result)
		}
	}()

	question := req.Question
	if req.FileContent != "" {
		content := req.FileContent
		if len(content) > e.fileContentLimit {
			content = content[:e.fileContentLimit]
		}
		question = question + "\n\n" + content
	}

	normalized := textproc.Normalize(question)
	questionHash := utils.HashString(normalized)

	if e.cache != nil {
		var cached Result
		if hit, err := e.cache.GetAnswer(ctx, questionHash, &cached); err == nil && hit {
			metrics.CacheHits.Inc()
			cached.ResponseTimeMS = int(time.Since(start).Milliseconds())
			return &cached
		}
		metrics.CacheMisses.Inc()
	}

	cls := e.classifier.Classify(ctx, normalized)
	metrics.ClassificationConfidence.Observe(cls.Confidence)

	logger.Info("Question classified",
		zap.String("question_id", questionID),
		zap.Bool("in_domain", cls.InDomain),
		zap.Float64("confidence", cls.Confidence),
	)

	if !cls.InDomain {
		result = &Result{
			Answer:          offTopicAnswer,
			References:      []references.Summary{},
			IsAutismRelated: false,
			Confidence:      cls.Confidence,
			ResponseTimeMS:  int(time.Since(start).Milliseconds()),
			Status:          StatusOffTopic,
		}
		e.observe(result)
		e.recordHistory(questionID, normalized, result)
		return result
	}

	answer := e.generator.Generate(ctx, normalized, cls)

	refs := e.refs.Select(normalized, answer, e.maxReferences)
	if len(refs) == 0 {
		refs = e.refs.Default()
	}

	result = &Result{
		Answer:          answer,
		References:      refs,
		IsAutismRelated: true,
		Confidence:      cls.Confidence,
		ResponseTimeMS:  int(time.Since(start).Milliseconds()),
		Status:          StatusSuccess,
	}

	if e.cache != nil {
		if err := e.cache.SetAnswer(ctx, questionHash, result); err != nil {
			logger.Warn("Failed to cache answer", zap.Error(err))
		}
	}

	e.observe(result)
	e.recordHistory(questionID, normalized, result)

	logger.Info("Question processed",
		zap.String("question_id", questionID),
		zap.Int("references", len(refs)),
		zap.Int("latency_ms", result.ResponseTimeMS),
	)

	return result
}

// ProcessFeedback records one vote and returns the running totals.
func (e *Engine) ProcessFeedback(id, vote, question, answer string) (feedback.Ack, error) {
	parsed, err := feedback.ParseVote(vote)
	if err != nil {
		return feedback.Ack{}, err
	}

	ack := e.feedback.Record(id, parsed, question, answer)
	metrics.FeedbackVotes.WithLabelValues(string(parsed)).Inc()

	if e.db != nil {
		record := &models.FeedbackRecord{
			RequestID: id,
			Question:  textproc.Normalize(question),
			Answer:    answer,
			Vote:      string(parsed),
			CreatedAt: time.Now(),
		}
		if err := e.db.InsertFeedbackRecord(record); err != nil {
			logger.Warn("Failed to log feedback", zap.Error(err))
		}
	}

	return ack, nil
}

func (e *Engine) FeedbackAnalytics() feedback.Analytics {
	return e.feedback.Analytics()
}

func (e *Engine) errorResult(start time.Time) *Result {
	return &Result{
		Answer:          errorAnswer,
		References:      e.refs.Emergency(),
		IsAutismRelated: true,
		Confidence:      0.0,
		ResponseTimeMS:  int(time.Since(start).Milliseconds()),
		Status:          StatusError,
	}
}

func (e *Engine) observe(result *Result) {
	metrics.QuestionTotal.WithLabelValues(result.Status).Inc()
	metrics.QuestionDuration.WithLabelValues(result.Status).Observe(float64(result.ResponseTimeMS) / 1000.0)
}

func (e *Engine) recordHistory(questionID, question string, result *Result) {
	if e.db == nil {
		return
	}
	record := &models.QuestionRecord{
		ID:         questionID,
		Question:   question,
		Answer:     result.Answer,
		InDomain:   result.IsAutismRelated,
		Confidence: result.Confidence,
		Status:     result.Status,
		LatencyMS:  result.ResponseTimeMS,
		CreatedAt:  time.Now(),
	}
	if err := e.db.InsertQuestionRecord(record); err != nil {
		logger.Warn("Failed to record question history", zap.Error(err))
	}
}
