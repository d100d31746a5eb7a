package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/aurora-assist/backend/pkg/circuitbreaker"
	"github.com/aurora-assist/backend/pkg/logger"
	"github.com/aurora-assist/backend/pkg/retry"
)

type Client struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	cb          *circuitbreaker.CircuitBreaker
	retryConfig retry.Config
}

type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

type CompletionResponse struct {
	Content string
	Usage   Usage
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// IntentJudgment is the structured verdict returned by the classification
// prompt.
type IntentJudgment struct {
	IsAutismRelated bool     `json:"isAutismRelated"`
	Confidence      float64  `json:"confidence"`
	Reasoning       string   `json:"reasoning"`
	DetectedTopics  []string `json:"detectedTopics"`
}

func NewClient(apiKey, model string, temperature float32, maxTokens, timeoutSec int) *Client {
	client := openai.NewClient(apiKey)

	cb := circuitbreaker.NewCircuitBreaker("llm", circuitbreaker.Config{
		MaxRequests:      5,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Logger:           logger.GetLogger(),
	})

	retryConfig := retry.Config{
		MaxAttempts:    3,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
		Logger:         logger.GetLogger(),
	}

	timeout := time.Duration(timeoutSec) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	logger.Info("LLM client initialized", zap.String("model", model))

	return &Client{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
		cb:          cb,
		retryConfig: retryConfig,
	}
}

func (c *Client) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.temperature
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	var messages []openai.ChatCompletionMessage
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	var result *CompletionResponse

	err := c.cb.Execute(ctx, func() error {
		return retry.Do(ctx, c.retryConfig, func() error {
			resp, err := c.client.CreateChatCompletion(
				ctx,
				openai.ChatCompletionRequest{
					Model:       c.model,
					Messages:    messages,
					Temperature: temperature,
					MaxTokens:   maxTokens,
				},
			)

			if err != nil {
				return fmt.Errorf("failed to create completion: %w", err)
			}

			if len(resp.Choices) == 0 {
				return fmt.Errorf("completion returned no choices")
			}

			logger.Debug("LLM completion generated",
				zap.Int("prompt_tokens", resp.Usage.PromptTokens),
				zap.Int("completion_tokens", resp.Usage.CompletionTokens),
			)

			result = &CompletionResponse{
				Content: resp.Choices[0].Message.Content,
				Usage: Usage{
					PromptTokens:     resp.Usage.PromptTokens,
					CompletionTokens: resp.Usage.CompletionTokens,
					TotalTokens:      resp.Usage.TotalTokens,
				},
			}

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// ClassifyQuestion asks the model whether the question is about autism
// spectrum disorder and parses its structured verdict. Errors are returned to
// the caller, which is expected to fail open.
func (c *Client) ClassifyQuestion(ctx context.Context, question string) (*IntentJudgment, error) {
	userPrompt := fmt.Sprintf(`You are Aurora, an autism specialist assistant. Determine if this question relates to Autism Spectrum Disorder.

Consider these autism-related topics as IN SCOPE:
- Diagnosis, assessment, early signs
- Treatments, therapies, interventions
- Daily living, communication, sensory issues
- Education, IEPs, school support
- Family support, caregiving
- Adult autism, employment, relationships
- Legal rights, advocacy, discrimination
- Government funding, state funding, insurance coverage
- Autism communities, support groups, resources
- Research, evidence-based practices

Question: "%s"

Even if the question has spelling errors or grammar mistakes, focus on the intent and meaning.

Respond with JSON only:
{
  "isAutismRelated": true/false,
  "confidence": 0.0-1.0,
  "reasoning": "brief explanation",
  "detectedTopics": ["array of relevant topics if autism-related"]
}`, question)

	resp, err := c.Complete(ctx, CompletionRequest{
		UserPrompt:  userPrompt,
		Temperature: 0.1,
		MaxTokens:   200,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to classify question: %w", err)
	}

	var judgment IntentJudgment
	content := strings.TrimSpace(resp.Content)
	if err := json.Unmarshal([]byte(content), &judgment); err != nil {
		return nil, fmt.Errorf("failed to parse classification verdict: %w", err)
	}

	return &judgment, nil
}

// GenerateGuidance asks the model for a supportive answer grounded in the
// supplied knowledge context.
func (c *Client) GenerateGuidance(ctx context.Context, question, knowledgeContext string) (string, error) {
	systemPrompt := `You are Aurora, a knowledgeable and compassionate autism support specialist.

Your role:
- Provide helpful, evidence-based guidance about autism
- Use warm, supportive, professional tone
- Focus on practical, actionable advice
- Always mention when professional consultation is recommended
- Use person-first language
- Be specific and structured in your responses

Important reminders:
- I am in Beta and can make mistakes
- I provide general information only
- Always recommend consulting healthcare professionals for medical decisions`

	userPrompt := fmt.Sprintf(`User's question: "%s"

Relevant knowledge context:
%s

Provide a structured, helpful response. Include specific strategies and considerations where appropriate.`, question, knowledgeContext)

	resp, err := c.Complete(ctx, CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  0.3,
		MaxTokens:    800,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate guidance: %w", err)
	}

	logger.Info("Guidance generated",
		zap.Int("response_length", len(resp.Content)),
	)

	return resp.Content, nil
}
