package validation

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Config struct {
	MaxQuestionLength int
	Logger            *zap.Logger
}

// Middleware validates the question contract on the ask endpoint before the
// pipeline is invoked. Validation failures return supportive client errors;
// the pipeline itself never sees an empty or oversized question.
func Middleware(cfg Config) fiber.Handler {
	if cfg.MaxQuestionLength == 0 {
		cfg.MaxQuestionLength = 2000
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost || !strings.HasSuffix(c.Path(), "/ask") {
			return c.Next()
		}

		var req map[string]interface{}
		if err := c.BodyParser(&req); err != nil {
			return clientError(c, "I need a bit more information to help you. Could you please rephrase your question?")
		}

		question, ok := req["question"].(string)
		if !ok || strings.TrimSpace(question) == "" {
			return clientError(c, "Question is required and cannot be empty.")
		}

		if len(question) > cfg.MaxQuestionLength {
			cfg.Logger.Warn("Oversized question rejected",
				zap.String("ip", c.IP()),
				zap.Int("length", len(question)),
			)
			return clientError(c, "Question is too long (max 2000 characters).")
		}

		return c.Next()
	}
}

func clientError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":          true,
		"message":        message,
		"betaNotice":     "I am still in Beta, I can make mistakes.",
		"supportMessage": "If you need immediate assistance, please consult healthcare professionals or autism support organizations.",
	})
}
