package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aurora-assist/backend/internal/pipeline"
	"github.com/aurora-assist/backend/pkg/logger"
)

const (
	assistantName    = "Aurora"
	assistantVersion = "1.0.0-beta"
	betaNotice       = "I am still in Beta, I can make mistakes."
)

type AskHandler struct {
	engine *pipeline.Engine
}

func NewAskHandler(engine *pipeline.Engine) *AskHandler {
	return &AskHandler{engine: engine}
}

func (h *AskHandler) HandleAsk(c *fiber.Ctx) error {
	var req struct {
		Question    string `json:"question"`
		FileContent string `json:"fileContent"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "I need a bit more information to help you. Could you please rephrase your question?",
		})
	}

	preview := req.Question
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	logger.Info("Processing question", zap.String("question", preview))

	result := h.engine.ProcessQuestion(c.Context(), pipeline.Request{
		Question:    req.Question,
		FileContent: req.FileContent,
	})

	return c.JSON(fiber.Map{
		"aurora": fiber.Map{
			"name":       assistantName,
			"version":    assistantVersion,
			"disclaimer": betaNotice,
		},
		"answer":          result.Answer,
		"references":      result.References,
		"isAutismRelated": result.IsAutismRelated,
		"confidence":      result.Confidence,
		"responseTime":    result.ResponseTimeMS,
		"status":          result.Status,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}
