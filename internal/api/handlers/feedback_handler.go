package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/aurora-assist/backend/internal/pipeline"
	"github.com/aurora-assist/backend/pkg/logger"
)

type FeedbackHandler struct {
	engine *pipeline.Engine
}

func NewFeedbackHandler(engine *pipeline.Engine) *FeedbackHandler {
	return &FeedbackHandler{engine: engine}
}

func (h *FeedbackHandler) HandleFeedback(c *fiber.Ctx) error {
	var req struct {
		ID       string `json:"id"`
		Vote     string `json:"vote"`
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse feedback body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid feedback payload",
		})
	}

	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Question is required",
		})
	}

	ack, err := h.engine.ProcessFeedback(req.ID, req.Vote, req.Question, req.Answer)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"recorded":      true,
		"positiveTotal": ack.PositiveTotal,
		"negativeTotal": ack.NegativeTotal,
	})
}

func (h *FeedbackHandler) HandleAnalytics(c *fiber.Ctx) error {
	return c.JSON(h.engine.FeedbackAnalytics())
}
