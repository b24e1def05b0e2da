package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/contract-portal/backend/internal/query"
	"github.com/contract-portal/backend/pkg/logger"
)

type QueryHandler struct {
	engine *query.Engine
}

func NewQueryHandler(engine *query.Engine) *QueryHandler {
	return &QueryHandler{engine: engine}
}

// HandleQuery routes one free-text query. The pipeline reports every failure
// inside the response payload, so the only non-200 statuses are malformed
// JSON and rejected input.
func (h *QueryHandler) HandleQuery(c *fiber.Ctx) error {
	var req struct {
		Query     string `json:"query"`
		SessionID string `json:"session_id"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp := h.engine.ProcessQuery(c.Context(), query.Request{
		Query:     req.Query,
		SessionID: req.SessionID,
	})

	if resp.HasError(query.ErrCodeInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	return c.JSON(resp)
}
