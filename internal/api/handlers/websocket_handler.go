package handlers

import (
	"context"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/contract-portal/backend/internal/query"
	"github.com/contract-portal/backend/pkg/logger"
)

// WebSocketHandler serves the portal's chat-style query box: each incoming
// message is routed through the pipeline and answered with the structured
// routing decision.
type WebSocketHandler struct {
	engine *query.Engine
}

func NewWebSocketHandler(engine *query.Engine) *WebSocketHandler {
	return &WebSocketHandler{engine: engine}
}

func (h *WebSocketHandler) HandleConnection(c *websocket.Conn) {
	logger.Info("WebSocket connection established")

	defer func() {
		c.Close()
		logger.Info("WebSocket connection closed")
	}()

	for {
		var msg struct {
			Type      string `json:"type"`
			Content   string `json:"content"`
			SessionID string `json:"session_id"`
		}

		if err := c.ReadJSON(&msg); err != nil {
			logger.Debug("WebSocket read ended", zap.Error(err))
			break
		}

		if msg.Type != "query" {
			continue
		}

		h.sendStatus(c, "Processing query...")

		resp := h.engine.ProcessQuery(context.Background(), query.Request{
			Query:     msg.Content,
			SessionID: msg.SessionID,
		})

		if err := c.WriteJSON(map[string]interface{}{
			"type":     "result",
			"response": resp,
		}); err != nil {
			logger.Error("Failed to write WebSocket response", zap.Error(err))
			break
		}
	}
}

func (h *WebSocketHandler) sendStatus(c *websocket.Conn, content string) {
	c.WriteJSON(map[string]interface{}{
		"type":    "status",
		"content": content,
	})
}
