package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/contract-portal/backend/internal/lexicon"
	"github.com/contract-portal/backend/internal/metrics"
	"github.com/contract-portal/backend/pkg/logger"
)

// CacheFlusher is implemented by response cache backends that can drop all
// entries at once.
type CacheFlusher interface {
	Flush(ctx context.Context) error
}

type LexiconHandler struct {
	provider *lexicon.Provider
	cache    CacheFlusher
}

func NewLexiconHandler(provider *lexicon.Provider, cache CacheFlusher) *LexiconHandler {
	return &LexiconHandler{provider: provider, cache: cache}
}

// GetLexicon reports the size of each keyword table in the active snapshot.
func (h *LexiconHandler) GetLexicon(c *fiber.Ctx) error {
	lex := h.provider.Current()
	return c.JSON(fiber.Map{
		"parts_keywords":    len(lex.PartsKeywords),
		"create_keywords":   len(lex.CreateKeywords),
		"contract_keywords": len(lex.ContractKeywords),
		"help_keywords":     len(lex.HelpKeywords),
		"corrections":       len(lex.Corrections),
		"display_columns":   len(lex.DisplayColumns),
	})
}

// Reload re-reads the configured lexicon files and publishes a new snapshot.
// In-flight queries keep the snapshot they started with.
func (h *LexiconHandler) Reload(c *fiber.Ctx) error {
	lex, err := h.provider.Reload()
	if err != nil {
		logger.Error("Lexicon reload failed", zap.Error(err))
		metrics.LexiconReloads.WithLabelValues("error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reload lexicon; previous snapshot remains active",
		})
	}

	// Cached responses were routed with the old tables and may no longer
	// match.
	if h.cache != nil {
		if err := h.cache.Flush(c.Context()); err != nil {
			logger.Warn("Failed to flush response cache after reload", zap.Error(err))
		}
	}

	metrics.LexiconReloads.WithLabelValues("ok").Inc()
	return c.JSON(fiber.Map{
		"status":      "reloaded",
		"corrections": len(lex.Corrections),
	})
}
