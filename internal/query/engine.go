package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/contract-portal/backend/internal/classify"
	"github.com/contract-portal/backend/internal/extract"
	"github.com/contract-portal/backend/internal/lexicon"
	"github.com/contract-portal/backend/internal/metrics"
	"github.com/contract-portal/backend/internal/spell"
	"github.com/contract-portal/backend/pkg/circuitbreaker"
	"github.com/contract-portal/backend/pkg/logger"
	"github.com/contract-portal/backend/pkg/utils"
)

// Cache stores serialized responses keyed by normalized query text. Both the
// in-memory and redis backends implement it.
type Cache interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}

// Engine runs the full query-understanding pipeline: spell correction,
// entity extraction, classification, and response assembly. It is stateless
// per call; the lexicon provider is the only shared resource.
type Engine struct {
	lexicons       *lexicon.Provider
	extractor      *extract.Extractor
	cache          Cache
	breaker        *circuitbreaker.CircuitBreaker
	maxQueryLength int
}

type Options struct {
	Cache          Cache
	MaxQueryLength int
	NameTokenLimit int
}

func NewEngine(lexicons *lexicon.Provider, opts Options) *Engine {
	if opts.MaxQueryLength <= 0 {
		opts.MaxQueryLength = 1000
	}

	e := &Engine{
		lexicons:       lexicons,
		extractor:      extract.New(opts.NameTokenLimit),
		cache:          opts.Cache,
		maxQueryLength: opts.MaxQueryLength,
	}

	if opts.Cache != nil {
		e.breaker = circuitbreaker.New("response-cache", circuitbreaker.Config{
			Logger: logger.Log,
		})
	}

	return e
}

// ProcessQuery never returns an error: every failure mode, including a panic
// inside the pipeline, is reported through the response's errors list.
func (e *Engine) ProcessQuery(ctx context.Context, req Request) *QueryResponse {
	start := time.Now()
	queryID := uuid.New().String()

	if resp := e.validateInput(queryID, req, start); resp != nil {
		metrics.QueryTotal.WithLabelValues("NONE", "invalid_input").Inc()
		return resp
	}

	cacheKey := utils.CacheKey(req.SessionID, req.Query)
	if cached := e.cacheGet(ctx, cacheKey); cached != nil {
		cached.Metadata.CacheHit = true
		cached.Metadata.ProcessingTimeMs = time.Since(start).Milliseconds()
		return cached
	}

	resp := e.process(queryID, req, start)

	e.cacheSet(ctx, cacheKey, resp)
	e.record(resp, start)

	return resp
}

func (e *Engine) process(queryID string, req Request, start time.Time) (resp *QueryResponse) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Query pipeline panic",
				zap.String("query_id", queryID),
				zap.Any("panic", r),
			)
			resp = e.errorResponse(queryID, req.Query, start, ErrCodeProcessing,
				fmt.Sprintf("internal error while processing query: %v", r))
		}
	}()

	lex := e.lexicons.Current()

	corrected, changed := spell.New(lex).Correct(req.Query)

	entities := e.extractor.Extract(corrected)
	decision := classify.New(lex).Classify(corrected, entities)

	resp = assemble(lex, req.Query, corrected, changed, decision, entities)
	resp.Metadata.QueryID = queryID
	resp.Metadata.Timestamp = start.UTC()
	resp.Metadata.ProcessingTimeMs = time.Since(start).Milliseconds()

	logger.Debug("Query processed",
		zap.String("query_id", queryID),
		zap.String("domain", decision.Domain),
		zap.String("action_type", decision.ActionType),
		zap.Int("entities", len(entities)),
		zap.Bool("spell_corrected", changed),
	)

	return resp
}

func (e *Engine) validateInput(queryID string, req Request, start time.Time) *QueryResponse {
	if strings.TrimSpace(req.Query) == "" {
		return e.errorResponse(queryID, req.Query, start, ErrCodeInvalidInput,
			"query text is required")
	}
	if utf8.RuneCountInString(req.Query) > e.maxQueryLength {
		return e.errorResponse(queryID, req.Query, start, ErrCodeInvalidInput,
			fmt.Sprintf("query exceeds maximum length of %d characters", e.maxQueryLength))
	}
	return nil
}

func (e *Engine) errorResponse(queryID, original string, start time.Time, code, message string) *QueryResponse {
	return &QueryResponse{
		Metadata: Metadata{
			QueryID:          queryID,
			OriginalQuery:    original,
			CorrectedQuery:   original,
			Timestamp:        start.UTC(),
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
		Entities:        []Filter{},
		DisplayEntities: []string{},
		Errors:          []ResponseError{{Code: code, Message: message}},
	}
}

func (e *Engine) cacheGet(ctx context.Context, key string) *QueryResponse {
	if e.cache == nil {
		return nil
	}

	var payload []byte
	var found bool
	err := e.breaker.Execute(ctx, func() error {
		var err error
		payload, found, err = e.cache.Get(ctx, key)
		return err
	})
	if err != nil {
		if err != circuitbreaker.ErrCircuitOpen {
			logger.Warn("Response cache get failed", zap.Error(err))
		}
		return nil
	}
	if !found {
		metrics.CacheMisses.WithLabelValues(e.cache.Name()).Inc()
		return nil
	}

	var resp QueryResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		logger.Warn("Response cache entry corrupt", zap.Error(err))
		return nil
	}

	metrics.CacheHits.WithLabelValues(e.cache.Name()).Inc()
	return &resp
}

func (e *Engine) cacheSet(ctx context.Context, key string, resp *QueryResponse) {
	if e.cache == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		logger.Warn("Response cache marshal failed", zap.Error(err))
		return
	}

	err = e.breaker.Execute(ctx, func() error {
		return e.cache.Set(ctx, key, payload)
	})
	if err != nil && err != circuitbreaker.ErrCircuitOpen {
		logger.Warn("Response cache set failed", zap.Error(err))
	}
}

func (e *Engine) record(resp *QueryResponse, start time.Time) {
	domain := resp.Metadata.QueryType
	if domain == "" {
		domain = "NONE"
	}

	status := "ok"
	switch {
	case resp.HasError(ErrCodeProcessing):
		status = "error"
	case resp.HasError(ErrCodePartsCreate):
		status = "business_rule"
		metrics.BusinessRuleViolations.Inc()
	case resp.HasError(ErrCodeInvalidQuery):
		status = "invalid_query"
	}

	if resp.Metadata.HasSpellCorrections {
		metrics.SpellCorrections.Inc()
	}

	metrics.EntitiesExtracted.Observe(float64(len(resp.Entities)))
	metrics.QueryTotal.WithLabelValues(domain, status).Inc()
	metrics.QueryDuration.WithLabelValues(domain).Observe(time.Since(start).Seconds())
}
