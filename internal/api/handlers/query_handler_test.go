package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/contract-portal/backend/internal/lexicon"
	"github.com/contract-portal/backend/internal/query"
	"github.com/contract-portal/backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestApp() *fiber.App {
	engine := query.NewEngine(lexicon.NewStaticProvider(lexicon.Defaults()), query.Options{})
	provider := lexicon.NewStaticProvider(lexicon.Defaults())

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/query", NewQueryHandler(engine).HandleQuery)
	api.Get("/lexicon", NewLexiconHandler(provider, nil).GetLexicon)

	return app
}

func postQuery(t *testing.T, app *fiber.App, body string) (*query.QueryResponse, int) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/v1/query", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var resp query.QueryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, res.StatusCode
	}
	return &resp, res.StatusCode
}

func TestHandleQueryReturnsRoutingDecision(t *testing.T) {
	app := newTestApp()

	resp, status := postQuery(t, app, `{"query": "show contract 123456", "session_id": "s1"}`)

	assert.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, resp)
	assert.Equal(t, "CONTRACT", resp.Metadata.QueryType)
	require.NotNil(t, resp.Header.ContractNumber)
	assert.Equal(t, "123456", *resp.Header.ContractNumber)
	assert.Empty(t, resp.Errors)
}

func TestHandleQueryRejectsBlankQuery(t *testing.T) {
	app := newTestApp()

	resp, status := postQuery(t, app, `{"query": "  "}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	require.NotNil(t, resp)
	assert.True(t, resp.HasError(query.ErrCodeInvalidInput))
}

func TestHandleQueryRejectsMalformedBody(t *testing.T) {
	app := newTestApp()

	_, status := postQuery(t, app, `{"query": `)

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetLexiconReportsTableSizes(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/v1/lexicon", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, len(lexicon.Defaults().Corrections), body["corrections"])
	assert.Greater(t, body["parts_keywords"], 0)
}
