package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lonelywalls-events/internal/handler"
	"lonelywalls-events/internal/middleware"
	"lonelywalls-events/internal/mocks"
	"lonelywalls-events/internal/search"
)

func searchApp(indexer *mocks.Indexer) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	h := handler.NewSearchHandler(indexer)
	app.Post("/api/v1/search", h.Query)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return resp.StatusCode, out
}

func TestSearchQuery(t *testing.T) {
	t.Run("Proxies Query And Returns Engine Response", func(t *testing.T) {
		indexer := new(mocks.Indexer)
		app := searchApp(indexer)

		query := json.RawMessage(`{"query":{"match":{"title":"harbour"}}}`)
		engineBody := json.RawMessage(`{"hits":{"total":{"value":1}}}`)
		indexer.On("Search", mock.Anything, "artworks", query).
			Return(&search.Result{StatusCode: 200, Body: engineBody}, nil).Once()

		status, body := postJSON(t, app, "/api/v1/search", fiber.Map{
			"collection": "artworks",
			"query":      query,
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, string(body), `"hits"`)
		indexer.AssertExpectations(t)
	})

	t.Run("Missing Collection Is Rejected", func(t *testing.T) {
		indexer := new(mocks.Indexer)
		app := searchApp(indexer)

		status, _ := postJSON(t, app, "/api/v1/search", fiber.Map{
			"query": json.RawMessage(`{"match_all":{}}`),
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
		indexer.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Query Is Rejected", func(t *testing.T) {
		indexer := new(mocks.Indexer)
		app := searchApp(indexer)

		status, _ := postJSON(t, app, "/api/v1/search", fiber.Map{
			"collection": "artworks",
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}
