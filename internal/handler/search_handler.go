package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"lonelywalls-events/internal/middleware"
	"lonelywalls-events/internal/search"
)

type SearchHandler struct {
	indexer search.Indexer
}

func NewSearchHandler(indexer search.Indexer) *SearchHandler {
	return &SearchHandler{indexer: indexer}
}

type searchRequest struct {
	Collection string          `json:"collection"`
	Query      json.RawMessage `json:"query"`
}

// Query proxies a caller-supplied query body to the search engine and
// returns the engine's response verbatim. The request shape is validated;
// the query itself is not interpreted.
func (h *SearchHandler) Query(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if req.Collection == "" {
		return middleware.BadRequest("Missing collection")
	}
	if len(req.Query) == 0 || !json.Valid(req.Query) {
		return middleware.BadRequest("Missing or invalid query")
	}

	result, err := h.indexer.Search(c.Context(), req.Collection, req.Query)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
