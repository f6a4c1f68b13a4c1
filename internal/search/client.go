// Package search wraps the search engine behind a narrow indexing and
// query contract so handlers never touch the engine's transport directly.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
)

// Result is the engine's response, returned verbatim to proxy callers.
type Result struct {
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body"`
}

type Indexer interface {
	Index(ctx context.Context, index, id string, body any) error
	Delete(ctx context.Context, index, id string) error
	Search(ctx context.Context, index string, query json.RawMessage) (*Result, error)
}

type client struct {
	es *elasticsearch.Client
}

func NewClient(es *elasticsearch.Client) Indexer {
	return &client{es: es}
}

func (c *client) Index(ctx context.Context, index, id string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("search: marshal document %s/%s: %w", index, id, err)
	}

	res, err := c.es.Index(index, bytes.NewReader(payload),
		c.es.Index.WithDocumentID(id),
		c.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: index %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("search: index %s/%s: %s", index, id, res.String())
	}
	return nil
}

func (c *client) Delete(ctx context.Context, index, id string) error {
	res, err := c.es.Delete(index, id, c.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("search: delete %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	// A missing document is already the desired end state.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("search: delete %s/%s: %s", index, id, res.String())
	}
	return nil
}

func (c *client) Search(ctx context.Context, index string, query json.RawMessage) (*Result, error) {
	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(query)),
	)
	if err != nil {
		return nil, fmt.Errorf("search: query %s: %w", index, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("search: read response: %w", err)
	}

	// Engine-level errors are passed through with their status code; the
	// proxy contract is verbatim, not interpreted.
	return &Result{StatusCode: res.StatusCode, Body: body}, nil
}
