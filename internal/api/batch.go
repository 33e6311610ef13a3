package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// Request describes one call in a batch.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Batch issues the requests concurrently and returns their raw
// payloads in input order. The first failure cancels the remaining
// in-flight requests and rejects the whole batch; there is no
// partial-result aggregation. Completion order between items is not
// guaranteed, only joint completion.
func (c *Client) Batch(ctx context.Context, requests []Request) ([]json.RawMessage, error) {
	results := make([]json.RawMessage, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		g.Go(func() error {
			method := req.Method
			if method == "" {
				method = http.MethodGet
			}
			var raw json.RawMessage
			if err := c.do(gctx, method, req.Path, req.Query, req.Body, nil, &raw); err != nil {
				return err
			}
			results[i] = raw
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
