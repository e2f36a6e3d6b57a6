package client

import (
	"context"
	"fmt"
	"net/http"
)

// SearchParams paginates full-text search. Zero values are omitted.
type SearchParams struct {
	Limit  int
	Offset int
}

// SemanticSearchParams tunes semantic search. Zero values are omitted;
// BlogID restricts the search to one blog.
type SemanticSearchParams struct {
	Limit  int
	BlogID string
}

// Search runs a full-text search across all public blogs.
func (c *Client) Search(ctx context.Context, query string, p SearchParams) ([]SearchResult, error) {
	q := Query{"q": query}
	if p.Limit > 0 {
		q["limit"] = p.Limit
	}
	if p.Offset > 0 {
		q["offset"] = p.Offset
	}

	var out []SearchResult
	if err := c.doJSON(ctx, http.MethodGet, apiBase+"/search", nil, q, &out); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return out, nil
}

// SearchSemantic runs a similarity search over the semantic index, when the
// server has it enabled.
func (c *Client) SearchSemantic(ctx context.Context, query string, p SemanticSearchParams) ([]SemanticHit, error) {
	q := Query{"q": query}
	if p.Limit > 0 {
		q["limit"] = p.Limit
	}
	if p.BlogID != "" {
		q["blog_id"] = p.BlogID
	}

	var out []SemanticHit
	if err := c.doJSON(ctx, http.MethodGet, apiBase+"/search/semantic", nil, q, &out); err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}
	return out, nil
}
