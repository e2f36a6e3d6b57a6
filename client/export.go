package client

import (
	"context"
	"fmt"
	"net/http"
)

// Preview renders markdown to HTML without storing anything.
func (c *Client) Preview(ctx context.Context, content string) (*PreviewResult, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	var out PreviewResult
	if err := c.doJSON(ctx, http.MethodPost, apiBase+"/preview", body, nil, &out); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	return &out, nil
}

// ExportMarkdown returns a post's original markdown source.
func (c *Client) ExportMarkdown(ctx context.Context, blogID, slug string) ([]byte, error) {
	p, err := c.Do(ctx, http.MethodGet, postPath(blogID, slug, "/export/markdown"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("export markdown: %w", err)
	}
	return p.Bytes(), nil
}

// ExportHTML returns a post as a standalone HTML document.
func (c *Client) ExportHTML(ctx context.Context, blogID, slug string) ([]byte, error) {
	p, err := c.Do(ctx, http.MethodGet, postPath(blogID, slug, "/export/html"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("export html: %w", err)
	}
	return p.Bytes(), nil
}

// ExportNostr returns a post as an unsigned NIP-23 long-form event.
func (c *Client) ExportNostr(ctx context.Context, blogID, slug string) (*NostrEvent, error) {
	var out NostrEvent
	if err := c.doJSON(ctx, http.MethodGet, postPath(blogID, slug, "/export/nostr"), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("export nostr: %w", err)
	}
	return &out, nil
}
