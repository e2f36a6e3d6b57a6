package client

import (
	"context"
	"fmt"
	"net/http"
)

// FeedRSS returns a blog's RSS 2.0 feed, byte-for-byte as the server sent it.
func (c *Client) FeedRSS(ctx context.Context, blogID string) ([]byte, error) {
	p, err := c.Do(ctx, http.MethodGet, blogPath(blogID, "/feed.rss"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("rss feed: %w", err)
	}
	return p.Bytes(), nil
}

// FeedJSON returns a blog's JSON Feed 1.1 document.
func (c *Client) FeedJSON(ctx context.Context, blogID string) (*JSONFeed, error) {
	var out JSONFeed
	if err := c.doJSON(ctx, http.MethodGet, blogPath(blogID, "/feed.json"), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("json feed: %w", err)
	}
	return &out, nil
}
