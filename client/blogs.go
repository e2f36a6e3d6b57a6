package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const apiBase = "/api/v1"

// blogPath builds "/api/v1/blogs/{id}<suffix>" with the ID path-escaped.
func blogPath(blogID, suffix string) string {
	return apiBase + "/blogs/" + url.PathEscape(blogID) + suffix
}

// postPath builds "/api/v1/blogs/{id}/posts/{post}<suffix>". post is either a
// post ID or a slug depending on the endpoint.
func postPath(blogID, post, suffix string) string {
	return blogPath(blogID, "/posts/"+url.PathEscape(post)+suffix)
}

// CreateBlogParams is the body of POST /api/v1/blogs.
type CreateBlogParams struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPublic    *bool  `json:"is_public,omitempty"` // server default: true
}

// UpdateBlogParams is the body of PATCH /api/v1/blogs/{id}.
// Nil fields are left unchanged.
type UpdateBlogParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

// CreateBlog creates a new blog. Auth required. The response is the only
// place the manage key ever appears in plain text.
func (c *Client) CreateBlog(ctx context.Context, p CreateBlogParams, opts ...CallOption) (*BlogCreated, error) {
	var out BlogCreated
	if err := c.doJSON(ctx, http.MethodPost, apiBase+"/blogs", p, nil, &out, opts...); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return &out, nil
}

// ListBlogs lists all public blogs.
func (c *Client) ListBlogs(ctx context.Context) ([]Blog, error) {
	var out []Blog
	if err := c.doJSON(ctx, http.MethodGet, apiBase+"/blogs", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return out, nil
}

// GetBlog fetches a blog by ID.
func (c *Client) GetBlog(ctx context.Context, blogID string) (*Blog, error) {
	var out Blog
	if err := c.doJSON(ctx, http.MethodGet, blogPath(blogID, ""), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return &out, nil
}

// UpdateBlog patches a blog's metadata. Auth required.
func (c *Client) UpdateBlog(ctx context.Context, blogID string, p UpdateBlogParams, opts ...CallOption) (*Blog, error) {
	var out Blog
	if err := c.doJSON(ctx, http.MethodPatch, blogPath(blogID, ""), p, nil, &out, opts...); err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return &out, nil
}

// Stats fetches per-blog analytics.
func (c *Client) Stats(ctx context.Context, blogID string) (*BlogStats, error) {
	var out BlogStats
	if err := c.doJSON(ctx, http.MethodGet, blogPath(blogID, "/stats"), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("blog stats: %w", err)
	}
	return &out, nil
}
