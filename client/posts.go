package client

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// CreatePostParams is the body of POST /api/v1/blogs/{id}/posts.
type CreatePostParams struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Summary    string   `json:"summary,omitempty"`
	Slug       string   `json:"slug,omitempty"` // derived from the title when empty
	Tags       []string `json:"tags,omitempty"`
	Status     string   `json:"status,omitempty"` // "published" (default) or "draft"
	AuthorName string   `json:"author_name,omitempty"`
}

// UpdatePostParams is the body of PATCH /api/v1/blogs/{id}/posts/{post_id}.
// Nil fields are left unchanged.
type UpdatePostParams struct {
	Title      *string  `json:"title,omitempty"`
	Content    *string  `json:"content,omitempty"`
	Summary    *string  `json:"summary,omitempty"`
	Slug       *string  `json:"slug,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Status     *string  `json:"status,omitempty"`
	AuthorName *string  `json:"author_name,omitempty"`
}

// ListPostsParams filters GET /api/v1/blogs/{id}/posts. Zero values are
// omitted from the query string.
type ListPostsParams struct {
	Tag    string
	Limit  int
	Offset int
}

// CreatePost creates a post under a blog. Auth required.
func (c *Client) CreatePost(ctx context.Context, blogID string, p CreatePostParams, opts ...CallOption) (*Post, error) {
	var out Post
	if err := c.doJSON(ctx, http.MethodPost, blogPath(blogID, "/posts"), p, nil, &out, opts...); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &out, nil
}

// ListPosts lists a blog's posts, newest first. Pass the manage key via
// WithKey to include drafts.
func (c *Client) ListPosts(ctx context.Context, blogID string, p ListPostsParams, opts ...CallOption) ([]Post, error) {
	q := Query{}
	if p.Tag != "" {
		q["tag"] = p.Tag
	}
	if p.Limit > 0 {
		q["limit"] = p.Limit
	}
	if p.Offset > 0 {
		q["offset"] = p.Offset
	}

	var out []Post
	if err := c.doJSON(ctx, http.MethodGet, blogPath(blogID, "/posts"), nil, q, &out, opts...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return out, nil
}

// GetPost fetches a post by slug.
func (c *Client) GetPost(ctx context.Context, blogID, slug string) (*Post, error) {
	var out Post
	if err := c.doJSON(ctx, http.MethodGet, postPath(blogID, slug, ""), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &out, nil
}

// GetPosts fetches several posts by slug concurrently, preserving the input
// order in the result. The fanout is bounded so a long slug list does not
// hammer the server; the first failure cancels the remaining fetches.
func (c *Client) GetPosts(ctx context.Context, blogID string, slugs []string) ([]Post, error) {
	const maxConcurrent = 6

	posts := make([]Post, len(slugs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, slug := range slugs {
		i, slug := i, slug
		g.Go(func() error {
			p, err := c.GetPost(gctx, blogID, slug)
			if err != nil {
				return err
			}
			posts[i] = *p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost patches a post by ID. Auth required.
func (c *Client) UpdatePost(ctx context.Context, blogID, postID string, p UpdatePostParams, opts ...CallOption) (*Post, error) {
	var out Post
	if err := c.doJSON(ctx, http.MethodPatch, postPath(blogID, postID, ""), p, nil, &out, opts...); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &out, nil
}

// DeletePost deletes a post (and its comments) by ID. Auth required.
func (c *Client) DeletePost(ctx context.Context, blogID, postID string, opts ...CallOption) (*DeleteResult, error) {
	var out DeleteResult
	if err := c.doJSON(ctx, http.MethodDelete, postPath(blogID, postID, ""), nil, nil, &out, opts...); err != nil {
		return nil, fmt.Errorf("delete post: %w", err)
	}
	return &out, nil
}

// PinPost pins a post to the top of its blog. Auth required.
func (c *Client) PinPost(ctx context.Context, blogID, postID string, opts ...CallOption) (*Post, error) {
	var out Post
	if err := c.doJSON(ctx, http.MethodPost, postPath(blogID, postID, "/pin"), struct{}{}, nil, &out, opts...); err != nil {
		return nil, fmt.Errorf("pin post: %w", err)
	}
	return &out, nil
}

// UnpinPost removes a post's pin. Auth required.
func (c *Client) UnpinPost(ctx context.Context, blogID, postID string, opts ...CallOption) (*Post, error) {
	var out Post
	if err := c.doJSON(ctx, http.MethodPost, postPath(blogID, postID, "/unpin"), struct{}{}, nil, &out, opts...); err != nil {
		return nil, fmt.Errorf("unpin post: %w", err)
	}
	return &out, nil
}

// RelatedPosts lists posts similar to the given one. limit <= 0 uses the
// server default.
func (c *Client) RelatedPosts(ctx context.Context, blogID, postID string, limit int) ([]SearchResult, error) {
	q := Query{}
	if limit > 0 {
		q["limit"] = limit
	}

	var out []SearchResult
	if err := c.doJSON(ctx, http.MethodGet, postPath(blogID, postID, "/related"), nil, q, &out); err != nil {
		return nil, fmt.Errorf("related posts: %w", err)
	}
	return out, nil
}
