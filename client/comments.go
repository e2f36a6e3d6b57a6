package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateCommentParams is the body of POST .../posts/{post_id}/comments.
type CreateCommentParams struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

// CreateComment adds a comment to a post.
func (c *Client) CreateComment(ctx context.Context, blogID, postID string, p CreateCommentParams, opts ...CallOption) (*Comment, error) {
	var out Comment
	if err := c.doJSON(ctx, http.MethodPost, postPath(blogID, postID, "/comments"), p, nil, &out, opts...); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &out, nil
}

// ListComments lists a post's comments, oldest first.
func (c *Client) ListComments(ctx context.Context, blogID, postID string) ([]Comment, error) {
	var out []Comment
	if err := c.doJSON(ctx, http.MethodGet, postPath(blogID, postID, "/comments"), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return out, nil
}

// DeleteComment removes a comment. Auth required.
func (c *Client) DeleteComment(ctx context.Context, blogID, postID, commentID string, opts ...CallOption) (*DeleteResult, error) {
	path := postPath(blogID, postID, "/comments/"+url.PathEscape(commentID))

	var out DeleteResult
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil, &out, opts...); err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	return &out, nil
}
