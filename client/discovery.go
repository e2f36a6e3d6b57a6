package client

import (
	"context"
	"fmt"
	"net/http"
)

// LLMsTxt returns the service's plain-text API summary.
func (c *Client) LLMsTxt(ctx context.Context) (string, error) {
	p, err := c.Do(ctx, http.MethodGet, apiBase+"/llms.txt", nil, nil)
	if err != nil {
		return "", fmt.Errorf("llms.txt: %w", err)
	}
	return string(p.Bytes()), nil
}

// OpenAPI returns the service's OpenAPI document.
func (c *Client) OpenAPI(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.doJSON(ctx, http.MethodGet, apiBase+"/openapi.json", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("openapi: %w", err)
	}
	return out, nil
}

// Skills returns the well-known skills index.
func (c *Client) Skills(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.doJSON(ctx, http.MethodGet, "/.well-known/skills/index.json", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("skills: %w", err)
	}
	return out, nil
}

// SkillMD returns the blog skill description in markdown.
func (c *Client) SkillMD(ctx context.Context) (string, error) {
	p, err := c.Do(ctx, http.MethodGet, "/.well-known/skills/blog/SKILL.md", nil, nil)
	if err != nil {
		return "", fmt.Errorf("skill.md: %w", err)
	}
	return string(p.Bytes()), nil
}
