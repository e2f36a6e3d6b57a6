package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", testBase+"/api/v1/preview", func(req *http.Request) (*http.Response, error) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "# Title", body["content"])

		resp := httpmock.NewStringResponse(200, `{"html":"<h1>Title</h1>"}`)
		resp.Header.Set("Content-Type", "application/json")
		return resp, nil
	})

	c := newMockedClient(t)
	res, err := c.Preview(context.Background(), "# Title")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1>", res.HTML)
}

func TestExportMarkdown(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	resp := httpmock.NewStringResponder(200, "# Hello\n\nBody text.\n").
		HeaderSet(http.Header{"Content-Type": []string{"text/markdown; charset=utf-8"}})
	httpmock.RegisterResponder("GET", testBase+"/api/v1/blogs/b_1/posts/hello/export/markdown", resp)

	c := newMockedClient(t)
	md, err := c.ExportMarkdown(context.Background(), "b_1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n\nBody text.\n", string(md))
}

func TestExportHTML(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	resp := httpmock.NewStringResponder(200, "<!DOCTYPE html><html><body><h1>Hello</h1></body></html>").
		HeaderSet(http.Header{"Content-Type": []string{"text/html; charset=utf-8"}})
	httpmock.RegisterResponder("GET", testBase+"/api/v1/blogs/b_1/posts/hello/export/html", resp)

	c := newMockedClient(t)
	page, err := c.ExportHTML(context.Background(), "b_1", "hello")
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1>Hello</h1>")
}

func TestExportNostr(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	resp := httpmock.NewStringResponder(200, `{"kind":30023,"created_at":1735689600,"tags":[["d","hello"],["title","Hello"]],"content":"# Hello"}`).
		HeaderSet(http.Header{"Content-Type": []string{"application/json"}})
	httpmock.RegisterResponder("GET", testBase+"/api/v1/blogs/b_1/posts/hello/export/nostr", resp)

	c := newMockedClient(t)
	ev, err := c.ExportNostr(context.Background(), "b_1", "hello")
	require.NoError(t, err)
	assert.Equal(t, 30023, ev.Kind)
	require.Len(t, ev.Tags, 2)
	assert.Equal(t, []string{"d", "hello"}, ev.Tags[0])
	assert.Empty(t, ev.Sig, "export is unsigned")
}
