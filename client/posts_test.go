package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Humans-Not-Required/blog/apierr"
	"github.com/Humans-Not-Required/blog/client"
)

func postJSON(id, slug, title string) string {
	return fmt.Sprintf(`{"id":%q,"blog_id":"b_1","title":%q,"slug":%q,"content":"","content_html":"","summary":"","tags":[],"status":"published","published_at":null,"author_name":"anon","created_at":"","updated_at":"","comment_count":0}`, id, title, slug)
}

func TestCreatePost(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", testBase+"/api/v1/blogs/b_1/posts", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer call-key", req.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "Hello World", body["title"])
		assert.Equal(t, "# Welcome", body["content"])
		assert.Equal(t, []any{"go"}, body["tags"])
		_, hasSlug := body["slug"]
		assert.False(t, hasSlug, "empty slug must be omitted")

		resp := httpmock.NewStringResponse(201, postJSON("p_1", "hello-world", "Hello World"))
		resp.Header.Set("Content-Type", "application/json")
		return resp, nil
	})

	c := newMockedClient(t, client.WithManageKey("default-key"))
	post, err := c.CreatePost(context.Background(), "b_1", client.CreatePostParams{
		Title:   "Hello World",
		Content: "# Welcome",
		Tags:    []string{"go"},
	}, client.WithKey("call-key"))
	require.NoError(t, err)
	assert.Equal(t, "p_1", post.ID)
	assert.Equal(t, "hello-world", post.Slug)
}

func TestListPosts_QueryParams(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBase+"/api/v1/blogs/b_1/posts", func(req *http.Request) (*http.Response, error) {
		q := req.URL.Query()
		assert.Equal(t, "go", q.Get("tag"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.False(t, q.Has("offset"), "zero offset must be omitted")

		resp := httpmock.NewStringResponse(200, "["+postJSON("p_1", "a", "A")+"]")
		resp.Header.Set("Content-Type", "application/json")
		return resp, nil
	})

	c := newMockedClient(t)
	posts, err := c.ListPosts(context.Background(), "b_1", client.ListPostsParams{Tag: "go", Limit: 10})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "p_1", posts[0].ID)
}

func TestGetPost_NotFound(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	resp := httpmock.NewStringResponder(404, `{"error":"Post not found","code":"NOT_FOUND"}`).
		HeaderSet(http.Header{"Content-Type": []string{"application/json"}})
	httpmock.RegisterResponder("GET", testBase+"/api/v1/blogs/b_1/posts/missing", resp)

	c := newMockedClient(t)
	_, err := c.GetPost(context.Background(), "b_1", "missing")
	require.Error(t, err)
	require.True(t, apierr.IsNotFound(err))

	var ae *apierr.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 404, ae.Status)
}

func TestGetPosts_PreservesOrder(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	slugs := []string{"one", "two", "three", "four", "five"}
	for i, slug := range slugs {
		resp := httpmock.NewStringResponder(200, postJSON(fmt.Sprintf("p_%d", i), slug, slug)).
			HeaderSet(http.Header{"Content-Type": []string{"application/json"}})
		httpmock.RegisterResponder("GET", testBase+"/api/v1/blogs/b_1/posts/"+slug, resp)
	}

	c := newMockedClient(t)
	posts, err := c.GetPosts(context.Background(), "b_1", slugs)
	require.NoError(t, err)
	require.Len(t, posts, len(slugs))
	for i, slug := range slugs {
		assert.Equal(t, slug, posts[i].Slug, "result %d out of order", i)
	}
}

func TestGetPosts_FirstErrorWins(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	ok := httpmock.NewStringResponder(200, postJSON("p_1", "good", "Good")).
		HeaderSet(http.Header{"Content-Type": []string{"application/json"}})
	httpmock.RegisterResponder("GET", testBase+"/api/v1/blogs/b_1/posts/good", ok)

	bad := httpmock.NewStringResponder(404, `{"error":"Post not found","code":"NOT_FOUND"}`).
		HeaderSet(http.Header{"Content-Type": []string{"application/json"}})
	httpmock.RegisterResponder("GET", testBase+"/api/v1/blogs/b_1/posts/gone", bad)

	c := newMockedClient(t)
	_, err := c.GetPosts(context.Background(), "b_1", []string{"good", "gone"})
	require.Error(t, err)
	assert.True(t, apierr.IsNotFound(err))
}

func TestUpdatePost(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("PATCH", testBase+"/api/v1/blogs/b_1/posts/p_1", func(req *http.Request) (*http.Response, error) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "draft", body["status"])
		_, hasTitle := body["title"]
		assert.False(t, hasTitle)

		resp := httpmock.NewStringResponse(200, postJSON("p_1", "hello", "Hello"))
		resp.Header.Set("Content-Type", "application/json")
		return resp, nil
	})

	status := "draft"
	c := newMockedClient(t, client.WithManageKey("secret"))
	_, err := c.UpdatePost(context.Background(), "b_1", "p_1", client.UpdatePostParams{Status: &status})
	require.NoError(t, err)
}

func TestDeletePost(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	resp := httpmock.NewStringResponder(200, `{"deleted":true}`).
		HeaderSet(http.Header{"Content-Type": []string{"application/json"}})
	httpmock.RegisterResponder("DELETE", testBase+"/api/v1/blogs/b_1/posts/p_1", resp)

	c := newMockedClient(t, client.WithManageKey("secret"))
	res, err := c.DeletePost(context.Background(), "b_1", "p_1")
	require.NoError(t, err)
	assert.True(t, res.Deleted)
}

func TestPinUnpinPost(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	pin := httpmock.NewStringResponder(200, postJSON("p_1", "hello", "Hello")).
		HeaderSet(http.Header{"Content-Type": []string{"application/json"}})
	httpmock.RegisterResponder("POST", testBase+"/api/v1/blogs/b_1/posts/p_1/pin", pin)
	httpmock.RegisterResponder("POST", testBase+"/api/v1/blogs/b_1/posts/p_1/unpin", pin)

	c := newMockedClient(t, client.WithManageKey("secret"))

	if _, err := c.PinPost(context.Background(), "b_1", "p_1"); err != nil {
		t.Fatalf("PinPost: %v", err)
	}
	if _, err := c.UnpinPost(context.Background(), "b_1", "p_1"); err != nil {
		t.Fatalf("UnpinPost: %v", err)
	}
}

func TestRelatedPosts(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBase+"/api/v1/blogs/b_1/posts/p_1/related", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "3", req.URL.Query().Get("limit"))
		resp := httpmock.NewStringResponse(200, `[{"id":"p_2","blog_id":"b_1","blog_name":"One","title":"T","slug":"t","summary":"","tags":[],"author_name":"anon","published_at":null}]`)
		resp.Header.Set("Content-Type", "application/json")
		return resp, nil
	})

	c := newMockedClient(t)
	related, err := c.RelatedPosts(context.Background(), "b_1", "p_1", 3)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "p_2", related[0].ID)
}
