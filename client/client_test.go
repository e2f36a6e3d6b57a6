package client_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Humans-Not-Required/blog/client"
)

func TestNew_Defaults(t *testing.T) {
	c, err := client.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL != "http://localhost:3004" {
		t.Fatalf("BaseURL = %q, want %q", c.BaseURL, "http://localhost:3004")
	}
	if c.ManageKey != "" {
		t.Fatalf("ManageKey = %q, want empty", c.ManageKey)
	}
	if c.HTTPClient == nil || c.HTTPClient.Timeout != 30*time.Second {
		t.Fatalf("expected 30s default timeout, got %+v", c.HTTPClient)
	}
}

func TestNew_StripsTrailingSlash(t *testing.T) {
	c, err := client.New(client.WithBaseURL("http://h:1/"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL != "http://h:1" {
		t.Fatalf("BaseURL = %q, want %q", c.BaseURL, "http://h:1")
	}
}

func TestNew_OptionValidation(t *testing.T) {
	if _, err := client.New(client.WithBaseURL(":// nope")); err == nil {
		t.Fatalf("expected error for invalid base URL")
	}
	if _, err := client.New(client.WithBaseURL("")); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
	if _, err := client.New(client.WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil http client")
	}
	if _, err := client.New(client.WithHTTPTimeout(-time.Second)); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
	if _, err := client.New(client.WithLogger(nil)); err == nil {
		t.Fatalf("expected error for nil logger")
	}
}

func TestNew_WithUserAgentAndHTTPTimeout(t *testing.T) {
	c, err := client.New(
		client.WithUserAgent("blog-test/1.0"),
		client.WithHTTPTimeout(1500*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.UserAgent != "blog-test/1.0" {
		t.Fatalf("UserAgent = %q", c.UserAgent)
	}
	if c.HTTPClient.Timeout != 1500*time.Millisecond {
		t.Fatalf("timeout = %v, want 1.5s", c.HTTPClient.Timeout)
	}
}

func TestNew_WithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: 2 * time.Second}
	c, err := client.New(client.WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.HTTPClient != hc {
		t.Fatalf("HTTPClient was replaced")
	}
}

func TestNewFromEnv_ReadsEnvironment(t *testing.T) {
	t.Setenv("BLOG_URL", "http://env-host:9/")
	t.Setenv("BLOG_KEY", "env-key")

	c, err := client.NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.BaseURL != "http://env-host:9" {
		t.Fatalf("BaseURL = %q, want %q", c.BaseURL, "http://env-host:9")
	}
	if c.ManageKey != "env-key" {
		t.Fatalf("ManageKey = %q, want %q", c.ManageKey, "env-key")
	}
}

func TestNewFromEnv_ExplicitOptionsWin(t *testing.T) {
	t.Setenv("BLOG_URL", "http://env-host:9")
	t.Setenv("BLOG_KEY", "env-key")

	c, err := client.NewFromEnv(
		client.WithBaseURL("http://explicit:1"),
		client.WithManageKey("explicit-key"),
	)
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.BaseURL != "http://explicit:1" {
		t.Fatalf("BaseURL = %q, constructor option should beat env", c.BaseURL)
	}
	if c.ManageKey != "explicit-key" {
		t.Fatalf("ManageKey = %q, constructor option should beat env", c.ManageKey)
	}
}

func TestNewFromEnv_EmptyEnvironment(t *testing.T) {
	t.Setenv("BLOG_URL", "")
	t.Setenv("BLOG_KEY", "")

	c, err := client.NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.BaseURL != client.DefaultBaseURL {
		t.Fatalf("BaseURL = %q, want default", c.BaseURL)
	}
	if c.ManageKey != "" {
		t.Fatalf("ManageKey = %q, want empty", c.ManageKey)
	}
}
