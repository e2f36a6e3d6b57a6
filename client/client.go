// Package client implements a typed Go client for the HNR Blog service API.
// Every endpoint wrapper funnels through a single request executor that
// handles URL construction, bearer authentication, JSON (de)serialization,
// and mapping of failing responses onto the apierr taxonomy.
package client

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the local development origin the service runs on.
	DefaultBaseURL = "http://localhost:3004"

	// Version of this SDK, also reported in the User-Agent.
	Version = "1.0.0"

	defaultUserAgent = "blog-go/" + Version

	// defaultErrCap caps how many bytes we slurp from a failing response
	// when constructing an apierr.APIError.
	defaultErrCap = 8192

	defaultHTTPTimeout = 30 * time.Second
)

// Environment variables read by NewFromEnv. The library itself never touches
// the environment; lookup happens once, at construction.
const (
	EnvBaseURL   = "BLOG_URL"
	EnvManageKey = "BLOG_KEY"
)

// Client is a Blog API client. It is safe for concurrent use after
// construction (fields are not mutated post-New). The embedded http.Client is
// used as-is; its Timeout bounds every exchange.
type Client struct {
	BaseURL    string // normalized base URL, no trailing slash
	ManageKey  string // default bearer credential, may be empty
	UserAgent  string
	HTTPClient *http.Client

	logger *logrus.Logger
}

// Option customizes a Client during construction.
// Errors returned by an Option abort New.
type Option func(*Client) error

// WithBaseURL sets a custom service origin. The value must be an absolute
// URL; a trailing slash is stripped.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		u = strings.TrimSpace(u)
		if u == "" {
			return errors.New("base URL cannot be empty")
		}
		parsed, err := url.Parse(u)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return errors.New("invalid base URL")
		}
		c.BaseURL = strings.TrimRight(u, "/")
		return nil
	}
}

// WithManageKey sets the default manage key attached to requests as
// "Authorization: Bearer <key>". Per-call WithKey overrides it.
func WithManageKey(key string) Option {
	return func(c *Client) error {
		c.ManageKey = strings.TrimSpace(key)
		return nil
	}
}

// WithUserAgent overrides the default User-Agent string.
// An empty value is ignored.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		ua = strings.TrimSpace(ua)
		if ua != "" {
			c.UserAgent = ua
		}
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client.
// The client must be non-nil.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		c.HTTPClient = hc
		return nil
	}
}

// WithHTTPTimeout sets the HTTP client timeout. If no HTTP client exists yet,
// a default one is created first. A zero value disables the timeout.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return errors.New("http timeout cannot be negative")
		}
		if c.HTTPClient == nil {
			c.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
		}
		c.HTTPClient.Timeout = d
		return nil
	}
}

// WithLogger enables debug logging of every exchange. By default logs are
// discarded.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = l
		return nil
	}
}

// New builds a Client with sensible defaults and applies the provided options
// in order.
func New(opts ...Option) (*Client, error) {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		BaseURL:    DefaultBaseURL,
		UserAgent:  defaultUserAgent,
		HTTPClient: &http.Client{Timeout: defaultHTTPTimeout},
		logger:     discard,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// final normalization (in case WithBaseURL was not used)
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")

	return c, nil
}

// NewFromEnv builds a Client from BLOG_URL and BLOG_KEY. The environment is
// read exactly once, here; explicit options are applied afterwards and win
// over environment values.
func NewFromEnv(opts ...Option) (*Client, error) {
	var all []Option
	if u := os.Getenv(EnvBaseURL); u != "" {
		all = append(all, WithBaseURL(u))
	}
	if k := os.Getenv(EnvManageKey); k != "" {
		all = append(all, WithManageKey(k))
	}
	all = append(all, opts...)
	return New(all...)
}
