package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Humans-Not-Required/blog/apierr"
	"github.com/Humans-Not-Required/blog/utils"
)

// Query holds optional query parameters. Entries with a nil value are dropped
// before encoding; surviving values are stringified. If nothing survives, no
// "?" is appended to the URL.
type Query map[string]any

func (q Query) encode() string {
	vals := url.Values{}
	for k, v := range q {
		if v == nil {
			continue
		}
		vals.Set(k, fmt.Sprint(v))
	}
	return vals.Encode()
}

// CallOption adjusts a single request.
type CallOption func(*callOptions)

type callOptions struct {
	manageKey string
	headers   http.Header
}

// WithKey overrides the client's default manage key for one call.
func WithKey(key string) CallOption {
	return func(o *callOptions) { o.manageKey = strings.TrimSpace(key) }
}

// WithHeader sets an extra header on one call, replacing any default the
// executor would have chosen for that header.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = make(http.Header)
		}
		o.headers.Set(key, value)
	}
}

// Payload is the body of a successful response. Whether it is JSON is decided
// once, from the response Content-Type; callers then either Decode (JSON) or
// take Bytes (raw text/binary).
type Payload struct {
	data   []byte
	isJSON bool
}

// IsJSON reports whether the response declared a JSON content type.
func (p *Payload) IsJSON() bool { return p != nil && p.isJSON }

// Bytes returns the response body unmodified.
func (p *Payload) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.data
}

// Decode unmarshals a JSON payload into v. It fails when the response was not
// JSON; an empty JSON body decodes to nothing.
func (p *Payload) Decode(v any) error {
	if !p.IsJSON() {
		return fmt.Errorf("decode response: not a JSON payload")
	}
	if len(p.data) == 0 {
		return nil
	}
	if err := json.Unmarshal(p.data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Do performs one HTTP exchange against the service: base URL + path +
// filtered query, optional JSON body, bearer credential (call-level key wins
// over the client default; neither sends no Authorization header).
//
// A response with status >= 400 comes back as a *apierr.APIError. Transport
// failures (refused connection, timeout, DNS) are returned as wrapped errors
// and are never part of the taxonomy.
func (c *Client) Do(ctx context.Context, method, path string, body any, query Query, opts ...CallOption) (*Payload, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	fullURL := c.BaseURL + path
	if qs := query.encode(); qs != "" {
		fullURL += "?" + qs
	}

	var o callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var rdr io.Reader
	if body != nil {
		buf, err := utils.EncodeJSONBody(body)
		if err != nil {
			return nil, err
		}
		rdr = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, rdr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	key := o.manageKey
	if key == "" {
		key = c.ManageKey
	}
	if key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	// Caller headers go last so they beat every default above, the
	// Authorization one included.
	for k, vv := range o.headers {
		req.Header.Del(k)
		req.Header[k] = append([]string(nil), vv...)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("blog api request")

	if resp.StatusCode >= 400 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, defaultErrCap))
		// Drain the rest to maximize chances of connection reuse.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, apierr.Parse(slurp, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Payload{data: data, isJSON: isJSONContentType(resp.Header.Get("Content-Type"))}, nil
}

// doJSON runs an exchange and decodes the JSON payload into v.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, query Query, v any, opts ...CallOption) error {
	p, err := c.Do(ctx, method, path, body, query, opts...)
	if err != nil {
		return err
	}
	return p.Decode(v)
}

// isJSONContentType matches application/json and JSON-ish media types such as
// application/feed+json.
func isJSONContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "json")
}
