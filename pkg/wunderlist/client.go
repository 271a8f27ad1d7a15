// Package wunderlist is a client for the Wunderlist REST API.
//
// Every call is translated into one HTTP request carrying the configured
// credentials. Responses are returned as they arrive: an HTTP error status
// from the service is NOT reported as a Go error. Only transport failures
// (DNS, refused connections, resets, cancelled contexts) are. Callers must
// check Envelope.IsRemoteError for service-level failures.
package wunderlist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/samvad-hq/wunderlist-go/pkg/httpclient"
)

const (
	// DefaultBaseURL is the versioned Wunderlist API origin.
	DefaultBaseURL = "https://a.wunderlist.com/api/v1"

	HeaderAccessToken = "X-Access-Token"
	HeaderClientID    = "X-Client-ID"
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"

	defaultTimeout = 30 * time.Second
)

// Config holds the credentials and endpoint of a client.
type Config struct {
	AccessToken string
	ClientID    string
	BaseURL     string
}

// Client dispatches descriptors against the Wunderlist API.
// It is safe for concurrent use; its only state is the immutable Config.
type Client struct {
	cfg       Config
	transport httpclient.Client
	log       Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTransport injects the HTTP transport used for every call.
func WithTransport(t httpclient.Client) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithLogger sets the logger used for per-call debug output.
func WithLogger(log Logger) Option {
	return func(c *Client) { c.log = ensureLogger(log) }
}

// New builds a Client. Tokens are supplied by the caller; no OAuth flow is performed.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.AccessToken = strings.TrimSpace(cfg.AccessToken)
	cfg.ClientID = strings.TrimSpace(cfg.ClientID)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("%w: access token is required", ErrInvalidConfig)
	}
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidConfig)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	c := &Client{cfg: cfg, log: noopLogger{}}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = httpclient.NewRestyClient(defaultTimeout)
	}
	return c, nil
}

// BaseURL returns the endpoint every descriptor path is appended to.
func (c *Client) BaseURL() string { return c.cfg.BaseURL }

// Dispatch issues exactly one request for d.
//
// A transport failure is returned unmodified with a nil Envelope. Any received
// response, whatever its status code, yields an Envelope and a nil error.
func (c *Client) Dispatch(ctx context.Context, d Descriptor) (*Envelope, error) {
	req, err := c.newRequest(d)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		c.log.DebugObj("wunderlist request failed", "wunderlist_call", map[string]any{
			"method": d.Method,
			"path":   d.Path,
			"error":  err.Error(),
		})
		return nil, err
	}

	env := newEnvelope(resp)
	c.log.DebugObj("wunderlist request completed", "wunderlist_call", map[string]any{
		"method":     d.Method,
		"path":       d.Path,
		"status":     env.StatusCode,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return env, nil
}

// newRequest merges d with the authentication and content-type headers.
func (c *Client) newRequest(d Descriptor) (*httpclient.Request, error) {
	contentType := d.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}

	req := &httpclient.Request{
		Method: d.Method,
		URL:    c.cfg.BaseURL + d.Path,
		Headers: map[string]string{
			HeaderAccessToken: c.cfg.AccessToken,
			HeaderClientID:    c.cfg.ClientID,
			HeaderContentType: contentType,
		},
	}

	if d.Body != nil {
		payload, err := json.Marshal(d.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", d.Method, d.Path, err)
		}
		req.Body = payload
	}
	return req, nil
}
