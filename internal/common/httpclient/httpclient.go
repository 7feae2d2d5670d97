// Package httpclient provides a configurable HTTP client for making requests
// to REST APIs. It handles request building, authorization headers, and
// per-request correlation ids. The package requires a Configurator
// implementation for server connection details; the authorization value is
// treated as an opaque, pre-built header value supplied by the caller.
package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/roomkit/roomkit/internal/common/logtrace"
)

// Configurator defines the interface for providing server connection details.
// Implementations must provide the server base URL and the pre-built
// Authorization header value.
type Configurator interface {
	GetServerURL() string
	GetAuthorization() string
}

var (
	// ErrRequestSetup indicates the request could not be constructed or sent;
	// no network I/O reached the server.
	ErrRequestSetup = errors.New("request setup failed")

	// ErrNoResponse indicates the request was sent but no response arrived
	// (connection failure, reset, or deadline expiry).
	ErrNoResponse = errors.New("no response from server")
)

// Response holds the outcome of a request that received an answer from the
// server. Status mapping is left to the caller: some endpoints treat
// non-2xx codes as recognized outcomes rather than failures.
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPClient represents a client for making HTTP requests to a REST API
// server. It handles request building and response collection.
type HTTPClient struct {
	config     Configurator
	httpClient *http.Client
}

// ClientOptions contains options for configuring the HTTP client.
type ClientOptions struct {
	DisableCertValidation bool          // If true, skips SSL certificate validation
	Timeout               time.Duration // Overall per-request timeout; zero means no timeout
}

// NewClient creates a new HTTP client using the provided configuration.
// The config parameter must implement the Configurator interface.
func NewClient(config Configurator, opts ...ClientOptions) *HTTPClient {
	clientOpts := ClientOptions{}
	if len(opts) > 0 {
		clientOpts = opts[0]
	}
	return NewClientWithOptions(config, clientOpts)
}

// NewClientWithOptions creates a new HTTP client using the provided
// configuration and options.
func NewClientWithOptions(config Configurator, opts ClientOptions) *HTTPClient {
	httpClient := &http.Client{
		Timeout: opts.Timeout,
	}

	if opts.DisableCertValidation {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		}
	}

	return &HTTPClient{
		config:     config,
		httpClient: httpClient,
	}
}

// RequestOptions contains options for making HTTP requests.
// All fields are required except QueryParams and Body.
type RequestOptions struct {
	Method      string            // HTTP method (GET, POST, PUT, DELETE)
	Path        string            // API endpoint path
	QueryParams map[string]string // Optional query parameters
	Body        []byte            // Optional request body
}

// DoRequest makes an HTTP request with the given options. A Response is
// returned for every answer the server gives, regardless of status code.
// Errors are classified: ErrRequestSetup before any I/O, ErrNoResponse when
// the request went out but nothing came back. Context cancellation and
// deadline errors remain visible through errors.Is on the returned error.
func (c *HTTPClient) DoRequest(ctx context.Context, opts RequestOptions) (*Response, error) {
	u, err := url.Parse(c.config.GetServerURL())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid server URL: %v", ErrRequestSetup, err)
	}
	u.Path = path.Join(u.Path, opts.Path)

	q := u.Query()
	for k, v := range opts.QueryParams {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, opts.Method, u.String(), bytes.NewBuffer(opts.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestSetup, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if auth := c.config.GetAuthorization(); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	requestID := logtrace.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set("X-Request-Id", requestID)

	log.Debug().
		Str("method", opts.Method).
		Str("url", u.Redacted()).
		Str("request_id", requestID).
		Msg("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).
			Str("method", opts.Method).
			Str("request_id", requestID).
			Msg("request failed without a response")
		return nil, fmt.Errorf("%w: %w", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).
			Str("request_id", requestID).
			Msg("failed to read response body")
		return nil, fmt.Errorf("%w: reading response body: %w", ErrNoResponse, err)
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Msg("received response")

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// PostJSON issues a POST request with a JSON body to the given path.
// Returns the server's response regardless of status code.
func (c *HTTPClient) PostJSON(ctx context.Context, apiPath string, body []byte) (*Response, error) {
	return c.DoRequest(ctx, RequestOptions{
		Method: http.MethodPost,
		Path:   apiPath,
		Body:   body,
	})
}
