package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"github.com/roomkit/roomkit/internal/common/httpclient"
)

// API endpoint paths.
const (
	sessionsPath = "/api/sessions"
	tokensPath   = "/api/tokens"
)

// ClientConfig holds the connection context for a SessionClient: where the
// server lives and the pre-built Authorization header value to present.
// The authorization value is opaque to this package; constructing it is the
// caller's responsibility.
type ClientConfig struct {
	Hostname      string
	Port          int
	Authorization string
}

// connConfig adapts ClientConfig to the transport's Configurator interface.
type connConfig struct {
	serverURL     string
	authorization string
}

func (c *connConfig) GetServerURL() string     { return c.serverURL }
func (c *connConfig) GetAuthorization() string { return c.authorization }

// ClientOption configures optional SessionClient behavior.
type ClientOption func(*clientOptions)

type clientOptions struct {
	baseURL               string
	disableCertValidation bool
	requestTimeout        time.Duration
	retryAttempts         uint
	retryDelay            time.Duration
}

// WithBaseURL overrides the https://hostname:port base URL derived from the
// ClientConfig. Intended for tests and non-standard deployments.
func WithBaseURL(u string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = u
	}
}

// WithInsecureTLS disables server certificate validation. Use only against
// servers with self-signed development certificates.
func WithInsecureTLS() ClientOption {
	return func(o *clientOptions) {
		o.disableCertValidation = true
	}
}

// WithRequestTimeout sets an overall per-request timeout in addition to any
// deadline on the per-call context.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.requestTimeout = d
	}
}

// WithRetry enables bounded retry on transport failures. Only requests that
// got no response are retried; status errors and expired deadlines are not.
// Retry is off unless this option is given.
func WithRetry(attempts uint, delay time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.retryAttempts = attempts
		o.retryDelay = delay
	}
}

// SessionClient represents one remote conferencing session. It creates or
// reuses the session on the server and mints access tokens scoped to it.
// A client is safe for concurrent use: concurrent first calls to
// EnsureSessionID share a single in-flight create request.
type SessionClient struct {
	httpClient *httpclient.HTTPClient
	properties SessionProperties
	opts       clientOptions

	mu        sync.RWMutex
	sessionID string

	flight singleflight.Group
}

// NewSessionClient creates a client for one remote session. The properties
// are validated here, before any network call, and are immutable afterwards.
func NewSessionClient(cfg ClientConfig, properties SessionProperties, opts ...ClientOption) (*SessionClient, error) {
	if err := properties.Validate(); err != nil {
		return nil, err
	}

	options := clientOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.baseURL == "" {
		if cfg.Hostname == "" {
			return nil, ErrInvalidProperties.Msg("hostname is required")
		}
		options.baseURL = fmt.Sprintf("https://%s:%d", cfg.Hostname, cfg.Port)
	}

	conn := &connConfig{
		serverURL:     options.baseURL,
		authorization: cfg.Authorization,
	}
	httpClient := httpclient.NewClientWithOptions(conn, httpclient.ClientOptions{
		DisableCertValidation: options.disableCertValidation,
		Timeout:               options.requestTimeout,
	})

	return &SessionClient{
		httpClient: httpClient,
		properties: properties,
		opts:       options,
	}, nil
}

// SessionID returns the bound session identifier, or an empty string if the
// session has not been created on the server yet.
func (c *SessionClient) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

// Properties returns the session properties the client was built with.
func (c *SessionClient) Properties() SessionProperties {
	return c.properties
}

// EnsureSessionID returns the session's identifier, creating the session on
// the remote server if it is not already known. Once an identifier is bound
// the call is an idempotent no-op returning the cached value with no I/O.
// Concurrent callers during the first creation await the same underlying
// request. Every call settles: a response, a classified error, or a deadline
// error when ctx expires.
func (c *SessionClient) EnsureSessionID(ctx context.Context) (string, error) {
	if id := c.SessionID(); id != "" {
		return id, nil
	}

	v, err, _ := c.flight.Do("create-session", func() (any, error) {
		// the winner of a concurrent race may have bound the id already
		if id := c.SessionID(); id != "" {
			return id, nil
		}
		return c.createSession(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// createSession issues the create request and binds the resulting id.
func (c *SessionClient) createSession(ctx context.Context) (string, error) {
	body, err := json.Marshal(c.properties.createRequest())
	if err != nil {
		return "", ErrRequestSetup.MsgErr("serializing session properties", err)
	}

	resp, err := c.post(ctx, sessionsPath, body)
	if err != nil {
		return "", classifyRequestError(err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		id := gjson.GetBytes(resp.Body, "id").String()
		if id == "" {
			return "", ErrBadServerResponse.Msg("session response has no id field")
		}
		return c.bind(id), nil

	case http.StatusConflict:
		// The requested custom session id already exists on the server.
		// Recognized outcome: the server is reusing the same identifier.
		id := c.properties.CustomSessionID
		log.Debug().Str("session_id", id).Msg("session already exists, reusing custom session id")
		return c.bind(id), nil

	default:
		return "", ErrRemoteStatus.
			Msg(strconv.Itoa(resp.StatusCode)).
			SetStatusCode(resp.StatusCode)
	}
}

// CreateToken mints a fresh access token scoped to the current session id.
// Options default to the lowest-privilege publisher role with empty data.
// If the session id is not bound yet it is sent as an empty string; the
// server is the authority on whether that is an error.
func (c *SessionClient) CreateToken(ctx context.Context, opts ...TokenOptions) (string, error) {
	options := TokenOptions{}
	if len(opts) > 0 {
		options = opts[0]
	}
	if err := options.Validate(); err != nil {
		return "", err
	}

	body, err := json.Marshal(options.tokenRequestFor(c.SessionID()))
	if err != nil {
		return "", ErrRequestSetup.MsgErr("serializing token options", err)
	}

	resp, err := c.post(ctx, tokensPath, body)
	if err != nil {
		return "", classifyRequestError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", ErrRemoteStatus.
			Msg(strconv.Itoa(resp.StatusCode)).
			SetStatusCode(resp.StatusCode)
	}

	token := gjson.GetBytes(resp.Body, "id").String()
	if token == "" {
		return "", ErrBadServerResponse.Msg("token response has no id field")
	}
	return token, nil
}

// bind stores the session id exactly once. If an id is already bound the
// existing value wins and is returned, so racing callers converge.
func (c *SessionClient) bind(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sessionID == "" {
		c.sessionID = id
	}
	return c.sessionID
}

// post issues the request, retrying transport failures when retry is
// configured. Status errors are never retried; an expired context stops the
// retry loop immediately.
func (c *SessionClient) post(ctx context.Context, path string, body []byte) (*httpclient.Response, error) {
	if c.opts.retryAttempts <= 1 {
		return c.httpClient.PostJSON(ctx, path, body)
	}

	return retry.DoWithData(func() (*httpclient.Response, error) {
		return c.httpClient.PostJSON(ctx, path, body)
	},
		retry.Context(ctx),
		retry.Attempts(c.opts.retryAttempts),
		retry.Delay(c.opts.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, httpclient.ErrNoResponse) &&
				!errors.Is(err, context.DeadlineExceeded) &&
				!errors.Is(err, context.Canceled)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Str("path", path).Msg("retrying request")
		}),
	)
}

// classifyRequestError maps a transport-layer failure onto the client error
// taxonomy. Every failure path ends in exactly one of the named kinds so
// callers never see an unsettled or unclassified outcome.
func classifyRequestError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrDeadlineExceeded.Err(err)
	case errors.Is(err, httpclient.ErrRequestSetup):
		return ErrRequestSetup.Err(err)
	default:
		return ErrTransport.Err(err)
	}
}
