package transmission

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"transmission-mcp/internal/logging"
	"transmission-mcp/internal/services"
)

const (
	defaultTimeout    = 30 * time.Second
	maxSessionRetries = 1
	errorBodyLimit    = 512
	maxResponseBytes  = 32 << 20
)

// Config captures the runtime settings required to reach the daemon.
type Config struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

// HTTPDoer abstracts http.Client.Do for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for RPC requests.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger attaches a logger; the client logs nothing by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client issues RPC calls against a Transmission daemon and owns the session
// token the daemon requires.
type Client struct {
	endpoint   string
	username   string
	password   string
	timeout    time.Duration
	httpClient HTTPDoer
	logger     *slog.Logger

	sessionMu sync.RWMutex
	sessionID string
}

// NewClient constructs a client for the RPC endpoint in cfg.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.URL)
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "transmission", "new client", "parse rpc url", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, services.Wrap(services.ErrConfiguration, "transmission", "new client", fmt.Sprintf("rpc url %q must be an absolute http(s) url", endpoint), nil)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := &Client{
		endpoint:   endpoint,
		username:   cfg.Username,
		password:   cfg.Password,
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "transmission")
	return client, nil
}

// Endpoint returns the RPC URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SessionID returns the session token currently held, or "" before the first
// handshake.
func (c *Client) SessionID() string {
	c.sessionMu.RLock()
	defer c.sessionMu.RUnlock()
	return c.sessionID
}

// refreshSessionID stores fresh only while the held token is still the one
// the rejected request carried. A 409 that lost the race to a newer refresh
// leaves the newer token in place.
func (c *Client) refreshSessionID(sent, fresh string) (current string, swapped bool) {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	if c.sessionID != sent {
		return c.sessionID, false
	}
	c.sessionID = fresh
	return fresh, true
}

// Call issues method with arguments. A nil arguments map is sent as {}.
func (c *Client) Call(ctx context.Context, method string, arguments map[string]any) (*Response, error) {
	return c.Send(ctx, Request{Method: method, Arguments: arguments})
}

// CallInto issues method and decodes the returned arguments object into out.
func (c *Client) CallInto(ctx context.Context, method string, arguments map[string]any, out any) error {
	resp, err := c.Call(ctx, method, arguments)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := resp.Decode(out); err != nil {
		return &ProtocolError{Method: method, StatusCode: http.StatusOK, Err: fmt.Errorf("decode arguments: %w", err)}
	}
	return nil
}

// Send issues req, refreshing the session token and retrying once when the
// daemon answers 409. At most two requests are made.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	method := strings.TrimSpace(req.Method)
	if method == "" {
		return nil, services.Wrap(services.ErrValidation, "transmission", "call", "method name required", nil)
	}
	req.Method = method
	if req.Arguments == nil {
		req.Arguments = map[string]any{}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "transmission", method, "encode request", err)
	}

	logger := logging.WithContext(ctx, c.logger)
	for attempt := 0; attempt <= maxSessionRetries; attempt++ {
		sent := c.SessionID()
		result, err := c.roundTrip(ctx, method, body, sent)
		if err != nil {
			return nil, err
		}
		logger.Debug("transmission rpc attempt",
			logging.String("method", method),
			logging.Int("attempt", attempt+1),
			logging.Int("status", result.statusCode),
			logging.Duration("duration", result.elapsed),
		)
		if result.statusCode != http.StatusConflict {
			return decodeResponse(method, result)
		}

		fresh := strings.TrimSpace(result.header.Get(SessionHeader))
		if fresh == "" {
			return nil, &ProtocolError{
				Method:     method,
				StatusCode: result.statusCode,
				Err:        fmt.Errorf("409 response without %s header", SessionHeader),
			}
		}
		current, swapped := c.refreshSessionID(sent, fresh)
		if !swapped {
			logger.Debug("transmission session id already refreshed",
				logging.String("method", method),
				logging.String("rejected", redactSessionID(sent)),
				logging.String("current", redactSessionID(current)),
			)
			continue
		}
		logger.Info("transmission session id refreshed",
			logging.String("method", method),
			logging.String("previous", redactSessionID(sent)),
			logging.String("current", redactSessionID(current)),
		)
	}
	return nil, &staleSessionError{method: method}
}

type attemptResult struct {
	statusCode int
	header     http.Header
	body       []byte
	elapsed    time.Duration
}

// roundTrip performs one POST bounded by the client timeout.
func (c *Client) roundTrip(ctx context.Context, method string, body []byte, sessionID string) (attemptResult, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return attemptResult{}, services.Wrap(services.ErrConfiguration, "transmission", method, "build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if sessionID != "" {
		httpReq.Header.Set(SessionHeader, sessionID)
	}
	if c.username != "" || c.password != "" {
		httpReq.SetBasicAuth(c.username, c.password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return attemptResult{}, newConnectionError(method, attemptCtx, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return attemptResult{}, newConnectionError(method, attemptCtx, fmt.Errorf("read response: %w", err))
	}
	return attemptResult{
		statusCode: resp.StatusCode,
		header:     resp.Header,
		body:       payload,
		elapsed:    time.Since(start),
	}, nil
}

func newConnectionError(method string, attemptCtx context.Context, err error) *ConnectionError {
	timeout := errors.Is(attemptCtx.Err(), context.DeadlineExceeded)
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		timeout = true
	}
	return &ConnectionError{Method: method, Timeout: timeout, Err: err}
}

func decodeResponse(method string, result attemptResult) (*Response, error) {
	if result.statusCode < http.StatusOK || result.statusCode >= http.StatusMultipleChoices {
		return nil, &ProtocolError{
			Method:     method,
			StatusCode: result.statusCode,
			Body:       snippet(result.body),
		}
	}

	var env envelope
	if err := json.Unmarshal(result.body, &env); err != nil {
		return nil, &ProtocolError{
			Method:     method,
			StatusCode: result.statusCode,
			Body:       snippet(result.body),
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	if env.Result == nil {
		return nil, &ProtocolError{
			Method:     method,
			StatusCode: result.statusCode,
			Body:       snippet(result.body),
			Err:        errors.New("response missing result"),
		}
	}
	if *env.Result != ResultSuccess {
		message := strings.TrimSpace(*env.Result)
		if message == "" {
			message = "unknown error"
		}
		return nil, &RPCError{Method: method, Result: message}
	}
	return &Response{Result: *env.Result, Arguments: env.Arguments, Tag: env.Tag}, nil
}

func snippet(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= errorBodyLimit {
		return text
	}
	cut := errorBodyLimit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

func redactSessionID(id string) string {
	if id == "" {
		return "<none>"
	}
	if len(id) <= 6 {
		return id
	}
	return id[:6] + "..."
}
