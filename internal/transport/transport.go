// Package transport performs the outbound HTTP calls of the dispatch core.
//
// Each call targets a fixed base URL plus an endpoint path, carries bearer
// authentication, and is retried immediately on connection-level failures
// until a response is obtained or the attempt budget is exhausted. HTTP
// status codes are never interpreted here; a well-formed error response is
// returned to the dispatcher as-is.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/esaiascronelius/cloudflare-ddns/internal/constants"
	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

// Request represents a single logical API request.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    interface{}
	Token   string
}

// Response represents a raw API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client issues HTTP requests against one API base URL.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	debug     bool
	logger    cfapi.Logger
	retry     *retryablehttp.Client
}

// Option configures the transport client.
type Option func(*Client)

// WithLogger sets the logger for the transport.
func WithLogger(logger cfapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.retry.Logger = &leveledLogger{logger: logger}
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAttempts sets the total number of transport attempts per call,
// including the first.
func WithAttempts(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.retry.RetryMax = attempts - 1
		}
	}
}

// WithTimeout bounds each individual attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retry.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests to
// inject a counting round tripper.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.retry.HTTPClient = httpClient
	}
}

// NewClient creates a transport client for the given base URL and default
// bearer token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultDispatchAttempts - 1
	retryClient.RetryWaitMin = 0
	retryClient.RetryWaitMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	// Connection-level failures only. A response with any status code ends
	// the loop; status interpretation belongs to the dispatcher.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		return err != nil, nil
	}

	retryClient.Backoff = func(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
		return 0
	}

	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		retry:   retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do performs the request, retrying transport failures until a response is
// obtained or the attempt budget is spent. Exhaustion surfaces as
// cfapi.ErrTransportExhausted; context cancellation is propagated unchanged.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.retry.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("request canceled: %w", err)
		}

		return nil, fmt.Errorf("%w: %w", cfapi.ErrTransportExhausted, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": httpResp.StatusCode,
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// buildRequest assembles the retryable request with authentication and
// serialized body.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	var rawBody []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("serializing request body: %w", err)
		}

		rawBody = data
	}

	url := c.baseURL + constants.APIBasePath + strings.TrimPrefix(req.Path, "/")

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, url, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	token := req.Token
	if token == "" {
		token = c.token
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	// Caller headers merge last-write-wins; callers in this system never
	// override the auth headers.
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// leveledLogger adapts cfapi.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger cfapi.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsFromPairs(keysAndValues))
}

func fieldsFromPairs(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}
