package sonarqube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxErrorBody limits how much of an error response body is carried into an
// APIError message. SonarQube error bodies are short JSON; anything bigger
// is an HTML error page we do not want verbatim in a log line.
const maxErrorBody = 2048

// defaultTimeout is the HTTP client timeout used when the caller does not
// provide one. It matches the config package default.
const defaultTimeout = 30 * time.Second

// Client calls the SonarQube Web API for a single server with a single
// bearer token. It is safe for sequential use; this tool never issues
// concurrent calls.
type Client struct {
	// baseURL is the server URL with any trailing slash trimmed.
	baseURL string

	// token is the bearer token attached to every request.
	token string

	// httpClient performs the requests. Its Timeout is the only timeout
	// handling in the tool.
	httpClient *http.Client

	// logger records request-level diagnostics at debug level.
	logger *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests and by
// callers that need a custom transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout for each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the given server URL and bearer token.
// The URL must be absolute with an http or https scheme; anything else
// fails with ErrInvalidServerURL before any network traffic happens.
func NewClient(serverURL, token string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(serverURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return nil, ErrInvalidServerURL
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, ErrInvalidServerURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(serverURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// get performs an authenticated GET against the given API path (for example
// "api/issues/search") and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, apiPath string, query url.Values, dst any) error {
	requestURL := c.baseURL + "/" + apiPath
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &NetworkError{URL: c.baseURL + "/" + apiPath, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("sonarqube request", "path", apiPath)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{URL: c.baseURL + "/" + apiPath, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck // Best effort
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("malformed JSON response from %s: %v", apiPath, err),
		}
	}
	return nil
}
