package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	pkgerrs "github.com/avokic/redditkit/pkg/errors"
	"github.com/avokic/redditkit/pkg/types"
)

const responsePreviewLen = 500

// Client is a thin authenticated wrapper over net/http scoped to the Reddit
// API host. It attaches the bearer token and User-Agent, executes one
// request per call and maps non-success statuses to typed errors. There is
// no retrying, throttling, or connection state.
type Client struct {
	client    *http.Client
	BaseURL   *url.URL
	UserAgent string
	token     string
	logger    *slog.Logger
}

// NewClient returns an authenticated API client. A nil httpClient falls back
// to http.DefaultClient; a nil logger disables debug logging.
func NewClient(httpClient *http.Client, authToken, baseURL, userAgent string, logger *slog.Logger) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, &pkgerrs.RequestError{Err: err}
	}
	if !strings.HasSuffix(parsedURL.Path, "/") {
		parsedURL.Path += "/"
	}

	return &Client{
		client:    httpClient,
		BaseURL:   parsedURL,
		UserAgent: userAgent,
		token:     authToken,
		logger:    logger,
	}, nil
}

// NewRequest creates an API request for a path relative to the base URL,
// with authentication headers set.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u, err := c.BaseURL.Parse(path)
	if err != nil {
		return nil, &pkgerrs.RequestError{URL: path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, &pkgerrs.RequestError{URL: u.String(), Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.UserAgent)
	if body != nil && method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return req, nil
}

// Do executes a request and decodes the response into the Thing envelope
// pointed to by v. Passing a nil v discards the body.
func (c *Client) Do(req *http.Request, v *types.Thing) error {
	body, err := c.DoRaw(req)
	if err != nil {
		return err
	}

	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return &pkgerrs.ParseError{Err: err}
		}
	}

	return nil
}

// DoRaw executes a request and returns the raw response bytes. Non-2xx
// statuses become APIErrors annotated with the likely cause.
func (c *Client) DoRaw(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &pkgerrs.RequestError{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pkgerrs.RequestError{URL: req.URL.String(), Err: err}
	}

	if c.logger != nil {
		preview := body
		if len(preview) > responsePreviewLen {
			preview = preview[:responsePreviewLen]
		}
		c.logger.Debug("reddit API response",
			"method", req.Method,
			"path", req.URL.Path,
			"status", resp.StatusCode,
			"response_preview", string(preview))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode, body)
	}

	return body, nil
}

// statusError maps an HTTP status to an APIError, carrying Reddit's own
// message when the body holds one and a help hint for the common cases.
func statusError(statusCode int, body []byte) *pkgerrs.APIError {
	apiErr := &pkgerrs.APIError{StatusCode: statusCode, Message: "request failed"}

	var errBody struct {
		Message string `json:"message"`
		Reason  string `json:"reason"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil {
		if errBody.Message != "" {
			apiErr.Message = errBody.Message
		}
		if errBody.Reason != "" {
			apiErr.Message += ": " + errBody.Reason
		}
	}

	switch statusCode {
	case http.StatusForbidden:
		apiErr.Help = "check OAuth scopes (read, submit, vote, identity, modposts); Reddit also returns 403 when rate limited"
	case http.StatusNotFound:
		apiErr.Help = "the resource may be deleted or may never have existed"
	case http.StatusUnauthorized:
		apiErr.Help = "the bearer token may be expired or revoked"
	}

	return apiErr
}
