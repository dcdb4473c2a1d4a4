// Package redditkit wraps Reddit's REST API behind an OAuth2-authenticated
// HTTP client. It exposes callable operations to search content, read posts
// and comments, post content, vote, and perform limited moderation actions.
//
// Every operation maps onto a single Reddit API endpoint: validate inputs,
// issue one HTTP request, reshape the JSON response into a flat result, and
// return it or a typed error. There is no caching, retrying, or rate
// limiting; Reddit allows 60 requests per minute and callers are expected to
// stay under that themselves.
//
// Basic usage:
//
//	creds, err := redditkit.LoadCredentials()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := redditkit.NewClient(&redditkit.Config{Credentials: creds})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.SearchPosts(ctx, "golang generics", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
package redditkit

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/avokic/redditkit/internal"
	pkgerrs "github.com/avokic/redditkit/pkg/errors"
	"github.com/avokic/redditkit/pkg/types"
)

const (
	// DefaultBaseURL is the Reddit API host used for authenticated calls.
	DefaultBaseURL = "https://oauth.reddit.com/"
	// DefaultAuthURL is the Reddit OAuth host used for the token exchange.
	DefaultAuthURL = "https://www.reddit.com/"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Config holds the configuration for the Reddit client. Credentials is the
// only required field.
type Config struct {
	// Credentials holds the OAuth2 client id/secret, refresh token, and
	// user agent. Load them with LoadCredentials or fill them in directly.
	Credentials *Credentials

	// BaseURL for the Reddit API. Defaults to DefaultBaseURL.
	BaseURL string

	// AuthURL for the OAuth token exchange. Defaults to DefaultAuthURL.
	AuthURL string

	// HTTPClient to use for requests. Defaults to a client with
	// DefaultTimeout.
	HTTPClient *http.Client

	// Logger for structured diagnostics. Optional; nil disables debug
	// logging.
	Logger *slog.Logger
}

// TokenProvider retrieves an access token for authenticated requests.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// transport is the behavior the client needs from the authenticated HTTP
// layer. internal.Client implements it; tests substitute mocks.
type transport interface {
	NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error)
	Do(req *http.Request, v *types.Thing) error
	DoRaw(req *http.Request) ([]byte, error)
}

// Client is the Reddit API client. All operations are synchronous and
// independent; the only shared state is the lazily-initialized transport.
type Client struct {
	http      transport
	auth      TokenProvider
	config    *Config
	parser    *internal.Parser
	validator *internal.Validator

	connectOnce sync.Once
	connectErr  error
}

// NewClient validates the configuration and returns a client. The bearer
// token is obtained on the first API call (or an explicit Connect).
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, &pkgerrs.ConfigError{Message: "config cannot be nil"}
	}
	if err := config.Credentials.Validate(); err != nil {
		return nil, err
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.AuthURL == "" {
		config.AuthURL = DefaultAuthURL
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	validator := internal.NewValidator()
	if err := validator.UserAgent(config.Credentials.UserAgent); err != nil {
		return nil, err
	}

	auth, err := internal.NewAuthenticator(
		config.HTTPClient,
		config.Credentials.ClientID,
		config.Credentials.ClientSecret,
		config.Credentials.RefreshToken,
		config.Credentials.UserAgent,
		config.AuthURL,
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		auth:      auth,
		config:    config,
		parser:    internal.NewParser(),
		validator: validator,
	}, nil
}

// Connect exchanges the refresh token for a bearer token and initializes the
// authenticated transport. It is safe to call multiple times; the exchange
// happens once.
func (c *Client) Connect(ctx context.Context) error {
	c.connectOnce.Do(func() {
		c.connectErr = c.initialize(ctx)
	})
	return c.connectErr
}

func (c *Client) initialize(ctx context.Context) error {
	token, err := c.auth.GetToken(ctx)
	if err != nil {
		return err
	}

	httpClient, err := internal.NewClient(
		c.config.HTTPClient,
		token,
		c.config.BaseURL,
		c.config.Credentials.UserAgent,
		c.config.Logger,
	)
	if err != nil {
		return err
	}

	c.http = httpClient
	return nil
}

// ensureConnected lazily initializes the transport before a request.
func (c *Client) ensureConnected(ctx context.Context) error {
	if err := c.Connect(ctx); err != nil {
		return err
	}
	if c.http == nil {
		return &pkgerrs.ConfigError{Message: "client not connected"}
	}
	return nil
}

// IsConnected reports whether the client holds an authenticated transport.
func (c *Client) IsConnected() bool {
	return c.http != nil
}

// Me returns the profile of the authenticated user. Reddit serves this from
// GET /api/v1/me, which returns the bare account payload without the usual
// kind envelope.
func (c *Client) Me(ctx context.Context) (*types.UserProfile, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "api/v1/me", nil)
	if err != nil {
		return nil, err
	}

	body, err := c.http.DoRaw(req)
	if err != nil {
		return nil, err
	}

	account, err := decodeAccount(body)
	if err != nil {
		return nil, &pkgerrs.ParseError{Operation: "Me", Err: err}
	}

	return c.parser.FlattenProfile(account), nil
}

// decodeAccount unmarshals an account payload, accepting both the bare form
// /api/v1/me returns and the kind-wrapped form /user/{name}/about returns.
func decodeAccount(body []byte) (*types.AccountData, error) {
	var thing types.Thing
	if err := json.Unmarshal(body, &thing); err == nil && thing.Kind == types.KindAccount {
		var account types.AccountData
		if err := json.Unmarshal(thing.Data, &account); err != nil {
			return nil, err
		}
		return &account, nil
	}

	var account types.AccountData
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// listingQuery encodes limit and pass-through pagination tokens.
func listingQuery(limit int, after, before string) url.Values {
	q := url.Values{}
	q.Set("raw_json", "1")
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if after != "" {
		q.Set("after", after)
	}
	if before != "" {
		q.Set("before", before)
	}
	return q
}
