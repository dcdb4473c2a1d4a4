package redditkit

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"

	pkgerrs "github.com/avokic/redditkit/pkg/errors"
)

// credentialsEnvVar holds the full credential set as one JSON object.
const credentialsEnvVar = "REDDIT_CREDENTIALS"

const credentialsHelpURL = "https://www.reddit.com/prefs/apps"

// Credentials holds the OAuth2 credential set for a Reddit script app. All
// four fields are required. They are held for the process lifetime and never
// mutated.
//
// Required scopes: read, submit, vote, identity. The moderation operations
// additionally need modposts.
type Credentials struct {
	ClientID     string `json:"client_id" split_words:"true"`
	ClientSecret string `json:"client_secret" split_words:"true"`
	RefreshToken string `json:"refresh_token" split_words:"true"`
	UserAgent    string `json:"user_agent" split_words:"true"`
}

// LoadCredentials reads credentials from the environment. REDDIT_CREDENTIALS
// takes precedence and must be a JSON object with client_id, client_secret,
// refresh_token, and user_agent; otherwise the individual REDDIT_CLIENT_ID,
// REDDIT_CLIENT_SECRET, REDDIT_REFRESH_TOKEN, and REDDIT_USER_AGENT
// variables are used.
func LoadCredentials() (*Credentials, error) {
	var creds Credentials

	if raw := os.Getenv(credentialsEnvVar); raw != "" {
		if err := json.Unmarshal([]byte(raw), &creds); err != nil {
			return nil, &pkgerrs.ConfigError{
				Field:   credentialsEnvVar,
				Message: "invalid " + credentialsEnvVar + " format",
				Help:    "must be valid JSON with client_id, client_secret, refresh_token, user_agent",
			}
		}
	} else if err := envconfig.Process("reddit", &creds); err != nil {
		return nil, &pkgerrs.ConfigError{Field: credentialsEnvVar, Message: err.Error()}
	}

	if creds == (Credentials{}) {
		return nil, &pkgerrs.ConfigError{
			Field:   credentialsEnvVar,
			Message: credentialsEnvVar + " not configured",
			Help:    "get credentials at " + credentialsHelpURL,
		}
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Validate checks that all four credential fields are present.
func (c *Credentials) Validate() error {
	if c == nil {
		return &pkgerrs.ConfigError{
			Field:   "credentials",
			Message: "credentials are required",
			Help:    "get credentials at " + credentialsHelpURL,
		}
	}

	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if c.RefreshToken == "" {
		missing = append(missing, "refresh_token")
	}
	if c.UserAgent == "" {
		missing = append(missing, "user_agent")
	}

	if len(missing) > 0 {
		return &pkgerrs.ConfigError{
			Field:   "credentials",
			Message: "missing required credential fields: " + strings.Join(missing, ", "),
			Help:    "credentials must include: client_id, client_secret, refresh_token, user_agent",
		}
	}
	return nil
}
