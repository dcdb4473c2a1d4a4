package redditkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrs "github.com/avokic/redditkit/pkg/errors"
)

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	t.Setenv("REDDIT_CREDENTIALS", "")
	t.Setenv("REDDIT_CLIENT_ID", "")
	t.Setenv("REDDIT_CLIENT_SECRET", "")
	t.Setenv("REDDIT_REFRESH_TOKEN", "")
	t.Setenv("REDDIT_USER_AGENT", "")
}

func TestLoadCredentialsFromJSON(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("REDDIT_CREDENTIALS", `{
		"client_id": "cid",
		"client_secret": "csecret",
		"refresh_token": "rtok",
		"user_agent": "script:test:v1.0"
	}`)

	creds, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "cid", creds.ClientID)
	assert.Equal(t, "csecret", creds.ClientSecret)
	assert.Equal(t, "rtok", creds.RefreshToken)
	assert.Equal(t, "script:test:v1.0", creds.UserAgent)
}

func TestLoadCredentialsInvalidJSON(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("REDDIT_CREDENTIALS", `{not json`)

	_, err := LoadCredentials()
	require.Error(t, err)

	var cfgErr *pkgerrs.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Help, "client_id")
}

func TestLoadCredentialsFromIndividualVars(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("REDDIT_CLIENT_ID", "cid")
	t.Setenv("REDDIT_CLIENT_SECRET", "csecret")
	t.Setenv("REDDIT_REFRESH_TOKEN", "rtok")
	t.Setenv("REDDIT_USER_AGENT", "script:test:v1.0")

	creds, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "cid", creds.ClientID)
	assert.Equal(t, "script:test:v1.0", creds.UserAgent)
}

func TestLoadCredentialsJSONTakesPrecedence(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("REDDIT_CLIENT_ID", "from-env")
	t.Setenv("REDDIT_CREDENTIALS", `{
		"client_id": "from-json",
		"client_secret": "s",
		"refresh_token": "r",
		"user_agent": "ua"
	}`)

	creds, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "from-json", creds.ClientID)
}

func TestLoadCredentialsNotConfigured(t *testing.T) {
	clearCredentialEnv(t)

	_, err := LoadCredentials()
	require.Error(t, err)

	var cfgErr *pkgerrs.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Help, "reddit.com/prefs/apps")
}

func TestLoadCredentialsIncomplete(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("REDDIT_CREDENTIALS", `{"client_id": "cid"}`)

	_, err := LoadCredentials()
	require.Error(t, err)

	var cfgErr *pkgerrs.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Message, "client_secret")
	assert.Contains(t, cfgErr.Message, "refresh_token")
	assert.Contains(t, cfgErr.Message, "user_agent")
	assert.NotContains(t, cfgErr.Message, "client_id,")
}

func TestCredentialsValidate(t *testing.T) {
	var nilCreds *Credentials
	assert.Error(t, nilCreds.Validate())

	complete := &Credentials{
		ClientID:     "a",
		ClientSecret: "b",
		RefreshToken: "c",
		UserAgent:    "d",
	}
	assert.NoError(t, complete.Validate())

	missing := &Credentials{ClientID: "a"}
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client_secret")
}
