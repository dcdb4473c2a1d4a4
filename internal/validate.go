package internal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	pkgerrs "github.com/avokic/redditkit/pkg/errors"
	"github.com/avokic/redditkit/pkg/types"
)

const (
	maxQueryLength     = 512
	maxSubredditLength = 50
	maxUsernameLength  = 50
	maxThingIDLength   = 20
	maxTitleLength     = 300
	maxTextLength      = 10000
	maxUserAgentLength = 256

	// MaxListingLimit and MaxCommentLimit bound the limit parameter; values
	// outside the range are clamped, not rejected.
	MaxListingLimit = 100
	MaxCommentLimit = 500
)

var searchTimeFilters = []string{"hour", "day", "week", "month", "year", "all"}

var searchSorts = []string{"relevance", "hot", "top", "new", "comments"}

var commentSorts = []string{"best", "top", "new", "controversial", "old", "qa", "confidence"}

// Validator checks operation parameters before any network call is made.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Query checks a search query is 1-512 characters.
func (v *Validator) Query(q string) error {
	if q == "" || utf8.RuneCountInString(q) > maxQueryLength {
		return &pkgerrs.ConfigError{Field: "query", Message: fmt.Sprintf("query must be 1-%d characters", maxQueryLength)}
	}
	return nil
}

// Subreddit checks a subreddit name is 1-50 characters.
func (v *Validator) Subreddit(name string) error {
	if name == "" || len(name) > maxSubredditLength {
		return &pkgerrs.ConfigError{Field: "subreddit", Message: fmt.Sprintf("subreddit name must be 1-%d characters", maxSubredditLength)}
	}
	return nil
}

// Username checks a username is 1-50 characters.
func (v *Validator) Username(name string) error {
	if name == "" || len(name) > maxUsernameLength {
		return &pkgerrs.ConfigError{Field: "username", Message: fmt.Sprintf("username must be 1-%d characters", maxUsernameLength)}
	}
	return nil
}

// ThingID checks a post, comment, or item ID is 1-20 base36 characters.
// A t1_/t3_ style prefix is accepted and validated against the same bound.
func (v *Validator) ThingID(field, id string) error {
	bare := id
	if len(id) > 3 && id[0] == 't' && id[2] == '_' {
		bare = id[3:]
	}
	if id == "" || len(id) > maxThingIDLength {
		return &pkgerrs.ConfigError{Field: field, Message: fmt.Sprintf("%s must be 1-%d characters", field, maxThingIDLength)}
	}
	for _, ch := range bare {
		if !(ch >= '0' && ch <= '9') && !(ch >= 'a' && ch <= 'z') && !(ch >= 'A' && ch <= 'Z') {
			return &pkgerrs.ConfigError{Field: field, Message: fmt.Sprintf("%s contains invalid character %q", field, ch)}
		}
	}
	return nil
}

// Title checks a post title is 1-300 characters.
func (v *Validator) Title(title string) error {
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return &pkgerrs.ConfigError{Field: "title", Message: fmt.Sprintf("title must be 1-%d characters", maxTitleLength)}
	}
	return nil
}

// Text checks a reply or edit body is 1-10000 characters.
func (v *Validator) Text(field, text string) error {
	if text == "" || utf8.RuneCountInString(text) > maxTextLength {
		return &pkgerrs.ConfigError{Field: field, Message: fmt.Sprintf("%s must be 1-%d characters", field, maxTextLength)}
	}
	return nil
}

// Direction checks a vote direction is one of up, down, clear.
func (v *Validator) Direction(d types.VoteDirection) error {
	if _, ok := d.Value(); !ok {
		return &pkgerrs.ConfigError{
			Field:   "direction",
			Message: fmt.Sprintf("invalid vote direction %q", d),
			Help:    "direction must be one of: up, down, clear",
		}
	}
	return nil
}

// TimeFilter checks a search time filter is one of the accepted periods.
// Empty means the default.
func (v *Validator) TimeFilter(t string) error {
	if t == "" {
		return nil
	}
	return oneOf("time_filter", t, searchTimeFilters)
}

// SearchSort checks a search sort is one of the accepted methods. Empty
// means the default.
func (v *Validator) SearchSort(s string) error {
	if s == "" {
		return nil
	}
	return oneOf("sort", s, searchSorts)
}

// CommentSort checks a comment sort is one of the accepted methods. Empty
// means the default.
func (v *Validator) CommentSort(s string) error {
	if s == "" {
		return nil
	}
	return oneOf("sort", s, commentSorts)
}

// UserAgent rejects user agent strings that are empty, oversized, or carry
// header-injection characters.
func (v *Validator) UserAgent(ua string) error {
	if ua == "" {
		return &pkgerrs.ConfigError{Field: "user_agent", Message: "user agent cannot be empty"}
	}
	if strings.ContainsAny(ua, "\r\n") {
		return &pkgerrs.ConfigError{Field: "user_agent", Message: "user agent cannot contain newline characters"}
	}
	if len(ua) > maxUserAgentLength {
		return &pkgerrs.ConfigError{Field: "user_agent", Message: fmt.Sprintf("user agent too long (max %d characters)", maxUserAgentLength)}
	}
	return nil
}

// ClampLimit forces a listing limit into [1, max], defaulting zero or
// negative values to def. Out-of-range values are clamped rather than
// rejected, matching the upstream behavior.
func (v *Validator) ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		limit = def
	}
	if limit < 1 {
		limit = 1
	}
	if limit > max {
		limit = max
	}
	return limit
}

func oneOf(field, value string, accepted []string) error {
	for _, a := range accepted {
		if value == a {
			return nil
		}
	}
	return &pkgerrs.ConfigError{
		Field:   field,
		Message: fmt.Sprintf("%s must be one of %s; got %q", field, strings.Join(accepted, ", "), value),
	}
}
