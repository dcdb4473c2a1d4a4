// Package errors defines the error types returned by the Reddit toolkit.
// Conditions the upstream API reports with a help hint carry that hint in
// the Help field so callers can surface it.
package errors

import (
	"fmt"
	"strings"
)

// ConfigError indicates invalid credentials or an input rejected before any
// network call was made.
type ConfigError struct {
	// Field names the configuration field or parameter at fault.
	Field string
	// Message describes what is wrong with it.
	Message string
	// Help optionally tells the caller how to fix it.
	Help string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// AuthError indicates the bearer token exchange failed.
type AuthError struct {
	// StatusCode is the HTTP status of the token endpoint response, if any.
	StatusCode int
	// Body is the raw response body, which may hold more detail.
	Body string
	// Err is the underlying network or decode error, if any.
	Err error
}

func (e *AuthError) Error() string {
	var sb strings.Builder
	sb.WriteString("auth error")
	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, ": status code %d", e.StatusCode)
	}
	if e.Body != "" {
		fmt.Fprintf(&sb, ", body: %q", e.Body)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ", err: %v", e.Err)
	}
	return sb.String()
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError represents a non-success response from the Reddit API.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Message is the error description, from Reddit when available.
	Message string
	// Help optionally hints at likely causes (missing scope, rate limit,
	// deleted resource).
	Help string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("reddit API error: status %d: %s", e.StatusCode, e.Message)
}

// UnsupportedError is returned by operations the Reddit API does not offer.
type UnsupportedError struct {
	Operation string
	Help      string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported by the Reddit API", e.Operation)
}

// RequestError indicates a transport-level failure while making a request.
type RequestError struct {
	// Operation is the name of the API operation that failed.
	Operation string
	// URL is the URL being accessed, when known.
	URL string
	// Err is the underlying error.
	Err error
}

func (e *RequestError) Error() string {
	if e.Operation != "" && e.URL != "" {
		return fmt.Sprintf("request error during %s to %s: %v", e.Operation, e.URL, e.Err)
	}
	if e.Operation != "" {
		return fmt.Sprintf("request error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("request error: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ParseError indicates a response body could not be decoded or reshaped.
type ParseError struct {
	// Operation is the name of the API operation whose response failed to parse.
	Operation string
	// Message describes the parse failure when Err alone is not enough.
	Message string
	// Err is the underlying decode error, if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Operation != "" {
		return fmt.Sprintf("parse error during %s: %s", e.Operation, msg)
	}
	return fmt.Sprintf("parse error: %s", msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
