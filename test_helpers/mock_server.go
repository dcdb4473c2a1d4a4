// Package test_helpers provides a configurable mock Reddit API server shared
// by the client tests.
package test_helpers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// MockResponse defines a canned response for one path.
type MockResponse struct {
	Status  int
	Body    string
	Headers map[string]string
}

// RequestEntry records one request the mock server received.
type RequestEntry struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   string
}

// MockServer serves canned responses keyed by URL path and records every
// request it receives.
type MockServer struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]*MockResponse
	defResp   *MockResponse
	log       []RequestEntry
}

// NewMockServer starts a mock server with a generic 200 default response.
func NewMockServer() *MockServer {
	ms := &MockServer{
		responses: make(map[string]*MockResponse),
		defResp: &MockResponse{
			Status: http.StatusOK,
			Body:   `{}`,
		},
	}
	ms.server = httptest.NewServer(ms)
	return ms
}

// NewRedditMockServer starts a mock server pre-seeded with a working OAuth
// token endpoint.
func NewRedditMockServer() *MockServer {
	ms := NewMockServer()
	ms.SetResponse("/api/v1/access_token", &MockResponse{
		Status: http.StatusOK,
		Body:   `{"access_token":"mock_token","token_type":"bearer","expires_in":3600,"scope":"*"}`,
	})
	return ms
}

// URL returns the base URL of the mock server, with a trailing slash so it
// can be used directly as a client base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL + "/"
}

// Close shuts down the mock server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse configures the response for a specific path.
func (ms *MockServer) SetResponse(path string, response *MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.responses[path] = response
}

// SetDefaultResponse configures the response for paths with no explicit
// entry.
func (ms *MockServer) SetDefaultResponse(response *MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.defResp = response
}

// SetError makes every unconfigured path return the given status and message.
func (ms *MockServer) SetError(status int, message string) {
	ms.SetDefaultResponse(&MockResponse{
		Status: status,
		Body:   fmt.Sprintf(`{"message":%q,"error":%d}`, message, status),
	})
}

// ServeHTTP implements http.Handler.
func (ms *MockServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	ms.mu.Lock()
	ms.log = append(ms.log, RequestEntry{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	response, ok := ms.responses[r.URL.Path]
	if !ok {
		response = ms.defResp
	}
	ms.mu.Unlock()

	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(response.Status)
	_, _ = w.Write([]byte(response.Body))
}

// Requests returns a copy of the request log.
func (ms *MockServer) Requests() []RequestEntry {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]RequestEntry(nil), ms.log...)
}

// RequestCount returns the number of requests made to the given path.
func (ms *MockServer) RequestCount(path string) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	n := 0
	for _, entry := range ms.log {
		if entry.Path == path {
			n++
		}
	}
	return n
}

// LastRequest returns the most recent request to the given path, or an error
// when none was made.
func (ms *MockServer) LastRequest(path string) (*RequestEntry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i := len(ms.log) - 1; i >= 0; i-- {
		if ms.log[i].Path == path {
			entry := ms.log[i]
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("no requests found for path: %s", path)
}
