package redditkit

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	pkgerrs "github.com/avokic/redditkit/pkg/errors"
	"github.com/avokic/redditkit/test_helpers"
)

func TestSubmitPostContentURLExclusive(t *testing.T) {
	ms := test_helpers.NewRedditMockServer()
	defer ms.Close()

	client := newTestClient(t, ms)

	tests := []struct {
		name string
		opts *SubmitOptions
	}{
		{name: "neither", opts: &SubmitOptions{}},
		{name: "both", opts: &SubmitOptions{Content: "text", URL: "https://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.SubmitPost(context.Background(), "golang", "A Title", tt.opts)
			var cfgErr *pkgerrs.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error type = %T, want *ConfigError", err)
			}
		})
	}

	if got := len(ms.Requests()); got != 0 {
		t.Errorf("made %d requests, want 0", got)
	}
}

func TestSubmitTextPost(t *testing.T) {
	ms := test_helpers.NewRedditMockServer()
	defer ms.Close()

	ms.SetResponse("/api/submit", &test_helpers.MockResponse{
		Status: http.StatusOK,
		Body:   `{"json":{"errors":[],"data":{"id":"new1","name":"t3_new1","url":"https://www.reddit.com/r/golang/comments/new1/a_title/"}}}`,
	})
	ms.SetResponse("/api/info", &test_helpers.MockResponse{
		Status: http.StatusOK,
		Body:   `{"kind":"Listing","data":{"children":[{"kind":"t3","data":{"id":"new1","title":"A Title","permalink":"/r/golang/comments/new1/a_title/"}}]}}`,
	})

	client := newTestClient(t, ms)
	result, err := client.SubmitPost(context.Background(), "golang", "A Title", &SubmitOptions{Content: "body text"})
	if err != nil {
		t.Fatalf("SubmitPost() error: %v", err)
	}

	if result.PostID != "new1" {
		t.Errorf("PostID = %q", result.PostID)
	}
	if result.Post == nil || result.Post.Title != "A Title" {
		t.Errorf("Post = %+v", result.Post)
	}
	if result.Permalink != "https://reddit.com/r/golang/comments/new1/a_title/" {
		t.Errorf("Permalink = %q", result.Permalink)
	}

	entry, err := ms.LastRequest("/api/submit")
	if err != nil {
		t.Fatal(err)
	}
	form, err := url.ParseQuery(entry.Body)
	if err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}
	if form.Get("kind") != "self" || form.Get("sr") != "golang" || form.Get("text") != "body text" {
		t.Errorf("form = %v", form)
	}
	if form.Get("api_type") != "json" {
		t.Errorf("api_type = %q", form.Get("api_type"))
	}
}

func TestSubmitLinkPost(t *testing.T) {
	ms := test_helpers.NewRedditMockServer()
	defer ms.Close()

	ms.SetResponse("/api/submit", &test_helpers.MockResponse{
		Status: http.StatusOK,
		Body:   `{"json":{"errors":[],"data":{"id":"new2","name":"t3_new2","url":"https://www.reddit.com/r/golang/comments/new2/a_link/"}}}`,
	})
	ms.SetResponse("/api/info", &test_helpers.MockResponse{
		Status: http.StatusOK,
		Body:   `{"kind":"Listing","data":{"children":[]}}`,
	})

	client := newTestClient(t, ms)
	result, err := client.SubmitPost(context.Background(), "golang", "A Link", &SubmitOptions{
		URL:     "https://go.dev/blog",
		FlairID: "flair-1",
	})
	if err != nil {
		t.Fatalf("SubmitPost() error: %v", err)
	}
	if result.PostID != "new2" {
		t.Errorf("PostID = %q", result.PostID)
	}
	// The follow-up fetch found nothing; the submit URL survives.
	if result.Post != nil {
		t.Errorf("Post = %+v, want nil", result.Post)
	}
	if !strings.Contains(result.Permalink, "new2") {
		t.Errorf("Permalink = %q", result.Permalink)
	}

	entry, err := ms.LastRequest("/api/submit")
	if err != nil {
		t.Fatal(err)
	}
	form, _ := url.ParseQuery(entry.Body)
	if form.Get("kind") != "link" || form.Get("url") != "https://go.dev/blog" {
		t.Errorf("form = %v", form)
	}
	if form.Get("flair_id") != "flair-1" {
		t.Errorf("flair_id = %q", form.Get("flair_id"))
	}
}

func TestSubmitPostEnvelopeError(t *testing.T) {
	ms := test_helpers.NewRedditMockServer()
	defer ms.Close()

	ms.SetResponse("/api/submit", &test_helpers.MockResponse{
		Status: http.StatusOK,
		Body:   `{"json":{"errors":[["SUBREDDIT_NOEXIST","that subreddit doesn't exist","sr"]],"data":{}}}`,
	})

	client := newTestClient(t, ms)
	_, err := client.SubmitPost(context.Background(), "nope", "A Title", &SubmitOptions{Content: "x"})

	var apiErr *pkgerrs.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if !strings.Contains(apiErr.Message, "SUBREDDIT_NOEXIST") {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestReplyToPost(t *testing.T) {
	ms := test_helpers.NewRedditMockServer()
	defer ms.Close()

	ms.SetResponse("/api/comment", &test_helpers.MockResponse{
		Status: http.StatusOK,
		Body:   `{"json":{"errors":[],"data":{"things":[{"kind":"t1","data":{"id":"newc1","permalink":"/r/golang/comments/abc/post/newc1/","replies":""}}]}}}`,
	})

	client := newTestClient(t, ms)
	result, err := client.ReplyToPost(context.Background(), "abc123", "nice post")
	if err != nil {
		t.Fatalf("ReplyToPost() error: %v", err)
	}
	if result.CommentID != "newc1" {
		t.Errorf("CommentID = %q", result.CommentID)
	}
	if !strings.HasPrefix(result.Permalink, "https://reddit.com/") {
		t.Errorf("Permalink = %q", result.Permalink)
	}

	entry, err := ms.LastRequest("/api/comment")
	if err != nil {
		t.Fatal(err)
	}
	form, _ := url.ParseQuery(entry.Body)
	if form.Get("thing_id") != "t3_abc123" {
		t.Errorf("thing_id = %q, want t3_abc123", form.Get("thing_id"))
	}
}

func TestReplyToComment(t *testing.T) {
	ms := test_helpers.NewRedditMockServer()
	defer ms.Close()

	ms.SetResponse("/api/comment", &test_helpers.MockResponse{
		Status: http.StatusOK,
		Body:   `{"json":{"errors":[],"data":{"things":[{"kind":"t1","data":{"id":"newc2","replies":""}}]}}}`,
	})

	client := newTestClient(t, ms)
	result, err := client.ReplyToComment(context.Background(), "c1", "I agree")
	if err != nil {
		t.Fatalf("ReplyToComment() error: %v", err)
	}
	if result.CommentID != "newc2" {
		t.Errorf("CommentID = %q", result.CommentID)
	}

	entry, err := ms.LastRequest("/api/comment")
	if err != nil {
		t.Fatal(err)
	}
	form, _ := url.ParseQuery(entry.Body)
	if form.Get("thing_id") != "t1_c1" {
		t.Errorf("thing_id = %q, want t1_c1", form.Get("thing_id"))
	}
}

func TestReplyTextValidation(t *testing.T) {
	ms := test_helpers.NewRedditMockServer()
	defer ms.Close()

	client := newTestClient(t, ms)

	if _, err := client.ReplyToPost(context.Background(), "abc123", ""); err == nil {
		t.Error("expected error for empty text")
	}
	if _, err := client.ReplyToPost(context.Background(), "abc123", strings.Repeat("a", 10001)); err == nil {
		t.Error("expected error for oversized text")
	}
	if got := len(ms.Requests()); got != 0 {
		t.Errorf("made %d requests, want 0", got)
	}
}

func TestEditComment(t *testing.T) {
	ms := test_helpers.NewRedditMockServer()
	defer ms.Close()

	ms.SetResponse("/api/editusertext", &test_helpers.MockResponse{
		Status: http.StatusOK,
		Body:   `{"json":{"errors":[],"data":{"things":[{"kind":"t1","data":{"id":"c1","body":"new text","replies":""}}]}}}`,
	})

	client := newTestClient(t, ms)
	result, err := client.EditComment(context.Background(), "c1", "new text")
	if err != nil {
		t.Fatalf("EditComment() error: %v", err)
	}
	if result.CommentID != "c1" || !strings.Contains(result.Message, "edited") {
		t.Errorf("result = %+v", result)
	}

	entry, err := ms.LastRequest("/api/editusertext")
	if err != nil {
		t.Fatal(err)
	}
	form, _ := url.ParseQuery(entry.Body)
	if form.Get("thing_id") != "t1_c1" || form.Get("text") != "new text" {
		t.Errorf("form = %v", form)
	}
}

func TestDeleteComment(t *testing.T) {
	ms := test_helpers.NewRedditMockServer()
	defer ms.Close()

	client := newTestClient(t, ms)
	result, err := client.DeleteComment(context.Background(), "c1")
	if err != nil {
		t.Fatalf("DeleteComment() error: %v", err)
	}
	if result.CommentID != "c1" || !strings.Contains(result.Message, "deleted") {
		t.Errorf("result = %+v", result)
	}

	entry, err := ms.LastRequest("/api/del")
	if err != nil {
		t.Fatal(err)
	}
	form, _ := url.ParseQuery(entry.Body)
	if form.Get("id") != "t1_c1" {
		t.Errorf("id = %q, want t1_c1", form.Get("id"))
	}
}
