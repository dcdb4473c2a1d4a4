package internal

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/avokic/redditkit/pkg/types"
)

func TestFlattenPost(t *testing.T) {
	parser := NewParser()

	link := &types.LinkData{
		ID:          "abc123",
		Title:       "Test Post",
		Author:      "testuser",
		Subreddit:   "golang",
		Score:       42,
		UpvoteRatio: 0.93,
		NumComments: 7,
		Permalink:   "/r/golang/comments/abc123/test_post/",
		SelfText:    "hello world",
		IsSelf:      true,
	}

	post := parser.FlattenPost(link)
	if post.Permalink != "https://reddit.com/r/golang/comments/abc123/test_post/" {
		t.Errorf("Permalink = %q, want absolute URL", post.Permalink)
	}
	if post.Author != "testuser" {
		t.Errorf("Author = %q", post.Author)
	}
	if post.SelfText != "hello world" {
		t.Errorf("SelfText = %q", post.SelfText)
	}
}

func TestFlattenPostDeletedAuthor(t *testing.T) {
	parser := NewParser()

	post := parser.FlattenPost(&types.LinkData{ID: "abc", Author: ""})
	if post.Author != "[deleted]" {
		t.Errorf("Author = %q, want [deleted]", post.Author)
	}
}

func TestFlattenPostTruncatesSelfText(t *testing.T) {
	parser := NewParser()

	post := parser.FlattenPost(&types.LinkData{SelfText: strings.Repeat("x", 1200)})
	if len(post.SelfText) != 500 {
		t.Errorf("SelfText length = %d, want 500", len(post.SelfText))
	}

	// Truncation counts characters, not bytes.
	multibyte := parser.FlattenPost(&types.LinkData{SelfText: strings.Repeat("日", 501)})
	if got := []rune(multibyte.SelfText); len(got) != 500 {
		t.Errorf("SelfText rune length = %d, want 500", len(got))
	}
}

func TestFlattenCommentSubmissionID(t *testing.T) {
	parser := NewParser()

	withLink := parser.FlattenComment(&types.CommentData{ID: "c1", LinkID: "t3_abc123"}, "")
	if withLink.SubmissionID != "abc123" {
		t.Errorf("SubmissionID = %q, want abc123", withLink.SubmissionID)
	}

	withoutLink := parser.FlattenComment(&types.CommentData{ID: "c2"}, "def456")
	if withoutLink.SubmissionID != "def456" {
		t.Errorf("SubmissionID = %q, want def456", withoutLink.SubmissionID)
	}
}

func TestExtractPosts(t *testing.T) {
	parser := NewParser()

	listing := &types.Thing{
		Kind: types.KindListing,
		Data: json.RawMessage(`{
			"after": "t3_next",
			"before": null,
			"children": [
				{"kind": "t3", "data": {"id": "p1", "title": "First"}},
				{"kind": "t3", "data": {"id": "p2", "title": "Second"}},
				{"kind": "more", "data": {"children": ["p3"]}}
			]
		}`),
	}

	posts, listingData, err := parser.ExtractPosts(listing)
	if err != nil {
		t.Fatalf("ExtractPosts() error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].ID != "p1" || posts[1].ID != "p2" {
		t.Errorf("post IDs = %q, %q", posts[0].ID, posts[1].ID)
	}
	if listingData.After != "t3_next" {
		t.Errorf("After = %q", listingData.After)
	}
}

func TestExtractPostsWrongKind(t *testing.T) {
	parser := NewParser()

	_, _, err := parser.ExtractPosts(&types.Thing{Kind: "t1", Data: json.RawMessage(`{}`)})
	if err == nil {
		t.Fatal("expected error for non-Listing thing")
	}
}

func TestExtractCommentsNestedReplies(t *testing.T) {
	parser := NewParser()

	listing := &types.Thing{
		Kind: types.KindListing,
		Data: json.RawMessage(`{
			"children": [
				{
					"kind": "t1",
					"data": {
						"id": "c1",
						"author": "alice",
						"body": "top level",
						"parent_id": "t3_abc",
						"replies": {
							"kind": "Listing",
							"data": {
								"children": [
									{
										"kind": "t1",
										"data": {"id": "c2", "author": "bob", "body": "nested", "parent_id": "t1_c1", "replies": ""}
									},
									{
										"kind": "more",
										"data": {"count": 3, "children": ["c3", "c4", "c5"]}
									}
								]
							}
						}
					}
				}
			]
		}`),
	}

	comments, moreIDs, err := parser.ExtractComments(listing, "abc")
	if err != nil {
		t.Fatalf("ExtractComments() error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[0].ID != "c1" || comments[1].ID != "c2" {
		t.Errorf("comment order = %q, %q, want depth-first c1, c2", comments[0].ID, comments[1].ID)
	}
	if comments[1].SubmissionID != "abc" {
		t.Errorf("SubmissionID = %q", comments[1].SubmissionID)
	}
	if len(moreIDs) != 3 {
		t.Errorf("got %d more IDs, want 3", len(moreIDs))
	}
}

func TestExtractPostAndComments(t *testing.T) {
	parser := NewParser()

	var response []*types.Thing
	raw := `[
		{"kind": "Listing", "data": {"children": [{"kind": "t3", "data": {"id": "abc", "title": "The Post"}}]}},
		{"kind": "Listing", "data": {"children": [{"kind": "t1", "data": {"id": "c1", "body": "a comment", "replies": ""}}]}}
	]`
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}

	post, comments, moreIDs, err := parser.ExtractPostAndComments(response, "abc")
	if err != nil {
		t.Fatalf("ExtractPostAndComments() error: %v", err)
	}
	if post == nil || post.ID != "abc" {
		t.Errorf("post = %+v", post)
	}
	if len(comments) != 1 || comments[0].ID != "c1" {
		t.Errorf("comments = %+v", comments)
	}
	if len(moreIDs) != 0 {
		t.Errorf("moreIDs = %v", moreIDs)
	}
}

func TestExtractPostAndCommentsEmpty(t *testing.T) {
	parser := NewParser()

	_, _, _, err := parser.ExtractPostAndComments(nil, "abc")
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestParseAccount(t *testing.T) {
	parser := NewParser()

	account, err := parser.ParseAccount(&types.Thing{
		Kind: types.KindAccount,
		Data: json.RawMessage(`{"name":"spez","id":"1w72","link_karma":100,"comment_karma":200,"is_gold":true}`),
	})
	if err != nil {
		t.Fatalf("ParseAccount() error: %v", err)
	}

	profile := parser.FlattenProfile(account)
	if profile.Name != "spez" || profile.LinkKarma != 100 || !profile.IsGold {
		t.Errorf("profile = %+v", profile)
	}
	if profile.HasVerifiedEmail != nil {
		t.Errorf("HasVerifiedEmail = %v, want nil when absent", *profile.HasVerifiedEmail)
	}
}
