package redditkit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	pkgerrs "github.com/avokic/redditkit/pkg/errors"
	"github.com/avokic/redditkit/pkg/types"
)

// SubmitOptions controls SubmitPost. Exactly one of Content or URL must be
// set: Content makes a text (self) post, URL makes a link post.
type SubmitOptions struct {
	// Content is the body of a text post.
	Content string
	// URL is the target of a link post.
	URL string
	// FlairID optionally applies a flair to the post.
	FlairID string
}

// apiEnvelope is the response shape of Reddit's api_type=json write
// endpoints.
type apiEnvelope struct {
	JSON struct {
		Errors [][]string `json:"errors"`
		Data   struct {
			ID     string         `json:"id"`
			Name   string         `json:"name"`
			URL    string         `json:"url"`
			Things []*types.Thing `json:"things"`
		} `json:"data"`
	} `json:"json"`
}

// SubmitPost creates a new post in a subreddit. The title must be 1-300
// characters and exactly one of Content or URL must be provided.
//
// POST /api/submit
func (c *Client) SubmitPost(ctx context.Context, subreddit, title string, opts *SubmitOptions) (*SubmitResult, error) {
	if opts == nil {
		opts = &SubmitOptions{}
	}

	if err := c.validator.Subreddit(subreddit); err != nil {
		return nil, err
	}
	if err := c.validator.Title(title); err != nil {
		return nil, err
	}
	if opts.Content == "" && opts.URL == "" {
		return nil, &pkgerrs.ConfigError{Field: "content", Message: "must provide either content (text post) or url (link post)"}
	}
	if opts.Content != "" && opts.URL != "" {
		return nil, &pkgerrs.ConfigError{Field: "content", Message: "cannot provide both content and url - choose one"}
	}

	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("sr", subreddit)
	form.Set("title", title)
	if opts.URL != "" {
		form.Set("kind", "link")
		form.Set("url", opts.URL)
	} else {
		form.Set("kind", "self")
		form.Set("text", opts.Content)
	}
	if opts.FlairID != "" {
		form.Set("flair_id", opts.FlairID)
	}

	envelope, err := c.postForm(ctx, "SubmitPost", "api/submit", form)
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{
		PostID:    envelope.JSON.Data.ID,
		Permalink: envelope.JSON.Data.URL,
	}

	// The submit endpoint only returns the new ID and URL; fetch the full
	// post when possible so the result matches the other operations.
	if result.PostID != "" {
		if fetched, err := c.GetPost(ctx, result.PostID); err == nil {
			result.Post = fetched.Post
			if result.Post.Permalink != "" {
				result.Permalink = result.Post.Permalink
			}
		}
	}

	return result, nil
}

// ReplyToPost adds a top-level comment to a post. The text must be 1-10000
// characters.
//
// POST /api/comment
func (c *Client) ReplyToPost(ctx context.Context, postID, text string) (*ReplyResult, error) {
	if err := c.validator.ThingID("post_id", postID); err != nil {
		return nil, err
	}
	return c.reply(ctx, fullname(types.KindLink, postID), text)
}

// ReplyToComment adds a reply to an existing comment. The text must be
// 1-10000 characters.
//
// POST /api/comment
func (c *Client) ReplyToComment(ctx context.Context, commentID, text string) (*ReplyResult, error) {
	if err := c.validator.ThingID("comment_id", commentID); err != nil {
		return nil, err
	}
	return c.reply(ctx, fullname(types.KindComment, commentID), text)
}

func (c *Client) reply(ctx context.Context, thingID, text string) (*ReplyResult, error) {
	if err := c.validator.Text("text", text); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("thing_id", thingID)
	form.Set("text", text)

	envelope, err := c.postForm(ctx, "Reply", "api/comment", form)
	if err != nil {
		return nil, err
	}

	comment, err := c.firstComment(envelope)
	if err != nil {
		return nil, &pkgerrs.ParseError{Operation: "Reply", Err: err}
	}

	flat := c.parser.FlattenComment(comment, "")
	return &ReplyResult{
		CommentID: flat.ID,
		Permalink: flat.Permalink,
	}, nil
}

// EditComment replaces the body of one of the authenticated user's comments.
//
// POST /api/editusertext
func (c *Client) EditComment(ctx context.Context, commentID, newText string) (*CommentStatusResult, error) {
	if err := c.validator.ThingID("comment_id", commentID); err != nil {
		return nil, err
	}
	if err := c.validator.Text("new_text", newText); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("thing_id", fullname(types.KindComment, commentID))
	form.Set("text", newText)

	if _, err := c.postForm(ctx, "EditComment", "api/editusertext", form); err != nil {
		return nil, err
	}

	return &CommentStatusResult{
		CommentID: commentID,
		Message:   "comment edited successfully",
	}, nil
}

// DeleteComment deletes one of the authenticated user's comments.
//
// POST /api/del
func (c *Client) DeleteComment(ctx context.Context, commentID string) (*CommentStatusResult, error) {
	if err := c.validator.ThingID("comment_id", commentID); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("id", fullname(types.KindComment, commentID))

	if err := c.postStatus(ctx, "api/del", form); err != nil {
		return nil, err
	}

	return &CommentStatusResult{
		CommentID: commentID,
		Message:   "comment deleted successfully",
	}, nil
}

// postForm sends an api_type=json form POST and decodes the response
// envelope, surfacing Reddit's in-envelope errors as APIErrors.
func (c *Client) postForm(ctx context.Context, operation, path string, form url.Values) (*apiEnvelope, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	body, err := c.http.DoRaw(req)
	if err != nil {
		return nil, err
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &pkgerrs.ParseError{Operation: operation, Err: err}
	}

	if len(envelope.JSON.Errors) > 0 {
		return nil, &pkgerrs.APIError{
			StatusCode: http.StatusOK,
			Message:    strings.Join(envelope.JSON.Errors[0], ": "),
		}
	}

	return &envelope, nil
}

// postStatus sends a plain form POST to an endpoint that returns no useful
// body on success.
func (c *Client) postStatus(ctx context.Context, path string, form url.Values) error {
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}

	_, err = c.http.DoRaw(req)
	return err
}

// firstComment pulls the first t1 Thing out of a write-endpoint envelope.
func (c *Client) firstComment(envelope *apiEnvelope) (*types.CommentData, error) {
	for _, thing := range envelope.JSON.Data.Things {
		if thing.Kind == types.KindComment {
			return c.parser.ParseComment(thing)
		}
	}
	return nil, fmt.Errorf("no comment in response")
}
