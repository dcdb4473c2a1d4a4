package redditkit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	pkgerrs "github.com/avokic/redditkit/pkg/errors"
	"github.com/avokic/redditkit/pkg/types"
)

// GetUserProfile fetches public profile information for a redditor.
//
// GET /user/{username}/about
func (c *Client) GetUserProfile(ctx context.Context, username string) (*UserResult, error) {
	if err := c.validator.Username(username); err != nil {
		return nil, err
	}
	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("user/%s/about?raw_json=1", url.PathEscape(username))
	req, err := c.http.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var thing types.Thing
	if err := c.http.Do(req, &thing); err != nil {
		return nil, err
	}

	account, err := c.parser.ParseAccount(&thing)
	if err != nil {
		return nil, &pkgerrs.ParseError{Operation: "GetUserProfile", Err: err}
	}

	return &UserResult{User: c.parser.FlattenProfile(account)}, nil
}

// Vote casts, reverses, or clears a vote on a post or comment. The item ID
// may be a bare base36 ID or a full t1_/t3_ name; bare IDs are resolved by
// probing both kinds.
//
// POST /api/vote
func (c *Client) Vote(ctx context.Context, itemID string, direction types.VoteDirection) (*VoteResult, error) {
	if err := c.validator.ThingID("item_id", itemID); err != nil {
		return nil, err
	}
	if err := c.validator.Direction(direction); err != nil {
		return nil, err
	}
	dir, _ := direction.Value()
	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	name, err := c.resolveFullname(ctx, itemID)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("id", name)
	form.Set("dir", strconv.Itoa(dir))

	if err := c.postStatus(ctx, "api/vote", form); err != nil {
		return nil, err
	}

	var message string
	switch direction {
	case types.VoteUp:
		message = "upvoted successfully"
	case types.VoteDown:
		message = "downvoted successfully"
	default:
		message = "vote cleared successfully"
	}

	return &VoteResult{ItemID: itemID, Message: message}, nil
}

// Upvote casts an upvote on a post or comment.
func (c *Client) Upvote(ctx context.Context, itemID string) (*VoteResult, error) {
	return c.Vote(ctx, itemID, types.VoteUp)
}

// Downvote casts a downvote on a post or comment.
func (c *Client) Downvote(ctx context.Context, itemID string) (*VoteResult, error) {
	return c.Vote(ctx, itemID, types.VoteDown)
}

// ClearVote removes any existing vote from a post or comment.
func (c *Client) ClearVote(ctx context.Context, itemID string) (*VoteResult, error) {
	return c.Vote(ctx, itemID, types.VoteClear)
}

// SavePost saves a post to the authenticated user's saved list.
//
// POST /api/save
func (c *Client) SavePost(ctx context.Context, postID string) (*PostStatusResult, error) {
	if err := c.validator.ThingID("post_id", postID); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("id", fullname(types.KindLink, postID))

	if err := c.postStatus(ctx, "api/save", form); err != nil {
		return nil, err
	}

	return &PostStatusResult{PostID: postID, Message: "post saved successfully"}, nil
}

// resolveFullname turns a bare base36 ID into a fullname by asking the info
// endpoint for both the post and comment interpretations. IDs that already
// carry a t?_ prefix are returned unchanged.
func (c *Client) resolveFullname(ctx context.Context, itemID string) (string, error) {
	if len(itemID) > 2 && itemID[2] == '_' {
		return itemID, nil
	}

	candidates := fullname(types.KindLink, itemID) + "," + fullname(types.KindComment, itemID)
	path := "api/info?raw_json=1&id=" + url.QueryEscape(candidates)

	req, err := c.http.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}

	var thing types.Thing
	if err := c.http.Do(req, &thing); err != nil {
		return "", err
	}

	listing, err := c.parser.ParseListing(&thing)
	if err != nil {
		return "", &pkgerrs.ParseError{Operation: "Vote", Err: err}
	}

	for _, child := range listing.Children {
		switch child.Kind {
		case types.KindLink:
			return fullname(types.KindLink, itemID), nil
		case types.KindComment:
			return fullname(types.KindComment, itemID), nil
		}
	}

	return "", &pkgerrs.APIError{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("item %s not found", itemID),
		Help:       "check that the ID refers to an existing post or comment",
	}
}
