package redditkit

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	pkgerrs "github.com/avokic/redditkit/pkg/errors"
	"github.com/avokic/redditkit/pkg/types"
)

// BanOptions controls BanUser.
type BanOptions struct {
	// DurationDays bans for a fixed number of days (1-999). Zero means a
	// permanent ban.
	DurationDays int
	// Reason is shown to the banned user.
	Reason string
	// Note is a private note visible only to moderators.
	Note string
}

// RemovePost removes a post from a subreddit the authenticated user
// moderates. Set spam to also train the subreddit's spam filter.
//
// POST /api/remove
func (c *Client) RemovePost(ctx context.Context, postID string, spam bool) (*PostStatusResult, error) {
	if err := c.validator.ThingID("post_id", postID); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("id", fullname(types.KindLink, postID))
	form.Set("spam", strconv.FormatBool(spam))

	if err := c.postStatus(ctx, "api/remove", form); err != nil {
		return nil, err
	}

	message := "post removed successfully"
	if spam {
		message = "post removed and marked as spam"
	}
	return &PostStatusResult{PostID: postID, Message: message}, nil
}

// ApprovePost approves a reported or removed post in a subreddit the
// authenticated user moderates.
//
// POST /api/approve
func (c *Client) ApprovePost(ctx context.Context, postID string) (*PostStatusResult, error) {
	if err := c.validator.ThingID("post_id", postID); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("id", fullname(types.KindLink, postID))

	if err := c.postStatus(ctx, "api/approve", form); err != nil {
		return nil, err
	}

	return &PostStatusResult{PostID: postID, Message: "post approved successfully"}, nil
}

// BanUser bans a user from a subreddit the authenticated user moderates.
// With a zero DurationDays the ban is permanent.
//
// POST /r/{subreddit}/api/friend
func (c *Client) BanUser(ctx context.Context, subreddit, username string, opts *BanOptions) (*BanResult, error) {
	if opts == nil {
		opts = &BanOptions{}
	}

	if err := c.validator.Subreddit(subreddit); err != nil {
		return nil, err
	}
	if err := c.validator.Username(username); err != nil {
		return nil, err
	}
	if opts.DurationDays < 0 || opts.DurationDays > 999 {
		return nil, &pkgerrs.ConfigError{
			Field:   "duration_days",
			Message: fmt.Sprintf("duration must be between 1 and 999 days, got %d", opts.DurationDays),
			Help:    "omit the duration for a permanent ban",
		}
	}

	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("type", "banned")
	form.Set("name", username)
	if opts.DurationDays > 0 {
		form.Set("duration", strconv.Itoa(opts.DurationDays))
	}
	if opts.Reason != "" {
		form.Set("ban_reason", opts.Reason)
	}
	if opts.Note != "" {
		form.Set("note", opts.Note)
	}

	path := fmt.Sprintf("r/%s/api/friend", url.PathEscape(subreddit))
	if _, err := c.postForm(ctx, "BanUser", path, form); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("user %s banned permanently from r/%s", username, subreddit)
	if opts.DurationDays > 0 {
		message = fmt.Sprintf("user %s banned for %d days from r/%s", username, opts.DurationDays, subreddit)
	}
	return &BanResult{Username: username, Subreddit: subreddit, Message: message}, nil
}
