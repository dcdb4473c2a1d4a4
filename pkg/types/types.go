// Package types defines the wire-level and flattened value shapes exchanged
// with the Reddit API.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Reddit type prefixes used in "kind" fields and fullnames.
const (
	KindComment = "t1"
	KindAccount = "t2"
	KindLink    = "t3"
	KindListing = "Listing"
	KindMore    = "more"
)

// Thing is Reddit's generic response envelope: a kind tag plus a raw payload
// whose shape depends on the kind.
type Thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// ListingData is the payload of a "Listing" Thing. Before and After carry
// Reddit's own pagination tokens; they are passed through untouched.
type ListingData struct {
	Before   string   `json:"before"`
	After    string   `json:"after"`
	Dist     int      `json:"dist"`
	Children []*Thing `json:"children"`
}

// Edited represents Reddit's mixed-type "edited" field, which is false for
// unedited items, true for old edits, or a float timestamp for modern edits.
type Edited struct {
	IsEdited  bool
	Timestamp float64
}

// UnmarshalJSON implements json.Unmarshaler for the mixed edited field.
func (e *Edited) UnmarshalJSON(data []byte) error {
	switch strings.ToLower(string(data)) {
	case "false", "null":
		e.IsEdited = false
		e.Timestamp = 0
		return nil
	case "true":
		e.IsEdited = true
		e.Timestamp = 0
		return nil
	}

	var ts float64
	if err := json.Unmarshal(data, &ts); err == nil {
		e.IsEdited = true
		e.Timestamp = ts
		return nil
	}

	return fmt.Errorf("unrecognized type for 'edited' field: %s", data)
}

// LinkData is the raw payload of a t3 (link/post) Thing. Only the fields the
// flattened Post shape needs are decoded.
type LinkData struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Subreddit     string  `json:"subreddit"`
	Score         int     `json:"score"`
	UpvoteRatio   float64 `json:"upvote_ratio"`
	NumComments   int     `json:"num_comments"`
	CreatedUTC    float64 `json:"created_utc"`
	URL           string  `json:"url"`
	Permalink     string  `json:"permalink"`
	SelfText      string  `json:"selftext"`
	IsSelf        bool    `json:"is_self"`
	LinkFlairText *string `json:"link_flair_text"`
	Edited        Edited  `json:"edited"`
	Over18        bool    `json:"over_18"`
	Stickied      bool    `json:"stickied"`
}

// CommentData is the raw payload of a t1 (comment) Thing. Replies holds the
// nested Listing Thing, or the empty string when there are none.
type CommentData struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Author     string          `json:"author"`
	Body       string          `json:"body"`
	Score      int             `json:"score"`
	CreatedUTC float64         `json:"created_utc"`
	Permalink  string          `json:"permalink"`
	ParentID   string          `json:"parent_id"`
	LinkID     string          `json:"link_id"`
	Edited     Edited          `json:"edited"`
	Replies    json.RawMessage `json:"replies"`
}

// AccountData is the raw payload of a t2 (account) Thing.
type AccountData struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	CreatedUTC       float64 `json:"created_utc"`
	LinkKarma        int     `json:"link_karma"`
	CommentKarma     int     `json:"comment_karma"`
	IsGold           bool    `json:"is_gold"`
	IsMod            bool    `json:"is_mod"`
	HasVerifiedEmail *bool   `json:"has_verified_email"`
}

// MoreData is the payload of a "more" stub left in truncated comment trees.
// Stubs are reported, never expanded.
type MoreData struct {
	Count    int      `json:"count"`
	Children []string `json:"children"`
}

// Post is the flattened post shape returned by search and listing
// operations. Permalink is absolute and SelfText is truncated to 500
// characters.
type Post struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Subreddit     string  `json:"subreddit"`
	Score         int     `json:"score"`
	UpvoteRatio   float64 `json:"upvote_ratio"`
	NumComments   int     `json:"num_comments"`
	CreatedUTC    float64 `json:"created_utc"`
	URL           string  `json:"url"`
	Permalink     string  `json:"permalink"`
	SelfText      string  `json:"selftext"`
	IsSelf        bool    `json:"is_self"`
	LinkFlairText *string `json:"link_flair_text"`
}

// Comment is the flattened comment shape. Body is truncated to 500
// characters and Permalink is absolute.
type Comment struct {
	ID           string  `json:"id"`
	Author       string  `json:"author"`
	Body         string  `json:"body"`
	Score        int     `json:"score"`
	CreatedUTC   float64 `json:"created_utc"`
	Permalink    string  `json:"permalink"`
	ParentID     string  `json:"parent_id"`
	SubmissionID string  `json:"submission_id"`
}

// UserProfile is the flattened public profile of a Reddit account.
type UserProfile struct {
	Name             string  `json:"name"`
	ID               string  `json:"id"`
	CreatedUTC       float64 `json:"created_utc"`
	LinkKarma        int     `json:"link_karma"`
	CommentKarma     int     `json:"comment_karma"`
	IsGold           bool    `json:"is_gold"`
	IsMod            bool    `json:"is_mod"`
	HasVerifiedEmail *bool   `json:"has_verified_email"`
}

// VoteDirection enumerates the three accepted vote directions.
type VoteDirection string

const (
	VoteUp    VoteDirection = "up"
	VoteDown  VoteDirection = "down"
	VoteClear VoteDirection = "clear"
)

// Value returns the integer direction Reddit's /api/vote endpoint expects,
// and whether the direction is one of the three accepted values.
func (d VoteDirection) Value() (int, bool) {
	switch d {
	case VoteUp:
		return 1, true
	case VoteDown:
		return -1, true
	case VoteClear:
		return 0, true
	}
	return 0, false
}
