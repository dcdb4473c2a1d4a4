package redditkit

import "github.com/avokic/redditkit/pkg/types"

// SearchResult is the fixed-shape result of SearchPosts.
type SearchResult struct {
	Query     string        `json:"query"`
	Subreddit string        `json:"subreddit"`
	Count     int           `json:"count"`
	Posts     []*types.Post `json:"posts"`
}

// FeedResult is the fixed-shape result of SubredditNew and SubredditHot.
// After and Before are Reddit's own pagination tokens, passed through.
type FeedResult struct {
	Subreddit string        `json:"subreddit"`
	FeedType  string        `json:"feed_type"`
	Count     int           `json:"count"`
	Posts     []*types.Post `json:"posts"`
	After     string        `json:"after,omitempty"`
	Before    string        `json:"before,omitempty"`
}

// PostResult is the fixed-shape result of GetPost.
type PostResult struct {
	Post *types.Post `json:"post"`
}

// CommentsResult is the fixed-shape result of GetComments. MoreIDs lists
// comment IDs Reddit truncated out of the tree; they are reported, not
// fetched.
type CommentsResult struct {
	PostID   string           `json:"post_id"`
	Count    int              `json:"count"`
	Comments []*types.Comment `json:"comments"`
	MoreIDs  []string         `json:"more_ids,omitempty"`
}

// SubmitResult is the fixed-shape result of SubmitPost.
type SubmitResult struct {
	PostID    string      `json:"post_id"`
	Permalink string      `json:"permalink"`
	Post      *types.Post `json:"post,omitempty"`
}

// ReplyResult is the fixed-shape result of ReplyToPost and ReplyToComment.
type ReplyResult struct {
	CommentID string `json:"comment_id"`
	Permalink string `json:"permalink"`
}

// CommentStatusResult is the fixed-shape result of EditComment and
// DeleteComment.
type CommentStatusResult struct {
	CommentID string `json:"comment_id"`
	Message   string `json:"message"`
}

// PostStatusResult is the fixed-shape result of SavePost, RemovePost, and
// ApprovePost.
type PostStatusResult struct {
	PostID  string `json:"post_id"`
	Message string `json:"message"`
}

// VoteResult is the fixed-shape result of Vote and its conveniences.
type VoteResult struct {
	ItemID  string `json:"item_id"`
	Message string `json:"message"`
}

// BanResult is the fixed-shape result of BanUser.
type BanResult struct {
	Username  string `json:"username"`
	Subreddit string `json:"subreddit"`
	Message   string `json:"message"`
}

// UserResult is the fixed-shape result of GetUserProfile.
type UserResult struct {
	User *types.UserProfile `json:"user"`
}
