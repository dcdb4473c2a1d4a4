package redditkit

import (
	"context"
	"encoding/json"
	"net/http"

	pkgerrs "github.com/avokic/redditkit/pkg/errors"
	"github.com/avokic/redditkit/pkg/types"
)

// SearchOptions controls SearchPosts. The zero value searches all of Reddit
// for the last "all" period sorted by relevance, returning 10 posts.
type SearchOptions struct {
	// Subreddit restricts the search; "all" (the default) searches site-wide.
	Subreddit string
	// TimeFilter is one of hour, day, week, month, year, all.
	TimeFilter string
	// Sort is one of relevance, hot, top, new, comments.
	Sort string
	// Limit is clamped to [1, 100]; zero means 10.
	Limit int
}

// FeedOptions controls SubredditNew and SubredditHot. After and Before are
// Reddit fullname tokens from a previous FeedResult.
type FeedOptions struct {
	// Limit is clamped to [1, 100]; zero means 25.
	Limit  int
	After  string
	Before string
}

// CommentOptions controls GetComments.
type CommentOptions struct {
	// Sort is one of best, top, new, controversial, old, qa, confidence.
	Sort string
	// Limit is clamped to [1, 500]; zero means 50.
	Limit int
}

// SearchPosts searches for posts matching a query. The query must be 1-512
// characters; it is rejected before any network call otherwise.
//
// GET /r/{subreddit}/search
func (c *Client) SearchPosts(ctx context.Context, query string, opts *SearchOptions) (*SearchResult, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}
	subreddit := opts.Subreddit
	if subreddit == "" {
		subreddit = "all"
	}

	if err := c.validator.Query(query); err != nil {
		return nil, err
	}
	if err := c.validator.Subreddit(subreddit); err != nil {
		return nil, err
	}
	if err := c.validator.TimeFilter(opts.TimeFilter); err != nil {
		return nil, err
	}
	if err := c.validator.SearchSort(opts.Sort); err != nil {
		return nil, err
	}
	limit := c.validator.ClampLimit(opts.Limit, 10, 100)

	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "r/"+subreddit+"/search", nil)
	if err != nil {
		return nil, err
	}

	q := listingQuery(limit, "", "")
	q.Set("q", query)
	q.Set("restrict_sr", "true")
	q.Set("t", defaultString(opts.TimeFilter, "all"))
	q.Set("sort", defaultString(opts.Sort, "relevance"))
	req.URL.RawQuery = q.Encode()

	var result types.Thing
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}

	posts, _, err := c.parser.ExtractPosts(&result)
	if err != nil {
		return nil, &pkgerrs.ParseError{Operation: "SearchPosts", Err: err}
	}

	return &SearchResult{
		Query:     query,
		Subreddit: subreddit,
		Count:     len(posts),
		Posts:     posts,
	}, nil
}

// SearchComments is not supported: Reddit's public API offers no comment
// search endpoint. It always returns an UnsupportedError whose Help points
// at the SearchPosts + GetComments combination.
func (c *Client) SearchComments(ctx context.Context, query string, opts *SearchOptions) (*SearchResult, error) {
	if err := c.validator.Query(query); err != nil {
		return nil, err
	}
	return nil, &pkgerrs.UnsupportedError{
		Operation: "comment search",
		Help:      "use SearchPosts and then GetComments for specific posts",
	}
}

// SubredditNew returns the newest posts in a subreddit.
//
// GET /r/{subreddit}/new
func (c *Client) SubredditNew(ctx context.Context, subreddit string, opts *FeedOptions) (*FeedResult, error) {
	return c.feed(ctx, subreddit, "new", opts)
}

// SubredditHot returns the currently trending posts in a subreddit.
//
// GET /r/{subreddit}/hot
func (c *Client) SubredditHot(ctx context.Context, subreddit string, opts *FeedOptions) (*FeedResult, error) {
	return c.feed(ctx, subreddit, "hot", opts)
}

func (c *Client) feed(ctx context.Context, subreddit, feedType string, opts *FeedOptions) (*FeedResult, error) {
	if opts == nil {
		opts = &FeedOptions{}
	}

	if err := c.validator.Subreddit(subreddit); err != nil {
		return nil, err
	}
	limit := c.validator.ClampLimit(opts.Limit, 25, 100)

	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "r/"+subreddit+"/"+feedType, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = listingQuery(limit, opts.After, opts.Before).Encode()

	var result types.Thing
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}

	posts, listing, err := c.parser.ExtractPosts(&result)
	if err != nil {
		return nil, &pkgerrs.ParseError{Operation: "subreddit " + feedType, Err: err}
	}

	return &FeedResult{
		Subreddit: subreddit,
		FeedType:  feedType,
		Count:     len(posts),
		Posts:     posts,
		After:     listing.After,
		Before:    listing.Before,
	}, nil
}

// GetPost retrieves a single post by its base36 ID.
//
// GET /api/info?id=t3_{id}
func (c *Client) GetPost(ctx context.Context, postID string) (*PostResult, error) {
	if err := c.validator.ThingID("post_id", postID); err != nil {
		return nil, err
	}

	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "api/info", nil)
	if err != nil {
		return nil, err
	}
	q := listingQuery(0, "", "")
	q.Set("id", fullname(types.KindLink, postID))
	req.URL.RawQuery = q.Encode()

	var result types.Thing
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}

	posts, _, err := c.parser.ExtractPosts(&result)
	if err != nil {
		return nil, &pkgerrs.ParseError{Operation: "GetPost", Err: err}
	}
	if len(posts) == 0 {
		return nil, &pkgerrs.APIError{
			StatusCode: http.StatusNotFound,
			Message:    "post " + postID + " not found",
			Help:       "the post may be deleted or may never have existed",
		}
	}

	return &PostResult{Post: posts[0]}, nil
}

// GetComments retrieves the comments of a post, flattened depth-first. When
// Reddit truncates the tree the missing comment IDs are reported in MoreIDs
// but never fetched.
//
// GET /comments/{id}
func (c *Client) GetComments(ctx context.Context, postID string, opts *CommentOptions) (*CommentsResult, error) {
	if opts == nil {
		opts = &CommentOptions{}
	}

	if err := c.validator.ThingID("post_id", postID); err != nil {
		return nil, err
	}
	if err := c.validator.CommentSort(opts.Sort); err != nil {
		return nil, err
	}
	limit := c.validator.ClampLimit(opts.Limit, 50, 500)

	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "comments/"+postID, nil)
	if err != nil {
		return nil, err
	}
	q := listingQuery(limit, "", "")
	q.Set("sort", defaultString(opts.Sort, "best"))
	req.URL.RawQuery = q.Encode()

	body, err := c.http.DoRaw(req)
	if err != nil {
		return nil, err
	}

	things, err := decodeThings(body)
	if err != nil {
		return nil, &pkgerrs.ParseError{Operation: "GetComments", Err: err}
	}

	_, comments, moreIDs, err := c.parser.ExtractPostAndComments(things, postID)
	if err != nil {
		return nil, &pkgerrs.ParseError{Operation: "GetComments", Err: err}
	}

	return &CommentsResult{
		PostID:   postID,
		Count:    len(comments),
		Comments: comments,
		MoreIDs:  moreIDs,
	}, nil
}

// decodeThings decodes the GetComments response body, which is usually the
// array [post_listing, comments_listing] but can be a single Listing.
func decodeThings(body []byte) ([]*types.Thing, error) {
	if len(body) == 0 {
		return nil, &pkgerrs.ParseError{Message: "empty response"}
	}

	if body[0] == '[' {
		var things []*types.Thing
		if err := json.Unmarshal(body, &things); err != nil {
			return nil, err
		}
		return things, nil
	}

	var single types.Thing
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, err
	}
	if single.Kind != types.KindListing {
		return nil, &pkgerrs.ParseError{Message: "unexpected response kind: " + single.Kind}
	}
	return []*types.Thing{&single}, nil
}

// fullname prefixes a bare base36 ID with the given kind, leaving IDs that
// already carry a prefix untouched.
func fullname(kind, id string) string {
	if len(id) > 3 && id[0] == 't' && id[2] == '_' {
		return id
	}
	return kind + "_" + id
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
