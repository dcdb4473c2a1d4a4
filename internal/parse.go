package internal

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/avokic/redditkit/pkg/types"
)

const (
	// maxTextPreview caps selftext and comment bodies in flattened shapes.
	maxTextPreview = 500

	permalinkBase = "https://reddit.com"
	deletedAuthor = "[deleted]"
)

// Parser reshapes Reddit's Thing envelopes into the flattened value shapes.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseListing extracts a ListingData from a Thing of kind "Listing".
func (p *Parser) ParseListing(thing *types.Thing) (*types.ListingData, error) {
	if thing == nil {
		return nil, fmt.Errorf("thing is nil")
	}
	if thing.Kind != types.KindListing {
		return nil, fmt.Errorf("expected Listing, got %q", thing.Kind)
	}

	var listing types.ListingData
	if err := json.Unmarshal(thing.Data, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse Listing data: %w", err)
	}
	return &listing, nil
}

// ParseLink extracts the raw link payload from a Thing of kind "t3".
func (p *Parser) ParseLink(thing *types.Thing) (*types.LinkData, error) {
	if thing == nil {
		return nil, fmt.Errorf("thing is nil")
	}
	if thing.Kind != types.KindLink {
		return nil, fmt.Errorf("expected t3 (Link), got %q", thing.Kind)
	}

	var link types.LinkData
	if err := json.Unmarshal(thing.Data, &link); err != nil {
		return nil, fmt.Errorf("failed to parse Link data: %w", err)
	}
	return &link, nil
}

// ParseComment extracts the raw comment payload from a Thing of kind "t1".
func (p *Parser) ParseComment(thing *types.Thing) (*types.CommentData, error) {
	if thing == nil {
		return nil, fmt.Errorf("thing is nil")
	}
	if thing.Kind != types.KindComment {
		return nil, fmt.Errorf("expected t1 (Comment), got %q", thing.Kind)
	}

	var comment types.CommentData
	if err := json.Unmarshal(thing.Data, &comment); err != nil {
		return nil, fmt.Errorf("failed to parse Comment data: %w", err)
	}
	return &comment, nil
}

// ParseAccount extracts the raw account payload from a Thing of kind "t2".
func (p *Parser) ParseAccount(thing *types.Thing) (*types.AccountData, error) {
	if thing == nil {
		return nil, fmt.Errorf("thing is nil")
	}
	if thing.Kind != types.KindAccount {
		return nil, fmt.Errorf("expected t2 (Account), got %q", thing.Kind)
	}

	var account types.AccountData
	if err := json.Unmarshal(thing.Data, &account); err != nil {
		return nil, fmt.Errorf("failed to parse Account data: %w", err)
	}
	return &account, nil
}

// ParseMore extracts a MoreData from a Thing of kind "more".
func (p *Parser) ParseMore(thing *types.Thing) (*types.MoreData, error) {
	if thing == nil {
		return nil, fmt.Errorf("thing is nil")
	}
	if thing.Kind != types.KindMore {
		return nil, fmt.Errorf("expected more, got %q", thing.Kind)
	}

	var more types.MoreData
	if err := json.Unmarshal(thing.Data, &more); err != nil {
		return nil, fmt.Errorf("failed to parse More data: %w", err)
	}
	return &more, nil
}

// FlattenPost maps a raw link payload to the flattened Post shape.
func (p *Parser) FlattenPost(link *types.LinkData) *types.Post {
	return &types.Post{
		ID:            link.ID,
		Title:         link.Title,
		Author:        authorOrDeleted(link.Author),
		Subreddit:     link.Subreddit,
		Score:         link.Score,
		UpvoteRatio:   link.UpvoteRatio,
		NumComments:   link.NumComments,
		CreatedUTC:    link.CreatedUTC,
		URL:           link.URL,
		Permalink:     absolutePermalink(link.Permalink),
		SelfText:      truncate(link.SelfText, maxTextPreview),
		IsSelf:        link.IsSelf,
		LinkFlairText: link.LinkFlairText,
	}
}

// FlattenComment maps a raw comment payload to the flattened Comment shape.
// submissionID is used when the payload carries no link_id.
func (p *Parser) FlattenComment(comment *types.CommentData, submissionID string) *types.Comment {
	if id := trimFullname(comment.LinkID); id != "" {
		submissionID = id
	}
	return &types.Comment{
		ID:           comment.ID,
		Author:       authorOrDeleted(comment.Author),
		Body:         truncate(comment.Body, maxTextPreview),
		Score:        comment.Score,
		CreatedUTC:   comment.CreatedUTC,
		Permalink:    absolutePermalink(comment.Permalink),
		ParentID:     comment.ParentID,
		SubmissionID: submissionID,
	}
}

// FlattenProfile maps a raw account payload to the flattened UserProfile shape.
func (p *Parser) FlattenProfile(account *types.AccountData) *types.UserProfile {
	return &types.UserProfile{
		Name:             account.Name,
		ID:               account.ID,
		CreatedUTC:       account.CreatedUTC,
		LinkKarma:        account.LinkKarma,
		CommentKarma:     account.CommentKarma,
		IsGold:           account.IsGold,
		IsMod:            account.IsMod,
		HasVerifiedEmail: account.HasVerifiedEmail,
	}
}

// ExtractPosts extracts all flattened posts from a listing Thing, together
// with the listing's pagination tokens.
func (p *Parser) ExtractPosts(listing *types.Thing) ([]*types.Post, *types.ListingData, error) {
	listingData, err := p.ParseListing(listing)
	if err != nil {
		return nil, nil, err
	}

	posts := make([]*types.Post, 0, len(listingData.Children))
	for _, child := range listingData.Children {
		if child.Kind != types.KindLink {
			continue
		}
		link, err := p.ParseLink(child)
		if err != nil {
			continue
		}
		posts = append(posts, p.FlattenPost(link))
	}
	return posts, listingData, nil
}

// ExtractComments flattens a comment listing depth-first, recursing into
// nested replies. "more" stubs are skipped; their comment IDs are collected
// and returned for the caller to report.
func (p *Parser) ExtractComments(thing *types.Thing, submissionID string) ([]*types.Comment, []string, error) {
	listingData, err := p.ParseListing(thing)
	if err != nil {
		return nil, nil, err
	}

	comments := make([]*types.Comment, 0, len(listingData.Children))
	moreIDs := make([]string, 0)
	p.walkComments(listingData.Children, submissionID, &comments, &moreIDs)
	return comments, moreIDs, nil
}

func (p *Parser) walkComments(children []*types.Thing, submissionID string, comments *[]*types.Comment, moreIDs *[]string) {
	for _, child := range children {
		switch child.Kind {
		case types.KindComment:
			raw, err := p.ParseComment(child)
			if err != nil {
				continue
			}
			*comments = append(*comments, p.FlattenComment(raw, submissionID))

			// Replies are a nested Listing Thing, or "" when empty.
			if len(raw.Replies) == 0 || string(raw.Replies) == `""` {
				continue
			}
			var repliesThing types.Thing
			if err := json.Unmarshal(raw.Replies, &repliesThing); err != nil {
				continue
			}
			if replies, err := p.ParseListing(&repliesThing); err == nil {
				p.walkComments(replies.Children, submissionID, comments, moreIDs)
			}
		case types.KindMore:
			if more, err := p.ParseMore(child); err == nil {
				*moreIDs = append(*moreIDs, more.Children...)
			}
		}
	}
}

// ExtractPostAndComments parses the GetComments response, which is the array
// [post_listing, comments_listing].
func (p *Parser) ExtractPostAndComments(response []*types.Thing, submissionID string) (*types.Post, []*types.Comment, []string, error) {
	if len(response) == 0 {
		return nil, nil, nil, fmt.Errorf("empty response")
	}

	var post *types.Post
	commentsThing := response[0]
	if len(response) >= 2 {
		if posts, _, err := p.ExtractPosts(response[0]); err == nil && len(posts) > 0 {
			post = posts[0]
		}
		commentsThing = response[1]
	}

	comments, moreIDs, err := p.ExtractComments(commentsThing, submissionID)
	if err != nil {
		return post, nil, nil, fmt.Errorf("failed to extract comments: %w", err)
	}
	return post, comments, moreIDs, nil
}

func authorOrDeleted(author string) string {
	if author == "" {
		return deletedAuthor
	}
	return author
}

func absolutePermalink(permalink string) string {
	if permalink == "" {
		return ""
	}
	return permalinkBase + permalink
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func trimFullname(fullname string) string {
	if len(fullname) > 3 && fullname[0] == 't' && fullname[2] == '_' {
		return fullname[3:]
	}
	return fullname
}
