package internal

import (
	"strings"

	"github.com/avokic/redditkit/pkg/types"
)

// CommentTree provides query helpers over a flattened comment slice. Parent
// relationships come from each comment's ParentID fullname, so the helpers
// work on the flat list GetComments returns without rebuilding the tree.
type CommentTree struct {
	Comments []*types.Comment
}

// NewCommentTree wraps a flattened comment slice.
func NewCommentTree(comments []*types.Comment) *CommentTree {
	return &CommentTree{Comments: comments}
}

// Filter returns comments matching the given predicate.
func (ct *CommentTree) Filter(match func(*types.Comment) bool) []*types.Comment {
	var result []*types.Comment
	for _, comment := range ct.Comments {
		if comment == nil {
			continue
		}
		if match(comment) {
			result = append(result, comment)
		}
	}
	return result
}

// Find returns the first comment matching the given predicate, or nil.
func (ct *CommentTree) Find(match func(*types.Comment) bool) *types.Comment {
	for _, comment := range ct.Comments {
		if comment == nil {
			continue
		}
		if match(comment) {
			return comment
		}
	}
	return nil
}

// GetByID returns the comment with the given ID, or nil.
func (ct *CommentTree) GetByID(id string) *types.Comment {
	return ct.Find(func(c *types.Comment) bool {
		return c.ID == id
	})
}

// GetByAuthor returns all comments by a specific author.
func (ct *CommentTree) GetByAuthor(author string) []*types.Comment {
	return ct.Filter(func(c *types.Comment) bool {
		return c.Author == author
	})
}

// GetTopLevel returns the comments whose parent is the submission itself.
func (ct *CommentTree) GetTopLevel() []*types.Comment {
	return ct.Filter(func(c *types.Comment) bool {
		return strings.HasPrefix(c.ParentID, types.KindLink+"_")
	})
}

// GetReplies returns the direct replies to the comment with the given ID.
func (ct *CommentTree) GetReplies(id string) []*types.Comment {
	parent := types.KindComment + "_" + id
	return ct.Filter(func(c *types.Comment) bool {
		return c.ParentID == parent
	})
}

// Count returns the number of comments.
func (ct *CommentTree) Count() int {
	n := 0
	for _, comment := range ct.Comments {
		if comment != nil {
			n++
		}
	}
	return n
}

// Walk applies fn to each comment in flattened order.
func (ct *CommentTree) Walk(fn func(*types.Comment)) {
	for _, comment := range ct.Comments {
		if comment == nil {
			continue
		}
		fn(comment)
	}
}
