package redditkit

import (
	"github.com/avokic/redditkit/internal"
	"github.com/avokic/redditkit/pkg/types"
)

// CommentTree provides query helpers over the flat comment slice returned by
// GetComments.
type CommentTree = internal.CommentTree

// NewCommentTree wraps a flattened comment slice, typically
// CommentsResult.Comments, for filtering and traversal.
func NewCommentTree(comments []*types.Comment) *CommentTree {
	return internal.NewCommentTree(comments)
}
