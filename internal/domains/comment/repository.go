package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for comments.
type Repository interface {
	// Create inserts a new comment.
	Create(ctx context.Context, comment *Comment) error

	// ListByPost returns every comment on the post, oldest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*CommentView, error)
}
