package comment

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for comments.
type Service interface {
	// Create adds a comment authored by authorID to the post. The post must
	// exist; a missing post yields post.ErrPostNotFound.
	Create(ctx context.Context, postID, authorID uuid.UUID, req CreateCommentRequest) (*CommentDTO, error)

	// ListByPost returns the post's comments, oldest first. The post must
	// exist.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]CommentDTO, error)
}
