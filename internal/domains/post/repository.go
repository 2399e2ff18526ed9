package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for posts and the feed query
// engine. Every listing returns a slice ordered newest-first plus the total
// row count backing the pagination metadata.
type Repository interface {
	// Create inserts a post.
	Create(ctx context.Context, post *Post) error

	// FindByID returns the joined row; ErrPostNotFound on miss.
	FindByID(ctx context.Context, id uuid.UUID) (*FeedPost, error)

	// Update persists text/group changes. ErrPostNotFound on miss.
	Update(ctx context.Context, post *Post) error

	// SetImageURL stores the media reference for a post.
	SetImageURL(ctx context.Context, id uuid.UUID, url string) error

	// Delete removes the post and its comments in one transaction and
	// reports how many comments went with it.
	// ErrPostNotFound on miss.
	Delete(ctx context.Context, id uuid.UUID) (int, error)

	// ListAll pages over every post.
	ListAll(ctx context.Context, limit, offset int) ([]*FeedPost, int, error)

	// ListByGroup pages over posts tagged to a group.
	ListByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*FeedPost, int, error)

	// ListByAuthor pages over an author's posts.
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*FeedPost, int, error)

	// ListFollowing pages over posts whose author is followed by userID.
	ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*FeedPost, int, error)
}
