package group

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for groups.
type Repository interface {
	// Create inserts a group. Returns ErrSlugTaken on uniqueness violation.
	Create(ctx context.Context, group *Group) error

	// FindByID returns ErrGroupNotFound on miss.
	FindByID(ctx context.Context, id uuid.UUID) (*Group, error)

	// FindBySlug returns ErrGroupNotFound on miss.
	FindBySlug(ctx context.Context, slug string) (*Group, error)

	// List returns every group ordered by title.
	List(ctx context.Context) ([]*Group, error)
}
