package group

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for groups.
type Service interface {
	// Create makes a new group; the slug is generated from the title when
	// the request omits one.
	Create(ctx context.Context, req CreateGroupRequest) (*Group, error)

	// GetBySlug returns ErrGroupNotFound for an unknown slug.
	GetBySlug(ctx context.Context, slug string) (*Group, error)

	// GetByID returns ErrGroupNotFound for an unknown id.
	GetByID(ctx context.Context, id uuid.UUID) (*Group, error)

	// List returns all groups.
	List(ctx context.Context) ([]*Group, error)
}
