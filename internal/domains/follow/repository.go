package follow

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for follow edges. Idempotence is the
// store's job: Create must absorb duplicate edges (the composite primary key
// plus ON CONFLICT DO NOTHING, never an application-level check-then-act) and
// Delete must be a no-op for a missing edge.
type Repository interface {
	// Create inserts the edge if it does not exist yet.
	Create(ctx context.Context, edge *Follow) error

	// Delete removes the edge; removing a missing edge is not an error.
	Delete(ctx context.Context, userID, authorID uuid.UUID) error

	// Exists reports whether userID follows authorID.
	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)

	// CountFollowers counts users following the author.
	CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error)

	// CountFollowing counts authors the user follows.
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
}
