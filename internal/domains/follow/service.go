package follow

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for following authors. The target
// is addressed by username, as on the profile page.
type Service interface {
	// Follow makes userID follow the named author. Self-follow and repeated
	// follow are silent no-ops. Returns the user domain's not-found error
	// when the username is unknown.
	Follow(ctx context.Context, userID uuid.UUID, authorUsername string) error

	// Unfollow removes the edge; removing a missing edge is a no-op.
	Unfollow(ctx context.Context, userID uuid.UUID, authorUsername string) error

	// IsFollowing reports whether userID follows the author.
	IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error)

	// Counts returns (followers of author, authors the user follows).
	Counts(ctx context.Context, authorID uuid.UUID) (followers int, following int, err error)
}
