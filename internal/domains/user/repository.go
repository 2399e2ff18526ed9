package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for users.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrUsernameTaken or ErrEmailTaken on uniqueness violation.
	Create(ctx context.Context, user *User) error

	// FindByID returns ErrUserNotFound when no user has this id.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername returns ErrUserNotFound when no user has this username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmail is used for login; returns ErrUserNotFound on miss.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
