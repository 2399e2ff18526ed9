package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for users.
type Service interface {
	// Register creates an account. The username and email must be unused.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login verifies credentials and issues a JWT pair.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new pair.
	Refresh(ctx context.Context, req RefreshTokenRequest) (*LoginResponse, error)

	// GetByID looks a user up by primary key.
	GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)

	// GetByUsername looks a user up by unique username.
	GetByUsername(ctx context.Context, username string) (*UserDTO, error)
}
