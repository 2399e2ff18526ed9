package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog-backend/internal/domains/user"
	"microblog-backend/pkg/jwt"
)

// memUserRepo enforces the same uniqueness the real store does.
type memUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return user.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func newTestService() (user.Service, *memUserRepo) {
	repo := newMemUserRepo()
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(repo, manager), repo
}

func register(t *testing.T, svc user.Service, username string) *user.UserDTO {
	t.Helper()
	dto, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return dto
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	dto := register(t, svc, "leo")
	assert.Equal(t, "leo", dto.Username)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "leo@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, dto.ID, resp.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "leo")

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "leo@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "leo")

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "leo",
		Email:    "other@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestRegisterRejectsInvalidUsername(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Username: "bad name!",
		Email:    "bad@example.com",
		Password: "correct-horse",
	})
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "leo")

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "leo@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), user.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "leo")

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "leo@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// An access token is not accepted on the refresh surface.
	_, err = svc.Refresh(context.Background(), user.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, user.ErrUnauthorized)
}
