package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"microblog-backend/internal/domains/follow"
	"microblog-backend/internal/domains/user"
)

type followService struct {
	repo  follow.Repository
	users user.Repository
}

func NewFollowService(repo follow.Repository, users user.Repository) follow.Service {
	return &followService{
		repo:  repo,
		users: users,
	}
}

func (s *followService) Follow(ctx context.Context, userID uuid.UUID, authorUsername string) error {
	author, err := s.users.FindByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	// A user never follows themselves; the attempt succeeds without
	// writing an edge.
	if author.ID == userID {
		return nil
	}

	return s.repo.Create(ctx, &follow.Follow{
		UserID:    userID,
		AuthorID:  author.ID,
		CreatedAt: time.Now(),
	})
}

func (s *followService) Unfollow(ctx context.Context, userID uuid.UUID, authorUsername string) error {
	author, err := s.users.FindByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}

	if author.ID == userID {
		return nil
	}

	return s.repo.Delete(ctx, userID, author.ID)
}

func (s *followService) IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, userID, authorID)
}

func (s *followService) Counts(ctx context.Context, authorID uuid.UUID) (int, int, error) {
	followers, err := s.repo.CountFollowers(ctx, authorID)
	if err != nil {
		return 0, 0, err
	}

	following, err := s.repo.CountFollowing(ctx, authorID)
	if err != nil {
		return 0, 0, err
	}

	return followers, following, nil
}
