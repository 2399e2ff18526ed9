package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"microblog-backend/internal/domains/group"
	"microblog-backend/internal/shared/utils"
)

type groupService struct {
	repo group.Repository
}

func NewGroupService(repo group.Repository) group.Service {
	return &groupService{repo: repo}
}

func (s *groupService) Create(ctx context.Context, req group.CreateGroupRequest) (*group.Group, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	g := &group.Group{
		ID:          uuid.New(),
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*group.Group, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *groupService) GetByID(ctx context.Context, id uuid.UUID) (*group.Group, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *groupService) List(ctx context.Context) ([]*group.Group, error) {
	return s.repo.List(ctx)
}
