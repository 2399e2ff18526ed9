package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog-backend/internal/domains/group"
)

type memGroupRepo struct {
	groups map[uuid.UUID]*group.Group
}

func newMemGroupRepo() *memGroupRepo {
	return &memGroupRepo{groups: make(map[uuid.UUID]*group.Group)}
}

func (r *memGroupRepo) Create(ctx context.Context, g *group.Group) error {
	for _, existing := range r.groups {
		if existing.Slug == g.Slug {
			return group.ErrSlugTaken
		}
	}
	r.groups[g.ID] = g
	return nil
}

func (r *memGroupRepo) FindByID(ctx context.Context, id uuid.UUID) (*group.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, group.ErrGroupNotFound
	}
	return g, nil
}

func (r *memGroupRepo) FindBySlug(ctx context.Context, slug string) (*group.Group, error) {
	for _, g := range r.groups {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, group.ErrGroupNotFound
}

func (r *memGroupRepo) List(ctx context.Context) ([]*group.Group, error) {
	out := make([]*group.Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}
	return out, nil
}

func TestCreateGroupGeneratesSlug(t *testing.T) {
	svc := NewGroupService(newMemGroupRepo())

	g, err := svc.Create(context.Background(), group.CreateGroupRequest{
		Title: "Cute Cats Club",
	})
	require.NoError(t, err)
	assert.Equal(t, "cute-cats-club", g.Slug)

	found, err := svc.GetBySlug(context.Background(), "cute-cats-club")
	require.NoError(t, err)
	assert.Equal(t, g.ID, found.ID)
}

func TestCreateGroupExplicitSlug(t *testing.T) {
	svc := NewGroupService(newMemGroupRepo())

	g, err := svc.Create(context.Background(), group.CreateGroupRequest{
		Title: "Cute Cats Club",
		Slug:  "cats",
	})
	require.NoError(t, err)
	assert.Equal(t, "cats", g.Slug)
}

func TestCreateGroupDuplicateSlug(t *testing.T) {
	svc := NewGroupService(newMemGroupRepo())

	_, err := svc.Create(context.Background(), group.CreateGroupRequest{Title: "Cats", Slug: "cats"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), group.CreateGroupRequest{Title: "More Cats", Slug: "cats"})
	assert.ErrorIs(t, err, group.ErrSlugTaken)
}

func TestCreateGroupInvalidSlug(t *testing.T) {
	svc := NewGroupService(newMemGroupRepo())

	_, err := svc.Create(context.Background(), group.CreateGroupRequest{
		Title: "Cats",
		Slug:  "Not A Slug!",
	})
	assert.Error(t, err)
}

func TestGetUnknownGroup(t *testing.T) {
	svc := NewGroupService(newMemGroupRepo())

	_, err := svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, group.ErrGroupNotFound)
}
