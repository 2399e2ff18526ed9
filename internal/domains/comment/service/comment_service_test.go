package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog-backend/internal/domains/comment"
	"microblog-backend/internal/domains/post"
	"microblog-backend/internal/domains/user"
)

type memCommentRepo struct {
	comments []*comment.Comment
	users    *memUserRepo
	seq      int
}

func (r *memCommentRepo) Create(ctx context.Context, c *comment.Comment) error {
	r.seq++
	c.ID = uuid.New()
	c.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, r.seq, time.UTC)
	clone := *c
	r.comments = append(r.comments, &clone)
	return nil
}

func (r *memCommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]*comment.CommentView, error) {
	var out []*comment.CommentView
	for _, c := range r.comments {
		if c.PostID != postID {
			continue
		}
		v := &comment.CommentView{Comment: *c}
		if u, ok := r.users.users[c.AuthorID]; ok {
			v.AuthorUsername = u.Username
		}
		out = append(out, v)
	}
	return out, nil
}

type memUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *memUserRepo) add(username string) *user.User {
	u := &user.User{ID: uuid.New(), Username: username}
	r.users[u.ID] = u
	return u
}

func (r *memUserRepo) Create(ctx context.Context, u *user.User) error {
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
	return nil, user.ErrUserNotFound
}

// memPostRepo implements only the lookup the comment service needs; every
// other method is unreachable from these tests.
type memPostRepo struct {
	existing map[uuid.UUID]*post.FeedPost
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{existing: make(map[uuid.UUID]*post.FeedPost)}
}

func (r *memPostRepo) add(authorID uuid.UUID) uuid.UUID {
	id := uuid.New()
	r.existing[id] = &post.FeedPost{Post: post.Post{ID: id, AuthorID: authorID, Text: "hello"}}
	return id
}

func (r *memPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*post.FeedPost, error) {
	p, ok := r.existing[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return p, nil
}

func (r *memPostRepo) Create(ctx context.Context, p *post.Post) error { return nil }
func (r *memPostRepo) Update(ctx context.Context, p *post.Post) error { return nil }
func (r *memPostRepo) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	return nil
}
func (r *memPostRepo) Delete(ctx context.Context, id uuid.UUID) (int, error) { return 0, nil }
func (r *memPostRepo) ListAll(ctx context.Context, limit, offset int) ([]*post.FeedPost, int, error) {
	return nil, 0, nil
}
func (r *memPostRepo) ListByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*post.FeedPost, int, error) {
	return nil, 0, nil
}
func (r *memPostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*post.FeedPost, int, error) {
	return nil, 0, nil
}
func (r *memPostRepo) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*post.FeedPost, int, error) {
	return nil, 0, nil
}

func newTestService() (comment.Service, *memUserRepo, *memPostRepo) {
	users := newMemUserRepo()
	posts := newMemPostRepo()
	comments := &memCommentRepo{users: users}
	return NewCommentService(comments, posts, users), users, posts
}

func TestCreateComment(t *testing.T) {
	svc, users, posts := newTestService()
	author := users.add("leo")
	commenter := users.add("mia")
	postID := posts.add(author.ID)

	dto, err := svc.Create(context.Background(), postID, commenter.ID, comment.CreateCommentRequest{
		Text: "nice post",
	})
	require.NoError(t, err)
	assert.Equal(t, "nice post", dto.Text)
	assert.Equal(t, "mia", dto.AuthorUsername)
	assert.Equal(t, postID, dto.PostID)
}

func TestCreateCommentMissingPost(t *testing.T) {
	svc, users, _ := newTestService()
	commenter := users.add("mia")

	_, err := svc.Create(context.Background(), uuid.New(), commenter.ID, comment.CreateCommentRequest{
		Text: "into the void",
	})
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestCreateCommentUnknownAuthor(t *testing.T) {
	svc, users, posts := newTestService()
	author := users.add("leo")
	postID := posts.add(author.ID)

	_, err := svc.Create(context.Background(), postID, uuid.New(), comment.CreateCommentRequest{
		Text: "ghost comment",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListCommentsOldestFirst(t *testing.T) {
	svc, users, posts := newTestService()
	author := users.add("leo")
	commenter := users.add("mia")
	postID := posts.add(author.ID)
	otherPostID := posts.add(author.ID)

	for _, text := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), postID, commenter.ID, comment.CreateCommentRequest{Text: text})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), otherPostID, commenter.ID, comment.CreateCommentRequest{Text: "elsewhere"})
	require.NoError(t, err)

	dtos, err := svc.ListByPost(context.Background(), postID)
	require.NoError(t, err)
	require.Len(t, dtos, 3)
	assert.Equal(t, "first", dtos[0].Text)
	assert.Equal(t, "third", dtos[2].Text)
}

func TestListCommentsMissingPost(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListByPost(context.Background(), uuid.New())
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}
