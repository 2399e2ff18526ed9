package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"microblog-backend/internal/domains/follow"
	"microblog-backend/internal/domains/group"
	"microblog-backend/internal/domains/post"
	"microblog-backend/internal/domains/user"
)

// ----- in-memory fakes -----

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type memCacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// memCache is an in-memory cache whose TTL expiry follows a fake clock.
type memCache struct {
	mu      sync.Mutex
	clock   *fakeClock
	entries map[string]memCacheEntry
}

func newMemCache(clock *fakeClock) *memCache {
	return &memCache{clock: clock, entries: make(map[string]memCacheEntry)}
}

func (c *memCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if !e.expiresAt.IsZero() && !c.clock.Now().Before(e.expiresAt) {
		delete(c.entries, key)
		return false, nil
	}
	return true, json.Unmarshal(e.data, dest)
}

func (c *memCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = c.clock.Now().Add(ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memCacheEntry{data: data, expiresAt: expiresAt}
	return nil
}

func (c *memCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *memCache) DeletePattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *memCache) Ping(ctx context.Context) error { return nil }

func (c *memCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok, nil
}

func (c *memCache) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

func (c *memCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return -2 * time.Nanosecond, nil
	}
	return e.expiresAt.Sub(c.clock.Now()), nil
}

type memUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *memUserRepo) add(username string) *user.User {
	u := &user.User{ID: uuid.New(), Username: username, Email: username + "@example.com"}
	r.users[u.ID] = u
	return u
}

func (r *memUserRepo) Create(ctx context.Context, u *user.User) error {
	u.ID = uuid.New()
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

type memGroupRepo struct {
	groups map[uuid.UUID]*group.Group
}

func newMemGroupRepo() *memGroupRepo {
	return &memGroupRepo{groups: make(map[uuid.UUID]*group.Group)}
}

func (r *memGroupRepo) add(title, slug string) *group.Group {
	g := &group.Group{ID: uuid.New(), Title: title, Slug: slug}
	r.groups[g.ID] = g
	return g
}

func (r *memGroupRepo) Create(ctx context.Context, g *group.Group) error {
	for _, existing := range r.groups {
		if existing.Slug == g.Slug {
			return group.ErrSlugTaken
		}
	}
	g.ID = uuid.New()
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

type followEdge struct {
	userID, authorID uuid.UUID
}

type memFollowRepo struct {
	edges map[followEdge]bool
}

func newMemFollowRepo() *memFollowRepo {
	return &memFollowRepo{edges: make(map[followEdge]bool)}
}

func (r *memFollowRepo) Create(ctx context.Context, e *follow.Follow) error {
	r.edges[followEdge{e.UserID, e.AuthorID}] = true
	return nil
}

func (r *memFollowRepo) Delete(ctx context.Context, userID, authorID uuid.UUID) error {
	delete(r.edges, followEdge{userID, authorID})
	return nil
}

func (r *memFollowRepo) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	return r.edges[followEdge{userID, authorID}], nil
}

func (r *memFollowRepo) CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error) {
	n := 0
	for e := range r.edges {
		if e.authorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *memFollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for e := range r.edges {
		if e.userID == userID {
			n++
		}
	}
	return n, nil
}

// memPostRepo keeps posts in insertion order and lists them newest-first,
// joining usernames and group data from the sibling fakes.
type memPostRepo struct {
	posts   []*post.Post
	users   *memUserRepo
	groups  *memGroupRepo
	follows *memFollowRepo
	clock   *fakeClock
	seq     int
}

func newMemPostRepo(users *memUserRepo, groups *memGroupRepo, follows *memFollowRepo, clock *fakeClock) *memPostRepo {
	return &memPostRepo{users: users, groups: groups, follows: follows, clock: clock}
}

func (r *memPostRepo) Create(ctx context.Context, p *post.Post) error {
	r.seq++
	p.ID = uuid.New()
	p.CreatedAt = r.clock.Now().Add(time.Duration(r.seq) * time.Millisecond)
	p.UpdatedAt = p.CreatedAt
	clone := *p
	r.posts = append(r.posts, &clone)
	return nil
}

func (r *memPostRepo) join(p *post.Post) *post.FeedPost {
	fp := &post.FeedPost{Post: *p}
	if u, ok := r.users.users[p.AuthorID]; ok {
		fp.AuthorUsername = u.Username
	}
	if p.GroupID != nil {
		if g, ok := r.groups.groups[*p.GroupID]; ok {
			fp.GroupTitle = &g.Title
			fp.GroupSlug = &g.Slug
		}
	}
	return fp
}

func (r *memPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*post.FeedPost, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return r.join(p), nil
		}
	}
	return nil, post.ErrPostNotFound
}

func (r *memPostRepo) Update(ctx context.Context, upd *post.Post) error {
	for _, p := range r.posts {
		if p.ID == upd.ID {
			p.Text = upd.Text
			p.GroupID = upd.GroupID
			p.UpdatedAt = r.clock.Now()
			return nil
		}
	}
	return post.ErrPostNotFound
}

func (r *memPostRepo) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	for _, p := range r.posts {
		if p.ID == id {
			p.ImageURL = &url
			return nil
		}
	}
	return post.ErrPostNotFound
}

func (r *memPostRepo) Delete(ctx context.Context, id uuid.UUID) (int, error) {
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return 0, nil
		}
	}
	return 0, post.ErrPostNotFound
}

func (r *memPostRepo) listWhere(pred func(*post.Post) bool, limit, offset int) ([]*post.FeedPost, int, error) {
	var matched []*post.FeedPost
	for i := len(r.posts) - 1; i >= 0; i-- {
		if pred(r.posts[i]) {
			matched = append(matched, r.join(r.posts[i]))
		}
	}
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *memPostRepo) ListAll(ctx context.Context, limit, offset int) ([]*post.FeedPost, int, error) {
	return r.listWhere(func(*post.Post) bool { return true }, limit, offset)
}

func (r *memPostRepo) ListByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*post.FeedPost, int, error) {
	return r.listWhere(func(p *post.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}, limit, offset)
}

func (r *memPostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*post.FeedPost, int, error) {
	return r.listWhere(func(p *post.Post) bool { return p.AuthorID == authorID }, limit, offset)
}

func (r *memPostRepo) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*post.FeedPost, int, error) {
	return r.listWhere(func(p *post.Post) bool {
		return r.follows.edges[followEdge{userID, p.AuthorID}]
	}, limit, offset)
}

// ----- fixture -----

const testCacheTTL = 20 * time.Second

type fixture struct {
	users   *memUserRepo
	groups  *memGroupRepo
	follows *memFollowRepo
	posts   *memPostRepo
	cache   *memCache
	clock   *fakeClock
	svc     post.Service
}

func newFixture() *fixture {
	clock := newFakeClock()
	users := newMemUserRepo()
	groups := newMemGroupRepo()
	follows := newMemFollowRepo()
	posts := newMemPostRepo(users, groups, follows, clock)
	cache := newMemCache(clock)

	svc := NewPostService(posts, groups, users, follows, cache, testCacheTTL, nil, nil, nil)
	return &fixture{
		users:   users,
		groups:  groups,
		follows: follows,
		posts:   posts,
		cache:   cache,
		clock:   clock,
		svc:     svc,
	}
}

func (f *fixture) createGroupPosts(author *user.User, g *group.Group, n int) []*post.PostDTO {
	out := make([]*post.PostDTO, 0, n)
	for i := 0; i < n; i++ {
		dto, err := f.svc.Create(context.Background(), author.ID, post.CreatePostRequest{
			Text:      fmt.Sprintf("post number %d from %s", i+1, author.Username),
			GroupSlug: g.Slug,
		})
		if err != nil {
			panic(err)
		}
		out = append(out, dto)
	}
	return out
}

func (f *fixture) createPosts(author *user.User, n int) []*post.PostDTO {
	out := make([]*post.PostDTO, 0, n)
	for i := 0; i < n; i++ {
		dto, err := f.svc.Create(context.Background(), author.ID, post.CreatePostRequest{
			Text: fmt.Sprintf("post number %d from %s", i+1, author.Username),
		})
		if err != nil {
			panic(err)
		}
		out = append(out, dto)
	}
	return out
}
