package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"microblog-backend/internal/domains/follow"
	"microblog-backend/internal/domains/group"
	"microblog-backend/internal/domains/post"
	"microblog-backend/internal/domains/user"
	"microblog-backend/internal/shared/response"
	"microblog-backend/pkg/cache"
)

type postService struct {
	postRepo   post.Repository
	groupRepo  group.Repository
	userRepo   user.Repository
	followRepo follow.Repository

	cache    cache.Cache
	cacheTTL time.Duration

	storage   post.MediaStorage
	validator post.ImageValidator
	enqueuer  post.TaskEnqueuer
}

// NewPostService wires the post service. storage, validator and enqueuer may
// be nil; image attachment is then disabled.
func NewPostService(
	postRepo post.Repository,
	groupRepo group.Repository,
	userRepo user.Repository,
	followRepo follow.Repository,
	c cache.Cache,
	cacheTTL time.Duration,
	storage post.MediaStorage,
	validator post.ImageValidator,
	enqueuer post.TaskEnqueuer,
) post.Service {
	return &postService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		cache:      c,
		cacheTTL:   cacheTTL,
		storage:    storage,
		validator:  validator,
		enqueuer:   enqueuer,
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, req post.CreatePostRequest) (*post.PostDTO, error) {
	groupID, err := s.resolveGroup(ctx, req.GroupSlug)
	if err != nil {
		return nil, err
	}

	p := &post.Post{
		AuthorID: authorID,
		GroupID:  groupID,
		Text:     req.Text,
	}
	if err := s.postRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	fp, err := s.postRepo.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	dto := post.FromFeedPost(fp)
	return &dto, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*post.PostDTO, error) {
	fp, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := post.FromFeedPost(fp)
	return &dto, nil
}

func (s *postService) GetDetail(ctx context.Context, id, viewerID uuid.UUID) (*post.PostDetail, error) {
	fp, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.authorCounts(ctx, fp.AuthorID, viewerID)
	if err != nil {
		return nil, err
	}

	return &post.PostDetail{
		Post:           post.FromFeedPost(fp),
		PostsCount:     counts.posts,
		FollowerCount:  counts.followers,
		FollowingCount: counts.following,
		Following:      counts.viewerFollows,
	}, nil
}

func (s *postService) Update(ctx context.Context, id, editorID uuid.UUID, req post.UpdatePostRequest) (*post.PostDTO, error) {
	fp, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fp.AuthorID != editorID {
		return nil, post.ErrNotPostAuthor
	}

	groupID, err := s.resolveGroup(ctx, req.GroupSlug)
	if err != nil {
		return nil, err
	}

	updated := fp.Post
	updated.Text = req.Text
	updated.GroupID = groupID
	if err := s.postRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	fresh, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := post.FromFeedPost(fresh)
	return &dto, nil
}

func (s *postService) AttachImage(ctx context.Context, id, editorID uuid.UUID, data []byte, contentType string) (string, error) {
	if s.storage == nil || s.validator == nil {
		return "", fmt.Errorf("media storage is not configured")
	}

	fp, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if fp.AuthorID != editorID {
		return "", post.ErrNotPostAuthor
	}

	if err := s.validator.ValidateImage(data); err != nil {
		return "", err
	}

	key := fmt.Sprintf("posts/%s/original%s", id, extensionFor(contentType))
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	if err := s.postRepo.SetImageURL(ctx, id, url); err != nil {
		return "", err
	}

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueProcessImage(ctx, id, key); err != nil {
			// The original is already stored and referenced; variant
			// generation can be retried, so the upload still succeeds.
			log.Error().Err(err).Str("post_id", id.String()).
				Msg("failed to enqueue image processing")
		}
	}

	return url, nil
}

func (s *postService) Delete(ctx context.Context, id, editorID uuid.UUID) error {
	fp, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if fp.AuthorID != editorID {
		return post.ErrNotPostAuthor
	}

	comments, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	log.Info().Str("post_id", id.String()).Int("comments_removed", comments).
		Msg("post deleted")
	return nil
}

func (s *postService) ListIndex(ctx context.Context, page int) (*post.FeedPage, error) {
	if page < 1 {
		page = 1
	}
	key := post.IndexCacheKey(page)

	var cached post.FeedPage
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		// A broken cache degrades to a direct query.
		log.Error().Err(err).Str("key", key).Msg("feed cache read failed")
	} else if hit {
		return &cached, nil
	}

	feed, err := s.fetchPage(page, func(limit, offset int) ([]*post.FeedPost, int, error) {
		return s.postRepo.ListAll(ctx, limit, offset)
	})
	if err != nil {
		return nil, err
	}

	// fetchPage may clamp an out-of-range page; cache under the page that
	// was actually served so requested page numbers beyond the last page
	// never mint keys of their own.
	if feed.Meta.Page != page {
		key = post.IndexCacheKey(feed.Meta.Page)
	}
	if err := s.cache.Set(ctx, key, feed, s.cacheTTL); err != nil {
		log.Error().Err(err).Str("key", key).Msg("feed cache write failed")
	}
	return feed, nil
}

func (s *postService) ListByGroup(ctx context.Context, slug string, page int) (*post.FeedPage, error) {
	g, err := s.groupRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.fetchPage(page, func(limit, offset int) ([]*post.FeedPost, int, error) {
		return s.postRepo.ListByGroup(ctx, g.ID, limit, offset)
	})
}

func (s *postService) ListByAuthor(ctx context.Context, username string, page int) (*post.FeedPage, error) {
	author, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.fetchPage(page, func(limit, offset int) ([]*post.FeedPost, int, error) {
		return s.postRepo.ListByAuthor(ctx, author.ID, limit, offset)
	})
}

func (s *postService) GetProfile(ctx context.Context, username string, viewerID uuid.UUID, page int) (*post.ProfilePage, error) {
	author, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	feed, err := s.fetchPage(page, func(limit, offset int) ([]*post.FeedPost, int, error) {
		return s.postRepo.ListByAuthor(ctx, author.ID, limit, offset)
	})
	if err != nil {
		return nil, err
	}

	counts, err := s.authorCounts(ctx, author.ID, viewerID)
	if err != nil {
		return nil, err
	}

	return &post.ProfilePage{
		Author: post.AuthorRef{
			ID:       author.ID,
			Username: author.Username,
		},
		Bio:            author.Bio,
		Page:           *feed,
		PostsCount:     feed.Meta.Total,
		FollowerCount:  counts.followers,
		FollowingCount: counts.following,
		Following:      counts.viewerFollows,
	}, nil
}

func (s *postService) ListFollowing(ctx context.Context, userID uuid.UUID, page int) (*post.FeedPage, error) {
	return s.fetchPage(page, func(limit, offset int) ([]*post.FeedPost, int, error) {
		return s.postRepo.ListFollowing(ctx, userID, limit, offset)
	})
}

func (s *postService) ClearIndexCache(ctx context.Context) error {
	return s.cache.DeletePattern(ctx, post.IndexCachePattern)
}

// fetchPage runs a paginated query, clamping the requested page to the range
// the total allows. The clamp needs the total first, so out-of-range pages
// cost one extra query round.
func (s *postService) fetchPage(page int, query func(limit, offset int) ([]*post.FeedPost, int, error)) (*post.FeedPage, error) {
	if page < 1 {
		page = 1
	}

	posts, total, err := query(post.PageSize, (page-1)*post.PageSize)
	if err != nil {
		return nil, err
	}

	totalPages := response.TotalPages(total, post.PageSize)
	if clamped := response.ClampPage(page, totalPages); clamped != page {
		page = clamped
		posts, total, err = query(post.PageSize, (page-1)*post.PageSize)
		if err != nil {
			return nil, err
		}
	}

	dtos := make([]post.PostDTO, 0, len(posts))
	for _, fp := range posts {
		dtos = append(dtos, post.FromFeedPost(fp))
	}
	return &post.FeedPage{
		Posts: dtos,
		Meta:  response.NewPageMeta(page, post.PageSize, total),
	}, nil
}

type authorCounts struct {
	posts         int
	followers     int
	following     int
	viewerFollows bool
}

func (s *postService) authorCounts(ctx context.Context, authorID, viewerID uuid.UUID) (authorCounts, error) {
	var c authorCounts

	_, total, err := s.postRepo.ListByAuthor(ctx, authorID, 1, 0)
	if err != nil {
		return c, err
	}
	c.posts = total

	c.followers, err = s.followRepo.CountFollowers(ctx, authorID)
	if err != nil {
		return c, err
	}
	c.following, err = s.followRepo.CountFollowing(ctx, authorID)
	if err != nil {
		return c, err
	}

	if viewerID != uuid.Nil && viewerID != authorID {
		c.viewerFollows, err = s.followRepo.Exists(ctx, viewerID, authorID)
		if err != nil {
			return c, err
		}
	}
	return c, nil
}

func (s *postService) resolveGroup(ctx context.Context, slug string) (*uuid.UUID, error) {
	if slug == "" {
		return nil, nil
	}
	g, err := s.groupRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &g.ID, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	default:
		return ".jpg"
	}
}
