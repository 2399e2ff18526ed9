package post

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for posts and feeds. Page numbers
// are 1-based; out-of-range pages clamp to the nearest valid page instead of
// erroring.
type Service interface {
	// Create makes a post authored by authorID. The group slug, when given,
	// must name an existing group.
	Create(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*PostDTO, error)

	// GetByID returns a single post; any caller may read it.
	GetByID(ctx context.Context, id uuid.UUID) (*PostDTO, error)

	// GetDetail returns the post plus the author counts and the viewer's
	// following flag. viewerID may be uuid.Nil for anonymous readers.
	GetDetail(ctx context.Context, id, viewerID uuid.UUID) (*PostDetail, error)

	// Update edits a post. Only the original author's edit mutates the
	// record; any other authenticated editor gets ErrNotPostAuthor.
	Update(ctx context.Context, id, editorID uuid.UUID, req UpdatePostRequest) (*PostDTO, error)

	// AttachImage validates and stores image bytes, persists the reference
	// and schedules variant generation. Author-only.
	AttachImage(ctx context.Context, id, editorID uuid.UUID, data []byte, contentType string) (string, error)

	// Delete removes a post and its comments. Author-only; stored media is
	// reclaimed later by the orphan sweep.
	Delete(ctx context.Context, id, editorID uuid.UUID) error

	// ListIndex is the global feed. The rendered page is cached under a
	// per-page key with a fixed TTL; within the TTL new posts are not
	// visible.
	ListIndex(ctx context.Context, page int) (*FeedPage, error)

	// ListByGroup fails with group.ErrGroupNotFound for an unknown slug.
	ListByGroup(ctx context.Context, slug string, page int) (*FeedPage, error)

	// ListByAuthor fails with user.ErrUserNotFound for an unknown username.
	ListByAuthor(ctx context.Context, username string, page int) (*FeedPage, error)

	// GetProfile is ListByAuthor plus the profile counts and following flag.
	GetProfile(ctx context.Context, username string, viewerID uuid.UUID, page int) (*ProfilePage, error)

	// ListFollowing is the follow-feed of an authenticated user.
	ListFollowing(ctx context.Context, userID uuid.UUID, page int) (*FeedPage, error)

	// ClearIndexCache drops every cached index page, bypassing remaining
	// TTL. Administrative/test surface.
	ClearIndexCache(ctx context.Context) error
}

// MediaStorage is the slice of the object store the post service needs.
type MediaStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ImageValidator checks uploaded bytes before they are stored.
type ImageValidator interface {
	ValidateImage(data []byte) error
}

// TaskEnqueuer schedules background work (image variant generation). A nil
// enqueuer disables it.
type TaskEnqueuer interface {
	EnqueueProcessImage(ctx context.Context, postID uuid.UUID, key string) error
}
