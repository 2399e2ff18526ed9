package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"microblog-backend/internal/domains/post"
	"microblog-backend/internal/infrastructure/storage"
)

// mediaRoot is the bucket prefix all post media lives under; the path segment
// after it is the owning post's id.
const mediaRoot = "posts/"

// CleanupOrphansHandler removes stored media whose owning post no longer
// exists.
type CleanupOrphansHandler struct {
	storage  *storage.MinIOStorage
	postRepo post.Repository
}

func NewCleanupOrphansHandler(s *storage.MinIOStorage, postRepo post.Repository) *CleanupOrphansHandler {
	return &CleanupOrphansHandler{
		storage:  s,
		postRepo: postRepo,
	}
}

func (h *CleanupOrphansHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	prefixes, err := h.storage.ListPrefixes(ctx, mediaRoot)
	if err != nil {
		return fmt.Errorf("list media prefixes: %w", err)
	}

	removed := 0
	for _, prefix := range prefixes {
		id, err := uuid.Parse(prefix)
		if err != nil {
			// Not a post directory; leave it alone.
			continue
		}

		_, err = h.postRepo.FindByID(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, post.ErrPostNotFound) {
			return fmt.Errorf("check post %s: %w", id, err)
		}

		if err := h.storage.DeleteByPrefix(ctx, mediaRoot+prefix); err != nil {
			return fmt.Errorf("delete orphan media %s: %w", prefix, err)
		}
		removed++
	}

	log.Info().
		Int("scanned", len(prefixes)).
		Int("removed", removed).
		Msg("orphan media sweep finished")
	return nil
}
