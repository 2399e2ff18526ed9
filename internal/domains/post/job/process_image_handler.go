package job

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"microblog-backend/internal/infrastructure/storage"
	"microblog-backend/internal/shared"
)

// ProcessImageHandler generates resized variants of a post's uploaded image
// and stores them next to the original.
type ProcessImageHandler struct {
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
}

func NewProcessImageHandler(s *storage.MinIOStorage, p *storage.ImageProcessor) *ProcessImageHandler {
	return &ProcessImageHandler{
		storage:   s,
		processor: p,
	}
}

func (h *ProcessImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.ProcessPostImagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal ProcessPostImage payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("post_id", payload.PostID).
		Str("key", payload.Key).
		Msg("processing post image variants")

	data, err := h.storage.Download(ctx, payload.Key)
	if err != nil {
		return fmt.Errorf("download original: %w", err)
	}

	variants, err := h.processor.ProcessImage(data)
	if err != nil {
		return fmt.Errorf("process image: %w", err)
	}

	dir := path.Dir(payload.Key)
	for name, bytes := range variants {
		key := fmt.Sprintf("%s/%s.jpg", dir, name)
		if _, err := h.storage.Upload(ctx, key, bytes, "image/jpeg"); err != nil {
			return fmt.Errorf("upload variant %s: %w", name, err)
		}
	}

	log.Info().
		Str("post_id", payload.PostID).
		Int("variants", len(variants)).
		Msg("post image processed")
	return nil
}
