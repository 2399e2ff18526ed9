package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"microblog-backend/internal/shared"
)

// Client wraps the asynq client behind the enqueue surface the services use.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

// EnqueueProcessImage schedules variant generation for a post's image.
func (c *Client) EnqueueProcessImage(ctx context.Context, postID uuid.UUID, key string) error {
	payload, err := json.Marshal(shared.ProcessPostImagePayload{
		PostID: postID.String(),
		Key:    key,
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeProcessPostImage, payload)
	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueMedia),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue process image: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
