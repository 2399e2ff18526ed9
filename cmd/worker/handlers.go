package main

import (
	"github.com/hibiken/asynq"

	postJob "microblog-backend/internal/domains/post/job"
	"microblog-backend/internal/shared"
	"microblog-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	processPostImage *postJob.ProcessImageHandler
	cleanupOrphans   *postJob.CleanupOrphansHandler
}

// initializeHandlers creates all job handlers with their dependencies.
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		processPostImage: postJob.NewProcessImageHandler(c.Storage, c.Processor),
		cleanupOrphans:   postJob.NewCleanupOrphansHandler(c.Storage, c.PostRepo),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeProcessPostImage, h.processPostImage.ProcessTask)
	mux.HandleFunc(shared.TypeCleanupOrphanMedia, h.cleanupOrphans.ProcessTask)
}
