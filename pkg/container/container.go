package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"microblog-backend/internal/config"
	infraCache "microblog-backend/internal/infrastructure/cache"
	"microblog-backend/internal/infrastructure/database"
	"microblog-backend/internal/infrastructure/queue"
	"microblog-backend/internal/infrastructure/storage"
	"microblog-backend/pkg/cache"
	"microblog-backend/pkg/jwt"

	"microblog-backend/internal/domains/comment"
	commentHandler "microblog-backend/internal/domains/comment/handler"
	commentRepo "microblog-backend/internal/domains/comment/repository"
	commentService "microblog-backend/internal/domains/comment/service"
	"microblog-backend/internal/domains/follow"
	followHandler "microblog-backend/internal/domains/follow/handler"
	followRepo "microblog-backend/internal/domains/follow/repository"
	followService "microblog-backend/internal/domains/follow/service"
	"microblog-backend/internal/domains/group"
	groupHandler "microblog-backend/internal/domains/group/handler"
	groupRepo "microblog-backend/internal/domains/group/repository"
	groupService "microblog-backend/internal/domains/group/service"
	"microblog-backend/internal/domains/post"
	postHandler "microblog-backend/internal/domains/post/handler"
	postRepo "microblog-backend/internal/domains/post/repository"
	postService "microblog-backend/internal/domains/post/service"
	"microblog-backend/internal/domains/user"
	userHandler "microblog-backend/internal/domains/user/handler"
	userRepo "microblog-backend/internal/domains/user/repository"
	userService "microblog-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	Storage     *storage.MinIOStorage
	Processor   *storage.ImageProcessor
	QueueClient *queue.Client

	// Repositories
	UserRepo    user.Repository
	GroupRepo   group.Repository
	PostRepo    post.Repository
	CommentRepo comment.Repository
	FollowRepo  follow.Repository

	// Services
	UserService    user.Service
	GroupService   group.Service
	PostService    post.Service
	CommentService comment.Service
	FollowService  follow.Service

	// Handlers
	UserHandler    *userHandler.UserHandler
	GroupHandler   *groupHandler.GroupHandler
	PostHandler    *postHandler.PostHandler
	CommentHandler *commentHandler.CommentHandler
	FollowHandler  *followHandler.FollowHandler
}

// Options tunes which optional infrastructure the container brings up.
// The worker skips media storage; the API needs all of it.
type Options struct {
	// SkipStorage leaves Storage nil; image upload is then disabled.
	SkipStorage bool

	// SkipQueue leaves QueueClient nil; background jobs are then not
	// enqueued.
	SkipQueue bool
}

// NewContainer builds the full graph for the API server.
func NewContainer() (*Container, error) {
	return NewContainerWithOptions(Options{})
}

// NewContainerWithOptions builds the graph, skipping the pieces the caller
// does not need.
func NewContainerWithOptions(opts Options) (*Container, error) {
	c := &Container{}

	// Step 1: configuration.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	// Step 2: database.
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	c.DB = database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Step 3: cache.
	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Step 4: tokens.
	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// Step 5: media storage and queue.
	if !opts.SkipStorage {
		c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to minio: %w", err)
		}
		c.Processor = storage.NewImageProcessor()
	}
	if !opts.SkipQueue {
		c.QueueClient = queue.NewClient(cfg.Redis.Host)
	}

	// Step 6: repositories.
	pool := c.DB.Pool
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.GroupRepo = groupRepo.NewPostgresRepository(pool)
	c.PostRepo = postRepo.NewPostRepository(pool)
	c.CommentRepo = commentRepo.NewCommentRepository(pool)
	c.FollowRepo = followRepo.NewPostgresRepository(pool)

	// Step 7: services.
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.GroupService = groupService.NewGroupService(c.GroupRepo)
	c.FollowService = followService.NewFollowService(c.FollowRepo, c.UserRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.PostRepo, c.UserRepo)

	var mediaStorage post.MediaStorage
	var imageValidator post.ImageValidator
	var enqueuer post.TaskEnqueuer
	if c.Storage != nil {
		mediaStorage = c.Storage
		imageValidator = c.Processor
	}
	if c.QueueClient != nil {
		enqueuer = c.QueueClient
	}
	c.PostService = postService.NewPostService(
		c.PostRepo, c.GroupRepo, c.UserRepo, c.FollowRepo,
		c.Cache, cfg.FeedCache.TTL,
		mediaStorage, imageValidator, enqueuer,
	)

	// Step 8: handlers.
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.GroupHandler = groupHandler.NewGroupHandler(c.GroupService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, c.CommentService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.FollowHandler = followHandler.NewFollowHandler(c.FollowService)

	log.Info().Msg("container initialized")
	return c, nil
}

// Cleanup closes every connection the container owns. Safe to call on a
// partially built container.
func (c *Container) Cleanup() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close queue client")
		}
	}
	if c.Cache != nil {
		if closer, ok := c.Cache.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close cache")
			}
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
