package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"microblog-backend/internal/shared/middleware"
	"microblog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupFeedRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupGroupRoutes(v1, c)
		setupProfileRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.RefreshToken)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

func setupFeedRoutes(v1 *gin.RouterGroup, c *container.Container) {
	feed := v1.Group("/feed")
	{
		feed.GET("/following", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.ListFollowing)
		feed.DELETE("/cache", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.ClearCache)
	}
}

func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		// The global index is public and served through the response cache.
		posts.GET("", c.PostHandler.ListIndex)
		posts.GET("/:id", middleware.OptionalAuthMiddleware(c.JWTManager), c.PostHandler.Get)
		posts.GET("/:id/comments", c.CommentHandler.ListByPost)

		posts.POST("", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.Create)
		posts.PUT("/:id", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.Update)
		posts.DELETE("/:id", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.Delete)
		posts.POST("/:id/image", middleware.AuthMiddleware(c.JWTManager), c.PostHandler.UploadImage)
		posts.POST("/:id/comments", middleware.AuthMiddleware(c.JWTManager), c.CommentHandler.Create)
	}
}

func setupGroupRoutes(v1 *gin.RouterGroup, c *container.Container) {
	groups := v1.Group("/groups")
	{
		groups.GET("", c.GroupHandler.GetAll)
		groups.GET("/:slug", c.GroupHandler.GetBySlug)
		groups.GET("/:slug/posts", c.PostHandler.ListByGroup)

		groups.POST("", middleware.AuthMiddleware(c.JWTManager), c.GroupHandler.Create)
	}
}

func setupProfileRoutes(v1 *gin.RouterGroup, c *container.Container) {
	profiles := v1.Group("/profiles")
	{
		profiles.GET("/:username", middleware.OptionalAuthMiddleware(c.JWTManager), c.PostHandler.GetProfile)
		profiles.GET("/:username/posts", c.PostHandler.ListByAuthor)

		profiles.POST("/:username/follow", middleware.AuthMiddleware(c.JWTManager), c.FollowHandler.Follow)
		profiles.DELETE("/:username/follow", middleware.AuthMiddleware(c.JWTManager), c.FollowHandler.Unfollow)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
