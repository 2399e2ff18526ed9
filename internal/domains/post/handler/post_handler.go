package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"microblog-backend/internal/domains/comment"
	"microblog-backend/internal/domains/group"
	"microblog-backend/internal/domains/post"
	"microblog-backend/internal/domains/user"
	"microblog-backend/internal/shared/middleware"
	"microblog-backend/internal/shared/response"
)

type PostHandler struct {
	service  post.Service
	comments comment.Service
}

func NewPostHandler(service post.Service, comments comment.Service) *PostHandler {
	return &PostHandler{service: service, comments: comments}
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	dto, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to create post")
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Get handles GET /posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	viewerID, _ := middleware.UserIDFromContext(c)

	detail, err := h.service.GetDetail(c.Request.Context(), id, viewerID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load post")
		return
	}

	detail.Comments, err = h.comments.ListByPost(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "failed to load comments")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Update handles PUT /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, post.ErrPostNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, post.ErrNotPostAuthor):
			response.Forbidden(c, err.Error())
		case errors.Is(err, group.ErrGroupNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalServerError(c, "failed to update post")
		}
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Delete handles DELETE /posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, post.ErrPostNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, post.ErrNotPostAuthor):
			response.Forbidden(c, err.Error())
		default:
			response.InternalServerError(c, "failed to delete post")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// UploadImage handles POST /posts/:id/image
func (h *PostHandler) UploadImage(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(c, "failed to read upload")
		return
	}

	url, err := h.service.AttachImage(c.Request.Context(), id, userID, data, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, post.ErrPostNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, post.ErrNotPostAuthor):
			response.Forbidden(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"image_url": url})
}

// ListIndex handles GET /feed
func (h *PostHandler) ListIndex(c *gin.Context) {
	page, err := h.service.ListIndex(c.Request.Context(), pageParam(c))
	if err != nil {
		response.InternalServerError(c, "failed to load feed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, page.Posts, page.Meta)
}

// ListByGroup handles GET /groups/:slug/posts
func (h *PostHandler) ListByGroup(c *gin.Context) {
	page, err := h.service.ListByGroup(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load group feed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, page.Posts, page.Meta)
}

// ListByAuthor handles GET /profiles/:username/posts
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	page, err := h.service.ListByAuthor(c.Request.Context(), c.Param("username"), pageParam(c))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load author feed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, page.Posts, page.Meta)
}

// GetProfile handles GET /profiles/:username
func (h *PostHandler) GetProfile(c *gin.Context) {
	viewerID, _ := middleware.UserIDFromContext(c)

	profile, err := h.service.GetProfile(c.Request.Context(), c.Param("username"), viewerID, pageParam(c))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// ListFollowing handles GET /feed/following
func (h *PostHandler) ListFollowing(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	page, err := h.service.ListFollowing(c.Request.Context(), userID, pageParam(c))
	if err != nil {
		response.InternalServerError(c, "failed to load follow feed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, page.Posts, page.Meta)
}

// ClearCache handles DELETE /feed/cache
func (h *PostHandler) ClearCache(c *gin.Context) {
	if _, ok := middleware.UserIDFromContext(c); !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.service.ClearIndexCache(c.Request.Context()); err != nil {
		response.InternalServerError(c, "failed to clear feed cache")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

// pageParam reads ?page=N; anything unparsable falls back to page 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
