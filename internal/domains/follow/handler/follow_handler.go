package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog-backend/internal/domains/follow"
	"microblog-backend/internal/domains/user"
	"microblog-backend/internal/shared/middleware"
	"microblog-backend/internal/shared/response"
)

type FollowHandler struct {
	service follow.Service
}

func NewFollowHandler(service follow.Service) *FollowHandler {
	return &FollowHandler{service: service}
}

// Follow handles POST /profiles/:username/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.service.Follow(c.Request.Context(), userID, c.Param("username")); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to follow")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"following": true})
}

// Unfollow handles DELETE /profiles/:username/follow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.service.Unfollow(c.Request.Context(), userID, c.Param("username")); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to unfollow")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"following": false})
}
