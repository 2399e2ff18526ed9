package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog-backend/internal/domains/group"
	"microblog-backend/internal/shared/response"
)

type GroupHandler struct {
	service group.Service
}

func NewGroupHandler(service group.Service) *GroupHandler {
	return &GroupHandler{service: service}
}

// Create handles POST /groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req group.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, group.ErrSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to create group")
		return
	}

	response.Success(c, http.StatusCreated, g)
}

// GetAll handles GET /groups
func (h *GroupHandler) GetAll(c *gin.Context) {
	groups, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list groups")
		return
	}

	response.Success(c, http.StatusOK, groups)
}

// GetBySlug handles GET /groups/:slug
func (h *GroupHandler) GetBySlug(c *gin.Context) {
	g, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to get group")
		return
	}

	response.Success(c, http.StatusOK, g)
}
