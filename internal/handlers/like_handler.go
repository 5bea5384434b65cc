package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	appmw "github.com/linkfield/backend/internal/middleware"
	"github.com/linkfield/backend/internal/services"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	engagementService *services.EngagementService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(engagementService *services.EngagementService) *LikeHandler {
	return &LikeHandler{engagementService: engagementService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(viewer, protected *echo.Group) {
	protected.POST("/posts/:post_id/like", h.ToggleLike)
	viewer.GET("/posts/:post_id/likes", h.GetLikes)
}

// ToggleLike flips the current user's like on a post
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID := appmw.CurrentUserID(c)

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	result, err := h.engagementService.ToggleLike(userID, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetLikes lists a post's likes with liker profiles, newest first
func (h *LikeHandler) GetLikes(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	likes, err := h.engagementService.ListLikes(postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"likes": likes,
		"count": len(likes),
	})
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
