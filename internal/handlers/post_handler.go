package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	appmw "github.com/linkfield/backend/internal/middleware"
	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/services"
)

// PostHandler handles post creation and the feed
type PostHandler struct {
	feedService *services.FeedService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(feedService *services.FeedService) *PostHandler {
	return &PostHandler{feedService: feedService}
}

// RegisterPostRoutes registers post-related routes. The feed is readable
// anonymously; creating posts requires authentication.
func (h *PostHandler) RegisterPostRoutes(viewer, protected *echo.Group) {
	viewer.GET("/posts", h.GetFeed)
	protected.POST("/posts", h.CreatePost)
}

// CreatePost creates a new post authored by the current user
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := appmw.CurrentUserID(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.feedService.CreatePost(userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"post": post})
}

// GetFeed returns all posts enriched with authors and, for authenticated
// viewers, the per-post like flag
func (h *PostHandler) GetFeed(c echo.Context) error {
	viewerID := appmw.CurrentUserID(c)

	posts, err := h.feedService.ListFeed(viewerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts": posts,
		"count": len(posts),
	})
}
