package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmw "github.com/linkfield/backend/internal/middleware"
	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/services"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	profileService *services.ProfileService
	feedService    *services.FeedService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(profileService *services.ProfileService, feedService *services.FeedService) *UserHandler {
	return &UserHandler{profileService: profileService, feedService: feedService}
}

// RegisterUserRoutes registers user profile routes. Public profiles are
// viewable anonymously; editing and search require authentication.
func (h *UserHandler) RegisterUserRoutes(viewer, protected *echo.Group) {
	viewer.GET("/users/:id", h.GetUser)
	viewer.GET("/users/:id/posts", h.GetUserPosts)
	protected.PUT("/users/profile", h.UpdateProfile)
	protected.GET("/users/search", h.SearchUsers)
}

// GetUser returns another user's public profile, annotated with the
// viewer's connection status when authenticated
func (h *UserHandler) GetUser(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	viewerID := appmw.CurrentUserID(c)

	profile, err := h.profileService.GetPublicProfile(targetID, viewerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"user": profile})
}

// GetUserPosts returns a user's posts with feed enrichment
func (h *UserHandler) GetUserPosts(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	viewerID := appmw.CurrentUserID(c)

	posts, err := h.feedService.ListUserPosts(targetID, viewerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts": posts,
		"count": len(posts),
	})
}

// UpdateProfile applies a partial edit to the current user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := appmw.CurrentUserID(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	user, err := h.profileService.UpdateOwnProfile(userID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// SearchUsers searches for users by a query string (email or name)
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	users, err := h.profileService.SearchUsers(query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"users": users,
		"count": len(users),
	})
}
