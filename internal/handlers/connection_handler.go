package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	appmw "github.com/linkfield/backend/internal/middleware"
	"github.com/linkfield/backend/internal/models"
	"github.com/linkfield/backend/internal/services"
)

// ConnectionHandler handles HTTP requests for the connection lifecycle
type ConnectionHandler struct {
	connectionService *services.ConnectionService
}

// NewConnectionHandler creates a new ConnectionHandler
func NewConnectionHandler(connectionService *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

// RegisterConnectionRoutes registers connection-related routes
func (h *ConnectionHandler) RegisterConnectionRoutes(protected *echo.Group) {
	protected.POST("/connections/request", h.RequestConnection)
	protected.POST("/connections/accept", h.AcceptConnection)
	protected.POST("/connections/reject", h.RejectConnection)
	protected.GET("/connections", h.GetConnections)
	protected.GET("/connections/requests", h.GetPendingRequests)
}

// RequestConnection sends a connection request to another user
func (h *ConnectionHandler) RequestConnection(c echo.Context) error {
	userID := appmw.CurrentUserID(c)

	var req models.CreateConnectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conn, err := h.connectionService.RequestConnection(userID, req.ConnectedUserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Connection request sent successfully",
		"connection": conn,
	})
}

// AcceptConnection accepts a pending request received by the current user
func (h *ConnectionHandler) AcceptConnection(c echo.Context) error {
	return h.resolveConnection(c, h.connectionService.AcceptConnection, "Connection request accepted")
}

// RejectConnection rejects a pending request received by the current user
func (h *ConnectionHandler) RejectConnection(c echo.Context) error {
	return h.resolveConnection(c, h.connectionService.RejectConnection, "Connection request rejected")
}

func (h *ConnectionHandler) resolveConnection(
	c echo.Context,
	resolve func(callerID, connectionID uint) (*models.Connection, error),
	message string,
) error {
	userID := appmw.CurrentUserID(c)

	var req models.ResolveConnectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conn, err := resolve(userID, req.ConnectionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":    message,
		"connection": conn,
	})
}

// GetConnections lists the current user's accepted connections
func (h *ConnectionHandler) GetConnections(c echo.Context) error {
	userID := appmw.CurrentUserID(c)

	connections, err := h.connectionService.ListConnections(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"connections": connections,
		"count":       len(connections),
	})
}

// GetPendingRequests lists pending requests received by the current user
func (h *ConnectionHandler) GetPendingRequests(c echo.Context) error {
	userID := appmw.CurrentUserID(c)

	requests, err := h.connectionService.ListPendingRequests(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"requests": requests,
		"count":    len(requests),
	})
}
