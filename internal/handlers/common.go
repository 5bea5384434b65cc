package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/linkfield/backend/internal/apperrors"
)

// respondError writes a service error as the JSON error envelope
// {"error": message, "code": CODE} with the status its kind maps to.
func respondError(c echo.Context, err error) error {
	appErr := apperrors.As(err)
	return c.JSON(apperrors.HTTPStatus(appErr), echo.Map{
		"error": appErr.Message,
		"code":  appErr.Code,
	})
}
