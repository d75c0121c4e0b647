package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the user id injected by the Auth middleware. Its
// presence proves the middleware ran; a missing or non-positive id means the
// route was wired without authentication and the request must not proceed.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get("user_id").(int64)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
