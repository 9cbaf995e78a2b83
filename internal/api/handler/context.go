package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// sessionHeader carries the anonymous browsing-session identifier. The
// cart is scoped to this header, not to the authenticated identity.
const sessionHeader = "X-Session-ID"

// ctxUserID extracts the user id injected by the Auth middleware. A
// missing id means the middleware did not run on this route; fail fast
// before any service call rather than querying with an empty id.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}

// ctxSessionID extracts the browsing-session id from the request header.
func ctxSessionID(c echo.Context) (string, error) {
	sessionID := c.Request().Header.Get(sessionHeader)
	if sessionID == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing "+sessionHeader+" header")
	}
	return sessionID, nil
}
