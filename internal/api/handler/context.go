package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quicknote/notes-api/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing account id means the middleware did not run on this route, which
// is a wiring bug; fail closed with 401 rather than proceed unscoped.
func ctxIdentity(c echo.Context) (accountID, username string, err error) {
	accountID, _ = c.Get(middleware.CtxAccountID).(string)
	if accountID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	username, _ = c.Get(middleware.CtxUsername).(string)
	return accountID, username, nil
}
