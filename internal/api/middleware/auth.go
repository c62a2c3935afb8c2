package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quicknote/notes-api/internal/core/token"
)

// Context keys under which the verified identity is stored.
const (
	CtxAccountID = "account_id"
	CtxUsername  = "username"
)

// Auth is the single authentication enforcement point. It reads the bearer
// token from the Authorization header, verifies it, and injects the identity
// into the echo context. Missing and invalid tokens are distinct errors
// internally but render identically (401, same payload) so the response does
// not reveal which check failed.
func Auth(verifier *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return ErrMissingToken
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return ErrMissingToken
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return ErrInvalidToken
			}

			c.Set(CtxAccountID, claims.AccountID)
			c.Set(CtxUsername, claims.Username)

			return next(c)
		}
	}
}
