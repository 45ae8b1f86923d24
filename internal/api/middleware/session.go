package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayloop/booking-api/internal/core/domain"
	"github.com/stayloop/booking-api/internal/core/ports"
)

// CookieName is the cookie the session token travels in. Identity travels
// exclusively through this HTTP-only cookie; there is no bearer header.
const CookieName = "token"

// TokenVerifier is the slice of the auth service the middleware needs.
type TokenVerifier interface {
	VerifyToken(token string) (*ports.SessionClaims, error)
}

// Session validates the session cookie and injects the caller's identity
// into context. A missing cookie and a tampered token both end the request
// with 401, but with distinct messages.
func Session(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if cookie, err := c.Cookie(CookieName); err == nil {
				token = cookie.Value
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				if errors.Is(err, domain.ErrNoToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)

			return next(c)
		}
	}
}
