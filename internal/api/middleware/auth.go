package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecotrack/ecotrack-api/internal/api/metrics"
	"github.com/ecotrack/ecotrack-api/internal/core/ports"
)

// SessionCookie is the cookie the login handler sets and this gate reads.
const SessionCookie = "session_token"

// ContextUserID is the echo context key holding the authenticated subject id.
const ContextUserID = "user_id"

// Auth is the authorization gate for protected routes. It extracts a session
// token from the Authorization header (Bearer scheme) or the session cookie,
// verifies it through the codec, and attaches the subject id to the request
// context.
//
// A request with no token at all is rejected 403; a present-but-invalid token
// is rejected 401. Expired, tampered, and malformed tokens share one external
// response. The gate trusts the token's claims for the request lifetime and
// performs no store lookup, so a deleted user stays authenticated until the
// token expires.
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := extractToken(c)
			if !ok {
				metrics.TokenVerificationsTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "authentication required")
			}

			subject, err := codec.VerifyAt(token, time.Now().UTC())
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ContextUserID, subject)
			return next(c)
		}
	}
}

// extractToken prefers the Authorization header over the cookie. A header that
// is present but not a Bearer pair still counts as "token supplied" so that it
// fails verification (401) rather than the no-token path (403).
func extractToken(c echo.Context) (string, bool) {
	if header := c.Request().Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1], true
		}
		return "", true
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}
