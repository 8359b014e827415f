package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rantevou-app/gateway/internal/backend"
	"github.com/rantevou-app/gateway/internal/session"
)

const (
	ContextGuard     = "sessionGuard"
	ContextSessionID = "sessionID"
	ContextUsername  = "username"
	ContextUserRole  = "userRole"
)

// SessionMiddleware resolves the browser's session from the signed cookie
// and hydrates its guard before any handler runs. A missing or invalid
// cookie gets a fresh anonymous session; deciding whether that session may
// proceed is RequireAuth's job.
func SessionMiddleware(cookieName string, codec *session.Codec, registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := ""
		if raw, err := c.Cookie(cookieName); err == nil {
			if parsed, err := codec.Parse(raw); err == nil {
				sid = parsed
			}
		}
		if sid == "" {
			sid = session.NewSessionID()
		}

		guard := registry.Guard(sid)
		guard.Initialize(c.Request.Context())

		// Upstream 401s must take this session down with them.
		c.Request = c.Request.WithContext(
			backend.WithTeardown(c.Request.Context(), guard.Teardown),
		)

		c.Set(ContextGuard, guard)
		c.Set(ContextSessionID, sid)

		c.Next()
	}
}

// GuardFrom returns the request's guard; SessionMiddleware always sets it
// on routes that use these helpers.
func GuardFrom(c *gin.Context) *session.Guard {
	return c.MustGet(ContextGuard).(*session.Guard)
}

func SessionIDFrom(c *gin.Context) string {
	return c.MustGet(ContextSessionID).(string)
}

// RequireAuth gates protected views: unauthenticated visitors get a 401
// and the SPA redirects them to login.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		guard := GuardFrom(c)

		user, ok := guard.CurrentUser()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
			return
		}

		c.Set(ContextUsername, user.Username)
		c.Set(ContextUserRole, user.Role)
		c.Next()
	}
}

// PublicOnly is the inverse guard for login/signup: a visitor who is
// already authenticated is told so instead of being allowed to re-submit.
func PublicOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		guard := GuardFrom(c)
		if guard.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "already_authenticated"})
			return
		}
		c.Next()
	}
}
