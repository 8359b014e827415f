package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rantevou-app/gateway/internal/backend"
	"github.com/rantevou-app/gateway/internal/httperr"
	"github.com/rantevou-app/gateway/internal/middleware"
	"github.com/rantevou-app/gateway/internal/session"
	"github.com/rantevou-app/gateway/internal/validators"
)

type AuthHandler struct {
	api        *backend.Client
	registry   *session.Registry
	codec      *session.Codec
	cookieName string
}

func NewAuthHandler(api *backend.Client, registry *session.Registry, codec *session.Codec, cookieName string) *AuthHandler {
	return &AuthHandler{
		api:        api,
		registry:   registry,
		codec:      codec,
		cookieName: cookieName,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Συμπλήρωσε όνομα χρήστη και κωδικό.")
		return
	}

	guard := middleware.GuardFrom(c)

	user, err := guard.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Login failures are surfaced, never silently retried.
		if backend.IsUnauthorized(err) {
			httperr.Unauthorized(c, "invalid_credentials", "Λάθος όνομα χρήστη ή κωδικός.")
			return
		}
		httperr.BadGateway(c, "login_failed", "Η σύνδεση απέτυχε. Δοκίμασε ξανά.")
		return
	}

	sid := middleware.SessionIDFrom(c)
	ttl := time.Until(user.ExpiresAt)

	cookie, err := h.codec.Issue(sid, ttl)
	if err != nil {
		guard.Logout(c.Request.Context())
		httperr.Internal(c, "session_cookie_failed", "Η σύνδεση απέτυχε. Δοκίμασε ξανά.")
		return
	}
	c.SetCookie(h.cookieName, cookie, int(ttl.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"username": user.Username,
			"role":     user.Role,
		},
		"expiresAt":     user.ExpiresAt,
		"authenticated": true,
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Συμπλήρωσε όλα τα υποχρεωτικά πεδία.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Το email δεν φαίνεται να είναι έγκυρο.")
		return
	}

	err := h.api.Signup(c.Request.Context(), backend.SignupRequest{
		Username:  req.Username,
		Password:  req.Password,
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      "CLIENT",
	})
	if err != nil {
		writeBackendError(c, err, "signup_failed", "Η εγγραφή απέτυχε. Δοκίμασε ξανά.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"registered": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	guard := middleware.GuardFrom(c)
	sid := middleware.SessionIDFrom(c)

	guard.Logout(c.Request.Context())
	h.registry.Drop(sid)

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// Session lets the SPA hydrate its auth state on page load.
func (h *AuthHandler) Session(c *gin.Context) {
	guard := middleware.GuardFrom(c)

	user, ok := guard.CurrentUser()
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": false,
			"loading":       guard.Loading(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"loading":       guard.Loading(),
		"user": gin.H{
			"username": user.Username,
			"role":     user.Role,
		},
		"expiresAt": user.ExpiresAt,
	})
}
