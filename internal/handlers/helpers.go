package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rantevou-app/gateway/internal/httperr"
	"github.com/rantevou-app/gateway/internal/middleware"
)

// bearerToken pulls the upstream token for the request's session. A read
// past expiry has already logged the session out by the time it fails.
func bearerToken(c *gin.Context) (string, bool) {
	guard := middleware.GuardFrom(c)

	tok, err := guard.Token(c.Request.Context())
	if err != nil || tok == "" {
		httperr.Unauthorized(c, "not_authenticated", "Η σύνδεσή σου έληξε. Συνδέσου ξανά.")
		return "", false
	}
	return tok, true
}

func pageParams(c *gin.Context, defaultSize int) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = defaultSize
	}
	return page, size
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Μη έγκυρο αναγνωριστικό.")
		return 0, false
	}
	return uint(id), true
}
