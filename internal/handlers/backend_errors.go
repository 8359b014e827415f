package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rantevou-app/gateway/internal/backend"
	"github.com/rantevou-app/gateway/internal/httperr"
)

// writeBackendError maps a remote API failure onto this layer's error
// envelope. Constraint violations keep their actionable message; plain
// 401s have already torn the session down by the time we get here.
func writeBackendError(c *gin.Context, err error, code, fallback string) {
	switch {
	case backend.IsConstraintViolation(err):
		httperr.Conflict(c, "constraint_violation", constraintMessage(err, fallback))
	case backend.IsUnauthorized(err):
		httperr.Unauthorized(c, "not_authenticated", "Η σύνδεσή σου έληξε. Συνδέσου ξανά.")
	case backend.IsNotFound(err):
		httperr.NotFound(c, code+"_not_found", fallback)
	default:
		httperr.BadGateway(c, code, fallback)
	}
}

func constraintMessage(err error, fallback string) string {
	var be *backend.Error
	if errors.As(err, &be) && be.Description != "" {
		return be.Description
	}
	return fallback
}
