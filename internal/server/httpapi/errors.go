package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdrrmo4516/mobile2026/internal/common"
)

const credentialsDetail = "Could not validate credentials"

// statusFor maps a service error onto an HTTP status and a client-facing
// detail. Authentication failures are deliberately uniform.
func statusFor(err error, subject string) (int, string) {
	var verr *common.ValidationError

	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, credentialsDetail
	case errors.Is(err, common.ErrNotAdmin):
		return http.StatusForbidden, "Admin access required"
	case errors.Is(err, common.ErrAlreadyBootstrapped):
		return http.StatusForbidden, "Admin already bootstrapped"
	case errors.Is(err, common.ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	case errors.As(err, &verr):
		switch {
		case errors.Is(verr, common.ErrInvalidStatus):
			return http.StatusBadRequest, "Invalid status"
		case errors.Is(verr, common.ErrInvalidLocationType):
			return http.StatusBadRequest, "Invalid location type"
		case errors.Is(verr, common.ErrNoFieldsToUpdate):
			return http.StatusBadRequest, "No fields to update"
		case errors.Is(verr, common.ErrInvalidInput):
			return http.StatusUnprocessableEntity, fmt.Sprintf("%s is invalid", verr.Field)
		default:
			return http.StatusUnprocessableEntity, verr.Err.Error()
		}
	case errors.Is(err, common.ErrorNotFound):
		if subject == "" {
			subject = "Resource"
		}
		return http.StatusNotFound, subject + " not found"
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, common.ErrStoreUnavailable), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// fail aborts the request with the mapped status. subject names the resource
// in 404 details.
func (h *Handler) fail(c *gin.Context, err error, subject string) {
	status, detail := statusFor(err, subject)

	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", common.BearerScheme)
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err.Error())
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// badRequest reports an undecodable body.
func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body"})
}
