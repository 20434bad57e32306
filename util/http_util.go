// util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithServiceError maps a service error onto a status code. Caller-facing
// messages are passed through as is.
func RespondWithServiceError(c *gin.Context, fallback string, err error) {
	if msgErr, ok := echo_errors.AsRuntimeMsg(err); ok {
		code := http.StatusBadRequest
		if isNotFound(err) {
			code = http.StatusNotFound
		}
		RespondWithError(c, code, msgErr.Msg, err)
		return
	}
	switch {
	case isNotFound(err):
		RespondWithError(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, echo_errors.ErrUserConflict),
		errors.Is(err, echo_errors.ErrRoleConflict),
		errors.Is(err, echo_errors.ErrOrgConflict):
		RespondWithError(c, http.StatusConflict, err.Error(), err)
	case errors.Is(err, echo_errors.ErrOrgHasChildren):
		RespondWithError(c, http.StatusConflict, err.Error(), err)
	default:
		RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, echo_errors.ErrUserNotFound) ||
		errors.Is(err, echo_errors.ErrRoleNotFound) ||
		errors.Is(err, echo_errors.ErrOrgNotFound)
}

// GetUserIDFromContext returns the authenticated actor, "" when anonymous.
func GetUserIDFromContext(c *gin.Context) string {
	return model.ActorFromContext(c.Request.Context())
}
