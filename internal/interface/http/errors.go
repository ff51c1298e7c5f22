package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/application"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
	"github.com/oksasatya/growth-sessions/pkg/response"
	"github.com/oksasatya/growth-sessions/pkg/validation"
)

// writeError maps service errors onto statuses. Anything unrecognised is logged and hidden
// behind a 500.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var fe *application.FieldError
	switch {
	case errors.As(err, &fe):
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", fe.Details())
	case errors.Is(err, application.ErrSessionNotFound),
		errors.Is(err, application.ErrCommentNotFound),
		errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, application.ErrSessionPassed),
		errors.Is(err, application.ErrSessionFull),
		errors.Is(err, application.ErrAlreadyAttending),
		errors.Is(err, application.ErrNotAttending):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrInvalidState):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrSearchDisabled):
		response.Error[any](c, http.StatusServiceUnavailable, err.Error(), nil)
	default:
		if logger != nil {
			helpers.LogError(logger, "request failed", err, logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.FullPath(),
			})
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func bindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
}

// pathID reads a numeric route parameter. Non-numeric ids cannot exist, so they are a 404.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusNotFound, "not found", nil)
		return 0, false
	}
	return id, true
}
