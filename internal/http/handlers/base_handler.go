// README: Base handler utilities (envelope helpers, error mapping, id validation).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripper/internal/apperr"
	"tripper/internal/logger"
	"tripper/internal/modules/share"
)

// isValidID ensures share ids are hex and at most 32 chars (matches the id generator).
func isValidID(v string) bool {
	if v == "" || len(v) > 32 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, gin.H{"success": false, "error": msg})
}

// writeAppError logs the internal detail with request context and returns
// only the user-safe side to the client.
func writeAppError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		logger.Get().Errorw("request failed",
			"request_id", c.GetString("request_id"),
			"path", c.Request.URL.Path,
			"kind", ae.Kind,
			"status", ae.HTTPStatus,
			"detail", ae.Detail,
		)
		writeError(c, ae.HTTPStatus, ae.UserMessage)
		return
	}

	switch {
	case errors.Is(err, share.ErrNotFound):
		writeError(c, http.StatusNotFound, apperr.MsgShareNotFound)
	case errors.Is(err, share.ErrUnavailable):
		logger.Get().Errorw("share store unavailable",
			"request_id", c.GetString("request_id"), "error", err)
		writeError(c, http.StatusServiceUnavailable, apperr.MsgShareUnavailable)
	default:
		logger.Get().Errorw("unexpected error",
			"request_id", c.GetString("request_id"),
			"path", c.Request.URL.Path,
			"error", err,
		)
		writeError(c, http.StatusInternalServerError, apperr.MsgGeneric)
	}
}
