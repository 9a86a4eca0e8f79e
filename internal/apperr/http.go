package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Error string `json:"error"`
}

func statusOf(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindState:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// Write reports err to the client. Typed errors keep their message and get
// the status of their kind; anything else becomes an opaque 500.
func Write(c *gin.Context, err error) {
	var ae *Error
	if errors.As(err, &ae) {
		c.JSON(statusOf(ae.Kind), HTTPError{Error: ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, HTTPError{Error: "internal_error"})
}
