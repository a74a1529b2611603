package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// WriteDomain maps a DomainError kind onto the response status. Unknown
// errors become a 500 with a generic code.
func WriteDomain(c *gin.Context, err error) {
	var de DomainError
	if !errors.As(err, &de) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch de.Kind {
	case KindValidation:
		BadRequest(c, de.Code, "Invalid request.")
	case KindNotFound:
		NotFound(c, de.Code, "Record not found.")
	case KindInvalidTransition:
		Unprocessable(c, de.Code, "Status change not allowed.")
	default:
		Internal(c, de.Code, "Something went wrong.")
	}
}
