package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Request failures come in two kinds: client-caused validation errors and
// server-caused processing errors, mapped to 4xx and 5xx respectively.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func validationError(format string, args ...any) *requestError {
	return &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

func processingError(format string, args ...any) *requestError {
	return &requestError{status: http.StatusInternalServerError, msg: fmt.Sprintf(format, args...)}
}

func fail(c *gin.Context, err error) {
	var re *requestError
	if errors.As(err, &re) {
		c.JSON(re.status, gin.H{"error": re.msg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
