package response

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sg-console-srv/pkg/errors"
)

// OK writes data with the success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Degraded writes data with status 200 and an inline error message. Used by list views
// that still render an empty result when the remote call failed.
func Degraded(c *gin.Context, httpErr *errors.HTTPError, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
		Data:      data,
	})
}

// Error writes err. HTTPError and ValidationError keep their status, anything else is a 500.
func Error(c *gin.Context, err error) {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var valErr *errors.ValidationError
	if stderrors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   valErr.Message,
			Errors:    []*errors.ValidationError{valErr},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

// ErrorWithMap writes the HTTPError mapped to err, falling back to Error.
func ErrorWithMap(c *gin.Context, err error, m ErrorMapping) {
	for target, httpErr := range m {
		if stderrors.Is(err, target) {
			Error(c, httpErr)
			return
		}
	}
	Error(c, err)
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// PanicError writes the 500 envelope for a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}
