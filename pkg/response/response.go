package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"insight-srv/pkg/discord"
	"insight-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response carrying data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as an API error. HTTPErrors keep their status, validation
// failures list their fields and anything else is reported as a bad request.
// Server errors are forwarded to Discord when d is not nil.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var (
		httpErr   *errors.HTTPError
		validErrs *errors.ValidationErrorCollector
	)

	switch {
	case stderrors.As(err, &httpErr):
		if httpErr.StatusCode >= http.StatusInternalServerError {
			report(c, d, fmt.Sprintf("%s %s: %s", c.Request.Method, c.Request.URL.Path, httpErr.Message))
		}
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
	case stderrors.As(err, &validErrs):
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageBadRequest,
			Errors:    validErrs.Errors(),
		})
	default:
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageBadRequest,
			Errors:    err.Error(),
		})
	}
}

// ErrorWithMap maps err through m before writing it. Unmapped errors are
// treated as internal errors.
func ErrorWithMap(c *gin.Context, err error, m ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range m {
		if stderrors.Is(err, target) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, errors.NewHTTPError(http.StatusInternalServerError, MessageInternal), d)
}

func Unauthorized(c *gin.Context) {
	Error(c, errors.NewUnauthorizedHTTPError(), nil)
}

func Forbidden(c *gin.Context) {
	Error(c, errors.NewForbiddenHTTPError(), nil)
}

// PanicError answers a recovered panic with a 500 and reports the stack trace.
func PanicError(c *gin.Context, err any, d discord.IDiscord) {
	report(c, d, fmt.Sprintf("panic: %v\n%s %s\n%s", err, c.Request.Method, c.Request.URL.Path, debug.Stack()))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

// report sends the message in the background; the request is not held up by Discord.
func report(c *gin.Context, d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		_ = d.ReportBug(ctx, message)
	}()
}
