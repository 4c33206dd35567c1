package response

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"insight-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

var errMissing = stderrors.New("missing")

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := newContext()
	OK(c, map[string]int{"n": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error_code":0,"message":"Success","data":{"n":1}}`, w.Body.String())
}

func TestError(t *testing.T) {
	tcs := map[string]struct {
		err      error
		status   int
		code     int64
		message  string
		hasField bool
	}{
		"http error": {
			err:     errors.NewHTTPError(404, "Analysis not found"),
			status:  http.StatusNotFound,
			code:    404,
			message: "Analysis not found",
		},
		"wrapped http error": {
			err:     stderrors.Join(errMissing, errors.NewHTTPError(409, "busy")),
			status:  http.StatusConflict,
			code:    409,
			message: "busy",
		},
		"validation": {
			err: func() error {
				v := errors.NewValidationErrorCollector()
				v.Add("url", "is required")
				return v
			}(),
			status:   http.StatusBadRequest,
			code:     400,
			message:  MessageBadRequest,
			hasField: true,
		},
		"plain error": {
			err:     errMissing,
			status:  http.StatusBadRequest,
			code:    400,
			message: MessageBadRequest,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			c, w := newContext()
			Error(c, tc.err, nil)

			assert.Equal(t, tc.status, w.Code)
			body := w.Body.String()
			assert.Equal(t, tc.code, gjson.Get(body, "error_code").Int())
			assert.Equal(t, tc.message, gjson.Get(body, "message").String())
			if tc.hasField {
				assert.Equal(t, "url", gjson.Get(body, "errors.0.field").String())
			}
		})
	}
}

func TestErrorWithMap(t *testing.T) {
	m := ErrorMapping{errMissing: errors.NewHTTPError(404, "gone")}

	c, w := newContext()
	ErrorWithMap(c, errMissing, m, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = newContext()
	ErrorWithMap(c, stderrors.New("other"), m, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUnauthorizedAndPanic(t *testing.T) {
	c, w := newContext()
	Unauthorized(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = newContext()
	Forbidden(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, w = newContext()
	PanicError(c, "boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, MessageInternal, gjson.Get(w.Body.String(), "message").String())
}
