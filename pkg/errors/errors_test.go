package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPError(t *testing.T) {
	tcs := map[string]struct {
		code       int
		wantStatus int
	}{
		"not found":       {code: 404, wantStatus: http.StatusNotFound},
		"bad gateway":     {code: 502, wantStatus: http.StatusBadGateway},
		"app code":        {code: 110001, wantStatus: http.StatusBadRequest},
		"below 4xx range": {code: 200, wantStatus: http.StatusBadRequest},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			err := NewHTTPError(tc.code, "msg")
			assert.Equal(t, tc.code, err.Code)
			assert.Equal(t, tc.wantStatus, err.StatusCode)
			assert.Equal(t, "msg", err.Message)
		})
	}
}

func TestValidationErrorCollector(t *testing.T) {
	c := NewValidationErrorCollector()
	assert.False(t, c.HasError())

	c.Add("url", "is required")
	assert.True(t, c.HasError())
	assert.Equal(t, "validation failed: url is required", c.Error())
	assert.Len(t, c.Errors(), 1)
}
