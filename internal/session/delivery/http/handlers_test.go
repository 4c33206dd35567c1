package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"insight-srv/internal/model"
	"insight-srv/internal/session"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/log"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	gotInput  session.GetInput
	loggedOut string
}

func (f *fakeUseCase) Get(_ context.Context, sc model.Scope, input session.GetInput) (session.SessionOutput, error) {
	f.gotInput = input
	return session.SessionOutput{
		User:          &backend.User{ID: sc.UserID, Nome: "Ana", EmailAtivado: true},
		Authenticated: true,
		DisplayName:   "Ana",
	}, nil
}

func (f *fakeUseCase) Logout(_ context.Context, sc model.Scope) error {
	f.loggedOut = sc.UserID
	return nil
}

func newTestRouter(uc session.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &handler{l: log.NewNop(), uc: uc}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1"})
		ctx = scope.SetTokenToContext(ctx, "tok")
		c.Request = c.Request.WithContext(ctx)
	})
	r.GET("/session", h.Get)
	r.POST("/session/logout", h.Logout)
	return r
}

func TestGetHandler(t *testing.T) {
	uc := &fakeUseCase{}
	w := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", uc.gotInput.Token)
	assert.Equal(t, "pt", uc.gotInput.Lang)

	var body struct {
		Data sessionResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.Authenticated)
	assert.Equal(t, "Ana", body.Data.DisplayName)
	require.NotNil(t, body.Data.User)
	assert.Equal(t, userResp{ID: "u1", Name: "Ana", EmailActivated: true}, *body.Data.User)
}

func TestLogoutHandler(t *testing.T) {
	uc := &fakeUseCase{}
	w := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/session/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", uc.loggedOut)
}
