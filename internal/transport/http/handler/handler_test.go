package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"hair-scanner-api/internal/domain"
	"hair-scanner-api/internal/service"
	mdw "hair-scanner-api/internal/transport/http/middleware"
)

type mockAuthenticator struct {
	RegisterFunc func(ctx context.Context, in service.SignupInput) (*domain.AuthResult, error)
	LoginFunc    func(ctx context.Context, in service.LoginInput) (*domain.AuthResult, error)
}

func (m *mockAuthenticator) Register(ctx context.Context, in service.SignupInput) (*domain.AuthResult, error) {
	return m.RegisterFunc(ctx, in)
}

func (m *mockAuthenticator) Login(ctx context.Context, in service.LoginInput) (*domain.AuthResult, error) {
	return m.LoginFunc(ctx, in)
}

type mockCurator struct {
	GetProfileFunc  func(ctx context.Context, userID string) (*domain.Profile, error)
	SaveProfileFunc func(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, bool, error)
}

func (m *mockCurator) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return m.GetProfileFunc(ctx, userID)
}

func (m *mockCurator) SaveProfile(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, bool, error) {
	return m.SaveProfileFunc(ctx, userID, in)
}

var testUser = domain.UserView{ID: "user-1", Email: "foo@bar.com"}

// setupRouter protected 组用一个假守卫直接塞入当前用户
func setupRouter(mount func(public, protected *gin.RouterGroup), authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	public := r.Group("/api")
	protected := public.Group("")
	protected.Use(func(c *gin.Context) {
		if authed {
			c.Set(mdw.KeyCurrentUser, testUser)
		}
		c.Next()
	})
	mount(public, protected)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var m map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), w.Body.String())
	}
	return w, m
}
