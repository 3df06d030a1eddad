package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"barberia_backend/internal/auth"
	"barberia_backend/internal/config"
	"barberia_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "gate-test-secret"
	cfg.JWT.TTL = 4
	config.AppConfig = cfg

	r := gin.New()
	gate := AccessGate()

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	admin := r.Group("/admin", gate)
	admin.GET("/api/usuarios", ok)

	dashboard := r.Group("/dashboard", gate)
	dashboard.GET("", ok)
	dashboard.GET("/admin", ok)
	dashboard.GET("/barbero", ok)

	client := r.Group("/cliente", gate)
	client.GET("", ok)

	return r
}

func requestWithToken(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, role models.UserRole) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "Test", role)
	require.NoError(t, err)
	return token
}

func TestAccessGate_NoToken(t *testing.T) {
	r := gateRouter(t)

	for _, path := range []string{"/admin/api/usuarios", "/dashboard/admin", "/cliente"} {
		rec := requestWithToken(t, r, path, "")
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
}

func TestAccessGate_InvalidToken(t *testing.T) {
	r := gateRouter(t)

	rec := requestWithToken(t, r, "/admin/api/usuarios", "garbage")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAccessGate_AdminArea(t *testing.T) {
	r := gateRouter(t)

	// Insufficient role goes to the site root, never back to /login:
	// the credential is valid, only the role falls short.
	for _, role := range []models.UserRole{models.UserRoleBarber, models.UserRoleClient} {
		rec := requestWithToken(t, r, "/admin/api/usuarios", tokenFor(t, role))
		assert.Equal(t, http.StatusFound, rec.Code, role)
		assert.Equal(t, "/", rec.Header().Get("Location"), role)
	}

	rec := requestWithToken(t, r, "/admin/api/usuarios", tokenFor(t, models.UserRoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessGate_DashboardRoles(t *testing.T) {
	r := gateRouter(t)

	rec := requestWithToken(t, r, "/dashboard/barbero", tokenFor(t, models.UserRoleBarber))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = requestWithToken(t, r, "/dashboard/barbero", tokenFor(t, models.UserRoleClient))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestAccessGate_DashboardEntryForwardsByRole(t *testing.T) {
	r := gateRouter(t)

	tests := []struct {
		role models.UserRole
		dest string
	}{
		{models.UserRoleAdmin, "/dashboard/admin"},
		{models.UserRoleBarber, "/dashboard/barbero"},
		{models.UserRoleClient, "/cliente"},
	}

	for _, tt := range tests {
		rec := requestWithToken(t, r, "/dashboard", tokenFor(t, tt.role))
		assert.Equal(t, http.StatusFound, rec.Code, tt.role)
		assert.Equal(t, tt.dest, rec.Header().Get("Location"), tt.role)
	}
}

func TestAccessGate_ClientArea(t *testing.T) {
	r := gateRouter(t)

	rec := requestWithToken(t, r, "/cliente", tokenFor(t, models.UserRoleClient))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessGate_ExpiredToken(t *testing.T) {
	r := gateRouter(t)

	config.AppConfig.JWT.TTL = -1
	expired := tokenFor(t, models.UserRoleAdmin)
	config.AppConfig.JWT.TTL = 4

	rec := requestWithToken(t, r, "/admin/api/usuarios", expired)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
