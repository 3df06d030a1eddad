package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barberia_backend/internal/config"
	"barberia_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires the full router against a private in-memory
// database, with the first admin seeded the same way Run does it.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "app-test-secret"
	cfg.JWT.TTL = 4
	cfg.FirstAdmin.Name = "Admin"
	cfg.FirstAdmin.Email = "admin@test.com"
	cfg.FirstAdmin.Password = "secreto123"
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = nil })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.BarberProfile{},
		&models.Section{},
		&models.Item{},
	))
	require.NoError(t, seedFirstAdmin(db, cfg))

	return SetupRouter(cfg, db)
}

func doJSON(router *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func login(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()
	body := `{"correo":"` + email + `","password":"` + password + `"}`
	w := doJSON(router, http.MethodPost, "/api/auth/login", body, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func TestApp_LoginSetsSessionCookie(t *testing.T) {
	router := newTestServer(t)

	cookie := login(t, router, "admin@test.com", "secreto123")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestApp_LoginRejectsBadCredentials(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/auth/login",
		`{"correo":"admin@test.com","password":"incorrecta"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/auth/login",
		`{"correo":"nadie@test.com","password":"secreto123"}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPost, "/api/auth/login", `{"correo":"admin@test.com"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApp_AdminAreaRequiresSession(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/admin/api/usuarios", "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestApp_AdminListsUsers(t *testing.T) {
	router := newTestServer(t)
	cookie := login(t, router, "admin@test.com", "secreto123")

	w := doJSON(router, http.MethodGet, "/admin/api/usuarios", "", cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool  `json:"success"`
		Total   int64 `json:"total"`
		Users   []struct {
			Email string `json:"correo"`
			Role  string `json:"rol"`
		} `json:"usuarios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "admin@test.com", resp.Users[0].Email)
	assert.Equal(t, "ADMIN", resp.Users[0].Role)
}

func TestApp_ClientSessionCannotEnterAdminArea(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/auth/register",
		`{"nombre":"Ana","correo":"ana@test.com","password":"secreto123"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	cookie := login(t, router, "ana@test.com", "secreto123")

	w = doJSON(router, http.MethodGet, "/admin/api/usuarios", "", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestApp_DashboardEntryForwardsAdmin(t *testing.T) {
	router := newTestServer(t)
	cookie := login(t, router, "admin@test.com", "secreto123")

	w := doJSON(router, http.MethodGet, "/dashboard", "", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/admin", w.Header().Get("Location"))
}

func TestApp_CatalogAdminFlow(t *testing.T) {
	router := newTestServer(t)
	cookie := login(t, router, "admin@test.com", "secreto123")

	w := doJSON(router, http.MethodPost, "/admin/api/secciones",
		`{"nombre":"Cortes","tipo":"SERVICIO","tiene_catalogo":true}`, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Section struct {
			ID uint `json:"id"`
		} `json:"seccion"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Section.ID)

	// Public read without a session sees the new section.
	w = doJSON(router, http.MethodGet, "/api/secciones", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cortes")

	// Writes stay behind the gate.
	w = doJSON(router, http.MethodPost, "/admin/api/secciones",
		`{"nombre":"Productos","tipo":"PRODUCTO"}`, nil)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestApp_LogoutClearsCookie(t *testing.T) {
	router := newTestServer(t)
	cookie := login(t, router, "admin@test.com", "secreto123")

	w := doJSON(router, http.MethodPost, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}
