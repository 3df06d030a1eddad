package routes

import (
	"net/http"

	"barberia_backend/internal/handlers"
	"barberia_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route. Protected areas share one
// AccessGate instance so the authorization policy lives in exactly one
// place.
func RegisterRoutes(r *gin.Engine, appHandlers *handlers.AppHandlers) {
	// Public surface
	r.GET("/", home)
	r.GET("/login", loginPage)

	appHandlers.AuthHandler.RegisterRoutes(r)
	appHandlers.CatalogHandler.RegisterRoutes(r)

	// Protected areas, all behind the same gate
	gate := middleware.AccessGate()

	admin := r.Group("/admin", gate)
	appHandlers.UserHandler.RegisterAdminRoutes(admin)
	appHandlers.CatalogHandler.RegisterAdminRoutes(admin)

	dashboard := r.Group("/dashboard", gate)
	client := r.Group("/cliente", gate)
	appHandlers.DashboardHandler.RegisterRoutes(dashboard, client)
}

func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "mensaje": "Barbería"})
}

func loginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "mensaje": "Inicia sesión"})
}
