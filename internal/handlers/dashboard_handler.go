package handlers

import (
	"net/http"

	"barberia_backend/internal/appErrors"
	"barberia_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the role-specific landing endpoints behind the
// access gate. The gate has already classified the path and resolved the
// identity, so these handlers only echo the request-scoped claims.
type DashboardHandler struct {
	*BaseHandler
}

func NewDashboardHandler(base *BaseHandler) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base}
}

// RegisterRoutes mounts the gated dashboard and client areas. The bare
// /dashboard route exists so the gate can forward it by role.
func (h *DashboardHandler) RegisterRoutes(dashboard, client *gin.RouterGroup) {
	dashboard.GET("", h.Me)
	dashboard.GET("/admin", h.Me)
	dashboard.GET("/barbero", h.Me)

	client.GET("", h.Me)
	client.GET("/perfil", h.Me)
}

// Me returns the identity resolved once by the gate for this request.
func (h *DashboardHandler) Me(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		appErrors.HandleError(c, appErrors.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"usuario": gin.H{
			"id":     claims.UserID,
			"nombre": claims.Name,
			"rol":    claims.Role,
		},
	})
}
