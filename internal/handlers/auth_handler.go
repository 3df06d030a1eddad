package handlers

import (
	"net/http"

	"barberia_backend/internal/config"
	"barberia_backend/internal/middleware"
	"barberia_backend/internal/services"
	"barberia_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes registers the public authentication endpoints.
func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "usuario": user})
}

// Login authenticates and sets the HTTP-only session cookie next to the
// JSON body so both page navigation and API clients work from one call.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	cfg := config.GetConfig()
	c.SetCookie(middleware.TokenCookie, response.Token, cfg.JWT.TTL*3600, "/", "", false, true)
	c.JSON(http.StatusOK, response)
}

// Logout clears the session cookie. The cookie is overwritten with an
// already-expired empty value, which both deletes it and neutralizes it
// for clients that mishandle deletion.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
