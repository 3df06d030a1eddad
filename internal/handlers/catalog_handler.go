package handlers

import (
	"net/http"

	"barberia_backend/internal/services"
	"barberia_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

// RegisterRoutes registers the public catalog reads.
func (h *CatalogHandler) RegisterRoutes(r *gin.Engine) {
	sections := r.Group("/api/secciones")
	{
		sections.GET("", h.ListSections)
		sections.GET("/:id", h.GetSection)
	}
}

// RegisterAdminRoutes mounts the catalog writes inside the gated /admin
// group.
func (h *CatalogHandler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	sections := admin.Group("/api/secciones")
	{
		sections.POST("", h.CreateSection)
		sections.PUT("/:id", h.UpdateSection)
		sections.DELETE("/:id", h.DeleteSection)
	}

	items := admin.Group("/api/elementos")
	{
		items.POST("", h.CreateItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}
}

func (h *CatalogHandler) ListSections(c *gin.Context) {
	sections, err := h.catalogService.ListSections()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "secciones": sections})
}

func (h *CatalogHandler) GetSection(c *gin.Context) {
	id, ok := h.ParamID(c)
	if !ok {
		return
	}

	section, err := h.catalogService.GetSection(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "seccion": section})
}

func (h *CatalogHandler) CreateSection(c *gin.Context) {
	var req dto.SectionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	section, err := h.catalogService.CreateSection(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "seccion": section})
}

func (h *CatalogHandler) UpdateSection(c *gin.Context) {
	id, ok := h.ParamID(c)
	if !ok {
		return
	}

	var req dto.SectionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	section, err := h.catalogService.UpdateSection(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "seccion": section})
}

// DeleteSection removes a section and all of its items in one
// transaction.
func (h *CatalogHandler) DeleteSection(c *gin.Context) {
	id, ok := h.ParamID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteSection(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var req dto.ItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.catalogService.CreateItem(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "elemento": item})
}

func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	id, ok := h.ParamID(c)
	if !ok {
		return
	}

	var req dto.ItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.catalogService.UpdateItem(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "elemento": item})
}

func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	id, ok := h.ParamID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteItem(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
