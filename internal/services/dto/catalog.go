package dto

import "barberia_backend/internal/models"

type SectionRequest struct {
	Name       string             `json:"nombre" binding:"required"`
	ImageURL   string             `json:"imagen_url"`
	Type       models.SectionType `json:"tipo" binding:"required,oneof=SERVICIO PRODUCTO"`
	HasCatalog bool               `json:"tiene_catalogo"`
}

type SectionResponse struct {
	ID         uint               `json:"id"`
	Name       string             `json:"nombre"`
	ImageURL   string             `json:"imagen_url"`
	Type       models.SectionType `json:"tipo"`
	HasCatalog bool               `json:"tiene_catalogo"`
	Items      []ItemResponse     `json:"elementos,omitempty"`
}

type ItemRequest struct {
	SectionID   uint     `json:"seccion_id" binding:"required"`
	Name        string   `json:"nombre" binding:"required"`
	Description string   `json:"descripcion"`
	Price       *float64 `json:"precio"`
	ImageURL    string   `json:"imagen_url"`
	DocumentURL *string  `json:"documento_url"`
	IsFeatured  bool     `json:"destacado"`
}

type ItemResponse struct {
	ID          uint     `json:"id"`
	SectionID   uint     `json:"seccion_id"`
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion"`
	Price       *float64 `json:"precio"`
	ImageURL    string   `json:"imagen_url"`
	DocumentURL *string  `json:"documento_url"`
	IsFeatured  bool     `json:"destacado"`
}

func NewSectionResponse(section *models.Section) SectionResponse {
	resp := SectionResponse{
		ID:         section.ID,
		Name:       section.Name,
		ImageURL:   section.ImageURL,
		Type:       section.Type,
		HasCatalog: section.HasCatalog,
	}
	for i := range section.Items {
		resp.Items = append(resp.Items, NewItemResponse(&section.Items[i]))
	}
	return resp
}

func NewItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		SectionID:   item.SectionID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		DocumentURL: item.DocumentURL,
		IsFeatured:  item.IsFeatured,
	}
}
