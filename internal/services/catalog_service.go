package services

import (
	"barberia_backend/internal/appErrors"
	"barberia_backend/internal/models"
	"barberia_backend/internal/repositories"
	"barberia_backend/internal/services/dto"
)

type CatalogService interface {
	ListSections() ([]dto.SectionResponse, error)
	GetSection(id uint) (*dto.SectionResponse, error)
	CreateSection(req *dto.SectionRequest) (*dto.SectionResponse, error)
	UpdateSection(id uint, req *dto.SectionRequest) (*dto.SectionResponse, error)
	DeleteSection(id uint) error
	CreateItem(req *dto.ItemRequest) (*dto.ItemResponse, error)
	UpdateItem(id uint, req *dto.ItemRequest) (*dto.ItemResponse, error)
	DeleteItem(id uint) error
}

type CatalogServiceImpl struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *CatalogServiceImpl) ListSections() ([]dto.SectionResponse, error) {
	sections, err := s.catalogRepo.ListSections()
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	resp := make([]dto.SectionResponse, 0, len(sections))
	for i := range sections {
		resp = append(resp, dto.NewSectionResponse(&sections[i]))
	}
	return resp, nil
}

func (s *CatalogServiceImpl) GetSection(id uint) (*dto.SectionResponse, error) {
	section, err := s.catalogRepo.FindSectionWithItems(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrSectionNotFound) {
			return nil, appErrors.ErrSectionNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}
	resp := dto.NewSectionResponse(section)
	return &resp, nil
}

func (s *CatalogServiceImpl) CreateSection(req *dto.SectionRequest) (*dto.SectionResponse, error) {
	section := &models.Section{
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		Type:       req.Type,
		HasCatalog: req.HasCatalog,
	}
	if err := s.catalogRepo.CreateSection(section); err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	resp := dto.NewSectionResponse(section)
	return &resp, nil
}

func (s *CatalogServiceImpl) UpdateSection(id uint, req *dto.SectionRequest) (*dto.SectionResponse, error) {
	section := &models.Section{
		Name:       req.Name,
		ImageURL:   req.ImageURL,
		Type:       req.Type,
		HasCatalog: req.HasCatalog,
	}
	section.ID = id

	if err := s.catalogRepo.UpdateSection(section); err != nil {
		if appErrors.Is(err, repositories.ErrSectionNotFound) {
			return nil, appErrors.ErrSectionNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}
	return s.GetSection(id)
}

// DeleteSection removes the section and its items as one unit.
func (s *CatalogServiceImpl) DeleteSection(id uint) error {
	if err := s.catalogRepo.DeleteSection(id); err != nil {
		if appErrors.Is(err, repositories.ErrSectionNotFound) {
			return appErrors.ErrSectionNotFound
		}
		return appErrors.DatabaseError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) CreateItem(req *dto.ItemRequest) (*dto.ItemResponse, error) {
	item := &models.Item{
		SectionID:   req.SectionID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		DocumentURL: req.DocumentURL,
		IsFeatured:  req.IsFeatured,
	}
	if err := s.catalogRepo.CreateItem(item); err != nil {
		if appErrors.Is(err, repositories.ErrSectionNotFound) {
			return nil, appErrors.ErrSectionNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}
	resp := dto.NewItemResponse(item)
	return &resp, nil
}

func (s *CatalogServiceImpl) UpdateItem(id uint, req *dto.ItemRequest) (*dto.ItemResponse, error) {
	item := &models.Item{
		SectionID:   req.SectionID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		DocumentURL: req.DocumentURL,
		IsFeatured:  req.IsFeatured,
	}
	item.ID = id

	if err := s.catalogRepo.UpdateItem(item); err != nil {
		switch {
		case appErrors.Is(err, repositories.ErrItemNotFound):
			return nil, appErrors.ErrItemNotFound
		case appErrors.Is(err, repositories.ErrSectionNotFound):
			return nil, appErrors.ErrSectionNotFound
		default:
			return nil, appErrors.DatabaseError(err)
		}
	}

	resp := dto.NewItemResponse(item)
	return &resp, nil
}

func (s *CatalogServiceImpl) DeleteItem(id uint) error {
	if err := s.catalogRepo.DeleteItem(id); err != nil {
		if appErrors.Is(err, repositories.ErrItemNotFound) {
			return appErrors.ErrItemNotFound
		}
		return appErrors.DatabaseError(err)
	}
	return nil
}
