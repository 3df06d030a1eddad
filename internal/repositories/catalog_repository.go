package repositories

import (
	"errors"
	"time"

	"barberia_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrItemNotFound    = errors.New("item not found")
)

// CatalogRepository is the persistence boundary for catalog sections and
// their dependent items. DeleteSection is the only multi-statement
// operation; it runs items-then-section inside one transaction so an item
// can never reference a deleted section.
type CatalogRepository interface {
	ListSections() ([]models.Section, error)
	FindSectionWithItems(id uint) (*models.Section, error)
	CreateSection(section *models.Section) error
	UpdateSection(section *models.Section) error
	DeleteSection(id uint) error
	CreateItem(item *models.Item) error
	UpdateItem(item *models.Item) error
	DeleteItem(id uint) error
	ListItemsBySection(sectionID uint) ([]models.Item, error)
}

type CatalogRepositoryImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) ListSections() ([]models.Section, error) {
	var sections []models.Section
	err := r.db.Order("created_at ASC").Find(&sections).Error
	return sections, err
}

func (r *CatalogRepositoryImpl) FindSectionWithItems(id uint) (*models.Section, error) {
	var section models.Section
	err := r.db.Preload("Items").First(&section, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

func (r *CatalogRepositoryImpl) CreateSection(section *models.Section) error {
	return r.db.Create(section).Error
}

func (r *CatalogRepositoryImpl) UpdateSection(section *models.Section) error {
	result := r.db.Model(&models.Section{}).Where("id = ?", section.ID).Updates(map[string]interface{}{
		"name":        section.Name,
		"image_url":   section.ImageURL,
		"type":        section.Type,
		"has_catalog": section.HasCatalog,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}

// DeleteSection removes the section and every item referencing it.
// Items go first so the parent row never dangles children. Zero rows
// affected on the section delete means the section was already gone;
// the transaction rolls back and reports not-found, which also makes a
// concurrent double delete resolve cleanly.
func (r *CatalogRepositoryImpl) DeleteSection(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Section{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSectionNotFound
		}
		return nil
	})
}

// CreateItem rejects items pointing at a non-existent section.
func (r *CatalogRepositoryImpl) CreateItem(item *models.Item) error {
	var section models.Section
	if err := r.db.First(&section, "id = ?", item.SectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}
	return r.db.Create(item).Error
}

// UpdateItem replaces the item's fields, including its section. A move
// to a non-existent section is rejected, same as CreateItem.
func (r *CatalogRepositoryImpl) UpdateItem(item *models.Item) error {
	var section models.Section
	if err := r.db.First(&section, "id = ?", item.SectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}

	result := r.db.Model(&models.Item{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"section_id":   item.SectionID,
		"name":         item.Name,
		"description":  item.Description,
		"price":        item.Price,
		"image_url":    item.ImageURL,
		"document_url": item.DocumentURL,
		"is_featured":  item.IsFeatured,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) DeleteItem(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) ListItemsBySection(sectionID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("section_id = ?", sectionID).Find(&items).Error
	return items, err
}
