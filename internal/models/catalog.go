package models

// Section groups catalog items. It exclusively owns its Items: deleting a
// section removes every item referencing it in the same transaction.
type Section struct {
	BaseModel
	Name       string      `gorm:"not null"`
	ImageURL   string
	Type       SectionType `gorm:"type:varchar(20);not null"`
	HasCatalog bool        `gorm:"default:false"`

	// Relations
	Items []Item `gorm:"foreignKey:SectionID"`
}

type Item struct {
	BaseModel
	SectionID   uint     `gorm:"not null;index"`
	Name        string   `gorm:"not null"`
	Description string
	Price       *float64
	ImageURL    string
	DocumentURL *string
	IsFeatured  bool     `gorm:"default:false"`
}
