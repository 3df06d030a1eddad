package models

type User struct {
	BaseModel
	Name         string     `gorm:"not null"`
	Email        string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'CLIENTE'"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'ACTIVO'"`

	// Relations
	BarberProfile *BarberProfile `gorm:"foreignKey:UserID"`
}

// BarberProfile is the 1:1 extension of a User whose role is BARBERO.
// It must never outlive its parent user nor survive a role change away
// from BARBERO; both rules are enforced transactionally in the
// repository layer.
type BarberProfile struct {
	BaseModel
	UserID     uint   `gorm:"uniqueIndex;not null"`
	Specialty  string `gorm:"type:varchar(100)"`
	Experience int
}
