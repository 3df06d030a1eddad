package repositories

import (
	"errors"
	"time"

	"barberia_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

// UserRepository is the persistence boundary for user accounts and their
// optional barber extension record. The multi-table operations (Create
// with profile, UpdateWithProfile, Delete) are the only places that issue
// multi-statement sequences, and each runs in a single transaction so the
// profile can never be inconsistent with the user's current role.
type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	UpdateWithProfile(user *models.User) error
	Delete(userID uint) error
	FindWithFilter(criteria UserFilter) ([]models.User, int64, error)
	FindBarberProfile(userID uint) (*models.BarberProfile, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

type UserFilter struct {
	Role     models.UserRole
	Status   models.UserStatus
	Page     int
	PageSize int
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("BarberProfile").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("BarberProfile").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts the user together with its BarberProfile association,
// if any. GORM runs the insert and the association in one transaction.
// Email uniqueness rests on the unique index, not a pre-check, so two
// concurrent registrations with the same email cannot both get through.
func (r *UserRepositoryImpl) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// UpdateWithProfile replaces the user's mutable fields and brings the
// barber profile in line with the new role, all in one transaction:
// role BARBERO upserts the profile, any other role removes it.
func (r *UserRepositoryImpl) UpdateWithProfile(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Another account holding the target email is a conflict.
		var other models.User
		err := tx.Where("email = ? AND id <> ?", user.Email, user.ID).First(&other).Error
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		result := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
			"name":       user.Name,
			"email":      user.Email,
			"role":       user.Role,
			"status":     user.Status,
			"updated_at": time.Now(),
		})
		if result.Error != nil {
			// The pre-check can lose a race against a concurrent insert;
			// the unique index has the final word.
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		if user.Role != models.UserRoleBarber {
			return tx.Where("user_id = ?", user.ID).Delete(&models.BarberProfile{}).Error
		}

		profile := user.BarberProfile
		if profile == nil {
			profile = &models.BarberProfile{}
		}

		var existing models.BarberProfile
		err = tx.Where("user_id = ?", user.ID).First(&existing).Error
		switch {
		case err == nil:
			return tx.Model(&existing).Updates(map[string]interface{}{
				"specialty":  profile.Specialty,
				"experience": profile.Experience,
				"updated_at": time.Now(),
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			profile.UserID = user.ID
			profile.ID = 0
			return tx.Create(profile).Error
		default:
			return err
		}
	})
}

// Delete removes the user and its barber profile together. A missing
// user rolls the whole operation back.
func (r *UserRepositoryImpl) Delete(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.BarberProfile{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepositoryImpl) FindWithFilter(criteria UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var users []models.User
	err := query.Preload("BarberProfile").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepositoryImpl) FindBarberProfile(userID uint) (*models.BarberProfile, error) {
	var profile models.BarberProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
