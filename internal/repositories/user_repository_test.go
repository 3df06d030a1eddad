package repositories

import (
	"testing"

	"barberia_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUser(name, email string, role models.UserRole) *models.User {
	return &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Role:         role,
		Status:       models.UserStatusActive,
	}
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	first := newUser("Ana", "ana@test.com", models.UserRoleClient)
	require.NoError(t, repo.Create(first))

	second := newUser("Otra Ana", "ana@test.com", models.UserRoleClient)
	err := repo.Create(second)
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The first account is unaffected.
	got, err := repo.FindByEmail("ana@test.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
}

func TestUserRepository_CreateBarberWithProfile(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	user := newUser("Luis", "luis@test.com", models.UserRoleBarber)
	user.BarberProfile = &models.BarberProfile{Specialty: "Fade", Experience: 5}
	require.NoError(t, repo.Create(user))

	got, err := repo.FindByEmail("luis@test.com")
	require.NoError(t, err)
	require.NotNil(t, got.BarberProfile)
	assert.Equal(t, "Fade", got.BarberProfile.Specialty)
	assert.Equal(t, 5, got.BarberProfile.Experience)
}

func TestUserRepository_RoleChangeRemovesProfile(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	user := newUser("Luis", "luis@test.com", models.UserRoleBarber)
	user.BarberProfile = &models.BarberProfile{Specialty: "Fade", Experience: 5}
	require.NoError(t, repo.Create(user))

	// Demote BARBERO -> CLIENTE: the profile must go with it.
	update := newUser("Luis", "luis@test.com", models.UserRoleClient)
	update.ID = user.ID
	require.NoError(t, repo.UpdateWithProfile(update))

	_, err := repo.FindBarberProfile(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleClient, got.Role)
	assert.Nil(t, got.BarberProfile)
}

func TestUserRepository_RoleChangeCreatesProfile(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	user := newUser("Ana", "ana@test.com", models.UserRoleClient)
	require.NoError(t, repo.Create(user))

	update := newUser("Ana", "ana@test.com", models.UserRoleBarber)
	update.ID = user.ID
	update.BarberProfile = &models.BarberProfile{Specialty: "Color", Experience: 2}
	require.NoError(t, repo.UpdateWithProfile(update))

	profile, err := repo.FindBarberProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Color", profile.Specialty)
	assert.Equal(t, 2, profile.Experience)
}

func TestUserRepository_RoleResaveUpdatesProfile(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	user := newUser("Luis", "luis@test.com", models.UserRoleBarber)
	user.BarberProfile = &models.BarberProfile{Specialty: "Fade", Experience: 5}
	require.NoError(t, repo.Create(user))

	// Re-saving while already BARBERO updates in place, no duplicate row.
	update := newUser("Luis", "luis@test.com", models.UserRoleBarber)
	update.ID = user.ID
	update.BarberProfile = &models.BarberProfile{Specialty: "Clásico", Experience: 6}
	require.NoError(t, repo.UpdateWithProfile(update))

	profile, err := repo.FindBarberProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clásico", profile.Specialty)
	assert.Equal(t, 6, profile.Experience)

	var count int64
	require.NoError(t, db.Model(&models.BarberProfile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_UpdateEmailConflict(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	require.NoError(t, repo.Create(newUser("Ana", "ana@test.com", models.UserRoleClient)))
	other := newUser("Luis", "luis@test.com", models.UserRoleClient)
	require.NoError(t, repo.Create(other))

	update := newUser("Luis", "ana@test.com", models.UserRoleClient)
	update.ID = other.ID
	err := repo.UpdateWithProfile(update)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserRepository_UpdateMissingUser(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	update := newUser("Nadie", "nadie@test.com", models.UserRoleClient)
	update.ID = 999
	err := repo.UpdateWithProfile(update)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DeleteCascadesProfile(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)

	user := newUser("Luis", "luis@test.com", models.UserRoleBarber)
	user.BarberProfile = &models.BarberProfile{Specialty: "Fade", Experience: 5}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.Delete(user.ID))

	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	var count int64
	require.NoError(t, db.Model(&models.BarberProfile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	assert.ErrorIs(t, repo.Delete(42), ErrUserNotFound)
}

func TestUserRepository_FindWithFilter(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	require.NoError(t, repo.Create(newUser("Ana", "ana@test.com", models.UserRoleClient)))
	require.NoError(t, repo.Create(newUser("Luis", "luis@test.com", models.UserRoleBarber)))
	inactive := newUser("Eva", "eva@test.com", models.UserRoleClient)
	inactive.Status = models.UserStatusInactive
	require.NoError(t, repo.Create(inactive))

	users, total, err := repo.FindWithFilter(UserFilter{Role: models.UserRoleClient, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)

	users, total, err = repo.FindWithFilter(UserFilter{
		Role:   models.UserRoleClient,
		Status: models.UserStatusInactive,
		Page:   1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "Eva", users[0].Name)
}
