package services

import (
	"barberia_backend/internal/appErrors"
	"barberia_backend/internal/models"
	"barberia_backend/internal/repositories"
	"barberia_backend/internal/services/dto"
)

type UserService interface {
	List(filter *dto.UserListFilter) (*dto.UserListResponse, error)
	GetByID(id uint) (*dto.UserResponse, error)
	Update(id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(id uint) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) List(filter *dto.UserListFilter) (*dto.UserListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:     filter.Role,
		Status:   filter.Status,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	resp := &dto.UserListResponse{
		Success: true,
		Users:   make([]dto.UserResponse, 0, len(users)),
		Total:   total,
		Page:    page,
		Limit:   limit,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *UserServiceImpl) GetByID(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Update replaces the user's mutable fields. The repository keeps the
// barber profile consistent with the new role in the same transaction.
func (s *UserServiceImpl) Update(id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user := &models.User{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	}
	user.ID = id
	if req.Role == models.UserRoleBarber {
		user.BarberProfile = &models.BarberProfile{
			Specialty:  req.Specialty,
			Experience: req.Experience,
		}
	}

	if err := s.userRepo.UpdateWithProfile(user); err != nil {
		switch {
		case appErrors.Is(err, repositories.ErrUserNotFound):
			return nil, appErrors.ErrUserNotFound
		case appErrors.Is(err, repositories.ErrEmailTaken):
			return nil, appErrors.ErrEmailAlreadyExists
		default:
			return nil, appErrors.DatabaseError(err)
		}
	}

	return s.GetByID(id)
}

func (s *UserServiceImpl) Delete(id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.DatabaseError(err)
	}
	return nil
}
