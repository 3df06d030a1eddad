package services

import (
	"barberia_backend/internal/appErrors"
	"barberia_backend/internal/auth"
	"barberia_backend/internal/email"
	"barberia_backend/internal/logger"
	"barberia_backend/internal/models"
	"barberia_backend/internal/repositories"
	"barberia_backend/internal/services/dto"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Register creates the account and, for BARBERO registrations, the barber
// profile in the same insert. New accounts default to CLIENTE.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleClient
	}
	if !models.ValidRole(role) {
		return nil, appErrors.ErrInvalidUserRole
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         role,
		Status:       models.UserStatusActive,
	}
	if role == models.UserRoleBarber {
		user.BarberProfile = &models.BarberProfile{
			Specialty:  req.Specialty,
			Experience: req.Experience,
		}
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrEmailTaken) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.DatabaseError(err)
	}

	// Fire-and-forget; delivery problems never fail the registration.
	go func() {
		if err := s.emailProvider.SendWelcome(user.Email, user.Name); err != nil {
			logger.Warn("welcome email failed", "email", user.Email, "error", err)
		}
	}()

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Login checks the credentials and issues the 4-hour session token.
// An unknown account and a bad password are reported distinctly.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResponse{Success: true, Token: token}, nil
}
