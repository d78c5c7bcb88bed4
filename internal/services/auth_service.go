package services

import (
	"pettime_backend/internal/auth"
	"pettime_backend/internal/email"
	"pettime_backend/internal/logger"
	"pettime_backend/internal/models"
	"pettime_backend/internal/repositories"
	"pettime_backend/internal/services/dto"
	"pettime_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ForgotPassword(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
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

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PasswordHash: hash,
		Role:         models.UserRoleClient,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Welcome mail is best effort; a down SMTP server must not block signup.
	if err := s.emailProvider.SendWelcome(user.Email, user.Name); err != nil {
		logger.WithError(err).Warn("failed to send welcome email", "email", user.Email)
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnknownEmail
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Deleted {
		return nil, apperrors.ErrAccountDeleted
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *AuthServiceImpl) ForgotPassword(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if user.Deleted {
		return apperrors.ErrAccountDeleted
	}

	token, err := auth.GeneratePasswordResetToken(user.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordReset(user.Email, user.Name, token); err != nil {
		logger.WithError(err).Error("failed to send password reset email", "email", user.Email)
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	claims, err := auth.ParsePasswordResetToken(token)
	if err != nil {
		return apperrors.NewUnauthorizedError("Token de recuperação inválido ou expirado.")
	}

	userID, err := claims.UserID()
	if err != nil {
		return apperrors.NewUnauthorizedError("Token de recuperação inválido ou expirado.")
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}
