package services

import (
	"pettime_backend/internal/auth"
	"pettime_backend/internal/repositories"
	"pettime_backend/internal/services/dto"
	"pettime_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetByID(db *gorm.DB, id uint) (*dto.UserResponse, error)
	Update(db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(db *gorm.DB, id uint) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Deleted {
		return nil, apperrors.ErrUserNotFound
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) Update(db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) Delete(db *gorm.DB, id uint) error {
	if err := s.userRepo.SoftDelete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
