package services

import (
	"context"

	"pettime_backend/internal/logger"
	"pettime_backend/internal/models"
	"pettime_backend/internal/push"
	"pettime_backend/internal/repositories"
	"pettime_backend/internal/services/dto"
	"pettime_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// PushService keeps device token registrations and fans pushes out to a
// user's devices.
type PushService interface {
	RegisterToken(db *gorm.DB, userID uint, req *dto.RegisterDeviceTokenRequest) (*models.DeviceToken, error)
	UnregisterToken(db *gorm.DB, userID uint, token string) error
	SendToUser(ctx context.Context, db *gorm.DB, userID uint, msg *push.Message) error
}

type PushServiceImpl struct {
	tokenRepo repositories.DeviceTokenRepository
	provider  push.Provider
}

func NewPushService(tokenRepo repositories.DeviceTokenRepository, provider push.Provider) PushService {
	return &PushServiceImpl{tokenRepo: tokenRepo, provider: provider}
}

func (s *PushServiceImpl) RegisterToken(db *gorm.DB, userID uint, req *dto.RegisterDeviceTokenRequest) (*models.DeviceToken, error) {
	platform := req.Platform
	if platform == "" {
		platform = "android"
	}
	dt, err := s.tokenRepo.Upsert(db, userID, req.Token, platform)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dt, nil
}

func (s *PushServiceImpl) UnregisterToken(db *gorm.DB, userID uint, token string) error {
	if err := s.tokenRepo.DeleteByToken(db, userID, token); err != nil {
		if apperrors.Is(err, repositories.ErrDeviceTokenNotFound) {
			return nil // already gone
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// SendToUser is best effort: a user with no registered devices is not an
// error, and delivery failures are logged, never propagated.
func (s *PushServiceImpl) SendToUser(ctx context.Context, db *gorm.DB, userID uint, msg *push.Message) error {
	tokens, err := s.tokenRepo.FindByUser(db, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if len(tokens) == 0 {
		return nil
	}

	values := make([]string, 0, len(tokens))
	for _, t := range tokens {
		values = append(values, t.Token)
	}

	if err := s.provider.Notify(ctx, values, msg); err != nil {
		logger.CtxWithError(ctx, "push delivery failed", err, "user_id", userID)
	}
	return nil
}
