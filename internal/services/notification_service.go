package services

import (
	"context"
	"encoding/json"

	"pettime_backend/internal/email"
	"pettime_backend/internal/logger"
	"pettime_backend/internal/models"
	"pettime_backend/internal/push"
	"pettime_backend/internal/repositories"
	"pettime_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationService interface {
	List(db *gorm.DB, userID uint) ([]models.Notification, error)
	UnreadCount(db *gorm.DB, userID uint) (int64, error)
	MarkRead(db *gorm.DB, id, userID uint) (*models.Notification, error)
	MarkAllRead(db *gorm.DB, userID uint) error

	// NotifyAppointment records an in-app notification for the appointment's
	// owner and mirrors it as a push and an e-mail. Failures are logged,
	// never returned: the status change has already been committed.
	NotifyAppointment(ctx context.Context, db *gorm.DB, userID uint, ntype, title, message string, appointmentID uint)
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	pushService      PushService
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	pushService PushService,
	emailProvider email.Provider,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pushService:      pushService,
		emailProvider:    emailProvider,
	}
}

func (s *NotificationServiceImpl) List(db *gorm.DB, userID uint) ([]models.Notification, error) {
	items, err := s.notificationRepo.FindForUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *NotificationServiceImpl) UnreadCount(db *gorm.DB, userID uint) (int64, error) {
	count, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *NotificationServiceImpl) MarkRead(db *gorm.DB, id, userID uint) (*models.Notification, error) {
	n, err := s.notificationRepo.FindOwned(db, id, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !n.Read {
		if err := s.notificationRepo.MarkRead(db, n); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return n, nil
}

func (s *NotificationServiceImpl) MarkAllRead(db *gorm.DB, userID uint) error {
	if err := s.notificationRepo.MarkAllRead(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) NotifyAppointment(ctx context.Context, db *gorm.DB, userID uint, ntype, title, message string, appointmentID uint) {
	data, _ := json.Marshal(map[string]uint{"agendamentoId": appointmentID})

	n := &models.Notification{
		UserID:  userID,
		Type:    ntype,
		Title:   title,
		Message: message,
		Data:    datatypes.JSON(data),
	}
	if err := s.notificationRepo.Create(db, n); err != nil {
		logger.CtxWithError(ctx, "failed to store notification", err,
			"user_id", userID, "appointment_id", appointmentID)
		return
	}

	_ = s.pushService.SendToUser(ctx, db, userID, &push.Message{
		Title: title,
		Body:  message,
		Data:  map[string]string{"tipo": ntype},
	})

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		logger.CtxWithError(ctx, "failed to load user for notification e-mail", err, "user_id", userID)
		return
	}
	mail := &email.Email{
		To:      []string{user.Email},
		Subject: title,
		Body:    message,
	}
	if err := s.emailProvider.Send(mail); err != nil {
		logger.CtxWithError(ctx, "failed to send notification e-mail", err, "user_id", userID)
	}
}
