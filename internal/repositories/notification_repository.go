package repositories

import (
	"errors"
	"time"

	"pettime_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(db *gorm.DB, n *models.Notification) error
	FindForUser(db *gorm.DB, userID uint) ([]models.Notification, error)
	FindOwned(db *gorm.DB, id, userID uint) (*models.Notification, error)
	CountUnread(db *gorm.DB, userID uint) (int64, error)
	MarkRead(db *gorm.DB, n *models.Notification) error
	MarkAllRead(db *gorm.DB, userID uint) error
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, n *models.Notification) error {
	return db.Create(n).Error
}

func (r *NotificationRepositoryImpl) FindForUser(db *gorm.DB, userID uint) ([]models.Notification, error) {
	var items []models.Notification
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *NotificationRepositoryImpl) FindOwned(db *gorm.DB, id, userID uint) (*models.Notification, error) {
	var n models.Notification
	err := db.First(&n, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepositoryImpl) CountUnread(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("user_id = ? AND lida = false", userID).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) MarkRead(db *gorm.DB, n *models.Notification) error {
	now := time.Now()
	n.Read = true
	n.ReadAt = &now
	return db.Save(n).Error
}

func (r *NotificationRepositoryImpl) MarkAllRead(db *gorm.DB, userID uint) error {
	return db.Model(&models.Notification{}).
		Where("user_id = ? AND lida = false", userID).
		Updates(map[string]interface{}{"lida": true, "lida_em": time.Now()}).Error
}
