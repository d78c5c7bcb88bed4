package repositories

import (
	"errors"
	"time"

	"pettime_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDeviceTokenNotFound = errors.New("device token not found")

type DeviceTokenRepository interface {
	Upsert(db *gorm.DB, userID uint, token, platform string) (*models.DeviceToken, error)
	FindByUser(db *gorm.DB, userID uint) ([]models.DeviceToken, error)
	DeleteByToken(db *gorm.DB, userID uint, token string) error
}

type DeviceTokenRepositoryImpl struct{}

func NewDeviceTokenRepository() DeviceTokenRepository {
	return &DeviceTokenRepositoryImpl{}
}

// Upsert re-binds an existing token to the caller, so a device handed to
// another account stops notifying the previous one.
func (r *DeviceTokenRepositoryImpl) Upsert(db *gorm.DB, userID uint, token, platform string) (*models.DeviceToken, error) {
	var dt models.DeviceToken
	err := db.First(&dt, "token = ?", token).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		dt = models.DeviceToken{UserID: userID, Token: token, Platform: platform, LastSeenAt: time.Now()}
		if err := db.Create(&dt).Error; err != nil {
			return nil, err
		}
		return &dt, nil
	}
	dt.UserID = userID
	dt.Platform = platform
	dt.LastSeenAt = time.Now()
	if err := db.Save(&dt).Error; err != nil {
		return nil, err
	}
	return &dt, nil
}

func (r *DeviceTokenRepositoryImpl) FindByUser(db *gorm.DB, userID uint) ([]models.DeviceToken, error) {
	var tokens []models.DeviceToken
	err := db.Where("user_id = ?", userID).Find(&tokens).Error
	return tokens, err
}

func (r *DeviceTokenRepositoryImpl) DeleteByToken(db *gorm.DB, userID uint, token string) error {
	result := db.Where("user_id = ? AND token = ?", userID, token).Delete(&models.DeviceToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDeviceTokenNotFound
	}
	return nil
}
