package repositories

import (
	"errors"

	"pettime_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPetNotFound = errors.New("pet not found")

type PetRepository interface {
	Create(db *gorm.DB, pet *models.Pet) error
	FindByID(db *gorm.DB, id uint) (*models.Pet, error)
	FindAll(db *gorm.DB) ([]models.Pet, error)
	FindByOwner(db *gorm.DB, userID uint) ([]models.Pet, error)
	Update(db *gorm.DB, pet *models.Pet) error
	SoftDelete(db *gorm.DB, id uint) error
}

type PetRepositoryImpl struct{}

func NewPetRepository() PetRepository {
	return &PetRepositoryImpl{}
}

func (r *PetRepositoryImpl) Create(db *gorm.DB, pet *models.Pet) error {
	return db.Create(pet).Error
}

func (r *PetRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Pet, error) {
	var pet models.Pet
	err := db.First(&pet, "id = ? AND deletado = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (r *PetRepositoryImpl) FindAll(db *gorm.DB) ([]models.Pet, error) {
	var pets []models.Pet
	err := db.Where("deletado = false").Order("nome").Find(&pets).Error
	return pets, err
}

func (r *PetRepositoryImpl) FindByOwner(db *gorm.DB, userID uint) ([]models.Pet, error) {
	var pets []models.Pet
	err := db.Where("user_id = ? AND deletado = false", userID).Order("nome").Find(&pets).Error
	return pets, err
}

func (r *PetRepositoryImpl) Update(db *gorm.DB, pet *models.Pet) error {
	return db.Save(pet).Error
}

func (r *PetRepositoryImpl) SoftDelete(db *gorm.DB, id uint) error {
	result := db.Model(&models.Pet{}).Where("id = ?", id).Update("deletado", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}
