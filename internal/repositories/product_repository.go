package repositories

import (
	"errors"

	"pettime_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	FindAll(db *gorm.DB, productType *int) ([]models.Product, error)
	FindByID(db *gorm.DB, id uint) (*models.Product, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]models.Product, error)
	Create(db *gorm.DB, product *models.Product) error
	Update(db *gorm.DB, product *models.Product) error
	Delete(db *gorm.DB, id uint) error
}

type ProductRepositoryImpl struct{}

func NewProductRepository() ProductRepository {
	return &ProductRepositoryImpl{}
}

func (r *ProductRepositoryImpl) FindAll(db *gorm.DB, productType *int) ([]models.Product, error) {
	var products []models.Product
	query := db.Order("id")
	if productType != nil {
		query = query.Where("tipo = ?", *productType)
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	err := db.First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) FindByIDs(db *gorm.DB, ids []uint) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	err := db.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) Create(db *gorm.DB, product *models.Product) error {
	return db.Create(product).Error
}

func (r *ProductRepositoryImpl) Update(db *gorm.DB, product *models.Product) error {
	return db.Save(product).Error
}

func (r *ProductRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
