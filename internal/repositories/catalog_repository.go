package repositories

import (
	"errors"

	"pettime_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrServiceNotFound           = errors.New("service not found")
	ErrGroomingTypeNotFound      = errors.New("grooming type not found")
	ErrAdditionalServiceNotFound = errors.New("additional service not found")
)

// CatalogRepository covers the three flat catalog tables: services, grooming
// types and additional services.
type CatalogRepository interface {
	FindAllServices(db *gorm.DB) ([]models.Service, error)
	FindServiceByID(db *gorm.DB, id uint) (*models.Service, error)
	CreateService(db *gorm.DB, svc *models.Service) error
	UpdateService(db *gorm.DB, svc *models.Service) error
	DeleteService(db *gorm.DB, id uint) error

	FindAllGroomingTypes(db *gorm.DB) ([]models.GroomingType, error)
	FindGroomingTypeByID(db *gorm.DB, id uint) (*models.GroomingType, error)
	CreateGroomingType(db *gorm.DB, gt *models.GroomingType) error
	UpdateGroomingType(db *gorm.DB, gt *models.GroomingType) error
	DeleteGroomingType(db *gorm.DB, id uint) error

	FindAllAdditionalServices(db *gorm.DB) ([]models.AdditionalService, error)
	FindAdditionalServiceByID(db *gorm.DB, id uint) (*models.AdditionalService, error)
	FindAdditionalServicesByIDs(db *gorm.DB, ids []uint) ([]models.AdditionalService, error)
	CreateAdditionalService(db *gorm.DB, as *models.AdditionalService) error
	UpdateAdditionalService(db *gorm.DB, as *models.AdditionalService) error
	DeleteAdditionalService(db *gorm.DB, id uint) error
}

type CatalogRepositoryImpl struct{}

func NewCatalogRepository() CatalogRepository {
	return &CatalogRepositoryImpl{}
}

func (r *CatalogRepositoryImpl) FindAllServices(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	err := db.Order("id").Find(&services).Error
	return services, err
}

func (r *CatalogRepositoryImpl) FindServiceByID(db *gorm.DB, id uint) (*models.Service, error) {
	var svc models.Service
	err := db.First(&svc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (r *CatalogRepositoryImpl) CreateService(db *gorm.DB, svc *models.Service) error {
	return db.Create(svc).Error
}

func (r *CatalogRepositoryImpl) UpdateService(db *gorm.DB, svc *models.Service) error {
	return db.Save(svc).Error
}

func (r *CatalogRepositoryImpl) DeleteService(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) FindAllGroomingTypes(db *gorm.DB) ([]models.GroomingType, error) {
	var types []models.GroomingType
	err := db.Order("id").Find(&types).Error
	return types, err
}

func (r *CatalogRepositoryImpl) FindGroomingTypeByID(db *gorm.DB, id uint) (*models.GroomingType, error) {
	var gt models.GroomingType
	err := db.First(&gt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroomingTypeNotFound
		}
		return nil, err
	}
	return &gt, nil
}

func (r *CatalogRepositoryImpl) CreateGroomingType(db *gorm.DB, gt *models.GroomingType) error {
	return db.Create(gt).Error
}

func (r *CatalogRepositoryImpl) UpdateGroomingType(db *gorm.DB, gt *models.GroomingType) error {
	return db.Save(gt).Error
}

func (r *CatalogRepositoryImpl) DeleteGroomingType(db *gorm.DB, id uint) error {
	result := db.Delete(&models.GroomingType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroomingTypeNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) FindAllAdditionalServices(db *gorm.DB) ([]models.AdditionalService, error) {
	var items []models.AdditionalService
	err := db.Order("id").Find(&items).Error
	return items, err
}

func (r *CatalogRepositoryImpl) FindAdditionalServiceByID(db *gorm.DB, id uint) (*models.AdditionalService, error) {
	var as models.AdditionalService
	err := db.First(&as, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdditionalServiceNotFound
		}
		return nil, err
	}
	return &as, nil
}

// FindAdditionalServicesByIDs returns the matching rows; callers compare the
// result length against the requested ids to detect unknown entries.
func (r *CatalogRepositoryImpl) FindAdditionalServicesByIDs(db *gorm.DB, ids []uint) ([]models.AdditionalService, error) {
	var items []models.AdditionalService
	if len(ids) == 0 {
		return items, nil
	}
	err := db.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *CatalogRepositoryImpl) CreateAdditionalService(db *gorm.DB, as *models.AdditionalService) error {
	return db.Create(as).Error
}

func (r *CatalogRepositoryImpl) UpdateAdditionalService(db *gorm.DB, as *models.AdditionalService) error {
	return db.Save(as).Error
}

func (r *CatalogRepositoryImpl) DeleteAdditionalService(db *gorm.DB, id uint) error {
	result := db.Delete(&models.AdditionalService{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdditionalServiceNotFound
	}
	return nil
}
