package services

import (
	"pettime_backend/internal/models"
	"pettime_backend/internal/repositories"
	"pettime_backend/internal/services/dto"
	"pettime_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CatalogService manages the flat lookup tables behind the booking form.
type CatalogService interface {
	ListServices(db *gorm.DB) ([]models.Service, error)
	CreateService(db *gorm.DB, req *dto.ServiceRequest) (*models.Service, error)
	UpdateService(db *gorm.DB, id uint, req *dto.ServiceRequest) (*models.Service, error)
	DeleteService(db *gorm.DB, id uint) error

	ListGroomingTypes(db *gorm.DB) ([]models.GroomingType, error)
	CreateGroomingType(db *gorm.DB, req *dto.GroomingTypeRequest) (*models.GroomingType, error)
	UpdateGroomingType(db *gorm.DB, id uint, req *dto.GroomingTypeRequest) (*models.GroomingType, error)
	DeleteGroomingType(db *gorm.DB, id uint) error

	ListAdditionalServices(db *gorm.DB) ([]models.AdditionalService, error)
	CreateAdditionalService(db *gorm.DB, req *dto.AdditionalServiceRequest) (*models.AdditionalService, error)
	UpdateAdditionalService(db *gorm.DB, id uint, req *dto.AdditionalServiceRequest) (*models.AdditionalService, error)
	DeleteAdditionalService(db *gorm.DB, id uint) error
}

type CatalogServiceImpl struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *CatalogServiceImpl) ListServices(db *gorm.DB) ([]models.Service, error) {
	services, err := s.catalogRepo.FindAllServices(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return services, nil
}

func (s *CatalogServiceImpl) CreateService(db *gorm.DB, req *dto.ServiceRequest) (*models.Service, error) {
	svc := &models.Service{Type: req.Type}
	if err := s.catalogRepo.CreateService(db, svc); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return svc, nil
}

func (s *CatalogServiceImpl) UpdateService(db *gorm.DB, id uint, req *dto.ServiceRequest) (*models.Service, error) {
	svc, err := s.catalogRepo.FindServiceByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	svc.Type = req.Type
	if err := s.catalogRepo.UpdateService(db, svc); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return svc, nil
}

func (s *CatalogServiceImpl) DeleteService(db *gorm.DB, id uint) error {
	if err := s.catalogRepo.DeleteService(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) ListGroomingTypes(db *gorm.DB) ([]models.GroomingType, error) {
	types, err := s.catalogRepo.FindAllGroomingTypes(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return types, nil
}

func (s *CatalogServiceImpl) CreateGroomingType(db *gorm.DB, req *dto.GroomingTypeRequest) (*models.GroomingType, error) {
	gt := &models.GroomingType{Type: req.Type}
	if err := s.catalogRepo.CreateGroomingType(db, gt); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gt, nil
}

func (s *CatalogServiceImpl) UpdateGroomingType(db *gorm.DB, id uint, req *dto.GroomingTypeRequest) (*models.GroomingType, error) {
	gt, err := s.catalogRepo.FindGroomingTypeByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGroomingTypeNotFound) {
			return nil, apperrors.ErrGroomingTypeNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	gt.Type = req.Type
	if err := s.catalogRepo.UpdateGroomingType(db, gt); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gt, nil
}

func (s *CatalogServiceImpl) DeleteGroomingType(db *gorm.DB, id uint) error {
	if err := s.catalogRepo.DeleteGroomingType(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrGroomingTypeNotFound) {
			return apperrors.ErrGroomingTypeNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CatalogServiceImpl) ListAdditionalServices(db *gorm.DB) ([]models.AdditionalService, error) {
	items, err := s.catalogRepo.FindAllAdditionalServices(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *CatalogServiceImpl) CreateAdditionalService(db *gorm.DB, req *dto.AdditionalServiceRequest) (*models.AdditionalService, error) {
	as := &models.AdditionalService{Description: req.Description}
	if err := s.catalogRepo.CreateAdditionalService(db, as); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return as, nil
}

func (s *CatalogServiceImpl) UpdateAdditionalService(db *gorm.DB, id uint, req *dto.AdditionalServiceRequest) (*models.AdditionalService, error) {
	as, err := s.catalogRepo.FindAdditionalServiceByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdditionalServiceNotFound) {
			return nil, apperrors.ErrAdditionalServiceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	as.Description = req.Description
	if err := s.catalogRepo.UpdateAdditionalService(db, as); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return as, nil
}

func (s *CatalogServiceImpl) DeleteAdditionalService(db *gorm.DB, id uint) error {
	if err := s.catalogRepo.DeleteAdditionalService(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrAdditionalServiceNotFound) {
			return apperrors.ErrAdditionalServiceNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
