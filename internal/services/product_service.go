package services

import (
	"context"
	"mime/multipart"

	"pettime_backend/internal/models"
	"pettime_backend/internal/repositories"
	"pettime_backend/internal/services/dto"
	"pettime_backend/internal/storage"
	"pettime_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProductService interface {
	List(db *gorm.DB, query *dto.ProductListQuery) ([]models.Product, error)
	GetByID(db *gorm.DB, id uint) (*models.Product, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateProductRequest, image *multipart.FileHeader) (*models.Product, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateProductRequest, image *multipart.FileHeader) (*models.Product, error)
	Delete(db *gorm.DB, id uint) error
}

type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
	store       storage.Storage
}

func NewProductService(productRepo repositories.ProductRepository, store storage.Storage) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, store: store}
}

func (s *ProductServiceImpl) List(db *gorm.DB, query *dto.ProductListQuery) ([]models.Product, error) {
	products, err := s.productRepo.FindAll(db, query.Type)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return products, nil
}

func (s *ProductServiceImpl) GetByID(db *gorm.DB, id uint) (*models.Product, error) {
	product, err := s.productRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) Create(ctx context.Context, db *gorm.DB, req *dto.CreateProductRequest, image *multipart.FileHeader) (*models.Product, error) {
	product := &models.Product{
		Description: req.Description,
		Note:        req.Note,
		Type:        req.Type,
	}

	if image != nil {
		url, err := saveUpload(ctx, s.store, "produtos", image)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		product.ImagePath = url
	}

	if err := s.productRepo.Create(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateProductRequest, image *multipart.FileHeader) (*models.Product, error) {
	product, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Note != nil {
		product.Note = *req.Note
	}
	if req.Type != nil {
		product.Type = *req.Type
	}

	if image != nil {
		url, err := saveUpload(ctx, s.store, "produtos", image)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		product.ImagePath = url
	}

	if err := s.productRepo.Update(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) Delete(db *gorm.DB, id uint) error {
	if err := s.productRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
