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

type PetService interface {
	Create(ctx context.Context, db *gorm.DB, userID uint, req *dto.CreatePetRequest, photo *multipart.FileHeader) (*models.Pet, error)
	GetByID(db *gorm.DB, id, requesterID uint, isAdmin bool) (*models.Pet, error)
	List(db *gorm.DB, requesterID uint, isAdmin bool, ownerID *uint) ([]models.Pet, error)
	Update(ctx context.Context, db *gorm.DB, id, requesterID uint, isAdmin bool, req *dto.UpdatePetRequest, photo *multipart.FileHeader) (*models.Pet, error)
	Delete(db *gorm.DB, id, requesterID uint, isAdmin bool) error
}

type PetServiceImpl struct {
	petRepo repositories.PetRepository
	store   storage.Storage
}

func NewPetService(petRepo repositories.PetRepository, store storage.Storage) PetService {
	return &PetServiceImpl{petRepo: petRepo, store: store}
}

func (s *PetServiceImpl) Create(ctx context.Context, db *gorm.DB, userID uint, req *dto.CreatePetRequest, photo *multipart.FileHeader) (*models.Pet, error) {
	pet := &models.Pet{
		Name:   req.Name,
		Breed:  req.Breed,
		Age:    req.Age,
		Size:   req.Size,
		UserID: userID,
	}

	if photo != nil {
		url, err := saveUpload(ctx, s.store, "pets", photo)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		pet.PhotoPath = url
	}

	if err := s.petRepo.Create(db, pet); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pet, nil
}

func (s *PetServiceImpl) GetByID(db *gorm.DB, id, requesterID uint, isAdmin bool) (*models.Pet, error) {
	pet, err := s.findOwned(db, id, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *PetServiceImpl) List(db *gorm.DB, requesterID uint, isAdmin bool, ownerID *uint) ([]models.Pet, error) {
	var (
		pets []models.Pet
		err  error
	)
	switch {
	case isAdmin && ownerID != nil:
		pets, err = s.petRepo.FindByOwner(db, *ownerID)
	case isAdmin:
		pets, err = s.petRepo.FindAll(db)
	default:
		pets, err = s.petRepo.FindByOwner(db, requesterID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pets, nil
}

func (s *PetServiceImpl) Update(ctx context.Context, db *gorm.DB, id, requesterID uint, isAdmin bool, req *dto.UpdatePetRequest, photo *multipart.FileHeader) (*models.Pet, error) {
	pet, err := s.findOwned(db, id, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Age != nil {
		pet.Age = *req.Age
	}
	if req.Size != nil {
		pet.Size = *req.Size
	}

	if photo != nil {
		url, err := saveUpload(ctx, s.store, "pets", photo)
		if err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		pet.PhotoPath = url
	}

	if err := s.petRepo.Update(db, pet); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pet, nil
}

func (s *PetServiceImpl) Delete(db *gorm.DB, id, requesterID uint, isAdmin bool) error {
	if _, err := s.findOwned(db, id, requesterID, isAdmin); err != nil {
		return err
	}
	if err := s.petRepo.SoftDelete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// findOwned loads the pet and enforces that non-admins only touch their own.
func (s *PetServiceImpl) findOwned(db *gorm.DB, id, requesterID uint, isAdmin bool) (*models.Pet, error) {
	pet, err := s.petRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPetNotFound) {
			return nil, apperrors.ErrPetNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !isAdmin && pet.UserID != requesterID {
		return nil, apperrors.NewForbiddenError("Acesso negado.")
	}
	return pet, nil
}
