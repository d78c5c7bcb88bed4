package services

import (
	"context"
	"fmt"
	"time"

	"pettime_backend/internal/models"
	"pettime_backend/internal/repositories"
	"pettime_backend/internal/schedule"
	"pettime_backend/internal/services/dto"
	"pettime_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AppointmentService interface {
	Create(ctx context.Context, db *gorm.DB, requesterID uint, isAdmin bool, req *dto.CreateAppointmentRequest) (*models.Appointment, error)
	GetByID(db *gorm.DB, id, requesterID uint, isAdmin bool) (*models.Appointment, error)
	List(db *gorm.DB, requesterID uint, isAdmin bool, query *dto.AppointmentListQuery) ([]models.Appointment, error)
	Update(ctx context.Context, db *gorm.DB, id, requesterID uint, isAdmin bool, req *dto.UpdateAppointmentRequest) (*models.Appointment, error)
	Approve(ctx context.Context, db *gorm.DB, id uint, approved bool) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id uint, status models.AppointmentStatus) (*models.Appointment, error)
	Availability(db *gorm.DB, query *dto.AvailabilityQuery) (*dto.AvailabilityResponse, error)
	Delete(db *gorm.DB, id, requesterID uint, isAdmin bool) error
}

type AppointmentServiceImpl struct {
	appointmentRepo     repositories.AppointmentRepository
	petRepo             repositories.PetRepository
	catalogRepo         repositories.CatalogRepository
	productRepo         repositories.ProductRepository
	notificationService NotificationService
}

func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	petRepo repositories.PetRepository,
	catalogRepo repositories.CatalogRepository,
	productRepo repositories.ProductRepository,
	notificationService NotificationService,
) AppointmentService {
	return &AppointmentServiceImpl{
		appointmentRepo:     appointmentRepo,
		petRepo:             petRepo,
		catalogRepo:         catalogRepo,
		productRepo:         productRepo,
		notificationService: notificationService,
	}
}

// Create runs the booking chain: slot validation, referenced-entity checks,
// conflict check and the transactional insert. The checks run in a fixed
// order so a request with several problems always reports the same one.
func (s *AppointmentServiceImpl) Create(ctx context.Context, db *gorm.DB, requesterID uint, isAdmin bool, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	slot, err := schedule.ValidateSlot(req.Date, req.Time, time.Now())
	if err != nil {
		return nil, err
	}

	// Store the canonical forms so "9:00" and "09:00" land on the same slot.
	date := slot.Format("2006-01-02")
	timeOfDay := slot.Format("15:04")

	appt := &models.Appointment{
		PetID:          req.PetID,
		ServiceID:      req.ServiceID,
		GroomingTypeID: req.GroomingTypeID,
		Date:           date,
		Time:           timeOfDay,
		TaxiDog:        req.TaxiDog,
		Note:           req.Note,
		// New bookings always start pending, whatever the client sends.
		Status: models.AppointmentStatusPending,
	}

	// db.Transaction nests via savepoints when the handler already runs
	// inside a transaction.
	err = db.Transaction(func(tx *gorm.DB) error {
		pet, err := s.petRepo.FindByID(tx, req.PetID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrPetNotFound) {
				return apperrors.ErrPetNotFound
			}
			return err
		}
		if !isAdmin && pet.UserID != requesterID {
			return apperrors.NewForbiddenError("Acesso negado.")
		}

		if _, err := s.catalogRepo.FindServiceByID(tx, req.ServiceID); err != nil {
			if apperrors.Is(err, repositories.ErrServiceNotFound) {
				return apperrors.ErrServiceNotFound
			}
			return err
		}

		if req.GroomingTypeID != nil {
			if _, err := s.catalogRepo.FindGroomingTypeByID(tx, *req.GroomingTypeID); err != nil {
				if apperrors.Is(err, repositories.ErrGroomingTypeNotFound) {
					return apperrors.ErrGroomingTypeNotFound
				}
				return err
			}
		}

		if _, err := s.appointmentRepo.FindOccupyingBySlot(tx, date, timeOfDay); err == nil {
			return apperrors.ErrSlotUnavailable
		} else if !apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return err
		}

		products, err := s.resolveProducts(tx, req.Products)
		if err != nil {
			return err
		}
		additional, err := s.resolveAdditionalServices(tx, req.AdditionalServices)
		if err != nil {
			return err
		}

		if err := s.appointmentRepo.Create(tx, appt); err != nil {
			return err
		}
		if err := s.appointmentRepo.ReplaceProducts(tx, appt, products); err != nil {
			return err
		}
		return s.appointmentRepo.ReplaceAdditionalServices(tx, appt, additional)
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	return s.reload(db, appt.ID)
}

// mapTxError folds a transaction outcome into the API error space. Duplicate
// slot inserts surface as a commit-time index violation, not as an AppError.
func mapTxError(err error) error {
	if repositories.IsSlotConflict(err) {
		return apperrors.ErrSlotUnavailable
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}
	return apperrors.InternalError(err)
}

func (s *AppointmentServiceImpl) GetByID(db *gorm.DB, id, requesterID uint, isAdmin bool) (*models.Appointment, error) {
	appt, err := s.reload(db, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && (appt.Pet == nil || appt.Pet.UserID != requesterID) {
		return nil, apperrors.NewForbiddenError("Acesso negado.")
	}
	return appt, nil
}

func (s *AppointmentServiceImpl) List(db *gorm.DB, requesterID uint, isAdmin bool, query *dto.AppointmentListQuery) ([]models.Appointment, error) {
	filter := repositories.AppointmentFilter{
		PetID: query.PetID,
		Date:  query.Date,
	}
	if query.Status != nil {
		status := models.AppointmentStatus(*query.Status)
		if !models.ValidStatus(status) {
			return nil, apperrors.ErrInvalidAppointmentStatus
		}
		filter.Status = &status
	}
	if !isAdmin {
		filter.UserID = &requesterID
	}

	appts, err := s.appointmentRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return appts, nil
}

func (s *AppointmentServiceImpl) Update(ctx context.Context, db *gorm.DB, id, requesterID uint, isAdmin bool, req *dto.UpdateAppointmentRequest) (*models.Appointment, error) {
	var apptID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		appt, err := s.appointmentRepo.FindByIDWithAssociations(tx, id)
		if err != nil {
			if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
				return apperrors.ErrAppointmentNotFound
			}
			return err
		}
		if !isAdmin && (appt.Pet == nil || appt.Pet.UserID != requesterID) {
			return apperrors.NewForbiddenError("Acesso negado.")
		}

		if req.PetID != nil && *req.PetID != appt.PetID {
			pet, err := s.petRepo.FindByID(tx, *req.PetID)
			if err != nil {
				if apperrors.Is(err, repositories.ErrPetNotFound) {
					return apperrors.ErrPetNotFound
				}
				return err
			}
			if !isAdmin && pet.UserID != requesterID {
				return apperrors.NewForbiddenError("Acesso negado.")
			}
			appt.PetID = *req.PetID
		}

		if req.ServiceID != nil {
			if _, err := s.catalogRepo.FindServiceByID(tx, *req.ServiceID); err != nil {
				if apperrors.Is(err, repositories.ErrServiceNotFound) {
					return apperrors.ErrServiceNotFound
				}
				return err
			}
			appt.ServiceID = *req.ServiceID
		}

		if req.GroomingTypeID != nil {
			if _, err := s.catalogRepo.FindGroomingTypeByID(tx, *req.GroomingTypeID); err != nil {
				if apperrors.Is(err, repositories.ErrGroomingTypeNotFound) {
					return apperrors.ErrGroomingTypeNotFound
				}
				return err
			}
			appt.GroomingTypeID = req.GroomingTypeID
		}

		// A changed date or time reruns the full slot chain and conflict check.
		if req.Date != nil || req.Time != nil {
			date := appt.Date
			timeOfDay := appt.Time
			if req.Date != nil {
				date = *req.Date
			}
			if req.Time != nil {
				timeOfDay = *req.Time
			}

			slot, err := schedule.ValidateSlot(date, timeOfDay, time.Now())
			if err != nil {
				return err
			}
			date = slot.Format("2006-01-02")
			timeOfDay = slot.Format("15:04")

			if other, err := s.appointmentRepo.FindOccupyingBySlot(tx, date, timeOfDay); err == nil {
				if other.ID != appt.ID {
					return apperrors.ErrSlotUnavailable
				}
			} else if !apperrors.Is(err, repositories.ErrAppointmentNotFound) {
				return err
			}

			appt.Date = date
			appt.Time = timeOfDay
		}

		if req.TaxiDog != nil {
			appt.TaxiDog = *req.TaxiDog
		}
		if req.Note != nil {
			appt.Note = *req.Note
		}

		if err := s.appointmentRepo.Update(tx, appt); err != nil {
			return err
		}

		if req.Products != nil {
			products, err := s.resolveProducts(tx, *req.Products)
			if err != nil {
				return err
			}
			if err := s.appointmentRepo.ReplaceProducts(tx, appt, products); err != nil {
				return err
			}
		}
		if req.AdditionalServices != nil {
			additional, err := s.resolveAdditionalServices(tx, *req.AdditionalServices)
			if err != nil {
				return err
			}
			if err := s.appointmentRepo.ReplaceAdditionalServices(tx, appt, additional); err != nil {
				return err
			}
		}

		apptID = appt.ID
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	return s.reload(db, apptID)
}

// Approve settles a pending booking. The owner is notified after commit.
func (s *AppointmentServiceImpl) Approve(ctx context.Context, db *gorm.DB, id uint, approved bool) (*models.Appointment, error) {
	status := models.AppointmentStatusApproved
	ntype := models.NotificationTypeApproval
	title := "Agendamento aprovado"
	if !approved {
		status = models.AppointmentStatusRejected
		ntype = models.NotificationTypeRejection
		title = "Agendamento reprovado"
	}

	appt, err := s.setStatus(db, id, status)
	if err != nil {
		return nil, err
	}

	if appt.Pet != nil {
		message := fmt.Sprintf("Seu agendamento de %s às %s foi %s.",
			appt.Date, appt.Time, statusLabel(status))
		s.notificationService.NotifyAppointment(ctx, db, appt.Pet.UserID, ntype, title, message, appt.ID)
	}

	return appt, nil
}

// UpdateStatus overwrites the status with any valid value. There is no
// transition graph; the shop staff drive the lifecycle by hand.
func (s *AppointmentServiceImpl) UpdateStatus(ctx context.Context, db *gorm.DB, id uint, status models.AppointmentStatus) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, apperrors.ErrInvalidAppointmentStatus
	}

	appt, err := s.setStatus(db, id, status)
	if err != nil {
		return nil, err
	}

	if appt.Pet != nil {
		ntype := models.NotificationTypeStatus
		if status == models.AppointmentStatusRejected {
			ntype = models.NotificationTypeRejection
		}
		message := fmt.Sprintf("Seu agendamento de %s às %s agora está: %s.",
			appt.Date, appt.Time, statusLabel(status))
		s.notificationService.NotifyAppointment(ctx, db, appt.Pet.UserID,
			ntype, "Status do agendamento", message, appt.ID)
	}

	return appt, nil
}

// setStatus changes the status transactionally, re-checking the slot when
// the change would re-occupy it (e.g. completed back to pending).
func (s *AppointmentServiceImpl) setStatus(db *gorm.DB, id uint, status models.AppointmentStatus) (*models.Appointment, error) {
	var apptID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		appt, err := s.appointmentRepo.FindByID(tx, id)
		if err != nil {
			if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
				return apperrors.ErrAppointmentNotFound
			}
			return err
		}

		if status.Occupies() && !appt.Status.Occupies() {
			if other, err := s.appointmentRepo.FindOccupyingBySlot(tx, appt.Date, appt.Time); err == nil {
				if other.ID != appt.ID {
					return apperrors.ErrSlotUnavailable
				}
			} else if !apperrors.Is(err, repositories.ErrAppointmentNotFound) {
				return err
			}
		}

		appt.Status = status
		if err := s.appointmentRepo.Update(tx, appt); err != nil {
			return err
		}

		apptID = appt.ID
		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	return s.reload(db, apptID)
}

func (s *AppointmentServiceImpl) Availability(db *gorm.DB, query *dto.AvailabilityQuery) (*dto.AvailabilityResponse, error) {
	occupied, err := s.appointmentRepo.FindOccupiedTimes(db, query.Date)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	taken := make(map[string]bool, len(occupied))
	for _, t := range occupied {
		taken[t] = true
	}

	available := make([]string, 0, len(schedule.Slots()))
	for _, slot := range schedule.Slots() {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	resp := &dto.AvailabilityResponse{
		Date:      query.Date,
		Available: available,
		Occupied:  occupied,
	}

	if query.ServiceID != nil && query.PetID != nil {
		svc, err := s.catalogRepo.FindServiceByID(db, *query.ServiceID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrServiceNotFound) {
				return nil, apperrors.ErrServiceNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		pet, err := s.petRepo.FindByID(db, *query.PetID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrPetNotFound) {
				return nil, apperrors.ErrPetNotFound
			}
			return nil, apperrors.InternalError(err)
		}

		duration := schedule.EstimateDuration(svc.Type, pet.Size)
		price := schedule.EstimatePrice(schedule.BasePrice(svc.Type), pet.Size, 0)
		resp.EstimatedDuration = &duration
		resp.EstimatedPrice = &price
	}

	return resp, nil
}

func (s *AppointmentServiceImpl) Delete(db *gorm.DB, id, requesterID uint, isAdmin bool) error {
	appt, err := s.reload(db, id)
	if err != nil {
		return err
	}
	if !isAdmin && (appt.Pet == nil || appt.Pet.UserID != requesterID) {
		return apperrors.NewForbiddenError("Acesso negado.")
	}

	if err := s.appointmentRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return apperrors.ErrAppointmentNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// reload reads an appointment with every association eager-loaded, the shape
// all read endpoints return.
func (s *AppointmentServiceImpl) reload(db *gorm.DB, id uint) (*models.Appointment, error) {
	appt, err := s.appointmentRepo.FindByIDWithAssociations(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return appt, nil
}

func (s *AppointmentServiceImpl) resolveProducts(db *gorm.DB, ids []uint) ([]models.Product, error) {
	unique := uniqueIDs(ids)
	products, err := s.productRepo.FindByIDs(db, unique)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(products) != len(unique) {
		return nil, apperrors.ErrProductNotFound
	}
	return products, nil
}

func (s *AppointmentServiceImpl) resolveAdditionalServices(db *gorm.DB, ids []uint) ([]models.AdditionalService, error) {
	unique := uniqueIDs(ids)
	items, err := s.catalogRepo.FindAdditionalServicesByIDs(db, unique)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(items) != len(unique) {
		return nil, apperrors.ErrAdditionalServiceNotFound
	}
	return items, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// statusLabel renders a status in the client's language.
func statusLabel(status models.AppointmentStatus) string {
	switch status {
	case models.AppointmentStatusPending:
		return "pendente"
	case models.AppointmentStatusApproved:
		return "aprovado"
	case models.AppointmentStatusWaiting:
		return "em espera"
	case models.AppointmentStatusInProgress:
		return "em andamento"
	case models.AppointmentStatusEnRoute:
		return "a caminho"
	case models.AppointmentStatusCompleted:
		return "concluído"
	case models.AppointmentStatusRejected:
		return "reprovado"
	default:
		return string(status)
	}
}
