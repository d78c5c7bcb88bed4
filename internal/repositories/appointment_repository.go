package repositories

import (
	"errors"
	"strings"

	"pettime_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentFilter narrows listing queries. Nil fields are ignored.
type AppointmentFilter struct {
	PetID  *uint
	UserID *uint
	Date   *string
	Status *models.AppointmentStatus
}

type AppointmentRepository interface {
	Create(db *gorm.DB, appt *models.Appointment) error
	FindByID(db *gorm.DB, id uint) (*models.Appointment, error)
	FindByIDWithAssociations(db *gorm.DB, id uint) (*models.Appointment, error)
	FindOccupyingBySlot(db *gorm.DB, date, timeOfDay string) (*models.Appointment, error)
	FindOccupiedTimes(db *gorm.DB, date string) ([]string, error)
	List(db *gorm.DB, filter AppointmentFilter) ([]models.Appointment, error)
	Update(db *gorm.DB, appt *models.Appointment) error
	Delete(db *gorm.DB, id uint) error
	ReplaceProducts(db *gorm.DB, appt *models.Appointment, products []models.Product) error
	ReplaceAdditionalServices(db *gorm.DB, appt *models.Appointment, items []models.AdditionalService) error
}

type AppointmentRepositoryImpl struct{}

func NewAppointmentRepository() AppointmentRepository {
	return &AppointmentRepositoryImpl{}
}

func (r *AppointmentRepositoryImpl) Create(db *gorm.DB, appt *models.Appointment) error {
	// Omit associations here; they are attached explicitly afterwards so the
	// product and additional-service sets are always replaced, never merged.
	return db.Omit("Products", "AdditionalServices").Create(appt).Error
}

func (r *AppointmentRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := db.First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (r *AppointmentRepositoryImpl) FindByIDWithAssociations(db *gorm.DB, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := db.
		Preload("Pet").
		Preload("Pet.Owner").
		Preload("Service").
		Preload("GroomingType").
		Preload("Products").
		Preload("AdditionalServices").
		First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appt, nil
}

// FindOccupyingBySlot returns the appointment holding the exact (date, time)
// pair, if any. Completed and rejected appointments do not hold slots.
func (r *AppointmentRepositoryImpl) FindOccupyingBySlot(db *gorm.DB, date, timeOfDay string) (*models.Appointment, error) {
	var appt models.Appointment
	err := db.
		Where("data = ? AND horario = ? AND status IN ?", date, timeOfDay, models.OccupyingStatuses).
		First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appt, nil
}

// FindOccupiedTimes lists the taken times on a date, for the availability
// endpoint.
func (r *AppointmentRepositoryImpl) FindOccupiedTimes(db *gorm.DB, date string) ([]string, error) {
	var times []string
	err := db.Model(&models.Appointment{}).
		Where("data = ? AND status IN ?", date, models.OccupyingStatuses).
		Order("horario").
		Pluck("horario", &times).Error
	return times, err
}

func (r *AppointmentRepositoryImpl) List(db *gorm.DB, filter AppointmentFilter) ([]models.Appointment, error) {
	query := db.
		Preload("Pet").
		Preload("Pet.Owner").
		Preload("Service").
		Preload("GroomingType").
		Preload("Products").
		Preload("AdditionalServices").
		Order("data DESC, horario DESC")

	if filter.PetID != nil {
		query = query.Where("pet_id = ?", *filter.PetID)
	}
	if filter.UserID != nil {
		query = query.Joins("JOIN pets ON pets.id = agendamentos.pet_id").
			Where("pets.user_id = ?", *filter.UserID)
	}
	if filter.Date != nil {
		query = query.Where("data = ?", *filter.Date)
	}
	if filter.Status != nil {
		query = query.Where("agendamentos.status = ?", *filter.Status)
	}

	var appts []models.Appointment
	err := query.Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepositoryImpl) Update(db *gorm.DB, appt *models.Appointment) error {
	return db.Omit("Products", "AdditionalServices").Save(appt).Error
}

func (r *AppointmentRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Select("Products", "AdditionalServices").Delete(&models.Appointment{BaseModel: models.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepositoryImpl) ReplaceProducts(db *gorm.DB, appt *models.Appointment, products []models.Product) error {
	return db.Model(appt).Association("Products").Replace(products)
}

func (r *AppointmentRepositoryImpl) ReplaceAdditionalServices(db *gorm.DB, appt *models.Appointment, items []models.AdditionalService) error {
	return db.Model(appt).Association("AdditionalServices").Replace(items)
}

// IsSlotConflict reports whether err is a unique violation on the partial
// slot index, the backstop for two bookings racing past the read check.
func IsSlotConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "uq_agendamento_slot") ||
		strings.Contains(msg, "idx_agendamento_slot")
}
