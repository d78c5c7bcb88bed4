package integration_test

import (
	"testing"

	"pettime_backend/internal/models"
	"pettime_backend/internal/repositories"
	"pettime_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run the repository queries straight against the migrated
// schema, so a drift between the column names in raw SQL and the ones
// AutoMigrate creates fails here before it can surface as a 500.

func TestAppointmentRepository_SlotQueries(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, user := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)
	date := helpers.NextBookableDate()

	repo := repositories.NewAppointmentRepository()

	_, err := repo.FindOccupyingBySlot(tx, date, "10:00")
	require.ErrorIs(t, err, repositories.ErrAppointmentNotFound)

	booked := &models.Appointment{
		PetID:     pet.ID,
		ServiceID: svc.ID,
		Date:      date,
		Time:      "10:00",
		Status:    models.AppointmentStatusPending,
	}
	require.NoError(t, repo.Create(tx, booked))

	done := &models.Appointment{
		PetID:     pet.ID,
		ServiceID: svc.ID,
		Date:      date,
		Time:      "11:00",
		Status:    models.AppointmentStatusCompleted,
	}
	require.NoError(t, repo.Create(tx, done))

	found, err := repo.FindOccupyingBySlot(tx, date, "10:00")
	require.NoError(t, err)
	assert.Equal(t, booked.ID, found.ID)

	// Completed appointments release their slot.
	_, err = repo.FindOccupyingBySlot(tx, date, "11:00")
	require.ErrorIs(t, err, repositories.ErrAppointmentNotFound)

	times, err := repo.FindOccupiedTimes(tx, date)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, times)
}

func TestNotificationRepository_UnreadLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, user := helpers.CreateClient(t, tx)
	repo := repositories.NewNotificationRepository()

	for _, title := range []string{"Agendamento aprovado", "Status do agendamento"} {
		n := &models.Notification{
			UserID:  user.ID,
			Type:    models.NotificationTypeStatus,
			Title:   title,
			Message: "Seu agendamento mudou.",
		}
		require.NoError(t, repo.Create(tx, n))
	}

	count, err := repo.CountUnread(tx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.MarkAllRead(tx, user.ID))

	count, err = repo.CountUnread(tx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	items, err := repo.FindForUser(tx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, n := range items {
		assert.True(t, n.Read)
		assert.NotNil(t, n.ReadAt)
	}
}

func TestPetRepository_SoftDeleteFilter(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, user := helpers.CreateClient(t, tx)
	kept := helpers.CreatePet(t, tx, user.ID)
	gone := helpers.CreatePet(t, tx, user.ID)

	repo := repositories.NewPetRepository()
	require.NoError(t, repo.SoftDelete(tx, gone.ID))

	pets, err := repo.FindByOwner(tx, user.ID)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, kept.ID, pets[0].ID)

	_, err = repo.FindByID(tx, gone.ID)
	require.ErrorIs(t, err, repositories.ErrPetNotFound)
}

func TestProductRepository_TypeFilter(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	shampoo := helpers.CreateProduct(t, tx, "Shampoo neutro")
	perfume := helpers.CreateProduct(t, tx, "Perfume")
	perfume.Type = 2
	require.NoError(t, tx.Save(perfume).Error)

	repo := repositories.NewProductRepository()

	filter := 1
	products, err := repo.FindAll(tx, &filter)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, shampoo.ID, products[0].ID)
}
