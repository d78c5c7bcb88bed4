package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"pettime_backend/internal/models"
	"pettime_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentResponse struct {
	ID       uint   `json:"id"`
	Status   string `json:"status"`
	Date     string `json:"data"`
	Time     string `json:"horario"`
	Products []struct {
		ID uint `json:"id"`
	} `json:"produtos"`
	AdditionalServices []struct {
		ID uint `json:"id"`
	} `json:"servicosAdicionais"`
	Pet *struct {
		ID uint `json:"id"`
	} `json:"pet"`
}

func TestCreateAppointment_Success(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)
	p1 := helpers.CreateProduct(t, tx, "Shampoo neutro")
	p2 := helpers.CreateProduct(t, tx, "Condicionador")
	as1 := helpers.CreateAdditionalService(t, tx, "Corte de unhas")

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId":              pet.ID,
		"servicoId":          svc.ID,
		"data":               helpers.NextBookableDate(),
		"horario":            "10:00",
		"taxiDog":            true,
		"observacao":         "Cuidado, ele morde.",
		"status":             "approved", // must be ignored
		"produtos":           []uint{p1.ID, p2.ID},
		"servicosAdicionais": []uint{as1.ID},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var appt appointmentResponse
	require.NoError(t, json.Unmarshal([]byte(body), &appt))

	// New bookings always start pending, whatever the client sent.
	assert.Equal(t, "pending", appt.Status)
	assert.Equal(t, "10:00", appt.Time)
	assert.Len(t, appt.Products, 2)
	assert.Len(t, appt.AdditionalServices, 1)
	require.NotNil(t, appt.Pet)
	assert.Equal(t, pet.ID, appt.Pet.ID)
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)
	date := helpers.NextBookableDate()

	first, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID, "data": date, "horario": "11:00",
	})
	require.Equal(t, http.StatusCreated, first.StatusCode, body)

	second, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID, "data": date, "horario": "11:00",
	})
	assert.Equal(t, http.StatusConflict, second.StatusCode, body)
	assert.Contains(t, body, "Horário indisponível")
}

func TestCreateAppointment_CompletedSlotIsFree(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	adminToken, _ := helpers.CreateAdmin(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)
	date := helpers.NextBookableDate()

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID, "data": date, "horario": "14:00",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var appt appointmentResponse
	require.NoError(t, json.Unmarshal([]byte(body), &appt))

	statusRes, body := ts.SendRequest(t, tx, http.MethodPut,
		fmt.Sprintf("/agendamentos/%d/status", appt.ID), adminToken,
		map[string]interface{}{"status": "completed"})
	require.Equal(t, http.StatusOK, statusRes.StatusCode, body)

	// A completed appointment no longer blocks the slot.
	rebook, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID, "data": date, "horario": "14:00",
	})
	assert.Equal(t, http.StatusCreated, rebook.StatusCode, body)
}

func TestCreateAppointment_ValidationChain(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)
	date := helpers.NextBookableDate()

	cases := []struct {
		name     string
		date     string
		time     string
		wantCode int
		wantBody string
	}{
		{"malformed time", date, "abc", http.StatusBadRequest, "Horário inválido"},
		{"half hour", date, "10:30", http.StatusBadRequest, "fora da janela"},
		{"before opening", date, "08:00", http.StatusBadRequest, "fora da janela"},
		{"after closing", date, "17:00", http.StatusBadRequest, "fora da janela"},
		{"bad date", "2025-13-40", "10:00", http.StatusBadRequest, "Data ou horário inválidos"},
		{"sunday", helpers.NextSunday(), "10:00", http.StatusBadRequest, "domingos"},
		{"past", "2020-01-06", "10:00", http.StatusBadRequest, "passado"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
				"petId": pet.ID, "servicoId": svc.ID, "data": tc.date, "horario": tc.time,
			})
			assert.Equal(t, tc.wantCode, res.StatusCode, body)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestCreateAppointment_PetNotFound_NoRowWritten(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateClient(t, tx)
	svc := helpers.CreateService(t, tx)

	var before int64
	require.NoError(t, tx.Model(&models.Appointment{}).Count(&before).Error)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": uint(999999), "servicoId": svc.ID,
		"data": helpers.NextBookableDate(), "horario": "10:00",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Contains(t, body, "Pet não encontrado")

	var after int64
	require.NoError(t, tx.Model(&models.Appointment{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestCreateAppointment_OtherUsersPet(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateClient(t, tx)
	_, other := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, other.ID)
	svc := helpers.CreateService(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID,
		"data": helpers.NextBookableDate(), "horario": "10:00",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestAvailability(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)
	date := helpers.NextBookableDate()

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID, "data": date, "horario": "13:00",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	availRes, body := ts.SendRequest(t, tx, http.MethodGet,
		"/agendamentos/horarios?data="+date, token, nil)
	require.Equal(t, http.StatusOK, availRes.StatusCode, body)

	var avail struct {
		Available []string `json:"disponiveis"`
		Occupied  []string `json:"ocupados"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &avail))
	assert.Contains(t, avail.Occupied, "13:00")
	assert.NotContains(t, avail.Available, "13:00")
	assert.Contains(t, avail.Available, "09:00")

	// With a service and pet the response carries the estimates.
	estRes, body := ts.SendRequest(t, tx, http.MethodGet,
		fmt.Sprintf("/agendamentos/horarios?data=%s&servicoId=%d&petId=%d", date, svc.ID, pet.ID),
		token, nil)
	require.Equal(t, http.StatusOK, estRes.StatusCode, body)
	assert.Contains(t, body, `"duracaoEstimada":60`)
	assert.Contains(t, body, `"precoEstimado":60`)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	adminToken, _ := helpers.CreateAdmin(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID,
		"data": helpers.NextBookableDate(), "horario": "15:00",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var appt appointmentResponse
	require.NoError(t, json.Unmarshal([]byte(body), &appt))

	badRes, body := ts.SendRequest(t, tx, http.MethodPut,
		fmt.Sprintf("/agendamentos/%d/status", appt.ID), adminToken,
		map[string]interface{}{"status": "voando"})
	assert.Equal(t, http.StatusBadRequest, badRes.StatusCode, body)
}

func TestUpdateStatus_RequiresAdmin(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID,
		"data": helpers.NextBookableDate(), "horario": "16:00",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var appt appointmentResponse
	require.NoError(t, json.Unmarshal([]byte(body), &appt))

	forbidden, body := ts.SendRequest(t, tx, http.MethodPut,
		fmt.Sprintf("/agendamentos/%d/status", appt.ID), token,
		map[string]interface{}{"status": "completed"})
	assert.Equal(t, http.StatusForbidden, forbidden.StatusCode, body)
}

func TestListAppointments_ClientSeesOnlyOwn(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	tokenA, userA := helpers.CreateClient(t, tx)
	tokenB, userB := helpers.CreateClient(t, tx)
	petA := helpers.CreatePet(t, tx, userA.ID)
	petB := helpers.CreatePet(t, tx, userB.ID)
	svc := helpers.CreateService(t, tx)
	date := helpers.NextBookableDate()

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", tokenA, map[string]interface{}{
		"petId": petA.ID, "servicoId": svc.ID, "data": date, "horario": "09:00",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", tokenB, map[string]interface{}{
		"petId": petB.ID, "servicoId": svc.ID, "data": date, "horario": "10:00",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	listRes, body := ts.SendRequest(t, tx, http.MethodGet, "/agendamentos", tokenA, nil)
	require.Equal(t, http.StatusOK, listRes.StatusCode, body)

	var appts []appointmentResponse
	require.NoError(t, json.Unmarshal([]byte(body), &appts))
	require.Len(t, appts, 1)
	assert.Equal(t, petA.ID, appts[0].Pet.ID)

	adminToken, _ := helpers.CreateAdmin(t, tx)

	allRes, body := ts.SendRequest(t, tx, http.MethodGet, "/agendamentos/all", adminToken, nil)
	require.Equal(t, http.StatusOK, allRes.StatusCode, body)

	var all []appointmentResponse
	require.NoError(t, json.Unmarshal([]byte(body), &all))
	assert.Len(t, all, 2)

	forbidden, body := ts.SendRequest(t, tx, http.MethodGet, "/agendamentos/all", tokenA, nil)
	assert.Equal(t, http.StatusForbidden, forbidden.StatusCode, body)
}

func TestDeleteAppointment(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID,
		"data": helpers.NextBookableDate(), "horario": "12:00",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var appt appointmentResponse
	require.NoError(t, json.Unmarshal([]byte(body), &appt))

	delRes, body := ts.SendRequest(t, tx, http.MethodDelete,
		fmt.Sprintf("/agendamentos/%d", appt.ID), token, nil)
	require.Equal(t, http.StatusNoContent, delRes.StatusCode, body)

	getRes, body := ts.SendRequest(t, tx, http.MethodGet,
		fmt.Sprintf("/agendamentos/%d", appt.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, getRes.StatusCode, body)
}
