package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"pettime_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationResponse struct {
	ID      uint            `json:"id"`
	Type    string          `json:"tipo"`
	Title   string          `json:"titulo"`
	Message string          `json:"mensagem"`
	Read    bool            `json:"lida"`
	Data    json.RawMessage `json:"data"`
}

func TestApprove_NotifiesOwner(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	adminToken, _ := helpers.CreateAdmin(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID,
		"data": helpers.NextBookableDate(), "horario": "10:00",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var appt struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &appt))

	res, body = ts.SendRequest(t, tx, http.MethodPut,
		fmt.Sprintf("/agendamentos/%d/approve", appt.ID), adminToken,
		map[string]interface{}{"aprovado": true})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"status":"approved"`)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/notificacoes", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var items []notificationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "aprovacao", items[0].Type)
	assert.False(t, items[0].Read)
	assert.Contains(t, string(items[0].Data), fmt.Sprintf(`"agendamentoId":%d`, appt.ID))
}

func TestReject_NotifiesOwner(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	adminToken, _ := helpers.CreateAdmin(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID,
		"data": helpers.NextBookableDate(), "horario": "11:00",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var appt struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &appt))

	res, body = ts.SendRequest(t, tx, http.MethodPut,
		fmt.Sprintf("/agendamentos/%d/approve", appt.ID), adminToken,
		map[string]interface{}{"aprovado": false})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"status":"rejected"`)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/notificacoes", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var items []notificationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "reprovacao", items[0].Type)
}

func TestNotifications_UnreadCountAndMarkRead(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	adminToken, _ := helpers.CreateAdmin(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)
	date := helpers.NextBookableDate()

	// Two appointments, two approvals, two unread notifications.
	for _, hour := range []string{"09:00", "10:00"} {
		res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
			"petId": pet.ID, "servicoId": svc.ID, "data": date, "horario": hour,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)

		var appt struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &appt))

		res, body = ts.SendRequest(t, tx, http.MethodPut,
			fmt.Sprintf("/agendamentos/%d/approve", appt.ID), adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
	}

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/notificacoes/nao-lidas/contar", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"naoLidas":2`)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/notificacoes", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var items []notificationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items, 2)

	res, body = ts.SendRequest(t, tx, http.MethodPut,
		fmt.Sprintf("/notificacoes/%d/marcar-lida", items[0].ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"lida":true`)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/notificacoes/nao-lidas/contar", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"naoLidas":1`)

	res, body = ts.SendRequest(t, tx, http.MethodPut, "/notificacoes/marcar-todas-lidas", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/notificacoes/nao-lidas/contar", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"naoLidas":0`)
}

func TestNotifications_MarkRead_OtherUsersNotification(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	otherToken, _ := helpers.CreateClient(t, tx)
	adminToken, _ := helpers.CreateAdmin(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)
	svc := helpers.CreateService(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/agendamentos", token, map[string]interface{}{
		"petId": pet.ID, "servicoId": svc.ID,
		"data": helpers.NextBookableDate(), "horario": "12:00",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var appt struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &appt))

	res, body = ts.SendRequest(t, tx, http.MethodPut,
		fmt.Sprintf("/agendamentos/%d/approve", appt.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/notificacoes", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var items []notificationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items, 1)

	res, body = ts.SendRequest(t, tx, http.MethodPut,
		fmt.Sprintf("/notificacoes/%d/marcar-lida", items[0].ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestDeviceTokens_RegisterAndUnregister(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateClient(t, tx)
	deviceToken := fmt.Sprintf("fcm-token-%d", time.Now().UnixNano())

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/notificacoes/token", token, map[string]interface{}{
		"token":      deviceToken,
		"plataforma": "android",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, deviceToken)

	// Registering the same token again must not fail.
	res, body = ts.SendRequest(t, tx, http.MethodPost, "/notificacoes/token", token, map[string]interface{}{
		"token":      deviceToken,
		"plataforma": "android",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, tx, http.MethodDelete, "/notificacoes/token", token, map[string]interface{}{
		"token": deviceToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	// Removal is idempotent.
	res, body = ts.SendRequest(t, tx, http.MethodDelete, "/notificacoes/token", token, map[string]interface{}{
		"token": deviceToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestSendPush_AdminOnly(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, user := helpers.CreateClient(t, tx)
	adminToken, _ := helpers.CreateAdmin(t, tx)

	payload := map[string]interface{}{
		"usuarioId": user.ID,
		"titulo":    "Promoção",
		"mensagem":  "Banho com desconto esta semana.",
	}

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/notificacoes/enviar", clientToken, payload)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// Best effort: succeeds even when the user has no registered devices.
	res, body = ts.SendRequest(t, tx, http.MethodPost, "/notificacoes/enviar", adminToken, payload)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestDeviceTokens_InvalidPlatform(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateClient(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/notificacoes/token", token, map[string]interface{}{
		"token":      "abc",
		"plataforma": "blackberry",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}
