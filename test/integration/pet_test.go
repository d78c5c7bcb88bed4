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

func TestCreatePet(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateClient(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/pets", token, map[string]interface{}{
		"nome":  "Bolinha",
		"raca":  "Poodle",
		"idade": 4,
		"porte": "pequeno",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var pet struct {
		ID   uint   `json:"id"`
		Name string `json:"nome"`
		Size string `json:"porte"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &pet))
	assert.NotZero(t, pet.ID)
	assert.Equal(t, "Bolinha", pet.Name)
	assert.Equal(t, "pequeno", pet.Size)
}

func TestCreatePet_InvalidSize(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateClient(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/pets", token, map[string]interface{}{
		"nome":  "Bolinha",
		"porte": "colossal",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestListPets_ClientSeesOnlyOwn(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	tokenA, userA := helpers.CreateClient(t, tx)
	_, userB := helpers.CreateClient(t, tx)
	adminToken, _ := helpers.CreateAdmin(t, tx)

	petA := helpers.CreatePet(t, tx, userA.ID)
	helpers.CreatePet(t, tx, userB.ID)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/pets", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var own []models.Pet
	require.NoError(t, json.Unmarshal([]byte(body), &own))
	require.Len(t, own, 1)
	assert.Equal(t, petA.ID, own[0].ID)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/pets", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var all []models.Pet
	require.NoError(t, json.Unmarshal([]byte(body), &all))
	assert.Len(t, all, 2)
}

func TestGetPet_OtherUser(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateClient(t, tx)
	_, other := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, other.ID)

	res, body := ts.SendRequest(t, tx, http.MethodGet, fmt.Sprintf("/pets/%d", pet.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestUpdatePet(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)

	res, body := ts.SendRequest(t, tx, http.MethodPut, fmt.Sprintf("/pets/%d", pet.ID), token, map[string]interface{}{
		"nome":  "Rex II",
		"porte": "grande",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Rex II")
	assert.Contains(t, body, "grande")
}

func TestDeletePet_SoftDelete(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)
	pet := helpers.CreatePet(t, tx, user.ID)

	res, body := ts.SendRequest(t, tx, http.MethodDelete, fmt.Sprintf("/pets/%d", pet.ID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// The row survives with the deleted flag set; the API stops serving it.
	var stored models.Pet
	require.NoError(t, tx.First(&stored, pet.ID).Error)
	assert.True(t, stored.Deleted)

	res, body = ts.SendRequest(t, tx, http.MethodGet, fmt.Sprintf("/pets/%d", pet.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}
