package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"pettime_backend/internal/models"
	"pettime_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("novo_%d@test.com", time.Now().UnixNano())

	regRes, regBody := ts.SendRequest(t, tx, http.MethodPost, "/usuarios/register", "", map[string]interface{}{
		"nome":  "Maria Silva",
		"email": email,
		"senha": "senha123",
	})
	require.Equal(t, http.StatusOK, regRes.StatusCode, regBody)

	var regResp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"tipo"`
		} `json:"usuario"`
	}
	require.NoError(t, json.Unmarshal([]byte(regBody), &regResp))
	assert.NotEmpty(t, regResp.Token)
	assert.Equal(t, email, regResp.User.Email)
	assert.Equal(t, "cliente", regResp.User.Role)

	logRes, logBody := ts.SendRequest(t, tx, http.MethodPost, "/usuarios/login", "", map[string]interface{}{
		"email": email,
		"senha": "senha123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode, logBody)
	assert.Contains(t, logBody, "token")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, user := helpers.CreateClient(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/usuarios/register", "", map[string]interface{}{
		"nome":  "Outro Usuário",
		"email": user.Email,
		"senha": "senha123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "E-mail já cadastrado")
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, user := helpers.CreateClient(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/usuarios/login", "", map[string]interface{}{
		"email": user.Email,
		"senha": "senha-errada",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/usuarios/login", "", map[string]interface{}{
		"email": "ninguem@test.com",
		"senha": "senha123",
	})
	// Unknown emails answer 400, the contract the mobile client relies on.
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestLogin_DeletedAccount(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, user := helpers.CreateClient(t, tx)
	require.NoError(t, tx.Model(&models.User{}).Where("id = ?", user.ID).Update("deletado", true).Error)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/usuarios/login", "", map[string]interface{}{
		"email": user.Email,
		"senha": "senha123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestGetMe(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateClient(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/usuarios/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, user.Email)
	assert.Contains(t, body, user.Name)
}

func TestGetMe_NoToken(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/usuarios/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
