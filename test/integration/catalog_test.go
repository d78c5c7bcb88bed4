package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"pettime_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCRUD_AdminOnlyMutations(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateClient(t, tx)
	adminToken, _ := helpers.CreateAdmin(t, tx)

	cases := []struct {
		path string
		body map[string]interface{}
	}{
		{"/servicos", map[string]interface{}{"tipo": "banho"}},
		{"/tosas", map[string]interface{}{"tipo": "higienica"}},
		{"/servicos-adicionais", map[string]interface{}{"descricao": "Hidratação"}},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			res, body := ts.SendRequest(t, tx, http.MethodPost, tc.path, clientToken, tc.body)
			assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

			res, body = ts.SendRequest(t, tx, http.MethodPost, tc.path, adminToken, tc.body)
			require.Equal(t, http.StatusCreated, res.StatusCode, body)

			var created struct {
				ID uint `json:"id"`
			}
			require.NoError(t, json.Unmarshal([]byte(body), &created))
			require.NotZero(t, created.ID)

			res, body = ts.SendRequest(t, tx, http.MethodGet, tc.path, clientToken, nil)
			require.Equal(t, http.StatusOK, res.StatusCode, body)
			assert.Contains(t, body, fmt.Sprintf(`"id":%d`, created.ID))

			res, body = ts.SendRequest(t, tx, http.MethodDelete,
				fmt.Sprintf("%s/%d", tc.path, created.ID), clientToken, nil)
			assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

			res, body = ts.SendRequest(t, tx, http.MethodDelete,
				fmt.Sprintf("%s/%d", tc.path, created.ID), adminToken, nil)
			assert.Equal(t, http.StatusOK, res.StatusCode, body)
		})
	}
}

func TestCatalog_RequiresAuth(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/servicos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProducts_ListFilterByType(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateClient(t, tx)
	adminToken, _ := helpers.CreateAdmin(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/produtos", adminToken, map[string]interface{}{
		"descricao": "Shampoo antipulgas",
		"tipo":      1,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, tx, http.MethodPost, "/produtos", adminToken, map[string]interface{}{
		"descricao": "Perfume floral",
		"tipo":      2,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/produtos?tipo=1", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Shampoo antipulgas")
	assert.NotContains(t, body, "Perfume floral")

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/produtos", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Shampoo antipulgas")
	assert.Contains(t, body, "Perfume floral")
}

func TestProducts_ClientCannotCreate(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateClient(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/produtos", token, map[string]interface{}{
		"descricao": "Produto pirata",
		"tipo":      1,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}
