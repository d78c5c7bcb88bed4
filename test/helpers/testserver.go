package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pettime_backend/database"
	"pettime_backend/internal/app"
	"pettime_backend/internal/config"
	"pettime_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TestServer drives the fully wired router in-process. Every request runs
// against the transaction planted on its context, so each test case rolls
// back cleanly.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer connects to the test database, migrates it and builds the
// router exactly as production does.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := database.ConnectGorm()
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := app.SetupRouter(cfg, db)

	return &TestServer{
		Router: router,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	sqlDB, err := ts.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// BeginTransaction opens the transaction a test case runs inside.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin test transaction: %v", tx.Error)
	}
	return tx
}

func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	tx.Rollback()
}

// SendRequest performs one request through the router, binding it to tx.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*http.Response, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
	req = req.WithContext(ctx)

	recorder := httptest.NewRecorder()
	ts.Router.ServeHTTP(recorder, req)

	res := recorder.Result()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	res.Body.Close()

	return res, string(resBody)
}
