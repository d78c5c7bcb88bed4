package database

import (
	"fmt"
	"strings"

	"pettime_backend/internal/config"
	"pettime_backend/internal/logger"
	"pettime_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens GORM against the configured driver. Postgres runs in
// production; mysql is kept for the legacy on-prem install.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres", "":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model and installs the slot uniqueness index.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.Service{},
		&models.GroomingType{},
		&models.AdditionalService{},
		&models.Product{},
		&models.Appointment{},
		&models.Notification{},
		&models.DeviceToken{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	if err := createSlotIndex(db); err != nil {
		return err
	}

	logger.Info("database migration completed")
	return nil
}

// createSlotIndex closes the read-then-insert race on bookings: two requests
// for the same (data, horario) can both pass the conflict check, but only
// one insert survives this index. Completed and rejected rows are excluded
// so freed slots can be rebooked.
func createSlotIndex(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		// MySQL has no partial indexes; the legacy install relies on the
		// in-transaction conflict check alone.
		return nil
	}

	statuses := make([]string, 0, len(models.OccupyingStatuses))
	for _, s := range models.OccupyingStatuses {
		statuses = append(statuses, "'"+string(s)+"'")
	}

	stmt := fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_agendamento_slot
		 ON agendamentos (data, horario)
		 WHERE status IN (%s)`,
		strings.Join(statuses, ", "),
	)

	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("failed to create slot index: %w", err)
	}
	return nil
}
