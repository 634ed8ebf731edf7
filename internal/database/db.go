package database

import (
	"fmt"

	"autoservice/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens a GORM connection for the given driver ("postgres" or "sqlite").
func NewConnection(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the back-office schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.SessionToken{},
		&model.Permission{},
		&model.Role{},
		&model.Department{},
		&model.Order{},
		&model.Estimate{},
		&model.EstimatePart{},
		&model.EstimateService{},
		&model.CheckList{},
		&model.OrdersComplaint{},
		&model.WarehouseItem{},
		&model.Demand{},
		&model.DemandsItem{},
		&model.RepairService{},
		&model.AbsenceRequest{},
		&model.AirConditioningRecord{},
		&model.Log{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// MigrateTickets creates the support-ticket tables, which may live in a separate database.
func MigrateTickets(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Ticket{}, &model.TicketsMessage{}, &model.TicketsFile{}); err != nil {
		return fmt.Errorf("failed to migrate tickets schema: %w", err)
	}
	return nil
}
