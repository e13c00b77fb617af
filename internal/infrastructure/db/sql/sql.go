// Package sql provides the relational persistence layer: a multi-driver gorm
// connection and one repository per entity. Currency-bearing columns are
// persisted as text (see money.go); everything above this package only ever
// sees decimal values.
package sql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config captures the settings required to open the database.
type Config struct {
	Driver string // sqlite, postgres, mysql
	DSN    string
}

// Open connects to the configured database, runs schema migration, tunes the
// connection pool and verifies connectivity with a ping.
func Open(cfg Config) (*gorm.DB, error) {
	dialector, err := buildDialector(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// gorm's own logger is silenced; the app logs through pkg/logger.
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}

	if err := db.AutoMigrate(
		&userRecord{},
		&categoryRecord{},
		&productRecord{},
		&orderRecord{},
		&orderItemRecord{},
	); err != nil {
		return nil, fmt.Errorf("sql migrate: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("sql ping: %w", err)
	}

	return db, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql)", driver)
	}
}
