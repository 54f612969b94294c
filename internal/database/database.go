package database

import (
	"fmt"
	"time"

	"flavors/backend/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database and sizes the connection pool.
// It does not touch the schema; see Bootstrap.
func Open(cfg config.Settings) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	switch cfg.DatabaseType {
	case "", "postgres", "postgresql":
		dialector = postgres.Open(cfg.PostgresDSN())
	case "mysql":
		dialector = mysql.Open(cfg.MySQLDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLiteDBPath)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseType == "sqlite" {
		// every connection to an in-memory sqlite database sees its own database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(30)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
