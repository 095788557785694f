package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase establishes a connection to the run-ledger database.
// When DATABASE_URL is set a PostgreSQL connection is used; otherwise the
// ledger lives in a local sqlite file next to the binary.
func ConnectDatabase(cfg *Config) error {
	var err error
	if cfg.DatabaseURL != "" {
		DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		log.Println("DATABASE_URL not set, using local sqlite ledger: ordertool.db")
		DB, err = gorm.Open(sqlite.Open("ordertool.db"), &gorm.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
