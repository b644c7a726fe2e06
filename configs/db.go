package configs

import (
	"stallpos/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDatabase opens the SQLite store. The handle is built once in main and
// passed down explicitly; nothing holds it as a package global.
func OpenDatabase(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	// SQLite ships with FK enforcement off; the RESTRICT on order lines
	// depends on it.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	return db, nil
}

// SetupDatabase applies migrations. AutoMigrate only adds tables and
// columns, so upgrading a database from an older build keeps its rows
// (the legacy quantity_type column on menu items rides along untouched).
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Staff{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderLine{},
	)
}
