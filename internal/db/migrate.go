package db

import (
	"errors"
	"fmt"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protools/toolbox/internal/models"
)

// Migrate brings the schema up to date. On PostgreSQL with useSQL set it runs
// the versioned SQL migrations in ./migrations; otherwise it falls back to
// AutoMigrate, which is the normal path for SQLite and development.
func Migrate(db *gorm.DB, dsn string, useSQL bool) error {
	if useSQL && IsPostgres(dsn) {
		if err := runSQLMigrations(NormalizeDSN(dsn)); err != nil {
			return fmt.Errorf("sql migrations: %w", err)
		}
	} else {
		if err := db.AutoMigrate(
			&models.InvoiceRecord{},
			&models.BusinessProfile{},
			&models.InventoryItem{},
			&models.BuyerProfile{},
		); err != nil {
			return fmt.Errorf("automigrate: %w", err)
		}
	}
	for _, table := range []string{"invoice_records", "business_profiles", "inventory_items", "buyer_profiles"} {
		if !db.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

// Seed loads a small starter inventory so a fresh install can build an
// invoice without configuring anything. Existing names are left alone.
func Seed(db *gorm.DB) error {
	starter := []models.InventoryItem{
		{Name: "Consulting (hourly)", TaxCode: "9983"},
		{Name: "Software license", TaxCode: "9973"},
		{Name: "Hardware", TaxCode: "8471"},
	}
	for _, item := range starter {
		var existing models.InventoryItem
		err := db.Where("name = ?", item.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item.ID = uuid.NewString()
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}

func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
