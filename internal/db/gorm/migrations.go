package gorm

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// runMigrations runs all database migrations using gormigrate.
func runMigrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		// Migration 001: Core tables (students, tutors)
		{
			ID: "001_core_tables",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&StudentRecord{}); err != nil {
					return err
				}
				return tx.AutoMigrate(&TutorRecord{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("students", "tutors")
			},
		},

		// Migration 002: Weight configuration singleton
		{
			ID: "002_weight_configs",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&WeightConfigRecord{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("weight_configs")
			},
		},
	})

	return m.Migrate()
}
