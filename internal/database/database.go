package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tilawahub/tilawa/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Reset drops every catalog table, the surah_juz association table included,
// and recreates the schema empty. Used by the seed loader for its
// reset-first semantics; destructive by design.
func (d *Database) Reset() error {
	err := d.DB.Migrator().DropTable(
		"surah_juz",
		&entities.Recitation{},
		&entities.Surah{},
		&entities.Juz{},
	)
	if err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return migrate(d.DB)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Juz{},
		&entities.Surah{},
		&entities.Recitation{},
	)
}
