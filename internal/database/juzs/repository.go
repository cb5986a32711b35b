// Package juzs provides database operations for Juz traversal.
package juzs

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tilawahub/tilawa/internal/entities"
)

var ErrNotFound = errors.New("juz not found")

// Detail is the full Juz view: every Surah belonging to the section plus the
// recitations attached directly to it.
type Detail struct {
	Surahs      []entities.Surah      `json:"surahs"`
	Recitations []entities.Recitation `json:"recitations"`
}

// Repository handles all Juz database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new Juz repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByNumber returns the detail view for the Juz with the given number
// (1..30). A Surah spanning several Juz appears in each of them.
func (r *Repository) GetByNumber(number int) (*Detail, error) {
	var juz entities.Juz
	err := r.db.
		Preload("Surahs", func(db *gorm.DB) *gorm.DB {
			return db.Order("surah.number ASC")
		}).
		Preload("Recitations.Surah").
		Where("number = ?", number).
		First(&juz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	detail := &Detail{Surahs: juz.Surahs, Recitations: juz.Recitations}
	if detail.Surahs == nil {
		detail.Surahs = []entities.Surah{}
	}
	if detail.Recitations == nil {
		detail.Recitations = []entities.Recitation{}
	}
	return detail, nil
}
