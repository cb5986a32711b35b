// Package surahs provides database operations for Surah browsing.
//
// # Usage
//
//	repo := surahs.NewRepository(db)
//	items, err := repo.ListAll()
package surahs

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tilawahub/tilawa/internal/entities"
)

var ErrNotFound = errors.New("surah not found")

// ListItem is the lightweight listing projection, distinct from the detail view.
type ListItem struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	NameArabic string `json:"name_arabic"`
}

// Detail is the full Surah view: chapter info plus every attached recitation.
type Detail struct {
	Info        entities.Surah        `json:"info"`
	Recitations []entities.Recitation `json:"recitations"`
}

// Repository handles all Surah database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new Surah repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every Surah ordered by chapter number ascending.
func (r *Repository) ListAll() ([]ListItem, error) {
	items := []ListItem{}
	err := r.db.Model(&entities.Surah{}).
		Select("id", "name", "name_arabic").
		Order("number ASC").
		Find(&items).Error
	return items, err
}

// GetDetail returns a Surah by surrogate key with all its recitations, each
// recitation carrying its Surah link for client-side display.
func (r *Repository) GetDetail(id uint) (*Detail, error) {
	var surah entities.Surah
	err := r.db.Preload("Recitations.Surah").First(&surah, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	recitations := surah.Recitations
	if recitations == nil {
		recitations = []entities.Recitation{}
	}
	surah.Recitations = nil

	return &Detail{Info: surah, Recitations: recitations}, nil
}
