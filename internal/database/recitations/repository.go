// Package recitations provides database operations for recitation
// submission, liking, search, and random sampling.
//
// A recitation is attached to exactly one of a Surah or a Juz. The rule is
// enforced here at creation time inside a single transaction: either the new
// record exists afterwards with all invariants holding, or nothing is
// persisted.
//
// # Usage
//
//	repo := recitations.NewRepository(db)
//	rec, err := repo.Create(recitations.CreateInput{URL: url, ReciterName: name, SurahID: &id})
package recitations

import (
	"errors"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"github.com/tilawahub/tilawa/internal/config"
	"github.com/tilawahub/tilawa/internal/entities"
)

var (
	ErrNotFound        = errors.New("recitation not found")
	ErrSurahNotFound   = errors.New("surah not found")
	ErrJuzNotFound     = errors.New("juz not found")
	ErrMissingTarget   = errors.New("missing target: either surah_id or juz_id must be provided")
	ErrAmbiguousTarget = errors.New("ambiguous target: provide either surah_id or juz_id, not both")
	ErrDuplicateURL    = errors.New("duplicate submission: a recitation with this url already exists")
)

// CreateInput carries a submission. SurahID is a Surah surrogate key; JuzID
// is a Juz number (1..30) and is resolved to the surrogate key on insert,
// matching what clients send.
type CreateInput struct {
	URL         string
	ReciterName string
	SurahID     *uint
	JuzID       *int
}

// Repository handles all recitation database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new recitation repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create validates the attachment rule and persists the recitation with zero
// likes. Returns ErrMissingTarget/ErrAmbiguousTarget on a contradictory
// target, ErrSurahNotFound/ErrJuzNotFound when the target does not exist, and
// ErrDuplicateURL when the url was already submitted. The returned record has
// its attached Surah eager-loaded.
func (r *Repository) Create(input CreateInput) (*entities.Recitation, error) {
	if input.SurahID == nil && input.JuzID == nil {
		return nil, ErrMissingTarget
	}
	if input.SurahID != nil && input.JuzID != nil {
		return nil, ErrAmbiguousTarget
	}

	recitation := entities.Recitation{
		URL:         input.URL,
		ReciterName: input.ReciterName,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if input.SurahID != nil {
			var surah entities.Surah
			if err := tx.First(&surah, *input.SurahID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrSurahNotFound
				}
				return err
			}
			recitation.SurahID = &surah.ID
		}

		if input.JuzID != nil {
			var juz entities.Juz
			if err := tx.Where("number = ?", *input.JuzID).First(&juz).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrJuzNotFound
				}
				return err
			}
			recitation.JuzID = &juz.ID
		}

		var existing int64
		if err := tx.Model(&entities.Recitation{}).Where("url = ?", input.URL).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateURL
		}

		return tx.Create(&recitation).Error
	})
	if err != nil {
		return nil, err
	}

	var created entities.Recitation
	if err := r.db.Preload("Surah").First(&created, recitation.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// Like increments the like counter by exactly one and returns the updated
// record. The increment is a single UPDATE so concurrent likes on the same
// record never lose updates.
func (r *Repository) Like(id uint) (*entities.Recitation, error) {
	result := r.db.Model(&entities.Recitation{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var recitation entities.Recitation
	if err := r.db.Preload("Surah").Preload("Juz").First(&recitation, id).Error; err != nil {
		return nil, err
	}
	return &recitation, nil
}

// MostLiked returns the top recitations ordered by likes descending, each
// with its Surah and Juz links resolved.
func (r *Repository) MostLiked(limit int) ([]entities.Recitation, error) {
	if limit <= 0 {
		limit = config.DefaultMostLikedLimit
	}
	result := []entities.Recitation{}
	err := r.db.
		Preload("Surah").
		Preload("Juz").
		Order("likes DESC").
		Limit(limit).
		Find(&result).Error
	return result, err
}

// Search matches the query case-insensitively as a substring of the reciter
// name, the url, or the linked Surah's Latin/Arabic name. Recitations
// attached only to a Juz match on reciter name or url. An empty query yields
// an empty list. Results are ordered by likes descending and capped.
func (r *Repository) Search(query string) ([]entities.Recitation, error) {
	result := []entities.Recitation{}
	if query == "" {
		return result, nil
	}

	term := "%" + strings.ToLower(query) + "%"
	err := r.db.Model(&entities.Recitation{}).
		Joins("LEFT JOIN surah ON surah.id = recitation.surah_id").
		Where(
			"LOWER(recitation.reciter_name) LIKE ? OR LOWER(recitation.url) LIKE ? OR LOWER(surah.name) LIKE ? OR LOWER(surah.name_arabic) LIKE ?",
			term, term, term, term,
		).
		Preload("Surah").
		Preload("Juz").
		Order("recitation.likes DESC").
		Limit(config.SearchResultLimit).
		Find(&result).Error
	return result, err
}

// Random returns one recitation chosen uniformly from all existing records,
// or ErrNotFound when there are none. Count plus a random offset over the
// primary-key ordering gives every row probability 1/count.
func (r *Repository) Random() (*entities.Recitation, error) {
	var count int64
	if err := r.db.Model(&entities.Recitation{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	var recitation entities.Recitation
	err := r.db.
		Preload("Surah").
		Preload("Juz").
		Offset(rand.Intn(int(count))).
		First(&recitation).Error
	if err != nil {
		return nil, err
	}
	return &recitation, nil
}
