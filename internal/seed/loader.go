// Package seed bulk-populates the catalog from a JSON document describing
// the 114 Surahs and their Juz membership.
//
// Loading is an idempotent full reset: every run drops and recreates the
// schema first, so re-running after an interrupted load is always safe.
// Recitation data does not survive a reset; seeding is meant to run before
// normal traffic.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"gorm.io/gorm"

	"github.com/tilawahub/tilawa/internal/config"
	"github.com/tilawahub/tilawa/internal/database"
	"github.com/tilawahub/tilawa/internal/entities"
)

// surahRecord mirrors one entry of the input document. Index fields arrive
// as either JSON numbers or strings (often zero-padded, e.g. "001"), so they
// are kept raw and parsed per record.
type surahRecord struct {
	Index         json.RawMessage `json:"index"`
	Title         string          `json:"title"`
	TitleAr       string          `json:"titleAr"`
	TranslationEN string          `json:"translation_en"`
	Count         json.RawMessage `json:"count"`
	Juz           []juzRef        `json:"juz"`
}

type juzRef struct {
	Index json.RawMessage `json:"index"`
}

// Loader seeds the catalog database.
type Loader struct {
	db *database.Database
}

// NewLoader creates a new seed loader.
func NewLoader(db *database.Database) *Loader {
	return &Loader{db: db}
}

// LoadFile reads the JSON document at path and loads it.
func (l *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	return l.Load(data)
}

// Load resets the schema, creates the 30 Juz, then inserts one Surah per
// well-formed record, linked to every Juz listed for it. Malformed records
// are logged and skipped; store-level failures roll back the in-progress
// transaction and abort the run.
func (l *Loader) Load(data []byte) error {
	var records []surahRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse seed document: %w", err)
	}

	log.Printf("Resetting catalog tables")
	if err := l.db.Reset(); err != nil {
		return err
	}

	juzByNumber := make(map[int]entities.Juz, config.JuzCount)
	err := l.db.DB.Transaction(func(tx *gorm.DB) error {
		for number := 1; number <= config.JuzCount; number++ {
			juz := entities.Juz{Number: number}
			if err := tx.Create(&juz).Error; err != nil {
				return fmt.Errorf("failed to create juz %d: %w", number, err)
			}
			juzByNumber[number] = juz
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("Seeded %d juz records", config.JuzCount)

	seeded := 0
	err = l.db.DB.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			surah, ok := l.buildSurah(record, juzByNumber)
			if !ok {
				continue
			}
			// Juzs carry existing primary keys; only the join rows are written.
			if err := tx.Omit("Juzs.*").Create(surah).Error; err != nil {
				return fmt.Errorf("failed to create surah %q: %w", surah.Name, err)
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded %d surah records (%d skipped)", seeded, len(records)-seeded)
	return nil
}

// buildSurah turns one input record into a Surah with its Juz links
// resolved. Returns false when the record is malformed.
func (l *Loader) buildSurah(record surahRecord, juzByNumber map[int]entities.Juz) (*entities.Surah, bool) {
	number, err := parseIndex(record.Index)
	if err != nil {
		log.Printf("WARNING: skipping surah record %q: bad index: %v", record.Title, err)
		return nil, false
	}
	if record.Title == "" {
		log.Printf("WARNING: skipping surah record %d: missing title", number)
		return nil, false
	}

	versesCount := 0
	if len(record.Count) > 0 {
		versesCount, err = parseIndex(record.Count)
		if err != nil {
			log.Printf("WARNING: surah %q: bad verse count: %v", record.Title, err)
			versesCount = 0
		}
	}

	surah := &entities.Surah{
		Number:        number,
		Name:          record.Title,
		NameArabic:    record.TitleAr,
		TranslationEN: record.TranslationEN,
		VersesCount:   versesCount,
	}

	for _, ref := range record.Juz {
		juzNumber, err := parseIndex(ref.Index)
		if err != nil {
			log.Printf("WARNING: surah %q: bad juz index: %v", record.Title, err)
			continue
		}
		juz, found := juzByNumber[juzNumber]
		if !found {
			log.Printf("WARNING: surah %q: juz number %d not found", record.Title, juzNumber)
			continue
		}
		surah.Juzs = append(surah.Juzs, juz)
	}

	return surah, true
}

// parseIndex accepts a JSON number or a numeric string such as "001".
func parseIndex(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, errors.New("missing value")
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("value %s is neither a number nor a string", raw)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("value %q is not numeric", s)
	}
	return n, nil
}
