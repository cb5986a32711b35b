// Package database provides the data access layer for the recitations catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, schema reset
//	├── surahs/          # Surah listing and detail views
//	├── juzs/            # Juz traversal and detail views
//	└── recitations/     # Recitation submission, likes, search, random
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./tilawa.db")
//
//	// Create domain-specific repositories
//	surahsRepo := surahs.NewRepository(db.DB)
//	recitationsRepo := recitations.NewRepository(db.DB)
//
//	// Use repositories
//	detail, err := surahsRepo.GetDetail(36)
package database
