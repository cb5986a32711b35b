package config

const (
	// DefaultDatabasePath is the default path for the recitations database
	DefaultDatabasePath = "./tilawa.db"

	// DefaultMostLikedLimit caps the most-liked listing when no limit is given
	DefaultMostLikedLimit = 50

	// SearchResultLimit caps search results; fixed, not configurable
	SearchResultLimit = 50

	// JuzCount is the number of fixed reading-sections
	JuzCount = 30
)
