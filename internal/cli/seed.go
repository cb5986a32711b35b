package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/tilawahub/tilawa/internal/config"
	"github.com/tilawahub/tilawa/internal/database"
	"github.com/tilawahub/tilawa/internal/seed"
)

// SeedCommand handles populating the catalog database from a surah JSON file.
type SeedCommand struct {
	InputPath    string
	DatabasePath string
}

// NewSeedCommand creates a new SeedCommand
func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

// ParseFlags parses command line flags
func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.InputPath, "input", "./surah.json", "Path to the surah JSON document")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate the catalog database from a surah JSON document.\n\n")
		fmt.Fprintf(os.Stderr, "WARNING: this drops and recreates every catalog table, including\n")
		fmt.Fprintf(os.Stderr, "submitted recitations. Re-running is always safe: the load resets\n")
		fmt.Fprintf(os.Stderr, "first, so an interrupted run leaves nothing that a rerun cannot fix.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Seed the default database from ./surah.json:\n")
		fmt.Fprintf(os.Stderr, "  %s seed\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Seed a specific database file:\n")
		fmt.Fprintf(os.Stderr, "  %s seed -input data/surah.json -db /var/lib/tilawa/tilawa.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the seed load.
func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return seed.NewLoader(db).LoadFile(cmd.InputPath)
}
