package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"ec-pharmacy-api/internal/config"
	"ec-pharmacy-api/internal/models"
	"ec-pharmacy-api/internal/repository"
	"ec-pharmacy-api/internal/snapshot"

	"github.com/alecthomas/kong"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	if err := NewMain().Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// CLI defines the importer flags.
type CLI struct {
	File    string `help:"Path to the data.json snapshot to import." required:"" type:"existingfile"`
	DB      string `help:"PostgreSQL connection string. Defaults to DB_SOURCE from the config directory." name:"db"`
	Configs string `help:"Directory holding app.env." default:"configs"`
	DryRun  bool   `help:"Validate the snapshot without writing to the database." name:"dry-run"`
}

// Main represents the importer program.
type Main struct{}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run parses args, validates the snapshot and replaces the stored one.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("importer"),
		kong.Description("Import a pharmacy data.json snapshot into PostgreSQL"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Starting import from file: %s\n", cli.File)

	snap, report, err := snapshot.LoadFile(cli.File)
	if err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}
	fmt.Fprintf(stdout, "Parsed %d records (as of %s)\n", snap.Len(), snap.Meta().AsOf)
	for _, issue := range report.Issues {
		fmt.Fprintf(stderr, "warning: %s\n", issue)
	}

	if cli.DryRun {
		fmt.Fprintln(stdout, "Dry run: nothing written")
		return nil
	}

	dbSource := cli.DB
	if dbSource == "" {
		cfg, err := config.LoadConfig(cli.Configs)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		dbSource = cfg.DBSource
	}
	if dbSource == "" {
		return fmt.Errorf("no database configured: pass --db or set DB_SOURCE")
	}

	return importSnapshot(ctx, dbSource, snap, stdout)
}

func importSnapshot(ctx context.Context, dbSource string, snap *models.Snapshot, stdout io.Writer) error {
	// Connect to DB
	pool, err := pgxpool.New(ctx, dbSource)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	// Ensure tables exist
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	// Replace records
	if err := repo.ReplaceSnapshot(ctx, snap); err != nil {
		return err
	}

	// Verify data
	count, err := repo.CountPharmacies(ctx)
	if err != nil {
		return err
	}
	if count != snap.Len() {
		return fmt.Errorf("record count mismatch: expected %d, got %d", snap.Len(), count)
	}

	fmt.Fprintf(stdout, "Successfully imported %d records\n", count)
	return nil
}
