// Package bootstrap loads the snapshot a binary serves, from the configured source.
package bootstrap

import (
	"context"
	"fmt"

	"ec-pharmacy-api/internal/config"
	"ec-pharmacy-api/internal/models"
	"ec-pharmacy-api/internal/repository"
	"ec-pharmacy-api/internal/snapshot"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// maxLoggedIssues bounds the per-record warnings written at startup.
const maxLoggedIssues = 20

// LoadSnapshot reads the snapshot from DATA_FILE or from PostgreSQL and logs
// validation issues. The returned snapshot is never modified afterwards.
func LoadSnapshot(ctx context.Context, cfg config.Config) (*models.Snapshot, error) {
	var (
		snap   *models.Snapshot
		report *snapshot.Report
		err    error
	)

	switch cfg.SnapshotSource {
	case config.SourcePostgres:
		var pool *pgxpool.Pool
		pool, err = pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: cannot connect to db: %w", err)
		}
		defer pool.Close()
		snap, report, err = repository.NewRepository(pool).LoadSnapshot(ctx)
	default:
		snap, report, err = snapshot.LoadFile(cfg.DataFile)
	}
	if err != nil {
		return nil, fmt.Errorf("bootstrap: failed to load snapshot: %w", err)
	}

	logReport(report)
	log.Info().
		Str("source", cfg.SnapshotSource).
		Str("as_of", snap.Meta().AsOf).
		Int("records", snap.Len()).
		Int("prefectures", len(snap.Prefectures())).
		Str("fingerprint", snap.Fingerprint()).
		Msg("snapshot loaded")

	return snap, nil
}

func logReport(report *snapshot.Report) {
	if report.OK() {
		return
	}
	for i, issue := range report.Issues {
		if i == maxLoggedIssues {
			log.Warn().Int("omitted", len(report.Issues)-maxLoggedIssues).Msg("more snapshot issues")
			break
		}
		log.Warn().
			Int("record", issue.Index).
			Str("kind", string(issue.Kind)).
			Str("field", issue.Field).
			Str("value", issue.Value).
			Msg("snapshot record issue")
	}
}
