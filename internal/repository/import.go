package repository

import (
	"context"
	"fmt"

	"ec-pharmacy-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// EnsureSchema creates the snapshot tables if they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ReplaceSnapshot swaps the stored snapshot for snap in one transaction,
// so readers never see a partial list.
func (r *Repository) ReplaceSnapshot(ctx context.Context, snap *models.Snapshot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM pharmacies"); err != nil {
		return fmt.Errorf("repository: failed to clear pharmacies: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM snapshot_meta"); err != nil {
		return fmt.Errorf("repository: failed to clear snapshot meta: %w", err)
	}

	records := snap.Records()
	// Use CopyFrom for bulk insert
	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"pharmacies"},
		PharmacyColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{
				i, rec.ID,
				nullable(rec.Pref), nullable(rec.Muni), nullable(rec.Name), nullable(rec.Addr),
				nullable(rec.Tel), nullable(rec.URL), nullable(rec.Hours), nullable(rec.AfterHours),
				nullable(rec.AfterHoursTel), nullable(rec.Privacy), nullable(rec.CallAhead), nullable(rec.Notes),
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("repository: failed to copy pharmacies: %w", err)
	}

	meta := snap.Meta()
	_, err = tx.Exec(ctx, `
		INSERT INTO snapshot_meta (as_of, source_page, source_xlsx, generated_at, fingerprint, records)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, meta.AsOf, meta.SourcePage, meta.SourceXlsx, meta.GeneratedAt, snap.Fingerprint(), snap.Len())
	if err != nil {
		return fmt.Errorf("repository: failed to insert snapshot meta: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit snapshot: %w", err)
	}
	return nil
}

// nullable stores an empty field as NULL so it reads back as absent.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CountPharmacies returns the number of stored pharmacy rows
func (r *Repository) CountPharmacies(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM pharmacies").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count pharmacies: %w", err)
	}
	return count, nil
}
