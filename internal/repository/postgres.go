package repository

import (
	"context"
	"errors"
	"fmt"

	"ec-pharmacy-api/internal/models"
	"ec-pharmacy-api/internal/snapshot"
	"ec-pharmacy-api/internal/textnorm"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoSnapshot is returned when no snapshot has been imported yet.
var ErrNoSnapshot = errors.New("repository: no snapshot imported")

// Repository reads the imported pharmacy snapshot from PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// LoadSnapshot reads the snapshot metadata and every pharmacy row in source
// order, and runs them through the same cleaning as a data.json load.
func (r *Repository) LoadSnapshot(ctx context.Context) (*models.Snapshot, *snapshot.Report, error) {
	meta, fingerprint, err := r.loadMeta(ctx)
	if err != nil {
		return nil, nil, err
	}

	sql := `
		SELECT
			id,
			pref,
			muni,
			name,
			addr,
			tel,
			url,
			hours,
			after_hours,
			after_hours_tel,
			privacy,
			call_ahead,
			notes
		FROM pharmacies
		ORDER BY ordinal
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, nil, fmt.Errorf("repository: failed to query pharmacies: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var (
			id     *int64
			fields = make([]*string, 12)
		)
		err := rows.Scan(
			&id,
			&fields[0], &fields[1], &fields[2], &fields[3], &fields[4], &fields[5],
			&fields[6], &fields[7], &fields[8], &fields[9], &fields[10], &fields[11],
		)
		if err != nil {
			return nil, nil, fmt.Errorf("repository: failed to scan pharmacy: %w", err)
		}
		records = append(records, models.NewRecord(id, cleanRow(fields)))
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	report := &snapshot.Report{}
	return snapshot.Build(meta, records, fingerprint, report), report, nil
}

func (r *Repository) loadMeta(ctx context.Context) (models.Meta, string, error) {
	sql := `
		SELECT as_of, source_page, source_xlsx, generated_at, fingerprint, records
		FROM snapshot_meta
		LIMIT 1
	`

	var (
		meta        models.Meta
		fingerprint string
	)
	err := r.db.QueryRow(ctx, sql).Scan(
		&meta.AsOf,
		&meta.SourcePage,
		&meta.SourceXlsx,
		&meta.GeneratedAt,
		&fingerprint,
		&meta.Records,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return meta, "", ErrNoSnapshot
		}
		return meta, "", fmt.Errorf("repository: failed to query snapshot meta: %w", err)
	}

	return meta, fingerprint, nil
}

// cleanRow maps scanned columns (in LoadSnapshot order) to cleaned record fields.
// NULL columns are fields the snapshot did not have and stay absent.
func cleanRow(values []*string) map[string]string {
	names := []string{
		textnorm.FieldPref, textnorm.FieldMuni, textnorm.FieldName, textnorm.FieldAddr,
		textnorm.FieldTel, textnorm.FieldURL, textnorm.FieldHours, textnorm.FieldAfterHours,
		textnorm.FieldAfterHoursTel, textnorm.FieldPrivacy, textnorm.FieldCallAhead, textnorm.FieldNotes,
	}
	raw := make(map[string]any, len(names))
	for i, name := range names {
		if values[i] == nil {
			continue
		}
		raw[name] = *values[i]
	}
	return textnorm.CleanFields(raw)
}
