// Package snapshot decodes and validates the pharmacy data.json snapshot.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"ec-pharmacy-api/internal/models"
	"ec-pharmacy-api/internal/prefecture"
	"ec-pharmacy-api/internal/textnorm"

	"github.com/cespare/xxhash/v2"
)

// Flag spellings seen in the MHLW list.
var (
	callAheadValues  = []string{models.CallAheadRequired, "否", "不要"}
	afterHoursValues = []string{models.AfterHoursAvailable, "無", "なし"}
)

type rawSnapshot struct {
	Meta *models.Meta      `json:"meta"`
	Data *[]map[string]any `json:"data"`
}

// LoadFile reads and decodes the snapshot at path.
func LoadFile(path string) (*models.Snapshot, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot: failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a {meta, data} snapshot, cleans every record and freezes the
// result. Record-level problems are returned in the report; only a broken
// document is an error.
func Decode(r io.Reader) (*models.Snapshot, *Report, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot: failed to read: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw rawSnapshot
	if err := dec.Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw.Data == nil {
		return nil, nil, ErrMissingData
	}
	if raw.Meta == nil || textnorm.Clean(raw.Meta.AsOf) == "" {
		return nil, nil, ErrMissingMeta
	}

	meta := *raw.Meta
	meta.AsOf = textnorm.Clean(meta.AsOf)
	meta.SourcePage = textnorm.Clean(meta.SourcePage)

	report := &Report{}
	records := make([]models.Record, 0, len(*raw.Data))
	for i, item := range *raw.Data {
		if item == nil {
			return nil, nil, fmt.Errorf("%w: record %d is not an object", ErrMalformed, i)
		}
		id := parseID(item["id"], i, report)
		records = append(records, models.NewRecord(id, textnorm.CleanFields(item)))
	}

	return Build(meta, records, Fingerprint(body), report), report, nil
}

// Build validates records and freezes them with their distinct prefecture list.
// Issues are appended to report when it is not nil.
func Build(meta models.Meta, records []models.Record, fingerprint string, report *Report) *models.Snapshot {
	if report == nil {
		report = &Report{}
	}

	seen := make(map[string]struct{})
	var prefs []string
	for i, rec := range records {
		validate(i, rec, report)
		if rec.Pref == "" {
			continue
		}
		if _, ok := seen[rec.Pref]; !ok {
			seen[rec.Pref] = struct{}{}
			prefs = append(prefs, rec.Pref)
		}
	}

	if meta.Records == 0 {
		meta.Records = len(records)
	}

	return models.NewSnapshot(meta, records, prefecture.Sort(prefs), fingerprint)
}

// Fingerprint hashes the raw snapshot bytes.
func Fingerprint(body []byte) string {
	return strconv.FormatUint(xxhash.Sum64(body), 16)
}

func validate(i int, rec models.Record, report *Report) {
	if rec.Pref != "" && !prefecture.IsCanonical(rec.Pref) {
		report.add(i, IssueUnknownPrefecture, textnorm.FieldPref, rec.Pref)
	}
	if rec.Name == "" {
		report.add(i, IssueMissingName, textnorm.FieldName, "")
	}
	if rec.CallAhead != "" && !slices.Contains(callAheadValues, rec.CallAhead) {
		report.add(i, IssueInvalidFlag, textnorm.FieldCallAhead, rec.CallAhead)
	}
	if rec.AfterHours != "" && !slices.Contains(afterHoursValues, rec.AfterHours) {
		report.add(i, IssueInvalidFlag, textnorm.FieldAfterHours, rec.AfterHours)
	}
}

func parseID(v any, i int, report *Report) *int64 {
	s := textnorm.Clean(v)
	if s == "" {
		return nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		report.add(i, IssueInvalidID, "id", s)
		return nil
	}
	return &id
}
