package service

import (
	"strings"

	"ec-pharmacy-api/internal/models"
	"ec-pharmacy-api/internal/textnorm"
)

// Match returns the records that pass every active filter of q, in input order.
// The prefecture filter is an exact match on the canonical name; free text is
// split into normalized terms that must all occur in the record blob.
func Match(records []models.Record, q models.Query) []models.Record {
	return matchTerms(records, q, textnorm.Terms(q.Text))
}

func matchTerms(records []models.Record, q models.Query, terms []string) []models.Record {
	out := make([]models.Record, 0)
	for _, rec := range records {
		if q.Pref != "" && rec.Pref != q.Pref {
			continue
		}
		if q.CallAhead && !rec.RequiresCallAhead() {
			continue
		}
		if q.AfterHours && !rec.HasAfterHours() {
			continue
		}
		if !containsAll(rec.Blob, terms) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func containsAll(blob string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(blob, term) {
			return false
		}
	}
	return true
}
