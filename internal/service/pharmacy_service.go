package service

import (
	"context"
	"fmt"

	"ec-pharmacy-api/internal/models"
)

// PharmacyService looks up single pharmacies by their number in the source list.
type PharmacyService struct {
	byID map[int64]models.Record
}

// NewPharmacyService indexes the records of snapshot by ID.
// Records without an ID cannot be looked up; for duplicate IDs the first record wins.
func NewPharmacyService(snapshot *models.Snapshot) *PharmacyService {
	byID := make(map[int64]models.Record, snapshot.Len())
	for _, rec := range snapshot.Records() {
		if rec.ID == nil {
			continue
		}
		if _, dup := byID[*rec.ID]; !dup {
			byID[*rec.ID] = rec
		}
	}
	return &PharmacyService{byID: byID}
}

// Pharmacy returns the record with the given ID, or nil when there is none.
func (s *PharmacyService) Pharmacy(ctx context.Context, id int64) (*models.Record, error) {
	if id <= 0 {
		return nil, fmt.Errorf("service: invalid pharmacy id: %d", id)
	}

	rec, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}
