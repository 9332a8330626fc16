package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ec-pharmacy-api/internal/models"
	"ec-pharmacy-api/internal/textnorm"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the number of filtered result sets kept per snapshot.
const DefaultCacheSize = 256

// SearchService runs queries against one immutable snapshot.
type SearchService struct {
	snapshot *models.Snapshot
	cache    *lru.Cache
}

// NewSearchService creates a search service over snapshot.
// cacheSize <= 0 uses DefaultCacheSize.
func NewSearchService(snapshot *models.Snapshot, cacheSize int) (*SearchService, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("service: snapshot is required")
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create result cache: %w", err)
	}
	return &SearchService{snapshot: snapshot, cache: cache}, nil
}

// Search returns every record matching q. Result sets are cached by their
// normalized query, so asking again for a larger page does not re-filter.
// The returned slice is shared and must not be modified.
func (s *SearchService) Search(ctx context.Context, q models.Query) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: search canceled: %w", err)
	}

	terms := textnorm.Terms(q.Text)
	key := cacheKey(q, terms)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.Record), nil
	}

	results := matchTerms(s.snapshot.Records(), q, terms)
	s.cache.Add(key, results)
	return results, nil
}

// Prefectures returns the distinct prefectures of the snapshot in canonical order.
func (s *SearchService) Prefectures(ctx context.Context) ([]string, error) {
	return s.snapshot.Prefectures(), nil
}

// Meta returns the snapshot metadata.
func (s *SearchService) Meta(ctx context.Context) (models.Meta, error) {
	return s.snapshot.Meta(), nil
}

// Snapshot returns the snapshot the service searches.
func (s *SearchService) Snapshot() *models.Snapshot {
	return s.snapshot
}

func cacheKey(q models.Query, terms []string) string {
	return strings.Join([]string{
		q.Pref,
		strconv.FormatBool(q.CallAhead),
		strconv.FormatBool(q.AfterHours),
		strings.Join(terms, " "),
	}, "\x00")
}
