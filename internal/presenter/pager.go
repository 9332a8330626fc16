// Package presenter renders bounded views of search results.
package presenter

import (
	"fmt"

	"ec-pharmacy-api/internal/models"
)

// Page sizes used by the search page.
const (
	DefaultPageSize    = 200
	DefaultPreviewSize = 50
)

// NoResultsMessage is shown when a query matches nothing.
const NoResultsMessage = "該当する薬局が見つかりませんでした。キーワードを減らすか、都道府県・条件を変えて検索してください。"

// Pager holds one filtered result set and the number of results currently shown.
// ShowMore extends the view without filtering again.
type Pager struct {
	results  []models.Record
	pageSize int
	shown    int
}

// NewPager shows the first initialCap results and grows by pageSize.
// Non-positive sizes fall back to the defaults.
func NewPager(results []models.Record, pageSize, initialCap int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if initialCap <= 0 {
		initialCap = pageSize
	}
	return &Pager{
		results:  results,
		pageSize: pageSize,
		shown:    min(initialCap, len(results)),
	}
}

// NewPagerForQuery picks the first cap from q: the short preview when no
// filter is active, a full page otherwise.
func NewPagerForQuery(results []models.Record, q models.Query, pageSize, previewSize int) *Pager {
	if previewSize <= 0 {
		previewSize = DefaultPreviewSize
	}
	initial := pageSize
	if q.IsEmpty() {
		initial = previewSize
	}
	return NewPager(results, pageSize, initial)
}

// WithLimit sets the number of shown results directly, clamped to [0, Total].
// It lets a stateless caller resume at a cap it already rendered.
func (p *Pager) WithLimit(limit int) *Pager {
	p.shown = max(0, min(limit, len(p.results)))
	return p
}

// Total returns the number of matching results.
func (p *Pager) Total() int { return len(p.results) }

// Shown returns the number of results currently visible.
func (p *Pager) Shown() int { return p.shown }

// PageSize returns the growth step of ShowMore.
func (p *Pager) PageSize() int { return p.pageSize }

// HasMore reports whether ShowMore would reveal more results.
func (p *Pager) HasMore() bool { return p.shown < len(p.results) }

// ShowMore extends the view by one page, up to the total.
func (p *Pager) ShowMore() {
	p.shown = min(p.shown+p.pageSize, len(p.results))
}

// Visible returns the results currently shown.
func (p *Pager) Visible() []models.Record {
	return p.results[:p.shown]
}

// Status describes the result count, e.g. "450 件ヒット（200 件表示）".
func (p *Pager) Status() string {
	total := len(p.results)
	switch {
	case total == 0:
		return NoResultsMessage
	case p.shown < total:
		return fmt.Sprintf("%d 件ヒット（%d 件表示）", total, p.shown)
	default:
		return fmt.Sprintf("%d 件ヒット", total)
	}
}
