package models

import "strings"

// Meta describes where and when a snapshot was produced.
type Meta struct {
	AsOf        string `json:"asOf"`
	SourcePage  string `json:"sourcePage"`
	SourceXlsx  string `json:"sourceXlsx,omitempty"`
	GeneratedAt string `json:"generatedAt,omitempty"`
	Records     int    `json:"records,omitempty"`
}

// Snapshot is one immutable load of the pharmacy list. It is built once
// and shared read-only between requests.
type Snapshot struct {
	meta        Meta
	records     []Record
	prefectures []string
	fingerprint string
}

// NewSnapshot freezes records and the ordered prefecture list into a snapshot.
// The slices are copied; later changes by the caller are not visible.
func NewSnapshot(meta Meta, records []Record, prefectures []string, fingerprint string) *Snapshot {
	return &Snapshot{
		meta:        meta,
		records:     append([]Record(nil), records...),
		prefectures: append([]string(nil), prefectures...),
		fingerprint: fingerprint,
	}
}

// Meta returns the snapshot metadata.
func (s *Snapshot) Meta() Meta { return s.meta }

// Records returns the records in source order. Callers must not modify the slice.
func (s *Snapshot) Records() []Record { return s.records }

// Len returns the number of records.
func (s *Snapshot) Len() int { return len(s.records) }

// Prefectures returns the distinct prefectures present, in canonical order.
func (s *Snapshot) Prefectures() []string {
	return append([]string(nil), s.prefectures...)
}

// Fingerprint identifies the snapshot content.
func (s *Snapshot) Fingerprint() string { return s.fingerprint }

// Query describes a search over a snapshot. The zero value matches everything.
type Query struct {
	Pref       string `form:"pref" json:"pref,omitempty"`
	Text       string `form:"q" json:"q,omitempty"`
	CallAhead  bool   `form:"callAhead" json:"callAhead,omitempty"`
	AfterHours bool   `form:"afterHours" json:"afterHours,omitempty"`
}

// IsEmpty reports whether no filter is active.
func (q Query) IsEmpty() bool {
	return q.Pref == "" && !q.CallAhead && !q.AfterHours && len(strings.Fields(q.Text)) == 0
}
