package snapshot

import (
	"errors"
	"fmt"
)

// Fatal load errors. Decode wraps them with detail; check with errors.Is.
var (
	ErrMalformed   = errors.New("snapshot: malformed snapshot")
	ErrMissingData = errors.New("snapshot: data array missing")
	ErrMissingMeta = errors.New("snapshot: meta.asOf missing")
)

// IssueKind classifies a non-fatal problem with a single record.
type IssueKind string

const (
	IssueUnknownPrefecture IssueKind = "unknown_prefecture"
	IssueMissingName       IssueKind = "missing_name"
	IssueInvalidFlag       IssueKind = "invalid_flag"
	IssueInvalidID         IssueKind = "invalid_id"
)

// Issue is a problem found in one record. The record is still loaded.
type Issue struct {
	Index int
	Kind  IssueKind
	Field string
	Value string
}

func (i Issue) String() string {
	return fmt.Sprintf("record %d: %s (%s=%q)", i.Index, i.Kind, i.Field, i.Value)
}

// Report collects the issues found while loading a snapshot.
type Report struct {
	Issues []Issue
}

func (r *Report) add(index int, kind IssueKind, field, value string) {
	r.Issues = append(r.Issues, Issue{Index: index, Kind: kind, Field: field, Value: value})
}

// Count returns the number of issues of the given kind.
func (r *Report) Count(kind IssueKind) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

// OK reports whether no issue was found.
func (r *Report) OK() bool {
	return r == nil || len(r.Issues) == 0
}
