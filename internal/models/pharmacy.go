package models

import "ec-pharmacy-api/internal/textnorm"

// Flag values used by the source list.
const (
	CallAheadRequired   = "要"
	AfterHoursAvailable = "有"
)

// Record represents a single pharmacy authorized to sell emergency contraception, with its cleaned contact details and service flags.
type Record struct {
	ID            *int64 `json:"id,omitempty"`
	Pref          string `json:"pref,omitempty"`
	Muni          string `json:"muni,omitempty"`
	Name          string `json:"name,omitempty"`
	Addr          string `json:"addr,omitempty"`
	Tel           string `json:"tel,omitempty"`
	URL           string `json:"url,omitempty"`
	Hours         string `json:"hours,omitempty"`
	AfterHours    string `json:"afterHours,omitempty"`
	AfterHoursTel string `json:"afterHoursTel,omitempty"`
	Privacy       string `json:"privacy,omitempty"`
	CallAhead     string `json:"callAhead,omitempty"`
	Notes         string `json:"notes,omitempty"`

	// Blob is the normalized search text. It is derived, never decoded.
	Blob string `json:"-"`
}

// NewRecord builds a record from cleaned field values and computes its blob.
func NewRecord(id *int64, fields map[string]string) Record {
	r := Record{
		ID:            id,
		Pref:          fields[textnorm.FieldPref],
		Muni:          fields[textnorm.FieldMuni],
		Name:          fields[textnorm.FieldName],
		Addr:          fields[textnorm.FieldAddr],
		Tel:           fields[textnorm.FieldTel],
		URL:           fields[textnorm.FieldURL],
		Hours:         fields[textnorm.FieldHours],
		AfterHours:    fields[textnorm.FieldAfterHours],
		AfterHoursTel: fields[textnorm.FieldAfterHoursTel],
		Privacy:       fields[textnorm.FieldPrivacy],
		CallAhead:     fields[textnorm.FieldCallAhead],
		Notes:         fields[textnorm.FieldNotes],
	}
	r.Blob = r.BuildBlob()
	return r
}

// BuildBlob computes the search blob from pref, muni, name, addr, tel and url.
func (r Record) BuildBlob() string {
	return textnorm.BuildBlob(r.Pref, r.Muni, r.Name, r.Addr, r.Tel, r.URL)
}

// RequiresCallAhead reports whether the pharmacy asks for a phone call before visiting.
func (r Record) RequiresCallAhead() bool {
	return r.CallAhead == CallAheadRequired
}

// HasAfterHours reports whether the pharmacy offers after-hours service.
func (r Record) HasAfterHours() bool {
	return r.AfterHours == AfterHoursAvailable
}
