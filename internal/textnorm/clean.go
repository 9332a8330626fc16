package textnorm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// missingSentinel is what the spreadsheet conversion writes for an empty numeric cell.
const missingSentinel = "nan"

// Record text fields, in the order they appear in data.json.
const (
	FieldPref          = "pref"
	FieldMuni          = "muni"
	FieldName          = "name"
	FieldAddr          = "addr"
	FieldTel           = "tel"
	FieldURL           = "url"
	FieldHours         = "hours"
	FieldAfterHours    = "afterHours"
	FieldAfterHoursTel = "afterHoursTel"
	FieldPrivacy       = "privacy"
	FieldCallAhead     = "callAhead"
	FieldNotes         = "notes"
)

// TextFields lists every known record field that Clean applies to.
var TextFields = []string{
	FieldPref, FieldMuni, FieldName, FieldAddr, FieldTel, FieldURL,
	FieldHours, FieldAfterHours, FieldAfterHoursTel, FieldPrivacy,
	FieldCallAhead, FieldNotes,
}

// Clean trims a raw field value and maps the "nan" sentinel to "".
// v may be nil or any scalar produced by encoding/json.
func Clean(v any) string {
	var s string
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		s = val
	case json.Number:
		s = val.String()
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(val)
	case fmt.Stringer:
		s = val.String()
	default:
		s = fmt.Sprint(val)
	}

	s = strings.TrimSpace(strings.ReplaceAll(s, "　", " "))
	if strings.EqualFold(s, missingSentinel) {
		return ""
	}
	return s
}

// CleanFields applies Clean to every known text field present in raw.
// Fields missing from raw stay missing from the result.
func CleanFields(raw map[string]any) map[string]string {
	out := make(map[string]string, len(TextFields))
	for _, field := range TextFields {
		v, ok := raw[field]
		if !ok {
			continue
		}
		out[field] = Clean(v)
	}
	return out
}
