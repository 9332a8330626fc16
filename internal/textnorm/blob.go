package textnorm

import "strings"

// BlobFields are the searchable fields, in blob order.
var BlobFields = []string{FieldPref, FieldMuni, FieldName, FieldAddr, FieldTel, FieldURL}

// BuildBlob joins the non-empty cleaned values with a space and normalizes the result.
// Callers pass values in BlobFields order.
func BuildBlob(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if c := Clean(v); c != "" {
			parts = append(parts, c)
		}
	}
	return Normalize(strings.Join(parts, " "))
}
