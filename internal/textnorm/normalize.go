// Package textnorm canonicalizes pharmacy record text for substring search.
package textnorm

import (
	"strings"

	"golang.org/x/text/width"
)

// hyphens are the dash variants found in the source spreadsheet addresses and phone numbers.
// ｰ is listed as well although width.Fold widens it to ー first.
var hyphens = strings.NewReplacer(
	"－", "-", // fullwidth hyphen-minus
	"ー", "-", // katakana prolonged sound mark
	"ｰ", "-",
	"―", "-", // horizontal bar
	"−", "-", // minus sign
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"﹣", "-",
)

// Normalize lowercases s, folds full-width ASCII to half-width, maps every
// hyphen variant to "-" and collapses whitespace runs into single spaces.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = width.Fold.String(s)
	s = hyphens.Replace(s)
	s = strings.ToLower(s)
	// Fields splits on unicode.IsSpace, which includes U+3000.
	return strings.Join(strings.Fields(s), " ")
}

// Terms normalizes a free-text query and splits it into non-empty search terms.
func Terms(query string) []string {
	return strings.Fields(Normalize(query))
}
