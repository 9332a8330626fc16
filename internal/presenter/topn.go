package presenter

import (
	"fmt"
	"strings"

	"ec-pharmacy-api/internal/models"
)

// DefaultTopN is the number of pharmacies listed in one bot reply.
const DefaultTopN = 5

const entrySeparator = "\n――――――――\n"

// TopN returns at most n results.
func TopN(results []models.Record, n int) []models.Record {
	if n <= 0 {
		n = DefaultTopN
	}
	return results[:min(n, len(results))]
}

// FormatTopN renders at most n results as text blocks for a chat reply.
// The header gives the true number of matches when the list is cut.
func FormatTopN(results []models.Record, n int) string {
	if len(results) == 0 {
		return NoResultsMessage
	}

	top := TopN(results, n)
	var b strings.Builder
	if len(top) < len(results) {
		fmt.Fprintf(&b, "%d 件見つかりました。上位 %d 件を表示します。\n\n", len(results), len(top))
	} else {
		fmt.Fprintf(&b, "%d 件見つかりました。\n\n", len(top))
	}

	blocks := make([]string, 0, len(top))
	for _, r := range top {
		blocks = append(blocks, FormatEntry(r))
	}
	b.WriteString(strings.Join(blocks, entrySeparator))
	return b.String()
}

// FormatEntry renders one pharmacy as a short block; empty fields are skipped.
func FormatEntry(r models.Record) string {
	var lines []string

	title := r.Name
	if title == "" {
		title = "（名称不明）"
	}
	if r.RequiresCallAhead() {
		title += "（事前電話：要）"
	}
	lines = append(lines, "■ "+title)

	if locality := strings.TrimSpace(r.Pref + " " + r.Muni); locality != "" {
		lines = append(lines, locality)
	}
	if r.Addr != "" {
		lines = append(lines, "住所："+r.Addr)
	}
	if r.Tel != "" {
		lines = append(lines, "TEL："+r.Tel)
	}
	if r.URL != "" {
		lines = append(lines, r.URL)
	}
	return strings.Join(lines, "\n")
}
