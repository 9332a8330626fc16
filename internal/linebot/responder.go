// Package linebot answers LINE text messages with pharmacy search results.
package linebot

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"ec-pharmacy-api/internal/models"
	"ec-pharmacy-api/internal/prefecture"
	"ec-pharmacy-api/internal/presenter"
)

var helpTokens = []string{"help", "使い方", "ヘルプ", "？", "?"}

// Searcher runs a query against the loaded snapshot.
type Searcher interface {
	Search(context.Context, models.Query) ([]models.Record, error)
}

// Responder turns one message text into one reply text.
type Responder struct {
	searcher   Searcher
	maxResults int
	help       string
}

// NewResponder creates a responder listing at most maxResults pharmacies per reply.
func NewResponder(searcher Searcher, meta models.Meta, maxResults int) *Responder {
	if maxResults <= 0 {
		maxResults = presenter.DefaultTopN
	}
	return &Responder{
		searcher:   searcher,
		maxResults: maxResults,
		help:       helpMessage(meta, maxResults),
	}
}

// IsHelp reports whether text asks for usage instructions.
func IsHelp(text string) bool {
	return slices.Contains(helpTokens, strings.ToLower(strings.TrimSpace(text)))
}

// Reply searches for the pharmacies described by text. A prefecture
// (東京都 or 東京) becomes an exact filter and every other word must match.
func (r *Responder) Reply(ctx context.Context, text string) (string, error) {
	if IsHelp(text) {
		return r.help, nil
	}

	pref, rest := prefecture.Detect(text)
	if pref == "" && rest == "" {
		return r.help, nil
	}

	results, err := r.searcher.Search(ctx, models.Query{Pref: pref, Text: rest})
	if err != nil {
		return "", fmt.Errorf("linebot: search failed: %w", err)
	}
	return presenter.FormatTopN(results, r.maxResults), nil
}

func helpMessage(meta models.Meta, maxResults int) string {
	var b strings.Builder
	b.WriteString("緊急避妊薬を販売している薬局を検索します。\n\n")
	b.WriteString("使い方：都道府県や市区町村、薬局名を送ってください。\n")
	b.WriteString("例）東京都 新宿区\n例）大阪 梅田\n例）札幌市 中央区\n\n")
	fmt.Fprintf(&b, "一度に最大 %d 件を表示します。多い場合は言葉を追加して絞り込んでください。", maxResults)
	if meta.AsOf != "" {
		fmt.Fprintf(&b, "\n\nデータ時点：%s", meta.AsOf)
	}
	if meta.SourcePage != "" {
		fmt.Fprintf(&b, "\n出典：%s", meta.SourcePage)
	}
	return b.String()
}
