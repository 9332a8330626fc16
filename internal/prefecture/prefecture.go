// Package prefecture holds the canonical list of Japan's 47 prefectures
// and the ordering and detection rules built on it.
package prefecture

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// canonical is the JIS X 0401 order, north to south.
var canonical = [...]string{
	"北海道",
	"青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県",
	"岐阜県", "静岡県", "愛知県", "三重県",
	"滋賀県", "京都府", "大阪府", "兵庫県", "奈良県", "和歌山県",
	"鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県",
	"福岡県", "佐賀県", "長崎県", "熊本県", "大分県", "宮崎県", "鹿児島県",
	"沖縄県",
}

// Count is the number of canonical prefectures.
const Count = len(canonical)

var (
	rank    = make(map[string]int, Count)
	byShort = make(map[string]string, Count)
)

func init() {
	for i, name := range canonical {
		rank[name] = i
		byShort[Short(name)] = name
	}
}

// All returns the canonical prefecture names in order.
func All() []string {
	return slices.Clone(canonical[:])
}

// IsCanonical reports whether name is exactly one of the 47 canonical names.
func IsCanonical(name string) bool {
	_, ok := rank[name]
	return ok
}

// Rank returns the position of name in the canonical order, or -1.
func Rank(name string) int {
	if r, ok := rank[name]; ok {
		return r
	}
	return -1
}

// Short strips the trailing administrative suffix (都, 道, 府 or 県).
// 北海道 becomes 北海.
func Short(name string) string {
	for _, suffix := range []string{"都", "道", "府", "県"} {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok && trimmed != "" {
			return trimmed
		}
	}
	return name
}

// Sort returns names ordered by canonical rank. Unknown names follow every
// canonical one and are ordered by Japanese collation among themselves.
// The input slice is not modified.
func Sort(names []string) []string {
	out := slices.Clone(names)
	// Collators keep internal buffers and are not safe for concurrent use.
	col := collate.New(language.Japanese)
	slices.SortStableFunc(out, func(a, b string) int {
		ra, rb := Rank(a), Rank(b)
		switch {
		case ra >= 0 && rb >= 0:
			return ra - rb
		case ra >= 0:
			return -1
		case rb >= 0:
			return 1
		default:
			return col.CompareString(a, b)
		}
	})
	return out
}

// Detect looks for a prefecture in free text and returns it together with
// the remaining text. A token matches when it equals a canonical name, starts
// with a canonical name (the remainder stays in the text), or equals a short
// name such as 東京. The first matching token wins.
func Detect(text string) (pref, rest string) {
	tokens := strings.Fields(strings.ReplaceAll(text, "　", " "))
	for i, tok := range tokens {
		name, remainder, ok := matchToken(tok)
		if !ok {
			continue
		}
		others := slices.Concat(tokens[:i:i], []string{remainder}, tokens[i+1:])
		return name, strings.Join(strings.Fields(strings.Join(others, " ")), " ")
	}
	return "", strings.Join(tokens, " ")
}

func matchToken(tok string) (name, remainder string, ok bool) {
	if IsCanonical(tok) {
		return tok, "", true
	}
	if full, found := byShort[tok]; found {
		return full, "", true
	}
	for _, name := range canonical {
		if after, found := strings.CutPrefix(tok, name); found {
			return name, after, true
		}
	}
	return "", "", false
}
