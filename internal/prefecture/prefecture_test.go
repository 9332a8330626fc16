package prefecture

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 47)
	assert.Equal(t, "北海道", all[0])
	assert.Equal(t, "東京都", all[12])
	assert.Equal(t, "沖縄県", all[46])

	all[0] = "changed"
	assert.Equal(t, "北海道", All()[0])
}

func TestShort(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"東京都", "東京"},
		{"北海道", "北海"},
		{"大阪府", "大阪"},
		{"京都府", "京都"},
		{"神奈川県", "神奈川"},
		{"県", "県"},
		{"新宿区", "新宿区"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Short(tt.input))
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "canonical order",
			input:    []string{"沖縄県", "北海道", "東京都"},
			expected: []string{"北海道", "東京都", "沖縄県"},
		},
		{
			name:     "unknown names sort last",
			input:    []string{"ふめい", "大阪府", "とうきょう", "北海道"},
			expected: []string{"北海道", "大阪府", "とうきょう", "ふめい"},
		},
		{
			name:     "empty",
			input:    []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := slices.Clone(tt.input)
			got := Sort(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, input, tt.input)
		})
	}
}

func TestSort_UnknownNamesUseJapaneseCollation(t *testing.T) {
	got := Sort([]string{"かながわ", "あいち", "沖縄県"})
	assert.Equal(t, []string{"沖縄県", "あいち", "かながわ"}, got)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		expectedPref string
		expectedRest string
	}{
		{name: "full name alone", text: "東京都", expectedPref: "東京都", expectedRest: ""},
		{name: "short name with term", text: "東京 新宿", expectedPref: "東京都", expectedRest: "新宿"},
		{name: "term before prefecture", text: "新宿　東京都", expectedPref: "東京都", expectedRest: "新宿"},
		{name: "full name glued to municipality", text: "大阪府大阪市 北区", expectedPref: "大阪府", expectedRest: "大阪市 北区"},
		{name: "hokkaido short", text: "北海 札幌", expectedPref: "北海道", expectedRest: "札幌"},
		{name: "kyoto is not tokyo", text: "京都", expectedPref: "京都府", expectedRest: ""},
		{name: "municipality with short prefix stays text", text: "大阪市", expectedPref: "", expectedRest: "大阪市"},
		{name: "no prefecture", text: " 渋谷  薬局 ", expectedPref: "", expectedRest: "渋谷 薬局"},
		{name: "empty", text: "", expectedPref: "", expectedRest: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pref, rest := Detect(tt.text)
			assert.Equal(t, tt.expectedPref, pref)
			assert.Equal(t, tt.expectedRest, rest)
		})
	}
}

func TestIsCanonicalAndRank(t *testing.T) {
	assert.True(t, IsCanonical("東京都"))
	assert.False(t, IsCanonical("東京"))
	assert.False(t, IsCanonical(" 東京都"))
	assert.Equal(t, 0, Rank("北海道"))
	assert.Equal(t, -1, Rank("東京"))
}
