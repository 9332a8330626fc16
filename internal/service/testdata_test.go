package service

import (
	"ec-pharmacy-api/internal/models"
	"ec-pharmacy-api/internal/snapshot"
)

func rec(id int64, pref, name, addr, callAhead, afterHours string) models.Record {
	return models.NewRecord(&id, map[string]string{
		"pref":       pref,
		"name":       name,
		"addr":       addr,
		"callAhead":  callAhead,
		"afterHours": afterHours,
	})
}

// fixture is three Tokyo pharmacies (two requiring a call ahead) and one in Osaka.
func fixture() []models.Record {
	return []models.Record{
		rec(1, "東京都", "新宿中央薬局", "東京都新宿区西新宿１－１", "要", "有"),
		rec(2, "東京都", "渋谷駅前薬局", "東京都渋谷区道玄坂２－２", "否", "有"),
		rec(3, "東京都", "池袋ファーマシー", "東京都豊島区南池袋３－３", "要", "無"),
		rec(4, "大阪府", "梅田薬局", "大阪府大阪市北区梅田４－４", "要", "有"),
	}
}

func fixtureSnapshot() *models.Snapshot {
	return snapshot.Build(models.Meta{AsOf: "2026-01-27", SourcePage: "https://example.jp"}, fixture(), "abc", nil)
}

func ids(records []models.Record) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, *r.ID)
	}
	return out
}
