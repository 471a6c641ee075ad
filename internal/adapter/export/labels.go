package export

import (
	"strconv"

	"bakusoq/internal/domain/entities"
)

const (
	documentTitle = "御見積書"
	dateLayout    = "2006年01月02日"
)

var tableHeaders = []string{"項目", "単位", "数量", "単価", "金額"}

func sourceLabel(s entities.EstimateSource) string {
	if s == entities.EstimateSourceAI {
		return "AI試算"
	}
	return "標準単価による概算"
}

func areaLabel(tsubo float64) string {
	return strconv.FormatFloat(tsubo, 'f', -1, 64) + "坪"
}

func structureLabel(s entities.Structure) string {
	if l := s.Label(); l != "" {
		return l
	}
	return string(s)
}

// headerRows are the label/value pairs printed above the item table.
func headerRows(e entities.Estimate) [][2]string {
	rows := [][2]string{
		{"見積番号", e.ID},
	}
	if !e.CreatedAt.IsZero() {
		rows = append(rows, [2]string{"作成日", e.CreatedAt.Format(dateLayout)})
	}
	return append(rows,
		[2]string{"構造", structureLabel(e.Params.Structure)},
		[2]string{"延床面積", areaLabel(e.Params.AreaTsubo)},
		[2]string{"前面道路", e.Params.RoadWidth.Label()},
		[2]string{"算出方法", sourceLabel(e.Source)},
	)
}
