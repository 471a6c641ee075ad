package usecase

import (
	"math"

	"github.com/shopspring/decimal"

	"bakusoq/internal/domain/entities"
	"bakusoq/pkg/mathutil"
)

const (
	// MinAreaTsubo is the smallest floor area the fallback prices.
	MinAreaTsubo = 10.0
	// MaxAreaTsubo caps the priced area so every amount fits in int64 yen.
	MaxAreaTsubo = 1_000_000.0

	FallbackNotes = "※この見積もりはデモ用の概算値です。詳細な現地調査により変動します。"
)

var (
	m2PerTsubo     = decimal.RequireFromString("3.3")
	minAreaM2      = decimal.NewFromInt(10)
	daysPerM2      = decimal.NewFromInt(120)
	scaffoldRatio  = decimal.RequireFromString("0.8")
	parkingRatio   = decimal.RequireFromString("0.08")
	concreteRatio  = decimal.RequireFromString("0.08")
	woodRatio      = decimal.RequireFromString("0.02")
	mixedRatio     = decimal.RequireFromString("0.015")
	woodTonne      = decimal.RequireFromString("0.8")
	two            = decimal.NewFromInt(2)
	three          = decimal.NewFromInt(3)
	minScaffoldM2  = decimal.NewFromInt(20)
	minExteriorQty = decimal.NewFromInt(10)
	one            = decimal.NewFromInt(1)
)

// Demolition unit price per m² by structure.
var baseUnitPrices = map[entities.Structure]int64{
	entities.StructureWood:  5000,
	entities.StructureS:     6500,
	entities.StructureRC:    8000,
	entities.StructureSRC:   9000,
	entities.StructureOther: 5500,
}

// BaseUnitPrice returns the main demolition price per m². Unknown structures
// are priced as OTHER.
func BaseUnitPrice(structure entities.Structure) int64 {
	if !structure.Valid() {
		structure = entities.StructureOther
	}
	return baseUnitPrices[structure.Canonical()]
}

// FallbackAreaM2 converts tsubo to m², clamping the input to
// [MinAreaTsubo, MaxAreaTsubo]. Non-finite input is treated as the floor.
func FallbackAreaM2(areaTsubo float64) decimal.Decimal {
	switch {
	case math.IsNaN(areaTsubo) || math.IsInf(areaTsubo, 0) || areaTsubo < MinAreaTsubo:
		areaTsubo = MinAreaTsubo
	case areaTsubo > MaxAreaTsubo:
		areaTsubo = MaxAreaTsubo
	}
	return decimal.Max(minAreaM2, decimal.NewFromFloat(areaTsubo).Mul(m2PerTsubo))
}

// ComputeFallbackEstimate prices a demolition from floor area and structure
// with fixed unit prices. It is deterministic and never fails; areas outside
// [MinAreaTsubo, MaxAreaTsubo] are priced at the nearest bound.
func ComputeFallbackEstimate(areaTsubo float64, structure entities.Structure) entities.EstimateResult {
	if !structure.Valid() {
		structure = entities.StructureOther
	}
	structure = structure.Canonical()
	areaM2 := FallbackAreaM2(areaTsubo)
	mainUnit := BaseUnitPrice(structure)

	items := make([]entities.LineItem, 0, 18)
	add := func(category, name, unit string, qty decimal.Decimal, unitPrice int64) {
		items = append(items, entities.NewLineItem(category, name, unit, qty.InexactFloat64(), unitPrice))
	}

	add("共通仮設工事", "交通誘導員", "式", one, 20000)
	add("共通仮設工事", "アスベスト調査費", "式", one, 30000)
	add("共通仮設工事", "諸官庁届出費", "式", one, 10000)

	scaffoldM2 := decimal.Max(minScaffoldM2, areaM2.Mul(scaffoldRatio).Round(0))
	add("直接仮設", "枠足場(600)", "m2", scaffoldM2, 850)
	add("直接仮設", "重機回送費", "式", one, 30000)

	days := decimal.Max(one, areaM2.Div(daysPerM2).Round(0))
	add("上屋解体", "オペレーター", "人/日", days, 23000)
	add("上屋解体", "作業員", "人/日", days.Mul(two), 18000)
	add("上屋解体", "0.25", "台/日", days, 6000)
	add("上屋解体", "バケット", "台/日", days, 5000)

	add("本体解体", structure.Label()+" 本体解体", "m2", areaM2.Round(0), mainUnit)

	parkingM2 := decimal.Max(minExteriorQty, areaM2.Mul(parkingRatio).Round(0))
	blockM := decimal.Max(minExteriorQty, decimal.NewFromFloat(math.Sqrt(areaM2.InexactFloat64())).Round(0))
	add("外構工事", "駐車場土間", "m2", parkingM2, 500)
	add("外構工事", "ブロック塀", "m", blockM, 30000)

	concrete := areaM2.Mul(concreteRatio).Round(mathutil.QuantityPlaces)
	wood := areaM2.Mul(woodRatio).Round(mathutil.QuantityPlaces)
	mixed := areaM2.Mul(mixedRatio).Round(mathutil.QuantityPlaces)
	add("産業廃棄物(処分費)", "コンクリートガラ（基礎）", "m3", concrete, 6000)
	add("産業廃棄物(処分費)", "木くず", "m3", wood, 8000)
	add("産業廃棄物(処分費)", "混合廃棄物", "m3", mixed, 25000)

	add("産業廃棄物(運搬費)", "コンクリートガラ（合算）", "t", concrete.Mul(two).Div(three).Round(mathutil.QuantityPlaces), 2000)
	add("産業廃棄物(運搬費)", "木くず（合算）", "t", wood.Mul(woodTonne).Round(mathutil.QuantityPlaces), 3500)

	add("諸経費", "現場管理費・事務費", "式", one, 100000)

	return entities.NewEstimateResult(items, FallbackNotes)
}
