package usecase

import (
	"math"
	"reflect"
	"testing"

	"bakusoq/internal/domain/entities"
	"bakusoq/pkg/mathutil"
)

func findItem(t *testing.T, res entities.EstimateResult, category, name string) entities.LineItem {
	t.Helper()
	for _, it := range res.Items {
		if it.Category == category && it.Name == name {
			return it
		}
	}
	t.Fatalf("item %s/%s not found", category, name)
	return entities.LineItem{}
}

func assertEstimateInvariants(t *testing.T, res entities.EstimateResult) {
	t.Helper()
	var sum int64
	for _, it := range res.Items {
		if it.Total != mathutil.LineTotal(it.Quantity, it.UnitPrice) {
			t.Fatalf("item total mismatch: %+v", it)
		}
		if it.Quantity < 0 || it.UnitPrice < 0 {
			t.Fatalf("negative item: %+v", it)
		}
		sum += it.Total
	}
	if res.SubTotal != sum {
		t.Fatalf("subtotal %d != sum of items %d", res.SubTotal, sum)
	}
	if res.Tax != int64(math.Round(float64(res.SubTotal)*0.10)) {
		t.Fatalf("unexpected tax %d for subtotal %d", res.Tax, res.SubTotal)
	}
	if res.Total != res.SubTotal+res.Tax {
		t.Fatalf("total %d != subtotal %d + tax %d", res.Total, res.SubTotal, res.Tax)
	}
}

func TestComputeFallbackEstimate_Wood30(t *testing.T) {
	res := ComputeFallbackEstimate(30, entities.StructureWood)

	assertEstimateInvariants(t, res)

	if got := FallbackAreaM2(30); got.String() != "99" {
		t.Fatalf("expected 99 m2, got %s", got)
	}

	main := findItem(t, res, "本体解体", "木造 本体解体")
	if main.Quantity != 99 || main.UnitPrice != 5000 || main.Total != 495000 {
		t.Fatalf("unexpected main item: %+v", main)
	}

	scaffold := findItem(t, res, "直接仮設", "枠足場(600)")
	if scaffold.Quantity != 79 || scaffold.Total != 67150 {
		t.Fatalf("unexpected scaffold: %+v", scaffold)
	}

	operator := findItem(t, res, "上屋解体", "オペレーター")
	if operator.Quantity != 1 {
		t.Fatalf("expected 1 day, got %+v", operator)
	}
	workers := findItem(t, res, "上屋解体", "作業員")
	if workers.Quantity != 2 || workers.Total != 36000 {
		t.Fatalf("unexpected workers: %+v", workers)
	}

	if got := findItem(t, res, "外構工事", "駐車場土間"); got.Quantity != 10 || got.Total != 5000 {
		t.Fatalf("unexpected parking: %+v", got)
	}
	if got := findItem(t, res, "外構工事", "ブロック塀"); got.Quantity != 10 || got.Total != 300000 {
		t.Fatalf("unexpected block wall: %+v", got)
	}
	if got := findItem(t, res, "産業廃棄物(処分費)", "コンクリートガラ（基礎）"); got.Quantity != 7.92 || got.Total != 47520 {
		t.Fatalf("unexpected concrete: %+v", got)
	}
	if got := findItem(t, res, "産業廃棄物(処分費)", "混合廃棄物"); got.Quantity != 1.49 || got.Total != 37250 {
		t.Fatalf("unexpected mixed waste: %+v", got)
	}
	if got := findItem(t, res, "産業廃棄物(運搬費)", "コンクリートガラ（合算）"); got.Quantity != 5.28 || got.Total != 10560 {
		t.Fatalf("unexpected concrete transport: %+v", got)
	}
	if got := findItem(t, res, "産業廃棄物(運搬費)", "木くず（合算）"); got.Quantity != 1.58 || got.Total != 5530 {
		t.Fatalf("unexpected wood transport: %+v", got)
	}

	if len(res.Items) != 18 {
		t.Fatalf("expected 18 items, got %d", len(res.Items))
	}
	if res.SubTotal != 1243850 || res.Tax != 124385 || res.Total != 1368235 {
		t.Fatalf("unexpected totals: sub=%d tax=%d total=%d", res.SubTotal, res.Tax, res.Total)
	}
	if res.Notes != FallbackNotes {
		t.Fatalf("unexpected notes %q", res.Notes)
	}
}

func TestComputeFallbackEstimate_TaxRoundsHalfUp(t *testing.T) {
	res := ComputeFallbackEstimate(10, entities.StructureWood)
	assertEstimateInvariants(t, res)
	if res.SubTotal != 791095 || res.Tax != 79110 || res.Total != 870205 {
		t.Fatalf("unexpected totals: sub=%d tax=%d total=%d", res.SubTotal, res.Tax, res.Total)
	}
}

func TestComputeFallbackEstimate_Deterministic(t *testing.T) {
	a := ComputeFallbackEstimate(47, entities.StructureRC)
	b := ComputeFallbackEstimate(47, entities.StructureRC)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical results")
	}
}

func TestComputeFallbackEstimate_AreaFloor(t *testing.T) {
	floor := ComputeFallbackEstimate(10, entities.StructureWood)
	for _, area := range []float64{5, 0, -3, math.NaN(), math.Inf(1)} {
		got := ComputeFallbackEstimate(area, entities.StructureWood)
		if !reflect.DeepEqual(got, floor) {
			t.Fatalf("area %v: expected result identical to the 10 tsubo floor", area)
		}
	}
	if got := FallbackAreaM2(5).String(); got != "33" {
		t.Fatalf("expected 33 m2, got %s", got)
	}
	main := findItem(t, floor, "本体解体", "木造 本体解体")
	if main.Quantity != 33 {
		t.Fatalf("expected 33 m2 main item, got %+v", main)
	}
}

func TestComputeFallbackEstimate_AreaCeiling(t *testing.T) {
	ceiling := ComputeFallbackEstimate(MaxAreaTsubo, entities.StructureSRC)
	assertEstimateInvariants(t, ceiling)
	if ceiling.Total <= 0 {
		t.Fatalf("expected a positive total at the ceiling, got %d", ceiling.Total)
	}

	for _, area := range []float64{MaxAreaTsubo + 1, 1e15, math.MaxFloat64} {
		got := ComputeFallbackEstimate(area, entities.StructureSRC)
		if !reflect.DeepEqual(got, ceiling) {
			t.Fatalf("area %v: expected result identical to the ceiling", area)
		}
	}
	if got := FallbackAreaM2(1e15).String(); got != "3300000" {
		t.Fatalf("expected 3300000 m2, got %s", got)
	}
}

func TestComputeFallbackEstimate_Monotonic(t *testing.T) {
	for _, s := range []entities.Structure{entities.StructureWood, entities.StructureS, entities.StructureRC, entities.StructureSRC, entities.StructureOther} {
		prev := ComputeFallbackEstimate(10, s)
		prevMain := findItem(t, prev, "本体解体", s.Label()+" 本体解体")
		for area := 10.5; area <= 300; area += 0.5 {
			cur := ComputeFallbackEstimate(area, s)
			assertEstimateInvariants(t, cur)
			curMain := findItem(t, cur, "本体解体", s.Label()+" 本体解体")
			if curMain.Total < prevMain.Total {
				t.Fatalf("%s: main item decreased at %v tsubo", s, area)
			}
			if cur.Total < prev.Total {
				t.Fatalf("%s: total decreased at %v tsubo", s, area)
			}
			prev, prevMain = cur, curMain
		}
	}
}

func TestComputeFallbackEstimate_StructureOrdering(t *testing.T) {
	for _, area := range []float64{10, 30, 55.5, 100} {
		wood := ComputeFallbackEstimate(area, entities.StructureWood).Total
		steel := ComputeFallbackEstimate(area, entities.StructureS).Total
		rc := ComputeFallbackEstimate(area, entities.StructureRC).Total
		src := ComputeFallbackEstimate(area, entities.StructureSRC).Total
		if !(wood < steel && steel < rc && rc < src) {
			t.Fatalf("area %v: expected WOOD < S < RC < SRC, got %d %d %d %d", area, wood, steel, rc, src)
		}
	}
}

func TestComputeFallbackEstimate_SteelAlias(t *testing.T) {
	steel := ComputeFallbackEstimate(30, entities.StructureSteel)
	s := ComputeFallbackEstimate(30, entities.StructureS)
	if !reflect.DeepEqual(steel, s) {
		t.Fatalf("expected STEEL and S to price identically")
	}
	findItem(t, steel, "本体解体", "S造 本体解体")
}

func TestBaseUnitPrice(t *testing.T) {
	tests := map[entities.Structure]int64{
		entities.StructureWood:  5000,
		entities.StructureS:     6500,
		entities.StructureSteel: 6500,
		entities.StructureRC:    8000,
		entities.StructureSRC:   9000,
		entities.StructureOther: 5500,
		"BRICK":                 5500,
	}
	for s, want := range tests {
		if got := BaseUnitPrice(s); got != want {
			t.Errorf("BaseUnitPrice(%s) = %d, expected %d", s, got, want)
		}
	}
}

func TestComputeFallbackEstimate_UnknownStructurePricedAsOther(t *testing.T) {
	got := ComputeFallbackEstimate(30, entities.Structure("BRICK"))
	want := ComputeFallbackEstimate(30, entities.StructureOther)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected an unknown structure to price as OTHER")
	}
	findItem(t, got, "本体解体", "その他 本体解体")
}
