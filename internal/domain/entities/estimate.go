package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"bakusoq/pkg/mathutil"
)

// TaxRate is the consumption tax applied on the estimate subtotal.
var TaxRate = decimal.RequireFromString("0.10")

// EstimateSource tells which path produced an estimate.
type EstimateSource string

const (
	EstimateSourceAI       EstimateSource = "ai"
	EstimateSourceFallback EstimateSource = "fallback"
)

// LineItem is one billable row of an estimate.
//
// Invariant: Total == round(Quantity * UnitPrice). Build items with
// NewLineItem to keep it.
type LineItem struct {
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	UnitPrice int64   `json:"unit_price"`
	Total     int64   `json:"total"`
}

func NewLineItem(category, name, unit string, quantity float64, unitPrice int64) LineItem {
	return LineItem{
		Category:  category,
		Name:      name,
		Unit:      unit,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     mathutil.LineTotal(quantity, unitPrice),
	}
}

// ItemGroup is the set of line items sharing a category.
type ItemGroup struct {
	Category string
	Items    []LineItem
	SubTotal int64
}

// EstimateResult is an itemized estimate with tax-exclusive line totals.
//
// Invariants:
//   - SubTotal == sum of item totals
//   - Tax == round(SubTotal * TaxRate)
//   - Total == SubTotal + Tax
type EstimateResult struct {
	Items    []LineItem `json:"items"`
	SubTotal int64      `json:"sub_total"`
	Tax      int64      `json:"tax"`
	Total    int64      `json:"total"`
	Notes    string     `json:"notes"`
}

// NewEstimateResult recomputes every item total and the aggregates, so a
// result never carries totals it did not derive itself.
func NewEstimateResult(items []LineItem, notes string) EstimateResult {
	out := make([]LineItem, len(items))
	var subTotal int64
	for i, it := range items {
		it.Total = mathutil.LineTotal(it.Quantity, it.UnitPrice)
		out[i] = it
		subTotal += it.Total
	}
	tax := mathutil.Yen(decimal.NewFromInt(subTotal).Mul(TaxRate))
	return EstimateResult{
		Items:    out,
		SubTotal: subTotal,
		Tax:      tax,
		Total:    subTotal + tax,
		Notes:    notes,
	}
}

// Groups returns the items grouped by category in first-seen order.
func (r EstimateResult) Groups() []ItemGroup {
	index := make(map[string]int)
	var groups []ItemGroup
	for _, it := range r.Items {
		i, ok := index[it.Category]
		if !ok {
			i = len(groups)
			index[it.Category] = i
			groups = append(groups, ItemGroup{Category: it.Category})
		}
		groups[i].Items = append(groups[i].Items, it)
		groups[i].SubTotal += it.Total
	}
	return groups
}

// Estimate is a produced estimate together with the inputs it was computed
// from. It is what the estimate log stores.
type Estimate struct {
	ID        string         `json:"id"`
	Params    EstimateParams `json:"params"`
	Result    EstimateResult `json:"result"`
	Source    EstimateSource `json:"source"`
	CreatedAt time.Time      `json:"created_at"`
}
