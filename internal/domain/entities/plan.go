package entities

import "math"

// BillingPeriod is how often a plan is charged.
type BillingPeriod string

const (
	BillingPeriodOnce    BillingPeriod = "once"
	BillingPeriodMonthly BillingPeriod = "monthly"
)

// PricingPlan is one entry of the published price list. Amounts are yen,
// tax excluded.
type PricingPlan struct {
	Code        string
	Name        string
	Description string
	ListPrice   int64
	Price       int64
	Period      BillingPeriod
	Badge       string
}

// DiscountPercent is the rounded discount of Price against ListPrice.
func (p PricingPlan) DiscountPercent() int {
	if p.ListPrice <= 0 || p.Price >= p.ListPrice {
		return 0
	}
	return int(math.Round(float64(p.ListPrice-p.Price) * 100 / float64(p.ListPrice)))
}

// PricingPlans returns the current price list.
func PricingPlans() []PricingPlan {
	return []PricingPlan{
		{
			Code:        "initial_setup",
			Name:        "初期マスタ設定費用",
			Description: "お客様の業務規模や必要なカスタマイズ内容により変動する場合があります。",
			ListPrice:   200000,
			Price:       200000,
			Period:      BillingPeriodOnce,
		},
		{
			Code:        "monthly",
			Name:        "月額利用料",
			Description: "ユーザー数無制限・ベータ期間中は特別価格が継続",
			ListPrice:   50000,
			Price:       30000,
			Period:      BillingPeriodMonthly,
			Badge:       "ベータ版提供中",
		},
	}
}
