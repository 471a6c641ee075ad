package response

import (
	"bakusoq/internal/domain/entities"
	"bakusoq/pkg/format"
)

type PlanResponse struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ListPrice        int64  `json:"list_price"`
	Price            int64  `json:"price"`
	PriceDisplay     string `json:"price_display"`
	ListPriceDisplay string `json:"list_price_display"`
	Period           string `json:"period"`
	DiscountPercent  int    `json:"discount_percent"`
	Badge            string `json:"badge,omitempty"`
}

func FromPlans(plans []entities.PricingPlan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanResponse{
			Code:             p.Code,
			Name:             p.Name,
			Description:      p.Description,
			ListPrice:        p.ListPrice,
			Price:            p.Price,
			PriceDisplay:     format.Yen(p.Price),
			ListPriceDisplay: format.Yen(p.ListPrice),
			Period:           string(p.Period),
			DiscountPercent:  p.DiscountPercent(),
			Badge:            p.Badge,
		})
	}
	return out
}
