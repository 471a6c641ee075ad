package response

import (
	"time"

	"bakusoq/internal/domain/entities"
	"bakusoq/pkg/format"
)

type LineItemResponse struct {
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	UnitPrice int64   `json:"unit_price"`
	Total     int64   `json:"total"`
}

type ItemGroupResponse struct {
	Category        string             `json:"category"`
	SubTotal        int64              `json:"sub_total"`
	SubTotalDisplay string             `json:"sub_total_display"`
	Items           []LineItemResponse `json:"items"`
}

type SiteResponse struct {
	Usage            string                 `json:"usage,omitempty"`
	Floors           int                    `json:"floors,omitempty"`
	HeightM          float64                `json:"height_m,omitempty"`
	BuildingAreaM2   float64                `json:"building_area_m2,omitempty"`
	TotalFloorAreaM2 float64                `json:"total_floor_area_m2,omitempty"`
	AreaUnit         string                 `json:"area_unit,omitempty"`
	Machines         []entities.MachineSpec `json:"machines,omitempty"`
	NumAssistWorkers int                    `json:"num_assist_workers,omitempty"`
	NumGasWorkers    int                    `json:"num_gas_workers,omitempty"`
}

type ParamsResponse struct {
	AreaTsubo      float64      `json:"area_tsubo"`
	Structure      string       `json:"structure"`
	StructureLabel string       `json:"structure_label"`
	RoadWidth      string       `json:"road_width"`
	RoadWidthLabel string       `json:"road_width_label"`
	Site           SiteResponse `json:"site"`
}

type EstimateResponse struct {
	ID           string              `json:"id"`
	Source       string              `json:"source"`
	Params       ParamsResponse      `json:"params"`
	Items        []LineItemResponse  `json:"items"`
	Groups       []ItemGroupResponse `json:"groups"`
	SubTotal     int64               `json:"sub_total"`
	Tax          int64               `json:"tax"`
	Total        int64               `json:"total"`
	TotalDisplay string              `json:"total_display"`
	Notes        string              `json:"notes"`
	CreatedAt    time.Time           `json:"created_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.Result.Items))
	for _, it := range e.Result.Items {
		items = append(items, fromLineItem(it))
	}

	groups := make([]ItemGroupResponse, 0)
	for _, g := range e.Result.Groups() {
		gi := make([]LineItemResponse, 0, len(g.Items))
		for _, it := range g.Items {
			gi = append(gi, fromLineItem(it))
		}
		groups = append(groups, ItemGroupResponse{
			Category:        g.Category,
			SubTotal:        g.SubTotal,
			SubTotalDisplay: format.Yen(g.SubTotal),
			Items:           gi,
		})
	}

	return EstimateResponse{
		ID:           e.ID,
		Source:       string(e.Source),
		Params:       FromParams(e.Params),
		Items:        items,
		Groups:       groups,
		SubTotal:     e.Result.SubTotal,
		Tax:          e.Result.Tax,
		Total:        e.Result.Total,
		TotalDisplay: format.Yen(e.Result.Total),
		Notes:        e.Result.Notes,
		CreatedAt:    e.CreatedAt,
	}
}

func FromParams(p entities.EstimateParams) ParamsResponse {
	return ParamsResponse{
		AreaTsubo:      p.AreaTsubo,
		Structure:      string(p.Structure),
		StructureLabel: p.Structure.Label(),
		RoadWidth:      string(p.RoadWidth),
		RoadWidthLabel: p.RoadWidth.Label(),
		Site: SiteResponse{
			Usage:            p.Site.Usage,
			Floors:           p.Site.Floors,
			HeightM:          p.Site.HeightM,
			BuildingAreaM2:   p.Site.BuildingAreaM2,
			TotalFloorAreaM2: p.Site.TotalFloorAreaM2,
			AreaUnit:         string(p.Site.AreaUnit),
			Machines:         p.Site.Machines,
			NumAssistWorkers: p.Site.NumAssistWorkers,
			NumGasWorkers:    p.Site.NumGasWorkers,
		},
	}
}

func fromLineItem(it entities.LineItem) LineItemResponse {
	return LineItemResponse(it)
}
