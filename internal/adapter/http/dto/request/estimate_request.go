package request

import (
	"errors"
	"strings"

	"bakusoq/internal/domain/entities"
)

var ErrUnknownAreaUnit = errors.New("unknown area unit")

type MachineRequest struct {
	MachineType   string `json:"machine_type"`
	Attachment    string `json:"attachment"`
	Configuration string `json:"configuration"`
	Units         int    `json:"units" binding:"gte=0"`
	Operators     int    `json:"operators" binding:"gte=0"`
}

// SiteRequest carries the optional site form. None of it is priced.
type SiteRequest struct {
	Usage            string           `json:"usage"`
	Floors           int              `json:"floors" binding:"gte=0"`
	HeightM          float64          `json:"height_m" binding:"gte=0"`
	BuildingAreaM2   float64          `json:"building_area_m2" binding:"gte=0"`
	TotalFloorAreaM2 float64          `json:"total_floor_area_m2" binding:"gte=0"`
	AreaUnit         string           `json:"area_unit"`
	Machines         []MachineRequest `json:"machines" binding:"omitempty,dive"`
	NumAssistWorkers int              `json:"num_assist_workers" binding:"gte=0"`
	NumGasWorkers    int              `json:"num_gas_workers" binding:"gte=0"`
}

// EstimateRequest is the body of POST /v1/estimates and of a demo calculate.
type EstimateRequest struct {
	AreaTsubo float64      `json:"area_tsubo" binding:"required,gt=0,lte=1000" example:"30"`
	Structure string       `json:"structure" binding:"required" example:"WOOD"`
	RoadWidth string       `json:"road_width" example:"normal"`
	Site      *SiteRequest `json:"site"`
}

// ToParams resolves the structure and road width codes. Japanese labels
// (木造, ＲＣ造) are accepted for the structure.
func (r EstimateRequest) ToParams() (entities.EstimateParams, error) {
	structure, err := entities.ParseStructure(r.Structure)
	if err != nil {
		return entities.EstimateParams{}, err
	}
	road, err := entities.ParseRoadWidth(r.RoadWidth)
	if err != nil {
		return entities.EstimateParams{}, err
	}

	params := entities.EstimateParams{
		AreaTsubo: r.AreaTsubo,
		Structure: structure,
		RoadWidth: road,
	}
	if r.Site != nil {
		site, err := r.Site.toSite()
		if err != nil {
			return entities.EstimateParams{}, err
		}
		params.Site = site
	}
	return params.Normalize(), nil
}

func (s SiteRequest) toSite() (entities.SiteConditions, error) {
	unit := entities.AreaUnit(strings.ToLower(strings.TrimSpace(s.AreaUnit)))
	switch unit {
	case "", entities.AreaUnitM2, entities.AreaUnitTsubo:
	default:
		return entities.SiteConditions{}, ErrUnknownAreaUnit
	}

	var machines []entities.MachineSpec
	for _, m := range s.Machines {
		machines = append(machines, entities.MachineSpec(m))
	}

	return entities.SiteConditions{
		Usage:            strings.TrimSpace(s.Usage),
		Floors:           s.Floors,
		HeightM:          s.HeightM,
		BuildingAreaM2:   s.BuildingAreaM2,
		TotalFloorAreaM2: s.TotalFloorAreaM2,
		AreaUnit:         unit,
		Machines:         machines,
		NumAssistWorkers: s.NumAssistWorkers,
		NumGasWorkers:    s.NumGasWorkers,
	}, nil
}
