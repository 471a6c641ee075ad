package entities

import (
	"errors"
	"strings"
)

var ErrUnknownRoadWidth = errors.New("unknown road width")

// RoadWidth is the width category of the road in front of the site.
type RoadWidth string

const (
	RoadWidthNarrow RoadWidth = "narrow"
	RoadWidthNormal RoadWidth = "normal"
	RoadWidthWide   RoadWidth = "wide"
)

var roadWidthLabels = map[RoadWidth]string{
	RoadWidthNarrow: "狭い",
	RoadWidthNormal: "普通",
	RoadWidthWide:   "広い",
}

// ParseRoadWidth defaults an empty value to RoadWidthNormal.
func ParseRoadWidth(raw string) (RoadWidth, error) {
	v := RoadWidth(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return RoadWidthNormal, nil
	}
	if _, ok := roadWidthLabels[v]; !ok {
		return "", ErrUnknownRoadWidth
	}
	return v, nil
}

func (w RoadWidth) Label() string {
	if l, ok := roadWidthLabels[w]; ok {
		return l
	}
	return roadWidthLabels[RoadWidthNormal]
}

// AreaUnit is the unit the site form displays floor areas in.
type AreaUnit string

const (
	AreaUnitM2    AreaUnit = "m2"
	AreaUnitTsubo AreaUnit = "tsubo"
)

// MachineSpec is one heavy-equipment row of the site form (per day).
type MachineSpec struct {
	MachineType   string `json:"machine_type"`
	Attachment    string `json:"attachment"`
	Configuration string `json:"configuration"`
	Units         int    `json:"units"`
	Operators     int    `json:"operators"`
}

// SiteConditions are collected by the demo form but not priced by either
// estimate path. They are kept with the estimate for reference only.
type SiteConditions struct {
	Usage            string        `json:"usage,omitempty"`
	Floors           int           `json:"floors,omitempty"`
	HeightM          float64       `json:"height_m,omitempty"`
	BuildingAreaM2   float64       `json:"building_area_m2,omitempty"`
	TotalFloorAreaM2 float64       `json:"total_floor_area_m2,omitempty"`
	AreaUnit         AreaUnit      `json:"area_unit,omitempty"`
	Machines         []MachineSpec `json:"machines,omitempty"`
	NumAssistWorkers int           `json:"num_assist_workers,omitempty"`
	NumGasWorkers    int           `json:"num_gas_workers,omitempty"`
}

// EstimateParams are the inputs of a single estimate calculation.
type EstimateParams struct {
	AreaTsubo float64        `json:"area_tsubo"`
	Structure Structure      `json:"structure"`
	RoadWidth RoadWidth      `json:"road_width"`
	Site      SiteConditions `json:"site"`
}

// Normalize resolves the structure alias and defaults the road width.
func (p EstimateParams) Normalize() EstimateParams {
	p.Structure = p.Structure.Canonical()
	if p.RoadWidth == "" {
		p.RoadWidth = RoadWidthNormal
	}
	return p
}
