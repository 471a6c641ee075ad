package response

import (
	"time"

	"bakusoq/internal/domain/entities"
)

type DemoSessionResponse struct {
	ID             string            `json:"id"`
	Step           string            `json:"step"`
	Params         *ParamsResponse   `json:"params,omitempty"`
	Estimate       *EstimateResponse `json:"estimate,omitempty"`
	StartedAt      *time.Time        `json:"started_at,omitempty"`
	LastDurationMs int64             `json:"last_duration_ms"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func FromDemoSession(s entities.DemoSession) DemoSessionResponse {
	res := DemoSessionResponse{
		ID:             s.ID,
		Step:           string(s.Step),
		LastDurationMs: s.LastDuration.Milliseconds(),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.Params != nil {
		p := FromParams(*s.Params)
		res.Params = &p
	}
	if s.Estimate != nil {
		e := FromEstimate(*s.Estimate)
		res.Estimate = &e
	}
	if !s.StartedAt.IsZero() {
		started := s.StartedAt
		res.StartedAt = &started
	}
	return res
}
