package interfaces

import (
	"context"

	"bakusoq/internal/domain/entities"
)

// IEstimateRepository abstracts the estimate log.
//
// The log is an operator record of produced estimates. It must be able to:
//   - store an estimate once, keyed by its id
//   - load it back for display or export
//
// GetByID returns a zero Estimate and a nil error when the id is unknown.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
}
