package interfaces

import (
	"errors"

	"bakusoq/internal/domain/entities"
)

// ErrRendererUnavailable is returned by a renderer that lacks a resource it
// needs at runtime (a font, a template).
var ErrRendererUnavailable = errors.New("renderer unavailable")

// IEstimateRenderer renders an estimate as a downloadable document.
type IEstimateRenderer interface {
	Render(e entities.Estimate) ([]byte, error)
	ContentType() string
	Extension() string
}
