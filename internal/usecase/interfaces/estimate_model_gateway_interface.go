package interfaces

import (
	"context"
	"encoding/json"
)

// IEstimateModelGateway abstracts the remote generative model that drafts
// itemized estimates (e.g. Gemini).
//
// GenerateEstimate sends the prompt with the estimate response schema and
// returns the raw JSON body. The caller validates it; the gateway does not.
type IEstimateModelGateway interface {
	GenerateEstimate(ctx context.Context, prompt string) (json.RawMessage, error)
}
