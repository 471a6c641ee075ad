package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrGeminiGatewayNotConfigured = errors.New("gemini gateway not configured")

// contentGenerator is the part of *genai.Models the gateway uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiGateway struct {
	models contentGenerator
	model  string
	log    zerolog.Logger
}

func NewGeminiGateway(ctx context.Context, apiKey, model string, log zerolog.Logger) (*GeminiGateway, error) {
	log = log.With().Str("component", "gateway.gemini").Logger()

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed creating genai client")
		return nil, err
	}
	log.Info().Str("model", model).Msg("gemini client initialized")

	return &GeminiGateway{models: client.Models, model: model, log: log}, nil
}

// GenerateEstimate asks the model for a JSON estimate constrained by
// estimateSchema and returns the body as sent.
func (g *GeminiGateway) GenerateEstimate(ctx context.Context, prompt string) (json.RawMessage, error) {
	if g == nil || g.models == nil {
		return nil, ErrGeminiGatewayNotConfigured
	}
	g.log.Debug().Int("prompt_len", len(prompt)).Msg("generate start")

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   estimateSchema,
	})
	if err != nil {
		return nil, err
	}

	text := trimCodeFence(resp.Text())
	g.log.Debug().Int("body_len", len(text)).Msg("generate success")
	return json.RawMessage(text), nil
}

var estimateSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"items": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category":  {Type: genai.TypeString},
					"name":      {Type: genai.TypeString},
					"unit":      {Type: genai.TypeString},
					"quantity":  {Type: genai.TypeNumber},
					"unitPrice": {Type: genai.TypeNumber},
					"total":     {Type: genai.TypeNumber},
				},
				Required: []string{"category", "name", "unit", "quantity", "unitPrice", "total"},
			},
		},
		"notes": {Type: genai.TypeString},
	},
	Required: []string{"items"},
}

// trimCodeFence strips a ```json fence some models wrap JSON bodies in.
func trimCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
