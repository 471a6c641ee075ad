package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	text   string
	err    error
	model  string
	config *genai.GenerateContentConfig
	prompt string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func TestNewGeminiGateway_MissingKey(t *testing.T) {
	g, err := NewGeminiGateway(context.Background(), "  ", "", zerolog.Nop())
	if !errors.Is(err, ErrMissingGeminiAPIKey) || g != nil {
		t.Fatalf("expected ErrMissingGeminiAPIKey, got %v", err)
	}
}

func TestGeminiGateway_GenerateEstimate(t *testing.T) {
	t.Run("returns body and sends schema", func(t *testing.T) {
		f := &fakeGenerator{text: `{"items":[],"notes":"x"}`}
		g := &GeminiGateway{models: f, model: DefaultGeminiModel, log: zerolog.Nop()}

		raw, err := g.GenerateEstimate(context.Background(), "見積もって")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(raw) != `{"items":[],"notes":"x"}` {
			t.Fatalf("unexpected body %s", raw)
		}
		if f.model != DefaultGeminiModel || f.prompt != "見積もって" {
			t.Fatalf("unexpected call: model=%s prompt=%s", f.model, f.prompt)
		}
		if f.config.ResponseMIMEType != "application/json" || f.config.ResponseSchema != estimateSchema {
			t.Fatalf("expected json schema config, got %+v", f.config)
		}
	})

	t.Run("strips code fence", func(t *testing.T) {
		f := &fakeGenerator{text: "```json\n{\"items\":[]}\n```"}
		g := &GeminiGateway{models: f, model: "m", log: zerolog.Nop()}

		raw, err := g.GenerateEstimate(context.Background(), "p")
		if err != nil || string(raw) != `{"items":[]}` {
			t.Fatalf("unexpected result %s, %v", raw, err)
		}
	})

	t.Run("propagates transport error", func(t *testing.T) {
		f := &fakeGenerator{err: errors.New("429")}
		g := &GeminiGateway{models: f, model: "m", log: zerolog.Nop()}

		if _, err := g.GenerateEstimate(context.Background(), "p"); err == nil || err.Error() != "429" {
			t.Fatalf("expected 429 error, got %v", err)
		}
	})

	t.Run("nil gateway", func(t *testing.T) {
		var g *GeminiGateway
		if _, err := g.GenerateEstimate(context.Background(), "p"); !errors.Is(err, ErrGeminiGatewayNotConfigured) {
			t.Fatalf("expected ErrGeminiGatewayNotConfigured, got %v", err)
		}
	})
}

func TestEstimateSchemaRequiresItemFields(t *testing.T) {
	item := estimateSchema.Properties["items"].Items
	for _, key := range []string{"category", "name", "unit", "quantity", "unitPrice", "total"} {
		if _, ok := item.Properties[key]; !ok {
			t.Fatalf("schema is missing %s", key)
		}
	}
	if len(item.Required) != 6 {
		t.Fatalf("expected 6 required item fields, got %v", item.Required)
	}
}
