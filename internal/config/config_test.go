package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "development" || cfg.HTTP.Port != 8080 || cfg.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected http defaults: %+v", cfg)
	}
	if cfg.AI.Model != "gemini-2.5-flash" || cfg.AI.Timeout != 30*time.Second || cfg.AI.FallbackDelay != 0 {
		t.Fatalf("unexpected ai defaults: %+v", cfg.AI)
	}
	if cfg.AI.APIKey != "" {
		t.Fatalf("expected no api key by default")
	}
	if cfg.Store.Driver != StoreNone || cfg.Demo.SessionTTL != 30*time.Minute {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestFromViper_APIKeyFallback(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"API_KEY": "legacy"}))
	if err != nil || cfg.AI.APIKey != "legacy" {
		t.Fatalf("expected API_KEY to be used, got %+v %v", cfg, err)
	}

	cfg, err = fromViper(newViper(map[string]any{"API_KEY": "legacy", "GEMINI_API_KEY": "primary"}))
	if err != nil || cfg.AI.APIKey != "primary" {
		t.Fatalf("expected GEMINI_API_KEY to win, got %+v %v", cfg, err)
	}
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"ESTIMATE_STORE":          "SQLite",
		"ESTIMATE_FALLBACK_DELAY": "1500ms",
		"CORS_ALLOWED_ORIGINS":    "https://bakusoq.jp, http://localhost:3000,",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Driver != StoreSQLite || cfg.AI.FallbackDelay != 1500*time.Millisecond {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	want := []string{"https://bakusoq.jp", "http://localhost:3000"}
	if !reflect.DeepEqual(cfg.HTTP.AllowedOrigins, want) {
		t.Fatalf("unexpected origins %v", cfg.HTTP.AllowedOrigins)
	}
}

func TestFromViper_Invalid(t *testing.T) {
	cases := map[string]map[string]any{
		"bad store":    {"ESTIMATE_STORE": "redis"},
		"bad port":     {"HTTP_PORT": 0},
		"zero timeout": {"ESTIMATE_AI_TIMEOUT": "0s"},
		"no table":     {"ESTIMATE_STORE": "dynamodb", "ESTIMATES_TABLE": ""},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := fromViper(newViper(values)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
