package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreNone     = "none"
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type AIConfig struct {
	APIKey string
	Model  string
	// Timeout bounds one model call.
	Timeout time.Duration
	// FallbackDelay paces the fallback answer when no API key is set.
	FallbackDelay time.Duration
}

type StoreConfig struct {
	Driver           string
	DynamoTable      string
	AWSRegion        string
	DynamoDBEndpoint string
	SQLitePath       string
}

type ExportConfig struct {
	PDFFontPath string
}

type DemoConfig struct {
	SessionTTL time.Duration
}

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	AI          AIConfig
	Store       StoreConfig
	Export      ExportConfig
	Demo        DemoConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)
	_ = v.ReadInConfig()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("ESTIMATE_AI_TIMEOUT", "30s")
	v.SetDefault("ESTIMATE_FALLBACK_DELAY", "0s")
	v.SetDefault("ESTIMATE_STORE", StoreNone)
	v.SetDefault("ESTIMATES_TABLE", "bakusoq_estimates")
	v.SetDefault("AWS_REGION", "ap-northeast-1")
	v.SetDefault("SQLITE_PATH", "bakusoq.db")
	v.SetDefault("DEMO_SESSION_TTL", "30m")
}

func fromViper(v *viper.Viper) (*Config, error) {
	apiKey := strings.TrimSpace(v.GetString("GEMINI_API_KEY"))
	if apiKey == "" {
		apiKey = strings.TrimSpace(v.GetString("API_KEY"))
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		AI: AIConfig{
			APIKey:        apiKey,
			Model:         v.GetString("GEMINI_MODEL"),
			Timeout:       v.GetDuration("ESTIMATE_AI_TIMEOUT"),
			FallbackDelay: v.GetDuration("ESTIMATE_FALLBACK_DELAY"),
		},
		Store: StoreConfig{
			Driver:           strings.ToLower(strings.TrimSpace(v.GetString("ESTIMATE_STORE"))),
			DynamoTable:      v.GetString("ESTIMATES_TABLE"),
			AWSRegion:        v.GetString("AWS_REGION"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
			SQLitePath:       v.GetString("SQLITE_PATH"),
		},
		Export: ExportConfig{
			PDFFontPath: v.GetString("PDF_FONT_PATH"),
		},
		Demo: DemoConfig{
			SessionTTL: v.GetDuration("DEMO_SESSION_TTL"),
		},
	}

	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreNone
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if cfg.AI.Timeout <= 0 {
		return fmt.Errorf("ESTIMATE_AI_TIMEOUT must be positive")
	}
	if cfg.AI.FallbackDelay < 0 {
		return fmt.Errorf("ESTIMATE_FALLBACK_DELAY must not be negative")
	}
	if cfg.Demo.SessionTTL <= 0 {
		return fmt.Errorf("DEMO_SESSION_TTL must be positive")
	}
	switch cfg.Store.Driver {
	case StoreNone:
	case StoreDynamoDB:
		if cfg.Store.DynamoTable == "" {
			return fmt.Errorf("ESTIMATES_TABLE is required for the dynamodb store")
		}
	case StoreSQLite:
		if cfg.Store.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	default:
		return fmt.Errorf("ESTIMATE_STORE must be one of none, dynamodb, sqlite (got %q)", cfg.Store.Driver)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
