package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"bakusoq/internal/adapter/http/routes"
	"bakusoq/internal/config"
	"bakusoq/internal/logger"
)

// @title           BAKUSOQ API
// @version         1.0
// @description     Demolition cost estimates backed by a generative model with a deterministic fallback.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithLevel(cfg.Environment, cfg.LogLevel)

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
