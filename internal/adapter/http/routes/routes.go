package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bakusoq/docs"
	"bakusoq/internal/adapter/export"
	"bakusoq/internal/adapter/http/handlers"
	"bakusoq/internal/adapter/persistence/repository"
	"bakusoq/internal/config"
	"bakusoq/internal/infrastructure/ai"
	"bakusoq/internal/infrastructure/database"
	"bakusoq/internal/usecase"
	"bakusoq/internal/usecase/interfaces"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Estimate *handlers.EstimateHandler
	Demo     *handlers.DemoHandler
	Plan     *handlers.PlanHandler
}

// Run will start the server
func Run(cfg *config.Config, log zerolog.Logger) error {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	h, cleanup, err := buildHandlers(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	router := NewRouter(h, cfg, log)

	addr := cfg.Addr()
	log.Info().Str("addr", addr).Msg("starting bakusoq api")
	if err := router.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewRouter wires middlewares and routes on a fresh engine.
func NewRouter(h Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.Estimate)
	addDemoRoutes(v1, h.Demo)
	addPlanRoutes(v1, h.Plan)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Handlers, func(), error) {
	repo, cleanup, err := newEstimateRepository(ctx, cfg, log)
	if err != nil {
		return Handlers{}, nil, err
	}

	var gateway interfaces.IEstimateModelGateway
	gemini, err := ai.NewGeminiGateway(ctx, cfg.AI.APIKey, cfg.AI.Model, log)
	switch {
	case errors.Is(err, ai.ErrMissingGeminiAPIKey):
		log.Debug().Msg("GEMINI_API_KEY not set, estimates use the fallback calculator")
	case err != nil:
		log.Warn().Err(err).Msg("gemini gateway not configured, estimates use the fallback calculator")
	default:
		gateway = gemini
	}

	font, err := export.LoadFont(cfg.Export.PDFFontPath)
	if err != nil {
		log.Warn().Err(err).Msg("pdf export disabled")
	}
	renderers := map[usecase.ExportFormat]interfaces.IEstimateRenderer{
		usecase.ExportFormatXLSX: export.NewExcelRenderer(),
		usecase.ExportFormatPDF:  export.NewPDFRenderer(font),
	}

	estimateUseCase := usecase.NewEstimateUseCase(gateway, repo, log, usecase.EstimateOptions{
		AITimeout:     cfg.AI.Timeout,
		FallbackDelay: cfg.AI.FallbackDelay,
	})
	demoUseCase := usecase.NewDemoUseCase(estimateUseCase, cfg.Demo.SessionTTL, log)
	exportUseCase := usecase.NewExportUseCase(estimateUseCase, demoUseCase, renderers)

	h := Handlers{
		Estimate: handlers.NewEstimateHandler(estimateUseCase, exportUseCase),
		Demo:     handlers.NewDemoHandler(demoUseCase, exportUseCase),
		Plan:     handlers.NewPlanHandler(),
	}
	return h, func() {
		demoUseCase.Wait()
		cleanup()
	}, nil
}

// newEstimateRepository picks the estimate log backend by name. "none"
// returns a nil repository and estimates are not recorded.
func newEstimateRepository(ctx context.Context, cfg *config.Config, log zerolog.Logger) (interfaces.IEstimateRepository, func(), error) {
	noop := func() {}

	switch cfg.Store.Driver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:   cfg.Store.AWSRegion,
			Endpoint: cfg.Store.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("table", cfg.Store.DynamoTable).Msg("estimate log: dynamodb")
		return repository.NewEstimateDynamoRepository(ddb, cfg.Store.DynamoTable), noop, nil
	case config.StoreSQLite:
		db, err := database.ConnectSQLite(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.Store.SQLitePath).Msg("estimate log: sqlite")
		return repository.NewEstimateSQLiteRepository(db), func() { _ = db.Close() }, nil
	default:
		log.Info().Msg("estimate log disabled")
		return nil, noop, nil
	}
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.HTTP.AllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
