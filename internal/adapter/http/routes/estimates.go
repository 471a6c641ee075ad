package routes

import (
	"github.com/gin-gonic/gin"

	"bakusoq/internal/adapter/http/handlers"
)

const (
	PathEstimates    = "/estimates"
	PathDemoSessions = "/demo/sessions"
	PathPlans        = "/plans"
)

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", h.CreateEstimate)
		estimates.GET("/:id", h.GetEstimate)
		estimates.GET("/:id/export", h.ExportEstimate)
	}
}

func addDemoRoutes(rg *gin.RouterGroup, h *handlers.DemoHandler) {
	sessions := rg.Group(PathDemoSessions)
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/calculate", h.Calculate)
		sessions.POST("/:id/reset", h.Reset)
		sessions.GET("/:id/export", h.Export)
	}
}

func addPlanRoutes(rg *gin.RouterGroup, h *handlers.PlanHandler) {
	rg.GET(PathPlans, h.ListPlans)
}
