package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "bakusoq/internal/adapter/http/dto/response"
	"bakusoq/internal/domain/entities"
)

type PlanHandler struct{}

func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

// ListPlans godoc
// @Summary  Published price list
// @Tags     plans
// @Produce  json
// @Success  200  {array}  response.PlanResponse
// @Router   /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPlans(entities.PricingPlans()))
}
