package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "bakusoq/internal/adapter/http/dto/request"
	response "bakusoq/internal/adapter/http/dto/response"
	"bakusoq/internal/usecase"
)

// EstimateHandler handles HTTP requests for demolition estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	export  usecase.IExportUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, export usecase.IExportUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc, export: export}
}

// CreateEstimate godoc
// @Summary      Compute a demolition estimate
// @Description  Asks the generative model for an itemized estimate and falls back to the fixed unit-price calculator when it is unavailable. Always answers with an estimate.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateRequest  true  "Estimate inputs"
// @Success      201   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimatePayload)
		return
	}

	params, err := payload.ToParams()
	if err != nil {
		writeError(c, mapError(err))
		return
	}

	estimate := h.usecase.RequestEstimate(c.Request.Context(), params)
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate godoc
// @Summary      Get a recorded estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ExportEstimate godoc
// @Summary      Download a recorded estimate
// @Tags         estimates
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        id      path   string  true   "Estimate ID"
// @Param        format  query  string  false  "xlsx (default) or pdf"
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /estimates/{id}/export [get]
func (h *EstimateHandler) ExportEstimate(c *gin.Context) {
	format, err := usecase.ParseExportFormat(c.Query("format"))
	if err != nil {
		writeError(c, errInvalidExportFormat)
		return
	}

	res, err := h.export.ExportEstimate(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	writeExport(c, res)
}
