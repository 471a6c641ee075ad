package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "bakusoq/internal/adapter/http/dto/request"
	response "bakusoq/internal/adapter/http/dto/response"
	"bakusoq/internal/usecase"
)

// DemoHandler exposes the demo wizard sessions.
type DemoHandler struct {
	usecase usecase.IDemoUseCase
	export  usecase.IExportUseCase
}

func NewDemoHandler(uc usecase.IDemoUseCase, export usecase.IExportUseCase) *DemoHandler {
	return &DemoHandler{usecase: uc, export: export}
}

// CreateSession godoc
// @Summary  Start a demo wizard session
// @Tags     demo
// @Produce  json
// @Success  201  {object}  response.DemoSessionResponse
// @Router   /demo/sessions [post]
func (h *DemoHandler) CreateSession(c *gin.Context) {
	s := h.usecase.Create(c.Request.Context())
	c.JSON(http.StatusCreated, response.FromDemoSession(s))
}

// GetSession godoc
// @Summary  Get a demo wizard session
// @Tags     demo
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.DemoSessionResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /demo/sessions/{id} [get]
func (h *DemoHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDemoSession(s))
}

// Calculate godoc
// @Summary      Submit the demo form
// @Description  Moves the session from input to processing. Poll the session until it reaches result.
// @Tags         demo
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Session ID"
// @Param        body  body      request.EstimateRequest  true  "Estimate inputs"
// @Success      202   {object}  response.DemoSessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /demo/sessions/{id}/calculate [post]
func (h *DemoHandler) Calculate(c *gin.Context) {
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

	s, err := h.usecase.Calculate(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusAccepted, response.FromDemoSession(s))
}

// Reset godoc
// @Summary  Return a finished demo session to the input step
// @Tags     demo
// @Produce  json
// @Param    id   path      string  true  "Session ID"
// @Success  200  {object}  response.DemoSessionResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /demo/sessions/{id}/reset [post]
func (h *DemoHandler) Reset(c *gin.Context) {
	s, err := h.usecase.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDemoSession(s))
}

// Export godoc
// @Summary  Download the estimate of a finished demo session
// @Tags     demo
// @Param    id      path   string  true   "Session ID"
// @Param    format  query  string  false  "xlsx (default) or pdf"
// @Success  200
// @Failure  409  {object}  pkg.HTTPError
// @Failure  503  {object}  pkg.HTTPError
// @Router   /demo/sessions/{id}/export [get]
func (h *DemoHandler) Export(c *gin.Context) {
	format, err := usecase.ParseExportFormat(c.Query("format"))
	if err != nil {
		writeError(c, errInvalidExportFormat)
		return
	}

	res, err := h.export.ExportDemoSession(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	writeExport(c, res)
}
