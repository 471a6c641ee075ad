package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "bakusoq/internal/adapter/http/dto/request"
	"bakusoq/internal/domain/entities"
	"bakusoq/internal/usecase"
	"bakusoq/internal/usecase/interfaces"
	"bakusoq/pkg"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidExportFormat    = pkg.NewDomainErrorSimple("UNSUPPORTED_EXPORT_FORMAT", "Export format must be xlsx or pdf", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapError turns use-case and domain errors into the API error envelope.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnknownStructure):
		return pkg.NewDomainErrorSimple("UNKNOWN_STRUCTURE", "Structure must be one of WOOD, S, RC, SRC, OTHER", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownRoadWidth):
		return pkg.NewDomainErrorSimple("UNKNOWN_ROAD_WIDTH", "Road width must be one of narrow, normal, wide", http.StatusBadRequest)
	case errors.Is(err, request.ErrUnknownAreaUnit):
		return pkg.NewDomainErrorSimple("UNKNOWN_AREA_UNIT", "Area unit must be m2 or tsubo", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidDemoID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateLogDisabled):
		return pkg.NewDomainErrorSimple("ESTIMATE_LOG_DISABLED", "Estimates are not recorded on this server", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDemoSessionNotFound):
		return pkg.NewDomainErrorSimple("DEMO_SESSION_NOT_FOUND", "Demo session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDemoBusy):
		return pkg.NewDomainErrorSimple("DEMO_SESSION_BUSY", "Demo session is calculating", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_DEMO_STEP", "Demo session is not in a step that allows this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToExport):
		return pkg.NewDomainErrorSimple("DEMO_RESULT_NOT_READY", "Demo session has no estimate to export", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnsupportedExportFormat):
		return errInvalidExportFormat
	case errors.Is(err, interfaces.ErrRendererUnavailable):
		return pkg.NewDomainError("EXPORT_UNAVAILABLE", "This export format is not available on this server", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeExport(c *gin.Context, res usecase.ExportResult) {
	c.Header("Content-Disposition", `attachment; filename="`+res.FileName+`"`)
	c.Data(http.StatusOK, res.ContentType, res.Content)
}
