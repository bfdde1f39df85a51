package handlers

import (
	"errors"
	"log"
	"net/http"

	request "costeo_propuestas/internal/adapter/http/dto/request"
	response "costeo_propuestas/internal/adapter/http/dto/response"
	"costeo_propuestas/internal/usecase"
	"costeo_propuestas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimationPayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATION_INPUT", "Invalid estimation payload", http.StatusBadRequest)
	errEmptySourceText          = pkg.NewDomainErrorSimple("EMPTY_SOURCE_TEXT", "At least one source text is required", http.StatusBadRequest)
)

// EstimationHandler handles HTTP requests for AI-assisted cost estimation.
//
// Reference catalogs are loaded on every request and passed to the
// pipeline as plain input; the handler keeps no catalog state.

type EstimationHandler struct {
	estimation usecase.IEstimationUseCase
	catalogs   usecase.ICatalogUseCase
}

func NewEstimationHandler(estimation usecase.IEstimationUseCase, catalogs usecase.ICatalogUseCase) *EstimationHandler {
	return &EstimationHandler{estimation: estimation, catalogs: catalogs}
}

func (h *EstimationHandler) Estimate(c *gin.Context) {
	var payload request.EstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimationPayload.HTTPStatus, errInvalidEstimationPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errEmptySourceText.HTTPStatus, errEmptySourceText.ToHTTPError())
		return
	}

	sources := usecase.EstimationSources{
		ObjectText:      payload.ObjectText,
		MethodologyText: payload.MethodologyText,
		TdrText:         payload.TdrText,
		Notes:           payload.Notes,
	}

	var catalogs usecase.EstimationCatalogs
	if payload.Catalogs != nil {
		catalogs = inlineCatalogs(payload.Catalogs)
	} else {
		catalogs = h.loadCatalogs(c)
	}

	result, err := h.estimation.Estimate(c.Request.Context(), sources, catalogs, payload.Params.ToParams())
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimation(result.Plan, result.Totals))
}

// inlineCatalogs maps request-supplied catalogs, used instead of the
// stored ones for a single estimation.
func inlineCatalogs(req *request.EstimationCatalogsRequest) usecase.EstimationCatalogs {
	var catalogs usecase.EstimationCatalogs
	for _, p := range req.Professionals {
		catalogs.Professionals = append(catalogs.Professionals, p.ToEntity())
	}
	for _, m := range req.Materials {
		catalogs.Materials = append(catalogs.Materials, m.ToEntity())
	}
	return catalogs
}

// loadCatalogs fetches the pricing reference catalogs. A catalog read
// failure degrades the prompt, not the request, so errors are logged and
// the estimation proceeds with whatever was loaded.
func (h *EstimationHandler) loadCatalogs(c *gin.Context) usecase.EstimationCatalogs {
	var catalogs usecase.EstimationCatalogs
	if h.catalogs == nil {
		return catalogs
	}

	professionals, err := h.catalogs.ListProfessionals(c.Request.Context())
	if err != nil {
		log.Printf("[costeo][handler] professional catalog unavailable err=%v", err)
	} else {
		catalogs.Professionals = professionals
	}

	materials, err := h.catalogs.ListMaterials(c.Request.Context())
	if err != nil {
		log.Printf("[costeo][handler] material catalog unavailable err=%v", err)
	} else {
		catalogs.Materials = materials
	}
	return catalogs
}

func mapEstimationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInputTooLarge):
		return pkg.NewDomainErrorSimple("INPUT_TOO_LARGE", "Source text exceeds the size limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrOracleUnavailable):
		return pkg.NewDomainErrorSimple("ORACLE_UNAVAILABLE", "Estimation model is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOracleRateLimited):
		return pkg.NewDomainErrorSimple("ORACLE_RATE_LIMITED", "Estimation model rejected the request rate", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrOracleUnauthorized):
		return pkg.NewDomainErrorSimple("ORACLE_UNAUTHORIZED", "Estimation model rejected the credential", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOracleOutputMalformed):
		return pkg.NewDomainErrorSimple("ORACLE_OUTPUT_MALFORMED", "Estimation model returned an unreadable plan", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrOracleCallFailed):
		return pkg.NewDomainErrorSimple("ORACLE_CALL_FAILED", "Estimation model call failed", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
