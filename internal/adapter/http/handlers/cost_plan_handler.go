package handlers

import (
	"errors"
	"net/http"

	request "costeo_propuestas/internal/adapter/http/dto/request"
	response "costeo_propuestas/internal/adapter/http/dto/response"
	"costeo_propuestas/internal/usecase"
	"costeo_propuestas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid plan payload", http.StatusBadRequest)

// CostPlanHandler handles HTTP requests for saved cost plans.

type CostPlanHandler struct {
	usecase usecase.ICostPlanUseCase
}

func NewCostPlanHandler(uc usecase.ICostPlanUseCase) *CostPlanHandler {
	return &CostPlanHandler{usecase: uc}
}

func (h *CostPlanHandler) Save(c *gin.Context) {
	var payload request.CostPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), payload.Title, payload.ToPlan(), payload.Params.ToParams())
	if err != nil {
		appErr := mapCostPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCostPlan(saved))
}

func (h *CostPlanHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCostPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostPlan(p))
}

func (h *CostPlanHandler) List(c *gin.Context) {
	plans, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCostPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostPlans(plans))
}

func (h *CostPlanHandler) Replace(c *gin.Context) {
	var payload request.CostPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Replace(c.Request.Context(), c.Param("id"), payload.Title, payload.ToPlan(), payload.Params.ToParams())
	if err != nil {
		appErr := mapCostPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostPlan(updated))
}

func (h *CostPlanHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCostPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCostPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlanID), errors.Is(err, usecase.ErrInvalidPlanTitle):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCostPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Cost plan not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
