package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "costeo_propuestas/internal/adapter/http/dto/request"
	response "costeo_propuestas/internal/adapter/http/dto/response"
	"costeo_propuestas/internal/domain/entities"
	"costeo_propuestas/internal/usecase"
	"costeo_propuestas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)

// CatalogHandler handles HTTP requests for the price catalogs.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateProfessional(c *gin.Context) {
	var payload request.CatalogProfessionalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateProfessional(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogProfessional(created))
}

func (h *CatalogHandler) GetProfessional(c *gin.Context) {
	p, err := h.usecase.GetProfessional(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogProfessional(p))
}

// ListProfessionals lists the professional catalog; with ?q= it returns
// records ranked by relevance to the query instead.
func (h *CatalogHandler) ListProfessionals(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	var (
		list []entities.CatalogProfessional
		err  error
	)
	if query != "" {
		list, err = h.usecase.SearchProfessionals(c.Request.Context(), query)
	} else {
		list, err = h.usecase.ListProfessionals(c.Request.Context())
	}
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogProfessionals(list))
}

func (h *CatalogHandler) UpdateProfessional(c *gin.Context) {
	var payload request.CatalogProfessionalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	record := payload.ToEntity()
	record.ID = c.Param("id")
	updated, err := h.usecase.UpdateProfessional(c.Request.Context(), record)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogProfessional(updated))
}

func (h *CatalogHandler) DeleteProfessional(c *gin.Context) {
	if err := h.usecase.DeleteProfessional(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateMaterial(c *gin.Context) {
	var payload request.CatalogMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateMaterial(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogMaterial(created))
}

func (h *CatalogHandler) GetMaterial(c *gin.Context) {
	m, err := h.usecase.GetMaterial(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogMaterial(m))
}

func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	var (
		list []entities.CatalogMaterial
		err  error
	)
	if query != "" {
		list, err = h.usecase.SearchMaterials(c.Request.Context(), query)
	} else {
		list, err = h.usecase.ListMaterials(c.Request.Context())
	}
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogMaterials(list))
}

func (h *CatalogHandler) UpdateMaterial(c *gin.Context) {
	var payload request.CatalogMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	record := payload.ToEntity()
	record.ID = c.Param("id")
	updated, err := h.usecase.UpdateMaterial(c.Request.Context(), record)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogMaterial(updated))
}

func (h *CatalogHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.DeleteMaterial(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogID), errors.Is(err, usecase.ErrInvalidCatalogRecord):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogRecordNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_RECORD_NOT_FOUND", "Catalog record not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
