package request

import (
	"errors"
	"strings"

	"costeo_propuestas/internal/domain/entities"
)

var ErrEmptySourceText = errors.New("empty source text")

// CostParametersRequest carries the optional tuning parameters. Pointer
// fields distinguish "omitted" (use the default) from an explicit zero.
type CostParametersRequest struct {
	FactorPrestacional *float64 `json:"factorPrestacional"`
	ImprevistosPct     *float64 `json:"imprevistosPct"`
	MargenPct          *float64 `json:"margenPct"`
	PresupuestoFijo    *float64 `json:"presupuestoFijo"`
}

func (r *CostParametersRequest) ToParams() entities.CostParameters {
	params := entities.DefaultCostParameters()
	if r == nil {
		return params
	}
	if r.FactorPrestacional != nil {
		params.FactorPrestacional = *r.FactorPrestacional
	}
	if r.ImprevistosPct != nil {
		params.ImprevistosPct = *r.ImprevistosPct
	}
	if r.MargenPct != nil {
		params.MargenPct = *r.MargenPct
	}
	if r.PresupuestoFijo != nil {
		params.PresupuestoFijo = *r.PresupuestoFijo
	}
	return params
}

// EstimationCatalogsRequest carries inline reference catalogs. When
// present they override the stored catalogs for this request only.
type EstimationCatalogsRequest struct {
	Professionals []CatalogProfessionalRequest `json:"professionals"`
	Materials     []CatalogMaterialRequest     `json:"materials"`
}

// EstimationRequest is the payload for the AI costing endpoint. The source
// texts describe the contract; at least one of them must be non-empty.
type EstimationRequest struct {
	ObjectText      string                     `json:"objectText"`
	MethodologyText string                     `json:"methodologyText"`
	TdrText         string                     `json:"tdrText"`
	Notes           string                     `json:"notes"`
	Params          *CostParametersRequest     `json:"params"`
	Catalogs        *EstimationCatalogsRequest `json:"catalogs"`
}

func (r EstimationRequest) Validate() error {
	for _, text := range []string{r.ObjectText, r.MethodologyText, r.TdrText, r.Notes} {
		if strings.TrimSpace(text) != "" {
			return nil
		}
	}
	return ErrEmptySourceText
}
