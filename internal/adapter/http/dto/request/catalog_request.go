package request

import "costeo_propuestas/internal/domain/entities"

type CatalogProfessionalRequest struct {
	Role         string  `json:"role" binding:"required"`
	Profile      string  `json:"profile"`
	MonthlyValue float64 `json:"monthlyValue"`
	Source       string  `json:"source"`
}

func (r CatalogProfessionalRequest) ToEntity() entities.CatalogProfessional {
	return entities.CatalogProfessional{
		Role:         r.Role,
		Profile:      r.Profile,
		MonthlyValue: r.MonthlyValue,
		Source:       r.Source,
	}
}

type CatalogMaterialRequest struct {
	Name      string  `json:"name" binding:"required"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unitPrice"`
	Source    string  `json:"source"`
}

func (r CatalogMaterialRequest) ToEntity() entities.CatalogMaterial {
	return entities.CatalogMaterial{
		Name:      r.Name,
		Unit:      r.Unit,
		UnitPrice: r.UnitPrice,
		Source:    r.Source,
	}
}
