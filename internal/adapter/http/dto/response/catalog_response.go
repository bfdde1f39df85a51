package response

import (
	"time"

	"costeo_propuestas/internal/domain/entities"
)

type CatalogProfessionalResponse struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	Profile      string    `json:"profile"`
	MonthlyValue float64   `json:"monthlyValue"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromCatalogProfessional(p entities.CatalogProfessional) CatalogProfessionalResponse {
	return CatalogProfessionalResponse{
		ID:           p.ID,
		Role:         p.Role,
		Profile:      p.Profile,
		MonthlyValue: p.MonthlyValue,
		Source:       p.Source,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromCatalogProfessionals(list []entities.CatalogProfessional) []CatalogProfessionalResponse {
	out := make([]CatalogProfessionalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromCatalogProfessional(p))
	}
	return out
}

type CatalogMaterialResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	UnitPrice float64   `json:"unitPrice"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCatalogMaterial(m entities.CatalogMaterial) CatalogMaterialResponse {
	return CatalogMaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Unit:      m.Unit,
		UnitPrice: m.UnitPrice,
		Source:    m.Source,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromCatalogMaterials(list []entities.CatalogMaterial) []CatalogMaterialResponse {
	out := make([]CatalogMaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromCatalogMaterial(m))
	}
	return out
}
