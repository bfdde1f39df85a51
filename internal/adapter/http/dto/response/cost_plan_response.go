package response

import (
	"time"

	"costeo_propuestas/internal/domain/entities"
)

type CostPlanResponse struct {
	ID            string                      `json:"id"`
	Title         string                      `json:"title"`
	Assumptions   []string                    `json:"assumptions"`
	Professionals []entities.ProfessionalLine `json:"professionals"`
	Materials     []entities.MaterialLine     `json:"materials"`
	Params        entities.CostParameters     `json:"params"`
	Totals        entities.CostBreakdown      `json:"totals"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func FromCostPlan(p entities.CostPlan) CostPlanResponse {
	return CostPlanResponse{
		ID:            p.ID,
		Title:         p.Title,
		Assumptions:   p.Assumptions,
		Professionals: p.Professionals,
		Materials:     p.Materials,
		Params:        p.Params,
		Totals:        p.Totals,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromCostPlans(list []entities.CostPlan) []CostPlanResponse {
	out := make([]CostPlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromCostPlan(p))
	}
	return out
}
