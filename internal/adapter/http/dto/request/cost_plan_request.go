package request

import "costeo_propuestas/internal/domain/entities"

type ProfessionalLineRequest struct {
	Role          string  `json:"role"`
	Profile       string  `json:"profile"`
	Quantity      float64 `json:"quantity"`
	Months        float64 `json:"months"`
	Dedication    float64 `json:"dedication"`
	MonthlyValue  float64 `json:"monthlyValue"`
	Justification string  `json:"justification"`
}

type MaterialLineRequest struct {
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Justification string  `json:"justification"`
}

// CostPlanRequest is the payload for saving or replacing a plan. Line
// items go through the plan normalizer before persisting, so malformed
// numbers are coerced rather than rejected.
type CostPlanRequest struct {
	Title         string                    `json:"title" binding:"required"`
	Assumptions   []string                  `json:"assumptions"`
	Professionals []ProfessionalLineRequest `json:"professionals"`
	Materials     []MaterialLineRequest     `json:"materials"`
	Params        *CostParametersRequest    `json:"params"`
}

func (r CostPlanRequest) ToPlan() entities.EstimationPlan {
	plan := entities.EstimationPlan{
		Assumptions:   r.Assumptions,
		Professionals: make([]entities.ProfessionalLine, 0, len(r.Professionals)),
		Materials:     make([]entities.MaterialLine, 0, len(r.Materials)),
	}
	for _, p := range r.Professionals {
		plan.Professionals = append(plan.Professionals, entities.ProfessionalLine{
			Role:          p.Role,
			Profile:       p.Profile,
			Quantity:      p.Quantity,
			Months:        p.Months,
			Dedication:    p.Dedication,
			MonthlyValue:  p.MonthlyValue,
			Justification: p.Justification,
		})
	}
	for _, m := range r.Materials {
		plan.Materials = append(plan.Materials, entities.MaterialLine{
			Name:          m.Name,
			Unit:          m.Unit,
			Quantity:      m.Quantity,
			UnitPrice:     m.UnitPrice,
			Justification: m.Justification,
		})
	}
	return plan
}
