package response

import "costeo_propuestas/internal/domain/entities"

// EstimationResponse is the AI costing payload: the normalized plan plus
// the breakdown computed from it.
type EstimationResponse struct {
	Status string                  `json:"status"`
	Plan   entities.EstimationPlan `json:"plan"`
	Totals entities.CostBreakdown  `json:"totals"`
}

func FromEstimation(plan entities.EstimationPlan, totals entities.CostBreakdown) EstimationResponse {
	return EstimationResponse{
		Status: "ok",
		Plan:   plan,
		Totals: totals,
	}
}
