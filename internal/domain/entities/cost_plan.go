package entities

import "time"

// CostPlan is a saved {professionals, materials, params} triple for a
// proposal, persisted together with the breakdown derived from it.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The stored totals are a convenience copy; the triple must always remain
// recomputable through the totals engine, and read paths recompute to keep
// the two in sync.
type CostPlan struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Assumptions   []string           `json:"assumptions"`
	Professionals []ProfessionalLine `json:"professionals"`
	Materials     []MaterialLine     `json:"materials"`
	Params        CostParameters     `json:"params"`
	Totals        CostBreakdown      `json:"totals"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
