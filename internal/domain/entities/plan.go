package entities

// ProfessionalLine is one staffing requirement of a consulting proposal.
//
// Monetary representation:
//   - MonthlyValue is expressed in whole currency units (COP).
//   - Dedication is a fraction of full time (1.0 = 100%).
//
// Lines are value objects: once part of a saved plan they are never edited
// in place, only replaced by a full plan replace.
type ProfessionalLine struct {
	Role          string  `json:"role"`
	Profile       string  `json:"profile"`
	Quantity      float64 `json:"quantity"`
	Months        float64 `json:"months"`
	Dedication    float64 `json:"dedication"`
	MonthlyValue  float64 `json:"monthlyValue"`
	Justification string  `json:"justification"`
}

// MaterialLine is one non-labor cost item of a consulting proposal.
type MaterialLine struct {
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Justification string  `json:"justification"`
}

// CostParameters governs the totals computation.
//
// Percentage fields are plain percentages (0-100), not fractions.
// FactorPrestacional is a multiplier on nominal monthly pay covering
// mandatory social-benefit costs. PresupuestoFijo is the client's fixed
// budget when known; zero means not provided.
type CostParameters struct {
	FactorPrestacional float64 `json:"factorPrestacional"`
	ImprevistosPct     float64 `json:"imprevistosPct"`
	MargenPct          float64 `json:"margenPct"`
	PresupuestoFijo    float64 `json:"presupuestoFijo,omitempty"`
}

// Default parameter values applied when the caller omits them.
const (
	DefaultFactorPrestacional = 1.58
	DefaultImprevistosPct     = 5
	DefaultMargenPct          = 30
)

func DefaultCostParameters() CostParameters {
	return CostParameters{
		FactorPrestacional: DefaultFactorPrestacional,
		ImprevistosPct:     DefaultImprevistosPct,
		MargenPct:          DefaultMargenPct,
	}
}

// CostBreakdown is derived from line items plus parameters; it is never
// stored independently of the parameters that produced it.
//
// Invariants:
//   - SubtotalProduction = SubtotalProfessionals + SubtotalMaterials
//   - TotalProduction    = SubtotalProduction + Contingency
//   - SuggestedOffer is nil when MargenPct >= 100 (undefined offer).
//   - PossibleMargin is nil unless PresupuestoFijo > 0.
//
// All monetary fields are rounded to the nearest whole currency unit;
// PossibleMargin is a percentage rounded to 2 decimals.
type CostBreakdown struct {
	SubtotalProfessionals float64  `json:"subtotalProfessionals"`
	SubtotalMaterials     float64  `json:"subtotalMaterials"`
	SubtotalProduction    float64  `json:"subtotalProduction"`
	Contingency           float64  `json:"contingency"`
	TotalProduction       float64  `json:"totalProduction"`
	SuggestedOffer        *float64 `json:"suggestedOffer"`
	PossibleMargin        *float64 `json:"possibleMargin"`
}

// EstimationPlan is the normalized line-item plan produced from oracle
// output or caller input. It is always surfaced together with the
// CostBreakdown computed from it.
type EstimationPlan struct {
	Assumptions   []string           `json:"assumptions"`
	Professionals []ProfessionalLine `json:"professionals"`
	Materials     []MaterialLine     `json:"materials"`
}
