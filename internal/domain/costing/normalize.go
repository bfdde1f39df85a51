package costing

import (
	"math"
	"strconv"

	"costeo_propuestas/internal/domain/entities"
)

// NormalizePlan turns an arbitrarily-shaped decoded value into a canonical
// EstimationPlan. It is the defensive boundary between untrusted
// structured data (oracle output, raw caller input) and the totals
// engine: the oracle's structured-output contract is advisory, so this
// must run on every oracle response before any total is computed.
//
// Never fails and is idempotent: missing or non-array sections become
// empty slices, string fields default to "", numeric fields go through
// CoerceNumber with the domain bounds.
func NormalizePlan(raw any) entities.EstimationPlan {
	plan := entities.EstimationPlan{
		Assumptions:   []string{},
		Professionals: []entities.ProfessionalLine{},
		Materials:     []entities.MaterialLine{},
	}

	switch v := raw.(type) {
	case entities.EstimationPlan:
		return normalizeTyped(v)
	case *entities.EstimationPlan:
		if v == nil {
			return plan
		}
		return normalizeTyped(*v)
	case map[string]any:
		for _, item := range asSlice(v["assumptions"]) {
			if s := asString(item); s != "" {
				plan.Assumptions = append(plan.Assumptions, s)
			}
		}
		for _, item := range asSlice(v["professionals"]) {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			plan.Professionals = append(plan.Professionals, normalizeProfessional(entities.ProfessionalLine{
				Role:          asString(m["role"]),
				Profile:       asString(m["profile"]),
				Quantity:      asNumber(m["quantity"]),
				Months:        asNumber(m["months"]),
				Dedication:    asNumber(m["dedication"]),
				MonthlyValue:  asNumber(m["monthlyValue"]),
				Justification: asString(m["justification"]),
			}))
		}
		for _, item := range asSlice(v["materials"]) {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			plan.Materials = append(plan.Materials, normalizeMaterial(entities.MaterialLine{
				Name:          asString(m["name"]),
				Unit:          asString(m["unit"]),
				Quantity:      asNumber(m["quantity"]),
				UnitPrice:     asNumber(m["unitPrice"]),
				Justification: asString(m["justification"]),
			}))
		}
	}

	return plan
}

func normalizeTyped(p entities.EstimationPlan) entities.EstimationPlan {
	out := entities.EstimationPlan{
		Assumptions:   []string{},
		Professionals: make([]entities.ProfessionalLine, 0, len(p.Professionals)),
		Materials:     make([]entities.MaterialLine, 0, len(p.Materials)),
	}
	for _, a := range p.Assumptions {
		if a != "" {
			out.Assumptions = append(out.Assumptions, a)
		}
	}
	for _, line := range p.Professionals {
		out.Professionals = append(out.Professionals, normalizeProfessional(line))
	}
	for _, line := range p.Materials {
		out.Materials = append(out.Materials, normalizeMaterial(line))
	}
	return out
}

func normalizeProfessional(line entities.ProfessionalLine) entities.ProfessionalLine {
	line.Quantity = CoerceNumber(line.Quantity, 0, MaxQuantity, 0)
	line.Months = CoerceNumber(line.Months, 0, MaxMonths, 0)
	line.Dedication = CoerceNumber(line.Dedication, 0, MaxDedication, 0)
	line.MonthlyValue = CoerceNumber(line.MonthlyValue, 0, MaxMoney, 0)
	return line
}

func normalizeMaterial(line entities.MaterialLine) entities.MaterialLine {
	line.Quantity = CoerceNumber(line.Quantity, 0, MaxQuantity, 0)
	line.UnitPrice = CoerceNumber(line.UnitPrice, 0, MaxMoney, 0)
	return line
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asNumber extracts a float64 from the shapes encoding/json produces,
// plus numeric strings, which some oracle responses emit for quantities.
func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return math.NaN()
	}
}
