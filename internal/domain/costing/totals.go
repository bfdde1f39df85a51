package costing

import "costeo_propuestas/internal/domain/entities"

// ComputeTotals derives the full cost breakdown for a proposal.
//
// Pure and total: every input passes through CoerceNumber before use, so
// malformed line items degrade to clamped values instead of failing.
// Empty line-item slices yield all-zero subtotals.
//
// MargenPct is coerced into [0,100]; at 100 or above the suggested offer
// is undefined and left nil. The API validates tighter ranges at the
// edge, but stored plans recomputed here must keep that edge observable.
func ComputeTotals(professionals []entities.ProfessionalLine, materials []entities.MaterialLine, params entities.CostParameters) entities.CostBreakdown {
	factor := CoerceNumber(params.FactorPrestacional, MinFactorPrestacional, MaxFactorPrestacional, entities.DefaultFactorPrestacional)
	imprevistos := CoerceNumber(params.ImprevistosPct, 0, MaxImprevistosPct, entities.DefaultImprevistosPct)
	margen := CoerceNumber(params.MargenPct, 0, MaxMargenPct, entities.DefaultMargenPct)
	presupuesto := CoerceNumber(params.PresupuestoFijo, 0, MaxPresupuestoFijo, 0)

	var subtotalProfessionals float64
	for _, p := range professionals {
		quantity := CoerceNumber(p.Quantity, 0, MaxQuantity, 0)
		months := CoerceNumber(p.Months, 0, MaxMonths, 0)
		dedication := CoerceNumber(p.Dedication, 0, MaxDedication, 0)
		monthly := CoerceNumber(p.MonthlyValue, 0, MaxMoney, 0)
		subtotalProfessionals += quantity * months * dedication * monthly * factor
	}

	var subtotalMaterials float64
	for _, m := range materials {
		quantity := CoerceNumber(m.Quantity, 0, MaxQuantity, 0)
		unitPrice := CoerceNumber(m.UnitPrice, 0, MaxMoney, 0)
		subtotalMaterials += quantity * unitPrice
	}

	subtotalProduction := subtotalProfessionals + subtotalMaterials
	contingency := subtotalProduction * imprevistos / 100
	totalProduction := subtotalProduction + contingency

	breakdown := entities.CostBreakdown{
		SubtotalProfessionals: RoundMoney(subtotalProfessionals),
		SubtotalMaterials:     RoundMoney(subtotalMaterials),
		SubtotalProduction:    RoundMoney(subtotalProduction),
		Contingency:           RoundMoney(contingency),
		TotalProduction:       RoundMoney(totalProduction),
	}

	if margen < 100 {
		offer := RoundMoney(totalProduction / (1 - margen/100))
		breakdown.SuggestedOffer = &offer
	}

	if presupuesto > 0 {
		margin := roundPct((presupuesto - totalProduction) / presupuesto * 100)
		breakdown.PossibleMargin = &margin
	}

	return breakdown
}
