package usecase

import (
	"fmt"
	"strings"

	"costeo_propuestas/internal/domain/entities"
)

// Prompt construction for the estimation oracle. All prompts are Spanish:
// the source documents (alcance, metodología, TDR) arrive in Spanish and
// the catalogs use Spanish role/material names.

func buildPlanPrompt(sourceText string, catalogs EstimationCatalogs, params entities.CostParameters, sampleSize int) string {
	var b strings.Builder

	b.WriteString("Eres un analista de costos de una firma consultora. ")
	b.WriteString("A partir de los documentos del contrato, produce el plan de producción: ")
	b.WriteString("profesionales requeridos (rol, perfil, cantidad, meses, dedicación, valor mensual) ")
	b.WriteString("y materiales/equipos (nombre, unidad, cantidad, precio unitario), con supuestos.\n\n")

	fmt.Fprintf(&b, "Parámetros financieros: factor prestacional %.2f, imprevistos %.1f%%, margen %.1f%%.\n",
		params.FactorPrestacional, params.ImprevistosPct, params.MargenPct)
	if params.PresupuestoFijo > 0 {
		fmt.Fprintf(&b, "Presupuesto fijo del cliente: %.0f.\n", params.PresupuestoFijo)
	}

	if sample := formatCatalogSample(catalogs, sampleSize); sample != "" {
		b.WriteString("\nTarifas de referencia del catálogo (usa valores similares cuando apliquen):\n")
		b.WriteString(sample)
	}

	b.WriteString("\nResponde únicamente con un objeto JSON que cumpla el esquema dado. ")
	b.WriteString("Usa dedication entre 0 y 1 (1.0 = tiempo completo) y valores en pesos.\n")
	b.WriteString("\n--- DOCUMENTOS ---\n")
	b.WriteString(sourceText)

	return b.String()
}

func buildExtractPrompt(chunk string) string {
	var b strings.Builder
	b.WriteString("Extrae de este fragmento de un contrato de consultoría, en viñetas cortas, ")
	b.WriteString("solo los requerimientos operativos: actividades, entregables, perfiles profesionales ")
	b.WriteString("requeridos y materiales o equipos mencionados. Sin comentarios adicionales.\n\n")
	b.WriteString(chunk)
	return b.String()
}

func buildMergePrompt(parts []string) string {
	var b strings.Builder
	b.WriteString("Combina las siguientes extracciones parciales de un mismo contrato en un único ")
	b.WriteString("resumen en viñetas, sin duplicados, conservando actividades, entregables, ")
	b.WriteString("perfiles y materiales.\n")
	for i, p := range parts {
		fmt.Fprintf(&b, "\n--- PARTE %d ---\n%s\n", i+1, p)
	}
	return b.String()
}

// formatCatalogSample renders a bounded slice of both catalogs so the
// oracle anchors on plausible prices without blowing up the prompt.
func formatCatalogSample(catalogs EstimationCatalogs, sampleSize int) string {
	if sampleSize <= 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range catalogs.Professionals {
		if i >= sampleSize {
			break
		}
		fmt.Fprintf(&b, "- %s (%s): %.0f/mes\n", p.Role, p.Profile, p.MonthlyValue)
	}
	for i, m := range catalogs.Materials {
		if i >= sampleSize {
			break
		}
		fmt.Fprintf(&b, "- %s (%s): %.0f/unidad\n", m.Name, m.Unit, m.UnitPrice)
	}
	return b.String()
}

// planResponseSchema is the structured-output schema for the final
// generation call: the four numeric fields are required per line and
// unknown extra fields are rejected. The oracle's adherence is advisory;
// NormalizePlan still runs on every response.
func planResponseSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"assumptions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"professionals": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"role":          map[string]any{"type": "string"},
						"profile":       map[string]any{"type": "string"},
						"quantity":      map[string]any{"type": "number"},
						"dedication":    map[string]any{"type": "number"},
						"months":        map[string]any{"type": "number"},
						"monthlyValue":  map[string]any{"type": "number"},
						"justification": map[string]any{"type": "string"},
					},
					"required":             []string{"role", "quantity", "dedication", "months", "monthlyValue"},
					"additionalProperties": false,
				},
			},
			"materials": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":          map[string]any{"type": "string"},
						"unit":          map[string]any{"type": "string"},
						"quantity":      map[string]any{"type": "number"},
						"unitPrice":     map[string]any{"type": "number"},
						"justification": map[string]any{"type": "string"},
					},
					"required":             []string{"name", "quantity", "unitPrice"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"assumptions", "professionals", "materials"},
		"additionalProperties": false,
	}
}
