package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"costeo_propuestas/internal/domain/entities"
	"costeo_propuestas/internal/usecase/interfaces"
	mock_interfaces "costeo_propuestas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const validPlanJSON = `{
	"assumptions": ["Duración de 6 meses"],
	"professionals": [
		{"role": "Coordinador", "profile": "Ing. civil", "quantity": 2, "months": 6, "dedication": 0.5, "monthlyValue": 5000000, "justification": "coordinación"}
	],
	"materials": []
}`

func testSources() EstimationSources {
	return EstimationSources{
		ObjectText:      "Interventoría técnica de obra vial",
		MethodologyText: "Visitas semanales y comités mensuales",
		TdrText:         "Se requiere coordinador y comisión de topografía",
	}
}

func TestEstimationUseCase_DirectMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	oracle := mock_interfaces.NewMockITextOracle(ctrl)
	uc := NewEstimationUseCase(oracle, DefaultEstimationConfig())

	var prompt string
	oracle.EXPECT().GenerateStructured(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p string, schema map[string]any) (string, error) {
			prompt = p
			if schema == nil {
				t.Fatalf("expected a structured-output schema")
			}
			return validPlanJSON, nil
		},
	)

	catalogs := EstimationCatalogs{
		Professionals: []entities.CatalogProfessional{{Role: "Coordinador", Profile: "Ing. civil", MonthlyValue: 5_200_000}},
	}
	params := entities.CostParameters{FactorPrestacional: 1.58, ImprevistosPct: 5, MargenPct: 30}

	res, err := uc.Estimate(context.Background(), testSources(), catalogs, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(prompt, "Interventoría técnica") {
		t.Fatalf("prompt is missing the source text")
	}
	if !strings.Contains(prompt, "Coordinador (Ing. civil): 5200000/mes") {
		t.Fatalf("prompt is missing the catalog sample:\n%s", prompt)
	}

	if len(res.Plan.Professionals) != 1 {
		t.Fatalf("plan = %+v", res.Plan)
	}
	if res.Totals.SubtotalProfessionals != 47_400_000 {
		t.Fatalf("subtotal = %v, want 47400000", res.Totals.SubtotalProfessionals)
	}
	if res.Totals.SuggestedOffer == nil || *res.Totals.SuggestedOffer != 71_100_000 {
		t.Fatalf("offer = %v, want 71100000", res.Totals.SuggestedOffer)
	}
}

func TestEstimationUseCase_SalvagesWrappedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	oracle := mock_interfaces.NewMockITextOracle(ctrl)
	uc := NewEstimationUseCase(oracle, DefaultEstimationConfig())

	oracle.EXPECT().GenerateStructured(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Here is the plan: "+validPlanJSON+" Thanks!", nil)

	res, err := uc.Estimate(context.Background(), testSources(), EstimationCatalogs{}, entities.DefaultCostParameters())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Plan.Professionals) != 1 {
		t.Fatalf("embedded object not decoded: %+v", res.Plan)
	}
}

func TestEstimationUseCase_MalformedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	oracle := mock_interfaces.NewMockITextOracle(ctrl)
	uc := NewEstimationUseCase(oracle, DefaultEstimationConfig())

	oracle.EXPECT().GenerateStructured(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("Lo siento, no puedo producir el plan solicitado.", nil)

	_, err := uc.Estimate(context.Background(), testSources(), EstimationCatalogs{}, entities.DefaultCostParameters())
	if !errors.Is(err, ErrOracleOutputMalformed) {
		t.Fatalf("expected ErrOracleOutputMalformed, got %v", err)
	}
	if !strings.Contains(err.Error(), "no puedo producir") {
		t.Fatalf("error should carry a diagnostic excerpt: %v", err)
	}
}

func TestEstimationUseCase_InputTooLarge(t *testing.T) {
	cfg := DefaultEstimationConfig()
	cfg.MaxInputChars = 100

	uc := NewEstimationUseCase(nil, cfg)
	sources := EstimationSources{TdrText: strings.Repeat("a", 200)}

	_, err := uc.Estimate(context.Background(), sources, EstimationCatalogs{}, entities.DefaultCostParameters())
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
	if !strings.Contains(err.Error(), "limit 100") {
		t.Fatalf("error should report the limit: %v", err)
	}
}

func TestEstimationUseCase_OversizeWithCondensationDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	oracle := mock_interfaces.NewMockITextOracle(ctrl)

	cfg := DefaultEstimationConfig()
	cfg.DirectCallChars = 50
	cfg.EnableCondensation = false
	uc := NewEstimationUseCase(oracle, cfg)

	sources := EstimationSources{TdrText: strings.Repeat("b", 120)}
	_, err := uc.Estimate(context.Background(), sources, EstimationCatalogs{}, entities.DefaultCostParameters())
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
	if !strings.Contains(err.Error(), "limit 50") {
		t.Fatalf("error should report received vs limit: %v", err)
	}
}

func TestEstimationUseCase_CondensationMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	oracle := mock_interfaces.NewMockITextOracle(ctrl)

	cfg := DefaultEstimationConfig()
	cfg.DirectCallChars = 80
	cfg.ChunkChars = 100
	cfg.MaxParallelExtracts = 2
	uc := NewEstimationUseCase(oracle, cfg)

	sources := EstimationSources{TdrText: strings.Repeat("requisito ", 30)} // ~300 chars -> 3+ chunks

	var mu sync.Mutex
	var extractPrompts, mergePrompts []string
	oracle.EXPECT().GenerateText(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			switch {
			case strings.HasPrefix(prompt, "Extrae"):
				extractPrompts = append(extractPrompts, prompt)
				return "- actividad", nil
			case strings.HasPrefix(prompt, "Combina"):
				mergePrompts = append(mergePrompts, prompt)
				return "- resumen consolidado", nil
			default:
				t.Errorf("unexpected prompt: %.40s", prompt)
				return "", nil
			}
		},
	).MinTimes(3)

	oracle.EXPECT().GenerateStructured(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string, _ map[string]any) (string, error) {
			if !strings.Contains(prompt, "resumen consolidado") {
				t.Errorf("final prompt should use the merged summary, not the raw text")
			}
			return validPlanJSON, nil
		},
	)

	if _, err := uc.Estimate(context.Background(), sources, EstimationCatalogs{}, entities.DefaultCostParameters()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(extractPrompts) < 2 {
		t.Fatalf("expected one extraction per chunk, got %d", len(extractPrompts))
	}
	if len(mergePrompts) != 1 {
		t.Fatalf("expected exactly one merge call, got %d", len(mergePrompts))
	}
}

func TestEstimationUseCase_OracleNotConfigured(t *testing.T) {
	uc := NewEstimationUseCase(nil, DefaultEstimationConfig())
	_, err := uc.Estimate(context.Background(), testSources(), EstimationCatalogs{}, entities.DefaultCostParameters())
	if !errors.Is(err, ErrOracleUnavailable) {
		t.Fatalf("expected ErrOracleUnavailable, got %v", err)
	}
}

func TestEstimationUseCase_UpstreamStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		expect error
	}{
		{name: "401 unauthorized", err: &interfaces.OracleError{StatusCode: 401, Message: "API key not valid"}, expect: ErrOracleUnauthorized},
		{name: "403 unauthorized", err: &interfaces.OracleError{StatusCode: 403, Message: "forbidden"}, expect: ErrOracleUnauthorized},
		{name: "429 rate limited", err: &interfaces.OracleError{StatusCode: 429, Message: "quota exceeded"}, expect: ErrOracleRateLimited},
		{name: "500 generic", err: &interfaces.OracleError{StatusCode: 500, Message: "boom"}, expect: ErrOracleCallFailed},
		{name: "transport failure", err: fmt.Errorf("dial tcp: connection refused"), expect: ErrOracleCallFailed},
		{name: "timeout", err: context.DeadlineExceeded, expect: ErrOracleCallFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			oracle := mock_interfaces.NewMockITextOracle(ctrl)
			uc := NewEstimationUseCase(oracle, DefaultEstimationConfig())

			oracle.EXPECT().GenerateStructured(gomock.Any(), gomock.Any(), gomock.Any()).Return("", tc.err)

			_, err := uc.Estimate(context.Background(), testSources(), EstimationCatalogs{}, entities.DefaultCostParameters())
			if !errors.Is(err, tc.expect) {
				t.Fatalf("expected %v, got %v", tc.expect, err)
			}
		})
	}
}

func TestEstimationUseCase_CallerParamsWin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	oracle := mock_interfaces.NewMockITextOracle(ctrl)
	uc := NewEstimationUseCase(oracle, DefaultEstimationConfig())

	// The oracle echoes its own parameters; they must be ignored.
	echoed := `{"params": {"margenPct": 99, "imprevistosPct": 40},
		"professionals": [{"role": "Analista", "quantity": 1, "months": 1, "dedication": 1, "monthlyValue": 1000000}],
		"materials": [], "assumptions": []}`
	oracle.EXPECT().GenerateStructured(gomock.Any(), gomock.Any(), gomock.Any()).Return(echoed, nil)

	params := entities.CostParameters{FactorPrestacional: 1, ImprevistosPct: 0, MargenPct: 0}
	res, err := uc.Estimate(context.Background(), testSources(), EstimationCatalogs{}, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Totals.Contingency != 0 {
		t.Fatalf("caller's 0%% contingency must win, got %v", res.Totals.Contingency)
	}
	if res.Totals.SuggestedOffer == nil || *res.Totals.SuggestedOffer != res.Totals.TotalProduction {
		t.Fatalf("caller's 0%% margin must win, got %v", res.Totals.SuggestedOffer)
	}
}

func TestDecodePlanPayload(t *testing.T) {
	t.Run("strict", func(t *testing.T) {
		v, err := decodePlanPayload(`{"professionals": []}`)
		if err != nil || v == nil {
			t.Fatalf("strict decode failed: %v", err)
		}
	})

	t.Run("salvage", func(t *testing.T) {
		v, err := decodePlanPayload("```json\n{\"materials\": []}\n```")
		if err != nil || v == nil {
			t.Fatalf("salvage decode failed: %v", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := decodePlanPayload("sin objeto json")
		if !errors.Is(err, ErrOracleOutputMalformed) {
			t.Fatalf("expected ErrOracleOutputMalformed, got %v", err)
		}
	})

	t.Run("excerpt truncated", func(t *testing.T) {
		_, err := decodePlanPayload(strings.Repeat("x", 1000))
		if err == nil || len(err.Error()) > 400 {
			t.Fatalf("excerpt not truncated: %d chars", len(err.Error()))
		}
	})
}
