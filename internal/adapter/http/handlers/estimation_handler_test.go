package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"costeo_propuestas/internal/adapter/http/handlers/mocks"
	"costeo_propuestas/internal/domain/entities"
	"costeo_propuestas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEstimationRouter(h *EstimationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/ai/costeo", h.Estimate)
	return r
}

func postCosteo(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/ai/costeo", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimationHandler_Estimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewEstimationHandler(uc, nil)

		w := postCosteo(newEstimationRouter(h), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty source text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewEstimationHandler(uc, nil)

		w := postCosteo(newEstimationRouter(h), `{"objectText":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "EMPTY_SOURCE_TEXT" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("success with catalogs and explicit params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		cat := mocks.NewMockICatalogUseCase(ctrl)
		h := NewEstimationHandler(uc, cat)

		professionals := []entities.CatalogProfessional{{ID: "1", Role: "Coordinador", MonthlyValue: 5_200_000}}
		cat.EXPECT().ListProfessionals(gomock.Any()).Return(professionals, nil)
		cat.EXPECT().ListMaterials(gomock.Any()).Return([]entities.CatalogMaterial{}, nil)

		offer := 71_100_000.0
		uc.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, sources usecase.EstimationSources, catalogs usecase.EstimationCatalogs, params entities.CostParameters) (usecase.EstimationResult, error) {
				if sources.ObjectText != "interventoría vial" {
					t.Fatalf("sources not forwarded: %+v", sources)
				}
				if len(catalogs.Professionals) != 1 {
					t.Fatalf("catalogs not forwarded: %+v", catalogs)
				}
				if params.MargenPct != 20 || params.FactorPrestacional != entities.DefaultFactorPrestacional {
					t.Fatalf("params not merged with defaults: %+v", params)
				}
				return usecase.EstimationResult{
					Plan:   entities.EstimationPlan{Assumptions: []string{}, Professionals: []entities.ProfessionalLine{}, Materials: []entities.MaterialLine{}},
					Totals: entities.CostBreakdown{TotalProduction: 49_770_000, SuggestedOffer: &offer},
				}, nil
			},
		)

		w := postCosteo(newEstimationRouter(h), `{"objectText":"interventoría vial","params":{"margenPct":20}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "ok" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("inline catalogs skip the stored ones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		cat := mocks.NewMockICatalogUseCase(ctrl)
		h := NewEstimationHandler(uc, cat)

		// No List* expectations: stored catalogs must not be touched.
		uc.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ usecase.EstimationSources, catalogs usecase.EstimationCatalogs, _ entities.CostParameters) (usecase.EstimationResult, error) {
				if len(catalogs.Professionals) != 1 || catalogs.Professionals[0].Role != "Topógrafo" {
					t.Fatalf("inline catalogs not used: %+v", catalogs)
				}
				return usecase.EstimationResult{}, nil
			},
		)

		body := `{"objectText":"obra","catalogs":{"professionals":[{"role":"Topógrafo","monthlyValue":3500000}]}}`
		w := postCosteo(newEstimationRouter(h), body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("catalog failure degrades to empty catalogs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		cat := mocks.NewMockICatalogUseCase(ctrl)
		h := NewEstimationHandler(uc, cat)

		cat.EXPECT().ListProfessionals(gomock.Any()).Return(nil, errors.New("db down"))
		cat.EXPECT().ListMaterials(gomock.Any()).Return(nil, errors.New("db down"))
		uc.EXPECT().Estimate(gomock.Any(), gomock.Any(), usecase.EstimationCatalogs{}, gomock.Any()).Return(usecase.EstimationResult{}, nil)

		w := postCosteo(newEstimationRouter(h), `{"objectText":"obra"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("pipeline errors map to status codes", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{usecase.ErrInputTooLarge, http.StatusRequestEntityTooLarge},
			{usecase.ErrOracleUnavailable, http.StatusServiceUnavailable},
			{usecase.ErrOracleRateLimited, http.StatusTooManyRequests},
			{usecase.ErrOracleUnauthorized, http.StatusUnauthorized},
			{usecase.ErrOracleOutputMalformed, http.StatusBadGateway},
			{usecase.ErrOracleCallFailed, http.StatusInternalServerError},
			{errors.New("boom"), http.StatusInternalServerError},
		}

		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIEstimationUseCase(ctrl)
			h := NewEstimationHandler(uc, nil)

			uc.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.EstimationResult{}, tc.err)

			w := postCosteo(newEstimationRouter(h), `{"objectText":"obra"}`)
			if w.Code != tc.want {
				t.Fatalf("err %v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
			ctrl.Finish()
		}
	})
}
