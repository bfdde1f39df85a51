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

func TestCostPlanHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostPlanUseCase(ctrl)
		h := NewCostPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/planes", h.Save)

		req := httptest.NewRequest(http.MethodPost, "/v1/planes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing title rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostPlanUseCase(ctrl)
		h := NewCostPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/planes", h.Save)

		req := httptest.NewRequest(http.MethodPost, "/v1/planes", bytes.NewBufferString(`{"professionals":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostPlanUseCase(ctrl)
		h := NewCostPlanHandler(uc)

		r := gin.New()
		r.POST("/v1/planes", h.Save)

		uc.EXPECT().Save(gomock.Any(), "Interventoría vial", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, title string, plan entities.EstimationPlan, params entities.CostParameters) (entities.CostPlan, error) {
				if len(plan.Professionals) != 1 || plan.Professionals[0].Role != "Coordinador" {
					t.Fatalf("plan not mapped: %+v", plan)
				}
				if params.MargenPct != entities.DefaultMargenPct {
					t.Fatalf("expected default params: %+v", params)
				}
				return entities.CostPlan{ID: "plan-1", Title: title}, nil
			},
		)

		body := `{"title":"Interventoría vial","professionals":[{"role":"Coordinador","quantity":2,"months":6,"dedication":0.5,"monthlyValue":5000000}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/planes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "plan-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCostPlanHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostPlanUseCase(ctrl)
		h := NewCostPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/planes/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.CostPlan{}, usecase.ErrCostPlanNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/planes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostPlanUseCase(ctrl)
		h := NewCostPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/planes/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "plan-1").Return(entities.CostPlan{ID: "plan-1", Title: "Interventoría vial"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/planes/plan-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCostPlanHandler_Replace(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICostPlanUseCase(ctrl)
	h := NewCostPlanHandler(uc)

	r := gin.New()
	r.PUT("/v1/planes/:id", h.Replace)

	uc.EXPECT().Replace(gomock.Any(), "plan-1", "nuevo", gomock.Any(), gomock.Any()).Return(entities.CostPlan{ID: "plan-1", Title: "nuevo"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/planes/plan-1", bytes.NewBufferString(`{"title":"nuevo"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCostPlanHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICostPlanUseCase(ctrl)
	h := NewCostPlanHandler(uc)

	r := gin.New()
	r.DELETE("/v1/planes/:id", h.Delete)

	uc.EXPECT().Delete(gomock.Any(), "plan-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/planes/plan-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapCostPlanError(t *testing.T) {
	if got := mapCostPlanError(usecase.ErrInvalidPlanID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCostPlanError(usecase.ErrInvalidPlanTitle); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCostPlanError(usecase.ErrCostPlanNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCostPlanError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
