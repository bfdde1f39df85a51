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

func TestCatalogHandler_CreateProfessional(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalogo/profesionales", h.CreateProfessional)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalogo/profesionales", bytes.NewBufferString("{"))
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
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/catalogo/profesionales", h.CreateProfessional)

		uc.EXPECT().CreateProfessional(gomock.Any(), gomock.Any()).Return(entities.CatalogProfessional{ID: "p-1", Role: "Topógrafo", MonthlyValue: 3_500_000}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/catalogo/profesionales", bytes.NewBufferString(`{"role":"Topógrafo","monthlyValue":3500000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_ListProfessionals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("plain list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalogo/profesionales", h.ListProfessionals)

		uc.EXPECT().ListProfessionals(gomock.Any()).Return([]entities.CatalogProfessional{{ID: "p-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalogo/profesionales", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("query triggers ranked search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalogo/profesionales", h.ListProfessionals)

		uc.EXPECT().SearchProfessionals(gomock.Any(), "ingeniero civil").Return([]entities.CatalogProfessional{{ID: "p-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalogo/profesionales?q=ingeniero+civil", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalogo/materiales/:id", h.GetMaterial)

		uc.EXPECT().GetMaterial(gomock.Any(), "m-9").Return(entities.CatalogMaterial{}, usecase.ErrCatalogRecordNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalogo/materiales/m-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_UpdateProfessional(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.PUT("/v1/catalogo/profesionales/:id", h.UpdateProfessional)

	uc.EXPECT().UpdateProfessional(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p entities.CatalogProfessional) (entities.CatalogProfessional, error) {
			if p.ID != "p-1" {
				t.Fatalf("path id not applied: %+v", p)
			}
			return p, nil
		},
	)

	req := httptest.NewRequest(http.MethodPut, "/v1/catalogo/profesionales/p-1", bytes.NewBufferString(`{"role":"Topógrafo","monthlyValue":4000000}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCatalogHandler_DeleteMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.DELETE("/v1/catalogo/materiales/:id", h.DeleteMaterial)

	uc.EXPECT().DeleteMaterial(gomock.Any(), "m-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/catalogo/materiales/m-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapCatalogError(t *testing.T) {
	if got := mapCatalogError(usecase.ErrInvalidCatalogID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrInvalidCatalogRecord); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrCatalogRecordNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
