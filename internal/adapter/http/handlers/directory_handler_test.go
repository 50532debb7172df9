package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stonetrade/internal/adapter/http/handlers/mocks"
	"stonetrade/internal/domain/entities"
	"stonetrade/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDirectoryHandler_Buyers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("search forwards the query term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDirectoryUseCase(ctrl)
		h := NewDirectoryHandler(uc)

		r := gin.New()
		r.GET("/v1/buyers", h.SearchBuyers)

		uc.EXPECT().SearchBuyers(gomock.Any(), "granite").Return([]entities.BuyerSummary{
			{ID: "byr-1001", Name: "Granite Imports LLC", PreferredCurrency: entities.CurrencyUSD, CreditEligible: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/buyers?q=granite", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "byr-1001" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDirectoryUseCase(ctrl)
		h := NewDirectoryHandler(uc)

		r := gin.New()
		r.GET("/v1/buyers/:buyer_id", h.GetBuyer)

		uc.EXPECT().GetBuyer(gomock.Any(), "ghost").Return(entities.BuyerSummary{}, usecase.ErrBuyerNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/buyers/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDirectoryHandler_SearchSlabs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters parsed from query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDirectoryUseCase(ctrl)
		h := NewDirectoryHandler(uc)

		r := gin.New()
		r.GET("/v1/slabs", h.SearchSlabs)

		uc.EXPECT().SearchSlabs(gomock.Any(), "galaxy", entities.SlabFilters{Finish: "polished", ThicknessCM: 3}).
			Return([]entities.SlabSummary{{ID: "slb-2001", Name: "Black Galaxy"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/slabs?q=galaxy&finish=polished&thickness_cm=3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid thickness filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDirectoryUseCase(ctrl)
		h := NewDirectoryHandler(uc)

		r := gin.New()
		r.GET("/v1/slabs", h.SearchSlabs)

		req := httptest.NewRequest(http.MethodGet, "/v1/slabs?thickness_cm=thin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
