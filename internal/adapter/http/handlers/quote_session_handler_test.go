package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stonetrade/internal/adapter/http/handlers/mocks"
	"stonetrade/internal/domain/entities"
	"stonetrade/internal/domain/quote"
	"stonetrade/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sessionView() usecase.QuoteSessionView {
	now := time.Now().UTC()
	return usecase.QuoteSessionView{
		ID:        "sess-1",
		SellerID:  "sel-1",
		Stage:     quote.StageBuyer,
		Status:    quote.StatusActive,
		Draft:     quote.NewDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestQuoteSessionHandler_StartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.StartSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing seller id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.StartSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{}`))
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
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.StartSession)

		uc.EXPECT().Start(gomock.Any(), "sel-1").Return(sessionView(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"seller_id":"sel-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "sess-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["stage"] != "buyer" {
			t.Fatalf("expected buyer stage, got %v", body["stage"])
		}
	})
}

func TestQuoteSessionHandler_DispatchMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc *mocks.MockIQuoteSessionUseCase) *gin.Engine {
		h := NewQuoteSessionHandler(uc)
		r := gin.New()
		r.POST("/v1/quotes/:session_id/messages", h.DispatchMessage)
		return r
	}

	t.Run("set buyer resolves through directory path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().SelectBuyer(gomock.Any(), "sess-1", "byr-1001").Return(sessionView(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/messages", bytes.NewBufferString(`{"type":"set_buyer","buyer_id":"byr-1001"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("add line item rejects non-positive quantity before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		r := build(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/messages", bytes.NewBufferString(`{"type":"add_line_item","slab_id":"slb-2001","quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add line item success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().AddLineItem(gomock.Any(), "sess-1", "slb-2001", 5).Return(sessionView(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/messages", bytes.NewBufferString(`{"type":"add_line_item","slab_id":"slb-2001","quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown message type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		r := build(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/messages", bytes.NewBufferString(`{"type":"set_fx_rate","rate":"1.5"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("credit toggle rejection maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Apply(gomock.Any(), "sess-1", quote.ToggleFlag{Flag: quote.FlagShowCreditTerms}).
			Return(usecase.QuoteSessionView{}, quote.ErrCreditNotEligible)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/messages", bytes.NewBufferString(`{"type":"toggle_flag","flag":"show_credit_terms"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Apply(gomock.Any(), "ghost", gomock.Any()).Return(usecase.QuoteSessionView{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/ghost/messages", bytes.NewBufferString(`{"type":"set_validity_days","validity_days":30}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteSessionHandler_SubmitSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc *mocks.MockIQuoteSessionUseCase) *gin.Engine {
		h := NewQuoteSessionHandler(uc)
		r := gin.New()
		r.POST("/v1/quotes/:session_id/submit", h.SubmitSession)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		r := build(uc)

		sent := quote.SentQuote{
			ID:               "q-1",
			SellerID:         "sel-1",
			BuyerID:          "byr-1001",
			Currency:         entities.CurrencyUSD,
			BuyerFacingTotal: decimal.NewFromInt(10800),
			SentAt:           time.Now().UTC(),
		}
		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(sent, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not at review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(quote.SentQuote{}, quote.ErrNotAtReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("dispatch failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Submit(gomock.Any(), "sess-1").Return(quote.SentQuote{}, usecase.ErrNotificationDispatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestQuoteSessionHandler_Navigation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("next success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := gin.New()
		r.POST("/v1/quotes/:session_id/next", h.NextStage)

		uc.EXPECT().Next(gomock.Any(), "sess-1").Return(sessionView(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/next", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("next blocked by incomplete stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := gin.New()
		r.POST("/v1/quotes/:session_id/next", h.NextStage)

		uc.EXPECT().Next(gomock.Any(), "sess-1").Return(usecase.QuoteSessionView{}, quote.ErrStageIncomplete)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/next", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("back at first stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := gin.New()
		r.POST("/v1/quotes/:session_id/back", h.BackStage)

		uc.EXPECT().Back(gomock.Any(), "sess-1").Return(usecase.QuoteSessionView{}, quote.ErrAtFirstStage)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/back", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := gin.New()
		r.DELETE("/v1/quotes/:session_id", h.CancelSession)

		uc.EXPECT().Cancel(gomock.Any(), "sess-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/sess-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("finished session is gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := gin.New()
		r.POST("/v1/quotes/:session_id/next", h.NextStage)

		uc.EXPECT().Next(gomock.Any(), "sess-1").Return(usecase.QuoteSessionView{}, quote.ErrWorkflowDone)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/sess-1/next", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})
}

func TestMapQuoteSessionError(t *testing.T) {
	if got := mapQuoteSessionError(usecase.ErrInvalidSellerID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteSessionError(usecase.ErrSessionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteSessionError(usecase.ErrBuyerNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteSessionError(quote.ErrCreditNotEligible); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapQuoteSessionError(quote.ErrDuplicateLineItem); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuoteSessionError(quote.ErrWorkflowDone); got.HTTPStatus != http.StatusGone {
		t.Fatalf("expected 410")
	}
	if got := mapQuoteSessionError(usecase.ErrNotificationDispatch); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapQuoteSessionError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
