package request

import (
	"errors"
	"testing"

	"stonetrade/internal/domain/entities"
	"stonetrade/internal/domain/quote"
)

func intPtr(v int) *int { return &v }

func TestQuoteMessageRequest_ResolveQuantity(t *testing.T) {
	if _, err := (QuoteMessageRequest{}).ResolveQuantity(); !errors.Is(err, ErrInvalidQuantityValue) {
		t.Fatalf("expected ErrInvalidQuantityValue for nil quantity, got %v", err)
	}
	if _, err := (QuoteMessageRequest{Quantity: intPtr(0)}).ResolveQuantity(); !errors.Is(err, ErrInvalidQuantityValue) {
		t.Fatalf("expected ErrInvalidQuantityValue for zero, got %v", err)
	}
	if _, err := (QuoteMessageRequest{Quantity: intPtr(-3)}).ResolveQuantity(); !errors.Is(err, ErrInvalidQuantityValue) {
		t.Fatalf("expected ErrInvalidQuantityValue for negative, got %v", err)
	}
	qty, err := (QuoteMessageRequest{Quantity: intPtr(5)}).ResolveQuantity()
	if err != nil || qty != 5 {
		t.Fatalf("expected 5, got %d (%v)", qty, err)
	}
}

func TestQuoteMessageRequest_ResolveSlabID(t *testing.T) {
	if got := (QuoteMessageRequest{SlabID: " slb-2001 "}).ResolveSlabID(); got != "slb-2001" {
		t.Fatalf("expected slab_id to win, got %q", got)
	}
	if got := (QuoteMessageRequest{ProductID: "slb-2002"}).ResolveSlabID(); got != "slb-2002" {
		t.Fatalf("expected product_id fallback, got %q", got)
	}
}

func TestQuoteMessageRequest_ToMessage(t *testing.T) {
	t.Run("remove line item", func(t *testing.T) {
		msg, err := (QuoteMessageRequest{Type: MessageTypeRemoveLineItem, ProductID: "slb-2001"}).ToMessage()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, ok := msg.(quote.RemoveLineItem); !ok || got.ProductID != "slb-2001" {
			t.Fatalf("unexpected message: %#v", msg)
		}
	})

	t.Run("remove line item without product id", func(t *testing.T) {
		if _, err := (QuoteMessageRequest{Type: MessageTypeRemoveLineItem}).ToMessage(); !errors.Is(err, ErrMissingProductID) {
			t.Fatalf("expected ErrMissingProductID, got %v", err)
		}
	})

	t.Run("update quantity validates at the boundary", func(t *testing.T) {
		if _, err := (QuoteMessageRequest{Type: MessageTypeUpdateQuantity, ProductID: "slb-2001", Quantity: intPtr(0)}).ToMessage(); !errors.Is(err, ErrInvalidQuantityValue) {
			t.Fatalf("expected ErrInvalidQuantityValue, got %v", err)
		}
		msg, err := (QuoteMessageRequest{Type: MessageTypeUpdateQuantity, ProductID: "slb-2001", Quantity: intPtr(7)}).ToMessage()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := msg.(quote.UpdateLineItemQuantity); got.Quantity != 7 {
			t.Fatalf("unexpected message: %#v", msg)
		}
	})

	t.Run("set currency normalizes case", func(t *testing.T) {
		msg, err := (QuoteMessageRequest{Type: MessageTypeSetCurrency, Currency: " usd "}).ToMessage()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := msg.(quote.SetCurrency); got.Currency != entities.CurrencyUSD {
			t.Fatalf("unexpected currency: %#v", got)
		}
	})

	t.Run("set validity days requires the field", func(t *testing.T) {
		if _, err := (QuoteMessageRequest{Type: MessageTypeSetValidityDays}).ToMessage(); !errors.Is(err, ErrMissingValidityDays) {
			t.Fatalf("expected ErrMissingValidityDays, got %v", err)
		}
	})

	t.Run("toggle flag", func(t *testing.T) {
		msg, err := (QuoteMessageRequest{Type: MessageTypeToggleFlag, Flag: "escrow"}).ToMessage()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := msg.(quote.ToggleFlag); got.Flag != quote.FlagEscrow {
			t.Fatalf("unexpected flag: %#v", got)
		}
	})

	t.Run("server-side fields are not message types", func(t *testing.T) {
		for _, typ := range []string{"set_fx_rate", "set_freight_estimate", ""} {
			if _, err := (QuoteMessageRequest{Type: typ}).ToMessage(); !errors.Is(err, ErrUnknownMessageType) {
				t.Fatalf("expected ErrUnknownMessageType for %q, got %v", typ, err)
			}
		}
	})
}
