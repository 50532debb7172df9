package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"stonetrade/internal/domain/entities"
)

// SentQuote is the immutable record produced when a draft is submitted.
// Packaging performs no business computation: the totals are handed in
// already evaluated, and nothing on this value changes afterwards.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (seller_id-index): seller_id

type SentQuote struct {
	ID       string `json:"id"`
	SellerID string `json:"seller_id"`

	BuyerID       string            `json:"buyer_id"`
	BuyerName     string            `json:"buyer_name"`
	BuyerLocation string            `json:"buyer_location"`
	Currency      entities.Currency `json:"currency"`

	ShippingTerm            ShippingTerm `json:"shipping_term"`
	ShippingPort            string       `json:"shipping_port"`
	ValidityDays            int          `json:"validity_days"`
	AllowPartialFulfillment bool         `json:"allow_partial_fulfillment"`

	LineItems []LineItem `json:"line_items"`

	MerchandiseSubtotal decimal.Decimal `json:"merchandise_subtotal"`
	FreightEstimate     decimal.Decimal `json:"freight_estimate"`
	BuyerFacingTotal    decimal.Decimal `json:"buyer_facing_total"`
	InternalLedgerTotal decimal.Decimal `json:"internal_ledger_total"`

	BuyerMessage string    `json:"buyer_message,omitempty"`
	SentAt       time.Time `json:"sent_at"`
}

// NewSentQuote packages a review-complete draft and its evaluated totals.
// The caller guarantees the draft passed the review validator, so the buyer
// pointer is non-nil here.
func NewSentQuote(id, sellerID string, d Draft, t Totals, sentAt time.Time) SentQuote {
	items := make([]LineItem, len(d.LineItems))
	copy(items, d.LineItems)
	return SentQuote{
		ID:                      id,
		SellerID:                sellerID,
		BuyerID:                 d.Buyer.ID,
		BuyerName:               d.Buyer.Name,
		BuyerLocation:           d.Buyer.Location,
		Currency:                d.Currency,
		ShippingTerm:            d.ShippingTerm,
		ShippingPort:            d.Buyer.PreferredPort,
		ValidityDays:            d.ValidityDays,
		AllowPartialFulfillment: d.AllowPartialFulfillment,
		LineItems:               items,
		MerchandiseSubtotal:     t.MerchandiseSubtotal,
		FreightEstimate:         t.FreightEstimate,
		BuyerFacingTotal:        t.BuyerFacingTotal,
		InternalLedgerTotal:     t.InternalLedgerTotal,
		BuyerMessage:            d.BuyerMessage,
		SentAt:                  sentAt,
	}
}
