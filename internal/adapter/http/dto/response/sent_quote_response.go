package response

import (
	"time"

	"stonetrade/internal/domain/quote"
)

type SentQuoteResponse struct {
	ID                      string             `json:"id"`
	SellerID                string             `json:"seller_id"`
	BuyerID                 string             `json:"buyer_id"`
	BuyerName               string             `json:"buyer_name"`
	BuyerLocation           string             `json:"buyer_location"`
	Currency                string             `json:"currency"`
	ShippingTerm            string             `json:"shipping_term"`
	ShippingPort            string             `json:"shipping_port"`
	ValidityDays            int                `json:"validity_days"`
	AllowPartialFulfillment bool               `json:"allow_partial_fulfillment"`
	LineItems               []LineItemResponse `json:"line_items"`
	MerchandiseSubtotal     string             `json:"merchandise_subtotal"`
	FreightEstimate         string             `json:"freight_estimate"`
	BuyerFacingTotal        string             `json:"buyer_facing_total"`
	InternalLedgerTotal     string             `json:"internal_ledger_total"`
	BuyerMessage            string             `json:"buyer_message,omitempty"`
	SentAt                  time.Time          `json:"sent_at"`
}

func FromSentQuote(q quote.SentQuote) SentQuoteResponse {
	return SentQuoteResponse{
		ID:                      q.ID,
		SellerID:                q.SellerID,
		BuyerID:                 q.BuyerID,
		BuyerName:               q.BuyerName,
		BuyerLocation:           q.BuyerLocation,
		Currency:                string(q.Currency),
		ShippingTerm:            string(q.ShippingTerm),
		ShippingPort:            q.ShippingPort,
		ValidityDays:            q.ValidityDays,
		AllowPartialFulfillment: q.AllowPartialFulfillment,
		LineItems:               fromLineItems(q.LineItems),
		MerchandiseSubtotal:     q.MerchandiseSubtotal.String(),
		FreightEstimate:         q.FreightEstimate.String(),
		BuyerFacingTotal:        q.BuyerFacingTotal.String(),
		InternalLedgerTotal:     q.InternalLedgerTotal.String(),
		BuyerMessage:            q.BuyerMessage,
		SentAt:                  q.SentAt,
	}
}
