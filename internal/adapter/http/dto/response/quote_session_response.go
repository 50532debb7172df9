package response

import (
	"time"

	"stonetrade/internal/domain/entities"
	"stonetrade/internal/domain/quote"
	"stonetrade/internal/usecase"
)

type BuyerResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Location          string `json:"location"`
	PreferredCurrency string `json:"preferred_currency"`
	PreferredPort     string `json:"preferred_port"`
	CreditEligible    bool   `json:"credit_eligible"`
}

func FromBuyer(b entities.BuyerSummary) BuyerResponse {
	return BuyerResponse{
		ID:                b.ID,
		Name:              b.Name,
		Location:          b.Location,
		PreferredCurrency: string(b.PreferredCurrency),
		PreferredPort:     b.PreferredPort,
		CreditEligible:    b.CreditEligible,
	}
}

type LineItemResponse struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	UnitAreaPrice string `json:"unit_area_price"`
	Quantity      int    `json:"quantity"`
	AreaPerUnit   string `json:"area_per_unit"`
	Subtotal      string `json:"subtotal"`
}

func fromLineItems(items []quote.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, LineItemResponse{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			UnitAreaPrice: item.UnitAreaPrice.String(),
			Quantity:      item.Quantity,
			AreaPerUnit:   item.AreaPerUnit.String(),
			Subtotal:      item.Subtotal.String(),
		})
	}
	return out
}

type DraftResponse struct {
	Buyer                   *BuyerResponse     `json:"buyer,omitempty"`
	LineItems               []LineItemResponse `json:"line_items"`
	Currency                string             `json:"currency"`
	ShippingTerm            string             `json:"shipping_term"`
	ValidityDays            int                `json:"validity_days"`
	AllowPartialFulfillment bool               `json:"allow_partial_fulfillment"`
	ShowCreditTerms         bool               `json:"show_credit_terms"`
	FxLockEnabled           bool               `json:"fx_lock_enabled"`
	EscrowEnabled           bool               `json:"escrow_enabled"`
	FxRateSnapshot          *string            `json:"fx_rate_snapshot,omitempty"`
	FreightEstimate         string             `json:"freight_estimate"`
	BuyerMessage            string             `json:"buyer_message,omitempty"`
}

// TotalsResponse is the seller-side totals view. It carries both total
// paths; the buyer-facing document is produced elsewhere and never shows
// the internal figures.
type TotalsResponse struct {
	Currency            string `json:"currency"`
	MerchandiseSubtotal string `json:"merchandise_subtotal"`
	ConvertedSubtotal   string `json:"converted_subtotal"`
	FreightEstimate     string `json:"freight_estimate"`
	EscrowFee           string `json:"escrow_fee"`
	FxLockFee           string `json:"fx_lock_fee"`
	CreditLimit         string `json:"credit_limit"`
	BuyerFacingTotal    string `json:"buyer_facing_total"`
	InternalLedgerTotal string `json:"internal_ledger_total"`
}

type QuoteSessionResponse struct {
	SessionID string         `json:"session_id"`
	SellerID  string         `json:"seller_id"`
	Stage     string         `json:"stage"`
	Status    string         `json:"status"`
	Draft     DraftResponse  `json:"draft"`
	Totals    TotalsResponse `json:"totals"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func FromSessionView(v usecase.QuoteSessionView) QuoteSessionResponse {
	draft := DraftResponse{
		LineItems:               fromLineItems(v.Draft.LineItems),
		Currency:                string(v.Draft.Currency),
		ShippingTerm:            string(v.Draft.ShippingTerm),
		ValidityDays:            v.Draft.ValidityDays,
		AllowPartialFulfillment: v.Draft.AllowPartialFulfillment,
		ShowCreditTerms:         v.Draft.ShowCreditTerms,
		FxLockEnabled:           v.Draft.FxLockEnabled,
		EscrowEnabled:           v.Draft.EscrowEnabled,
		FreightEstimate:         v.Draft.FreightEstimate.String(),
		BuyerMessage:            v.Draft.BuyerMessage,
	}
	if v.Draft.Buyer != nil {
		b := FromBuyer(*v.Draft.Buyer)
		draft.Buyer = &b
	}
	if v.Draft.FxRateSnapshot != nil {
		rate := v.Draft.FxRateSnapshot.String()
		draft.FxRateSnapshot = &rate
	}

	return QuoteSessionResponse{
		SessionID: v.ID,
		SellerID:  v.SellerID,
		Stage:     string(v.Stage),
		Status:    string(v.Status),
		Draft:     draft,
		Totals: TotalsResponse{
			Currency:            string(v.Totals.Currency),
			MerchandiseSubtotal: v.Totals.MerchandiseSubtotal.String(),
			ConvertedSubtotal:   v.Totals.ConvertedSubtotal.String(),
			FreightEstimate:     v.Totals.FreightEstimate.String(),
			EscrowFee:           v.Totals.EscrowFee.String(),
			FxLockFee:           v.Totals.FxLockFee.String(),
			CreditLimit:         v.Totals.CreditLimit.String(),
			BuyerFacingTotal:    v.Totals.BuyerFacingTotal.String(),
			InternalLedgerTotal: v.Totals.InternalLedgerTotal.String(),
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
