package quote

import (
	"github.com/shopspring/decimal"

	"stonetrade/internal/domain/entities"
)

// ShippingTerm fixes who bears freight cost and insurance for the quote.
//
//   - FOB: buyer arranges and pays freight from the named port.
//   - CIF: seller pays cost, insurance and freight to the destination port.

type ShippingTerm string

const (
	ShippingTermFOB ShippingTerm = "FOB"
	ShippingTermCIF ShippingTerm = "CIF"
)

// IsValid checks if the term is one of the supported incoterms.
func (t ShippingTerm) IsValid() bool {
	switch t {
	case ShippingTermFOB, ShippingTermCIF:
		return true
	}
	return false
}

// ValidityChoices are the offer validity periods a seller may pick from.
var ValidityChoices = []int{7, 15, 30, 45}

// IsValidValidityDays reports whether days is one of ValidityChoices.
func IsValidValidityDays(days int) bool {
	for _, d := range ValidityChoices {
		if d == days {
			return true
		}
	}
	return false
}

// FlagName identifies one of the draft's boolean options.
type FlagName string

const (
	FlagAllowPartialFulfillment FlagName = "allow_partial_fulfillment"
	FlagShowCreditTerms         FlagName = "show_credit_terms"
	FlagFxLock                  FlagName = "fx_lock"
	FlagEscrow                  FlagName = "escrow"
)

// IsValid checks if the flag name is part of the closed flag set.
func (f FlagName) IsValid() bool {
	switch f {
	case FlagAllowPartialFulfillment, FlagShowCreditTerms, FlagFxLock, FlagEscrow:
		return true
	}
	return false
}

// LineItem is one slab selection within a draft.
//
// Subtotal is derived from the other three fields and is recomputed inside
// every transition that touches them; it is never accepted from a caller.
type LineItem struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	UnitAreaPrice decimal.Decimal `json:"unit_area_price"`
	Quantity      int             `json:"quantity"`
	AreaPerUnit   decimal.Decimal `json:"area_per_unit"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

func (i LineItem) computeSubtotal() decimal.Decimal {
	return decimal.NewFromInt(int64(i.Quantity)).Mul(i.AreaPerUnit).Mul(i.UnitAreaPrice)
}

// Draft is the in-progress quote being assembled by the workflow.
//
// Domain notes:
//   - Mutation happens only through Apply; the rest of the system treats a
//     Draft as an immutable value and replaces it wholesale on each message.
//   - FxRateSnapshot is captured at most once per draft so that every
//     conversion within one quote uses the same rate.
//   - FreightEstimate stays zero until the seller explicitly asks for a
//     freight calculation.

type Draft struct {
	Buyer        *entities.BuyerSummary `json:"buyer,omitempty"`
	LineItems    []LineItem             `json:"line_items"`
	Currency     entities.Currency      `json:"currency"`
	ShippingTerm ShippingTerm           `json:"shipping_term"`
	ValidityDays int                    `json:"validity_days"`

	AllowPartialFulfillment bool `json:"allow_partial_fulfillment"`
	ShowCreditTerms         bool `json:"show_credit_terms"`
	FxLockEnabled           bool `json:"fx_lock_enabled"`
	EscrowEnabled           bool `json:"escrow_enabled"`

	FxRateSnapshot  *decimal.Decimal `json:"fx_rate_snapshot,omitempty"`
	FreightEstimate decimal.Decimal  `json:"freight_estimate"`
	BuyerMessage    string           `json:"buyer_message"`
}

// NewDraft returns an empty draft with the platform defaults every new
// quote starts from.
func NewDraft() Draft {
	return Draft{
		Currency:        entities.CurrencyUSD,
		ShippingTerm:    ShippingTermFOB,
		ValidityDays:    15,
		FreightEstimate: decimal.Zero,
	}
}

// cloneItems copies the line item slice so a transition never aliases the
// previous draft's backing array.
func (d Draft) cloneItems() []LineItem {
	if d.LineItems == nil {
		return nil
	}
	items := make([]LineItem, len(d.LineItems))
	copy(items, d.LineItems)
	return items
}

func (d Draft) findItem(productID string) int {
	for idx, item := range d.LineItems {
		if item.ProductID == productID {
			return idx
		}
	}
	return -1
}
