package quote

import (
	"github.com/shopspring/decimal"

	"stonetrade/internal/domain/entities"
)

// Message is one of the closed set of transition messages a draft accepts.
// The set is sealed: only types in this package satisfy the interface, so
// Apply can treat an unknown concrete type as a programming error.
type Message interface {
	isQuoteMessage()
}

// SetBuyer selects the buyer for the quote. The transition also forces the
// draft currency to the buyer's preferred currency and drops credit terms
// when the buyer is not credit-eligible.
type SetBuyer struct {
	Buyer entities.BuyerSummary
}

// AddLineItem appends a slab selection. Subtotal is computed inside the
// transition; callers supply only the inputs.
type AddLineItem struct {
	ProductID     string
	ProductName   string
	UnitAreaPrice decimal.Decimal
	AreaPerUnit   decimal.Decimal
	Quantity      int
}

// RemoveLineItem drops the line for the given product.
type RemoveLineItem struct {
	ProductID string
}

// UpdateLineItemQuantity changes a line's quantity and recomputes its
// subtotal in the same transition.
type UpdateLineItemQuantity struct {
	ProductID string
	Quantity  int
}

// SetCurrency changes the settlement currency without changing the buyer.
type SetCurrency struct {
	Currency entities.Currency
}

// SetShippingTerm picks the incoterm for the quote.
type SetShippingTerm struct {
	Term ShippingTerm
}

// SetValidityDays picks the offer validity period.
type SetValidityDays struct {
	Days int
}

// ToggleFlag flips one of the draft's boolean options.
type ToggleFlag struct {
	Flag FlagName
}

// SetFxRate captures the conversion rate snapshot for the draft. A draft
// accepts the snapshot at most once.
type SetFxRate struct {
	Rate decimal.Decimal
}

// SetFreightEstimate stores an explicitly computed freight figure.
type SetFreightEstimate struct {
	Amount decimal.Decimal
}

// SetBuyerMessage sets the optional free-text note shown to the buyer.
type SetBuyerMessage struct {
	Text string
}

func (SetBuyer) isQuoteMessage()               {}
func (AddLineItem) isQuoteMessage()            {}
func (RemoveLineItem) isQuoteMessage()         {}
func (UpdateLineItemQuantity) isQuoteMessage() {}
func (SetCurrency) isQuoteMessage()            {}
func (SetShippingTerm) isQuoteMessage()        {}
func (SetValidityDays) isQuoteMessage()        {}
func (ToggleFlag) isQuoteMessage()             {}
func (SetFxRate) isQuoteMessage()              {}
func (SetFreightEstimate) isQuoteMessage()     {}
func (SetBuyerMessage) isQuoteMessage()        {}
