package quote

import (
	"github.com/shopspring/decimal"

	"stonetrade/internal/domain/entities"
)

// RatePolicy carries the platform's pricing constants. Every rate here is a
// placeholder sourced from configuration, not a live market or carrier feed;
// swapping the policy must never require touching the engine.
type RatePolicy struct {
	FreightRate       decimal.Decimal
	EscrowFeeRate     decimal.Decimal
	FxLockFeeRate     decimal.Decimal
	CreditRatio       decimal.Decimal
	PlatformCreditCap decimal.Decimal
	PlatformDiscount  decimal.Decimal
	TaxesAndFees      decimal.Decimal
}

// DefaultRatePolicy returns the platform's stock rates.
func DefaultRatePolicy() RatePolicy {
	return RatePolicy{
		FreightRate:       decimal.NewFromFloat(0.08),
		EscrowFeeRate:     decimal.NewFromFloat(0.015),
		FxLockFeeRate:     decimal.NewFromFloat(0.005),
		CreditRatio:       decimal.NewFromFloat(0.8),
		PlatformCreditCap: decimal.NewFromInt(50000),
		PlatformDiscount:  decimal.NewFromInt(500),
		TaxesAndFees:      decimal.NewFromInt(225),
	}
}

// Totals is the full derived-computation snapshot for a draft.
type Totals struct {
	Currency            entities.Currency `json:"currency"`
	MerchandiseSubtotal decimal.Decimal   `json:"merchandise_subtotal"`
	ConvertedSubtotal   decimal.Decimal   `json:"converted_subtotal"`
	FreightEstimate     decimal.Decimal   `json:"freight_estimate"`
	EscrowFee           decimal.Decimal   `json:"escrow_fee"`
	FxLockFee           decimal.Decimal   `json:"fx_lock_fee"`
	CreditLimit         decimal.Decimal   `json:"credit_limit"`
	BuyerFacingTotal    decimal.Decimal   `json:"buyer_facing_total"`
	InternalLedgerTotal decimal.Decimal   `json:"internal_ledger_total"`
}

// Engine derives all quote figures from a draft. Every method is a pure
// function of the draft and the policy; nothing is cached between calls.
type Engine struct {
	policy RatePolicy
}

func NewEngine(policy RatePolicy) Engine {
	return Engine{policy: policy}
}

// MerchandiseSubtotal sums the line item subtotals. Both total paths below
// start from this one figure.
func (e Engine) MerchandiseSubtotal(d Draft) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range d.LineItems {
		sum = sum.Add(item.Subtotal)
	}
	return sum
}

// ConvertedSubtotal expresses the merchandise subtotal in the draft currency
// when it diverges from the buyer's preferred currency, using the one fx
// snapshot captured for this draft. Without a buyer, a divergence, or a
// snapshot there is nothing to convert.
func (e Engine) ConvertedSubtotal(d Draft) decimal.Decimal {
	sub := e.MerchandiseSubtotal(d)
	if d.Buyer == nil || d.Currency == d.Buyer.PreferredCurrency {
		return sub
	}
	if d.FxRateSnapshot == nil {
		return sub
	}
	return sub.Mul(*d.FxRateSnapshot)
}

// FreightEstimate computes the freight heuristic for the draft. The rate is
// a placeholder policy constant, not a carrier quote; the result is only
// stored on the draft when the seller explicitly asks for a calculation.
func (e Engine) FreightEstimate(d Draft) decimal.Decimal {
	return e.policy.FreightRate.Mul(e.MerchandiseSubtotal(d))
}

// CreditLimit is the credit the platform would extend on this quote. It is
// zero unless the buyer is credit-eligible and the seller exposed credit
// terms on the add-ons stage.
func (e Engine) CreditLimit(d Draft) decimal.Decimal {
	if d.Buyer == nil || !d.Buyer.CreditEligible || !d.ShowCreditTerms {
		return decimal.Zero
	}
	limit := e.policy.CreditRatio.Mul(e.MerchandiseSubtotal(d))
	if limit.GreaterThan(e.policy.PlatformCreditCap) {
		return e.policy.PlatformCreditCap
	}
	return limit
}

// EscrowFee is the platform fee for holding funds pending delivery.
func (e Engine) EscrowFee(d Draft) decimal.Decimal {
	if !d.EscrowEnabled {
		return decimal.Zero
	}
	return e.policy.EscrowFeeRate.Mul(e.MerchandiseSubtotal(d))
}

// FxLockFee is the platform fee for holding the conversion rate.
func (e Engine) FxLockFee(d Draft) decimal.Decimal {
	if !d.FxLockEnabled {
		return decimal.Zero
	}
	return e.policy.FxLockFeeRate.Mul(e.MerchandiseSubtotal(d))
}

// BuyerFacingTotal is the price disclosed to the buyer: merchandise plus the
// stored freight estimate, nothing else. Escrow, fx-lock and credit
// economics are seller-side margin and must never appear here. Keep this
// function separate from InternalLedgerTotal; the two paths share only the
// merchandise subtotal.
func (e Engine) BuyerFacingTotal(d Draft) decimal.Decimal {
	return e.MerchandiseSubtotal(d).Add(d.FreightEstimate)
}

// InternalLedgerTotal is the platform-side total: merchandise minus the
// platform discount plus taxes and fees. Never shown to the buyer.
func (e Engine) InternalLedgerTotal(d Draft) decimal.Decimal {
	return e.MerchandiseSubtotal(d).Sub(e.policy.PlatformDiscount).Add(e.policy.TaxesAndFees)
}

// Totals evaluates every derived figure for the draft in one pass.
func (e Engine) Totals(d Draft) Totals {
	return Totals{
		Currency:            d.Currency,
		MerchandiseSubtotal: e.MerchandiseSubtotal(d),
		ConvertedSubtotal:   e.ConvertedSubtotal(d),
		FreightEstimate:     d.FreightEstimate,
		EscrowFee:           e.EscrowFee(d),
		FxLockFee:           e.FxLockFee(d),
		CreditLimit:         e.CreditLimit(d),
		BuyerFacingTotal:    e.BuyerFacingTotal(d),
		InternalLedgerTotal: e.InternalLedgerTotal(d),
	}
}
