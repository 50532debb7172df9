package quote

import "errors"

var (
	ErrUnknownMessage      = errors.New("unknown quote message")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrInvalidUnitPrice    = errors.New("unit area price must be positive")
	ErrInvalidArea         = errors.New("area per unit must be positive")
	ErrDuplicateLineItem   = errors.New("line item already present for product")
	ErrLineItemNotFound    = errors.New("line item not found")
	ErrInvalidCurrency     = errors.New("unsupported currency")
	ErrInvalidShippingTerm = errors.New("unsupported shipping term")
	ErrInvalidValidityDays = errors.New("unsupported validity period")
	ErrUnknownFlag         = errors.New("unknown flag")
	ErrCreditNotEligible   = errors.New("buyer is not credit eligible")
	ErrFxRateAlreadySet    = errors.New("fx rate snapshot already captured")
	ErrInvalidFxRate       = errors.New("fx rate must be positive")
	ErrNegativeFreight     = errors.New("freight estimate cannot be negative")
)

// Apply is the single pure transition function for quote drafts: it returns
// a new draft with the message applied, or the unchanged input draft and a
// descriptive error when the message is rejected. There is no partial
// application; a rejected message leaves no trace on the draft.
func Apply(d Draft, msg Message) (Draft, error) {
	switch m := msg.(type) {
	case SetBuyer:
		return applySetBuyer(d, m)
	case AddLineItem:
		return applyAddLineItem(d, m)
	case RemoveLineItem:
		return applyRemoveLineItem(d, m)
	case UpdateLineItemQuantity:
		return applyUpdateQuantity(d, m)
	case SetCurrency:
		if !m.Currency.IsValid() {
			return d, ErrInvalidCurrency
		}
		d.Currency = m.Currency
		return d, nil
	case SetShippingTerm:
		if !m.Term.IsValid() {
			return d, ErrInvalidShippingTerm
		}
		d.ShippingTerm = m.Term
		return d, nil
	case SetValidityDays:
		if !IsValidValidityDays(m.Days) {
			return d, ErrInvalidValidityDays
		}
		d.ValidityDays = m.Days
		return d, nil
	case ToggleFlag:
		return applyToggleFlag(d, m)
	case SetFxRate:
		if d.FxRateSnapshot != nil {
			return d, ErrFxRateAlreadySet
		}
		if !m.Rate.IsPositive() {
			return d, ErrInvalidFxRate
		}
		rate := m.Rate
		d.FxRateSnapshot = &rate
		return d, nil
	case SetFreightEstimate:
		if m.Amount.IsNegative() {
			return d, ErrNegativeFreight
		}
		d.FreightEstimate = m.Amount
		return d, nil
	case SetBuyerMessage:
		d.BuyerMessage = m.Text
		return d, nil
	default:
		return d, ErrUnknownMessage
	}
}

func applySetBuyer(d Draft, m SetBuyer) (Draft, error) {
	if !m.Buyer.PreferredCurrency.IsValid() {
		return d, ErrInvalidCurrency
	}
	buyer := m.Buyer
	d.Buyer = &buyer
	// Currency always follows the selected buyer's preference.
	d.Currency = buyer.PreferredCurrency
	if !buyer.CreditEligible {
		d.ShowCreditTerms = false
	}
	return d, nil
}

func applyAddLineItem(d Draft, m AddLineItem) (Draft, error) {
	if m.Quantity <= 0 {
		return d, ErrInvalidQuantity
	}
	if !m.UnitAreaPrice.IsPositive() {
		return d, ErrInvalidUnitPrice
	}
	if !m.AreaPerUnit.IsPositive() {
		return d, ErrInvalidArea
	}
	if d.findItem(m.ProductID) >= 0 {
		return d, ErrDuplicateLineItem
	}
	item := LineItem{
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		UnitAreaPrice: m.UnitAreaPrice,
		Quantity:      m.Quantity,
		AreaPerUnit:   m.AreaPerUnit,
	}
	item.Subtotal = item.computeSubtotal()
	d.LineItems = append(d.cloneItems(), item)
	return d, nil
}

func applyRemoveLineItem(d Draft, m RemoveLineItem) (Draft, error) {
	idx := d.findItem(m.ProductID)
	if idx < 0 {
		return d, ErrLineItemNotFound
	}
	items := d.cloneItems()
	d.LineItems = append(items[:idx], items[idx+1:]...)
	return d, nil
}

func applyUpdateQuantity(d Draft, m UpdateLineItemQuantity) (Draft, error) {
	if m.Quantity <= 0 {
		return d, ErrInvalidQuantity
	}
	idx := d.findItem(m.ProductID)
	if idx < 0 {
		return d, ErrLineItemNotFound
	}
	items := d.cloneItems()
	items[idx].Quantity = m.Quantity
	items[idx].Subtotal = items[idx].computeSubtotal()
	d.LineItems = items
	return d, nil
}

func applyToggleFlag(d Draft, m ToggleFlag) (Draft, error) {
	switch m.Flag {
	case FlagAllowPartialFulfillment:
		d.AllowPartialFulfillment = !d.AllowPartialFulfillment
	case FlagShowCreditTerms:
		// Credit terms can only ever be shown to a credit-eligible buyer.
		if !d.ShowCreditTerms && (d.Buyer == nil || !d.Buyer.CreditEligible) {
			return d, ErrCreditNotEligible
		}
		d.ShowCreditTerms = !d.ShowCreditTerms
	case FlagFxLock:
		d.FxLockEnabled = !d.FxLockEnabled
	case FlagEscrow:
		d.EscrowEnabled = !d.EscrowEnabled
	default:
		return d, ErrUnknownFlag
	}
	return d, nil
}
