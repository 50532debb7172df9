package request

import (
	"errors"
	"strings"

	"stonetrade/internal/domain/entities"
	"stonetrade/internal/domain/quote"
)

var (
	ErrInvalidQuantityValue = errors.New("quantity must be a positive integer")
	ErrUnknownMessageType   = errors.New("unknown message type")
	ErrMissingProductID     = errors.New("missing product_id")
	ErrMissingValidityDays  = errors.New("missing validity_days")
)

// Message type discriminators accepted by the dispatch endpoint. Fx rate and
// freight figures are computed server-side and are deliberately not
// settable over the wire.
const (
	MessageTypeSetBuyer        = "set_buyer"
	MessageTypeAddLineItem     = "add_line_item"
	MessageTypeRemoveLineItem  = "remove_line_item"
	MessageTypeUpdateQuantity  = "update_quantity"
	MessageTypeSetCurrency     = "set_currency"
	MessageTypeSetShippingTerm = "set_shipping_term"
	MessageTypeSetValidityDays = "set_validity_days"
	MessageTypeToggleFlag      = "toggle_flag"
	MessageTypeSetBuyerMessage = "set_buyer_message"
)

type StartQuoteSessionRequest struct {
	SellerID string `json:"seller_id" binding:"required"`
}

// QuoteMessageRequest is the tagged transition payload for a quote session.
// Exactly one message type is dispatched per request; the populated fields
// depend on Type.
type QuoteMessageRequest struct {
	Type         string `json:"type" binding:"required"`
	BuyerID      string `json:"buyer_id"`
	SlabID       string `json:"slab_id"`
	ProductID    string `json:"product_id"`
	Quantity     *int   `json:"quantity"`
	Currency     string `json:"currency"`
	ShippingTerm string `json:"shipping_term"`
	ValidityDays *int   `json:"validity_days"`
	Flag         string `json:"flag"`
	Message      string `json:"message"`
}

// ResolveQuantity validates the numeric input at the boundary: the domain
// layer only ever sees positive integers.
func (r QuoteMessageRequest) ResolveQuantity() (int, error) {
	if r.Quantity == nil || *r.Quantity <= 0 {
		return 0, ErrInvalidQuantityValue
	}
	return *r.Quantity, nil
}

func (r QuoteMessageRequest) ResolveBuyerID() string {
	return strings.TrimSpace(r.BuyerID)
}

// ResolveSlabID accepts either slab_id or product_id; integration clients use
// the latter.
func (r QuoteMessageRequest) ResolveSlabID() string {
	if id := strings.TrimSpace(r.SlabID); id != "" {
		return id
	}
	return strings.TrimSpace(r.ProductID)
}

// ToMessage builds the domain transition for the message types that need no
// external resolution. set_buyer and add_line_item resolve against the
// directory/catalog and are handled by dedicated use case paths.
func (r QuoteMessageRequest) ToMessage() (quote.Message, error) {
	switch r.Type {
	case MessageTypeRemoveLineItem:
		productID := strings.TrimSpace(r.ProductID)
		if productID == "" {
			return nil, ErrMissingProductID
		}
		return quote.RemoveLineItem{ProductID: productID}, nil
	case MessageTypeUpdateQuantity:
		productID := strings.TrimSpace(r.ProductID)
		if productID == "" {
			return nil, ErrMissingProductID
		}
		qty, err := r.ResolveQuantity()
		if err != nil {
			return nil, err
		}
		return quote.UpdateLineItemQuantity{ProductID: productID, Quantity: qty}, nil
	case MessageTypeSetCurrency:
		return quote.SetCurrency{Currency: entities.Currency(strings.ToUpper(strings.TrimSpace(r.Currency)))}, nil
	case MessageTypeSetShippingTerm:
		return quote.SetShippingTerm{Term: quote.ShippingTerm(strings.ToUpper(strings.TrimSpace(r.ShippingTerm)))}, nil
	case MessageTypeSetValidityDays:
		if r.ValidityDays == nil {
			return nil, ErrMissingValidityDays
		}
		return quote.SetValidityDays{Days: *r.ValidityDays}, nil
	case MessageTypeToggleFlag:
		return quote.ToggleFlag{Flag: quote.FlagName(strings.TrimSpace(r.Flag))}, nil
	case MessageTypeSetBuyerMessage:
		return quote.SetBuyerMessage{Text: r.Message}, nil
	default:
		return nil, ErrUnknownMessageType
	}
}
