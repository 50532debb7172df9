package documents

import (
	"bytes"
	"context"
	"fmt"

	"stonetrade/internal/domain/quote"
	"stonetrade/internal/usecase/interfaces"
)

// TextRenderer produces a plain-text rendition of a sent quote. It stands in
// for the PDF generation service and deliberately prints buyer-facing
// figures only: the internal ledger total never reaches a rendered document.
type TextRenderer struct{}

var _ interfaces.IDocumentRenderer = (*TextRenderer)(nil)

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(ctx context.Context, q quote.SentQuote) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "QUOTE %s\n", q.ID)
	fmt.Fprintf(&buf, "Date: %s\n", q.SentAt.Format("2006-01-02"))
	fmt.Fprintf(&buf, "To: %s, %s\n", q.BuyerName, q.BuyerLocation)
	fmt.Fprintf(&buf, "Terms: %s via %s, valid %d days\n", q.ShippingTerm, q.ShippingPort, q.ValidityDays)
	if q.AllowPartialFulfillment {
		buf.WriteString("Partial fulfillment accepted\n")
	}
	buf.WriteString("\n")

	for _, item := range q.LineItems {
		fmt.Fprintf(&buf, "  %-24s %3d slabs x %s sqft @ %s %s/sqft = %s\n",
			item.ProductName, item.Quantity, item.AreaPerUnit.String(),
			q.Currency, item.UnitAreaPrice.String(), item.Subtotal.String())
	}

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Merchandise subtotal: %s %s\n", q.Currency, q.MerchandiseSubtotal.String())
	fmt.Fprintf(&buf, "Freight estimate:     %s %s\n", q.Currency, q.FreightEstimate.String())
	fmt.Fprintf(&buf, "Total:                %s %s\n", q.Currency, q.BuyerFacingTotal.String())

	if q.BuyerMessage != "" {
		fmt.Fprintf(&buf, "\n%s\n", q.BuyerMessage)
	}

	return buf.Bytes(), nil
}
