package interfaces

import (
	"context"

	"stonetrade/internal/domain/quote"
)

// IDocumentRenderer renders a sent quote into a downloadable document.
// Only buyer-facing figures may appear in the output.
type IDocumentRenderer interface {
	Render(ctx context.Context, q quote.SentQuote) ([]byte, error)
}
