package interfaces

import (
	"context"

	"stonetrade/internal/domain/quote"
)

// ISentQuoteRepository abstracts DynamoDB persistence for the sent quote
// archive. Drafts are never persisted; only finalized quotes land here.
type ISentQuoteRepository interface {
	Save(ctx context.Context, q quote.SentQuote) (quote.SentQuote, error)
	GetByID(ctx context.Context, id string) (quote.SentQuote, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]quote.SentQuote, error)
}
