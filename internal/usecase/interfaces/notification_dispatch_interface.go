package interfaces

import (
	"context"

	"stonetrade/internal/domain/quote"
)

// INotificationDispatch delivers a finalized quote to the buyer's channel
// (email/webhook behind the platform's notification fan-out).
//
// A returned error is retryable: the workflow stays at the review stage and
// the seller may submit again.
type INotificationDispatch interface {
	Send(ctx context.Context, q quote.SentQuote) error
}
