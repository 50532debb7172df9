package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"stonetrade/internal/domain/entities"
)

// IFxRateSource provides the conversion rate captured as a draft's snapshot.
//
// The stock implementation serves fixed configured rates; the interface
// keeps a live market feed pluggable without being a goal of the platform.
type IFxRateSource interface {
	Rate(ctx context.Context, from, to entities.Currency) (decimal.Decimal, error)
}
