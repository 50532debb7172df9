package fx

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"stonetrade/internal/domain/entities"
	"stonetrade/internal/usecase/interfaces"
)

var ErrRateUnavailable = errors.New("fx rate unavailable for currency pair")

// FixedRateSource serves configured conversion rates. Rates are fixed per
// process, not streamed from a market feed; the IFxRateSource seam keeps a
// live source pluggable.
type FixedRateSource struct {
	rates map[string]decimal.Decimal
}

var _ interfaces.IFxRateSource = (*FixedRateSource)(nil)

// NewFixedRateSource loads the rate table, honoring FX_USD_INR / FX_INR_USD
// environment overrides.
func NewFixedRateSource() (*FixedRateSource, error) {
	v := viper.New()
	v.SetEnvPrefix("fx")
	v.AutomaticEnv()
	v.SetDefault("usd_inr", "83.10")
	v.SetDefault("inr_usd", "0.0120")

	usdInr, err := decimal.NewFromString(v.GetString("usd_inr"))
	if err != nil {
		return nil, err
	}
	inrUsd, err := decimal.NewFromString(v.GetString("inr_usd"))
	if err != nil {
		return nil, err
	}

	return &FixedRateSource{rates: map[string]decimal.Decimal{
		pairKey(entities.CurrencyUSD, entities.CurrencyINR): usdInr,
		pairKey(entities.CurrencyINR, entities.CurrencyUSD): inrUsd,
	}}, nil
}

func (s *FixedRateSource) Rate(ctx context.Context, from, to entities.Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := s.rates[pairKey(from, to)]
	if !ok {
		return decimal.Decimal{}, ErrRateUnavailable
	}
	return rate, nil
}

func pairKey(from, to entities.Currency) string {
	return string(from) + "/" + string(to)
}
