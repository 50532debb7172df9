package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"stonetrade/internal/domain/quote"
)

// LoadRatePolicy builds the platform RatePolicy from configuration. Every
// rate has the stock default; each may be overridden through config file or
// environment (PRICING_FREIGHT_RATE, PRICING_ESCROW_FEE_RATE, ...). The
// figures are placeholder platform economics, not quotes from a carrier or
// market feed, which is exactly why they live in configuration.
func LoadRatePolicy() (quote.RatePolicy, error) {
	v := viper.New()
	v.SetEnvPrefix("pricing")
	v.AutomaticEnv()

	defaults := quote.DefaultRatePolicy()
	v.SetDefault("freight_rate", defaults.FreightRate.String())
	v.SetDefault("escrow_fee_rate", defaults.EscrowFeeRate.String())
	v.SetDefault("fx_lock_fee_rate", defaults.FxLockFeeRate.String())
	v.SetDefault("credit_ratio", defaults.CreditRatio.String())
	v.SetDefault("platform_credit_cap", defaults.PlatformCreditCap.String())
	v.SetDefault("platform_discount", defaults.PlatformDiscount.String())
	v.SetDefault("taxes_and_fees", defaults.TaxesAndFees.String())

	v.SetConfigName("pricing")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return quote.RatePolicy{}, err
		}
	}

	policy := quote.RatePolicy{}
	fields := []struct {
		key string
		dst *decimal.Decimal
	}{
		{"freight_rate", &policy.FreightRate},
		{"escrow_fee_rate", &policy.EscrowFeeRate},
		{"fx_lock_fee_rate", &policy.FxLockFeeRate},
		{"credit_ratio", &policy.CreditRatio},
		{"platform_credit_cap", &policy.PlatformCreditCap},
		{"platform_discount", &policy.PlatformDiscount},
		{"taxes_and_fees", &policy.TaxesAndFees},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(v.GetString(f.key))
		if err != nil {
			return quote.RatePolicy{}, err
		}
		*f.dst = d
	}
	return policy, nil
}
