package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stonetrade/internal/domain/entities"
)

// draftWithSubtotal builds a draft whose merchandise subtotal is exactly the
// given dollar amount (one line, 1 sqft/unit, quantity 1).
func draftWithSubtotal(t *testing.T, amount int64) Draft {
	t.Helper()
	d := NewDraft()
	d, err := Apply(d, AddLineItem{
		ProductID:     "slab-1",
		ProductName:   "Absolute Black",
		UnitAreaPrice: decimal.NewFromInt(amount),
		AreaPerUnit:   decimal.NewFromInt(1),
		Quantity:      1,
	})
	require.NoError(t, err)
	return d
}

func TestEngine_FeesAndBuyerFacingTotal(t *testing.T) {
	engine := NewEngine(DefaultRatePolicy())

	d := draftWithSubtotal(t, 10000)
	var err error
	d, err = Apply(d, SetBuyer{Buyer: eligibleBuyer()})
	require.NoError(t, err)
	d, err = Apply(d, ToggleFlag{Flag: FlagEscrow})
	require.NoError(t, err)
	d, err = Apply(d, SetFxRate{Rate: decimal.RequireFromString("83.1")})
	require.NoError(t, err)
	d, err = Apply(d, ToggleFlag{Flag: FlagFxLock})
	require.NoError(t, err)

	assert.True(t, engine.EscrowFee(d).Equal(decimal.NewFromInt(150)), "escrow fee: %s", engine.EscrowFee(d))
	assert.True(t, engine.FxLockFee(d).Equal(decimal.NewFromInt(50)), "fx lock fee: %s", engine.FxLockFee(d))

	// Buyer-facing total excludes every optional fee for all toggle values.
	expected := decimal.NewFromInt(10000).Add(d.FreightEstimate)
	assert.True(t, engine.BuyerFacingTotal(d).Equal(expected))

	d, err = Apply(d, SetFreightEstimate{Amount: engine.FreightEstimate(d)})
	require.NoError(t, err)
	assert.True(t, engine.BuyerFacingTotal(d).Equal(decimal.NewFromInt(10800)),
		"buyer-facing total: %s", engine.BuyerFacingTotal(d))
}

func TestEngine_BuyerFacingTotalNeverIncludesFees(t *testing.T) {
	engine := NewEngine(DefaultRatePolicy())

	for _, escrow := range []bool{false, true} {
		for _, fxLock := range []bool{false, true} {
			d := draftWithSubtotal(t, 10000)
			var err error
			d, err = Apply(d, SetBuyer{Buyer: eligibleBuyer()})
			require.NoError(t, err)
			if escrow {
				d, err = Apply(d, ToggleFlag{Flag: FlagEscrow})
				require.NoError(t, err)
			}
			if fxLock {
				d, err = Apply(d, ToggleFlag{Flag: FlagFxLock})
				require.NoError(t, err)
			}

			expected := engine.MerchandiseSubtotal(d).Add(d.FreightEstimate)
			assert.True(t, engine.BuyerFacingTotal(d).Equal(expected),
				"escrow=%v fxLock=%v", escrow, fxLock)
		}
	}
}

func TestEngine_TwoTotalPathsStayDistinct(t *testing.T) {
	engine := NewEngine(DefaultRatePolicy())
	d := draftWithSubtotal(t, 10000)

	buyerFacing := engine.BuyerFacingTotal(d)
	internal := engine.InternalLedgerTotal(d)

	// subtotal - 500 discount + 225 taxes
	assert.True(t, internal.Equal(decimal.NewFromInt(9725)), "internal: %s", internal)
	assert.False(t, buyerFacing.Equal(internal),
		"buyer-facing and internal ledger totals must never unify")
}

func TestEngine_FreightEstimateHeuristic(t *testing.T) {
	engine := NewEngine(DefaultRatePolicy())
	d := draftWithSubtotal(t, 10000)
	assert.True(t, engine.FreightEstimate(d).Equal(decimal.NewFromInt(800)))

	// Not stored until explicitly applied.
	assert.True(t, d.FreightEstimate.IsZero())
}

func TestEngine_CreditLimit(t *testing.T) {
	engine := NewEngine(DefaultRatePolicy())

	t.Run("zero without credit terms", func(t *testing.T) {
		d := draftWithSubtotal(t, 10000)
		d, err := Apply(d, SetBuyer{Buyer: eligibleBuyer()})
		require.NoError(t, err)
		assert.True(t, engine.CreditLimit(d).IsZero())
	})

	t.Run("ratio of subtotal when enabled", func(t *testing.T) {
		d := draftWithSubtotal(t, 10000)
		var err error
		d, err = Apply(d, SetBuyer{Buyer: eligibleBuyer()})
		require.NoError(t, err)
		d, err = Apply(d, ToggleFlag{Flag: FlagShowCreditTerms})
		require.NoError(t, err)
		assert.True(t, engine.CreditLimit(d).Equal(decimal.NewFromInt(8000)))
	})

	t.Run("capped at platform cap", func(t *testing.T) {
		d := draftWithSubtotal(t, 100000)
		var err error
		d, err = Apply(d, SetBuyer{Buyer: eligibleBuyer()})
		require.NoError(t, err)
		d, err = Apply(d, ToggleFlag{Flag: FlagShowCreditTerms})
		require.NoError(t, err)
		assert.True(t, engine.CreditLimit(d).Equal(decimal.NewFromInt(50000)))
	})
}

func TestEngine_ConvertedSubtotalUsesSingleSnapshot(t *testing.T) {
	engine := NewEngine(DefaultRatePolicy())

	d := draftWithSubtotal(t, 100)
	buyer := eligibleBuyer()
	buyer.PreferredCurrency = entities.CurrencyUSD
	var err error
	d, err = Apply(d, SetBuyer{Buyer: buyer})
	require.NoError(t, err)

	// Same currency as buyer preference: no conversion.
	assert.True(t, engine.ConvertedSubtotal(d).Equal(decimal.NewFromInt(100)))

	d, err = Apply(d, SetCurrency{Currency: entities.CurrencyINR})
	require.NoError(t, err)
	// Diverged but no snapshot yet: still unconverted.
	assert.True(t, engine.ConvertedSubtotal(d).Equal(decimal.NewFromInt(100)))

	d, err = Apply(d, SetFxRate{Rate: decimal.RequireFromString("83.1")})
	require.NoError(t, err)
	assert.True(t, engine.ConvertedSubtotal(d).Equal(decimal.RequireFromString("8310")))
}

func TestEngine_Idempotent(t *testing.T) {
	engine := NewEngine(DefaultRatePolicy())
	d := draftWithSubtotal(t, 10000)
	var err error
	d, err = Apply(d, SetBuyer{Buyer: eligibleBuyer()})
	require.NoError(t, err)
	d, err = Apply(d, ToggleFlag{Flag: FlagEscrow})
	require.NoError(t, err)

	first := engine.Totals(d)
	second := engine.Totals(d)
	assert.Equal(t, first, second, "recomputing totals without mutation must be stable")
}
