package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewReadyDraft(t *testing.T) Draft {
	t.Helper()
	d := NewDraft()
	var err error
	d, err = Apply(d, SetBuyer{Buyer: eligibleBuyer()})
	require.NoError(t, err)
	d, err = Apply(d, AddLineItem{
		ProductID:     "slab-1",
		ProductName:   "Kashmir White",
		UnitAreaPrice: decimal.NewFromInt(25),
		AreaPerUnit:   decimal.NewFromInt(11),
		Quantity:      4,
	})
	require.NoError(t, err)
	return d
}

func advanceToReview(t *testing.T, c *Controller, d Draft) {
	t.Helper()
	for c.Stage() != StageReview {
		require.NoError(t, c.Next(d))
	}
}

func TestController_NextBlockedWithoutBuyer(t *testing.T) {
	c := NewController()
	err := c.Next(NewDraft())
	assert.ErrorIs(t, err, ErrStageIncomplete)
	assert.Equal(t, StageBuyer, c.Stage(), "stage must not move on a blocked next")
}

func TestController_NextBlockedWithoutItems(t *testing.T) {
	d, err := Apply(NewDraft(), SetBuyer{Buyer: eligibleBuyer()})
	require.NoError(t, err)

	c := NewController()
	require.NoError(t, c.Next(d))
	require.Equal(t, StageItems, c.Stage())

	assert.ErrorIs(t, c.Next(d), ErrStageIncomplete)
	assert.Equal(t, StageItems, c.Stage())
}

func TestController_LinearNavigation(t *testing.T) {
	d := reviewReadyDraft(t)
	c := NewController()

	for _, want := range []Stage{StageItems, StageTerms, StageAddons, StageReview} {
		require.NoError(t, c.Next(d))
		assert.Equal(t, want, c.Stage())
	}
	assert.ErrorIs(t, c.Next(d), ErrAtFinalStage)

	// Back is never gated, one step at a time.
	require.NoError(t, c.Back())
	assert.Equal(t, StageAddons, c.Stage())

	for c.Stage() != StageBuyer {
		require.NoError(t, c.Back())
	}
	assert.ErrorIs(t, c.Back(), ErrAtFirstStage)
}

func TestController_ReviewRequiresFxSnapshotWhenLocked(t *testing.T) {
	d := reviewReadyDraft(t)
	var err error
	d, err = Apply(d, ToggleFlag{Flag: FlagFxLock})
	require.NoError(t, err)

	assert.False(t, StageReview.Complete(d))

	d, err = Apply(d, SetFxRate{Rate: decimal.RequireFromString("83.1")})
	require.NoError(t, err)
	assert.True(t, StageReview.Complete(d))
}

func TestController_SubmitOnlyFromReview(t *testing.T) {
	d := reviewReadyDraft(t)
	c := NewController()

	assert.ErrorIs(t, c.Submit(d), ErrNotAtReview)

	advanceToReview(t, c, d)
	require.NoError(t, c.Submit(d))
	assert.Equal(t, StatusSent, c.Status())
}

func TestController_TerminalIsFinal(t *testing.T) {
	d := reviewReadyDraft(t)
	c := NewController()
	advanceToReview(t, c, d)
	require.NoError(t, c.Submit(d))

	assert.ErrorIs(t, c.Next(d), ErrWorkflowDone)
	assert.ErrorIs(t, c.Back(), ErrWorkflowDone)
	assert.ErrorIs(t, c.Cancel(), ErrWorkflowDone)
	assert.ErrorIs(t, c.Submit(d), ErrWorkflowDone)
	assert.Equal(t, StatusSent, c.Status())
}

func TestController_CancelFromAnyStage(t *testing.T) {
	d := reviewReadyDraft(t)

	for steps := 0; steps < len(stageOrder); steps++ {
		c := NewController()
		for i := 0; i < steps; i++ {
			require.NoError(t, c.Next(d))
		}
		require.NoError(t, c.Cancel())
		assert.Equal(t, StatusAbandoned, c.Status())
		assert.True(t, c.Terminal())
	}
}
