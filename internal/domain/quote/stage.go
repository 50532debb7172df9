package quote

// Stage is one of the five ordered steps of the quote workflow.
//
//go:generate stringer -type=Stage

type Stage string

const (
	StageBuyer  Stage = "buyer"
	StageItems  Stage = "items"
	StageTerms  Stage = "terms"
	StageAddons Stage = "addons"
	StageReview Stage = "review"
)

// stageOrder fixes the linear navigation sequence of the workflow.
var stageOrder = []Stage{StageBuyer, StageItems, StageTerms, StageAddons, StageReview}

func stageIndex(s Stage) int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Complete is the per-stage validator: it reports whether the draft holds
// everything this stage requires, which gates forward navigation only.
// Backward navigation is never gated.
func (s Stage) Complete(d Draft) bool {
	switch s {
	case StageBuyer:
		return d.Buyer != nil
	case StageItems:
		return len(d.LineItems) > 0
	case StageTerms, StageAddons:
		// Every field on these stages has a default, so they never block.
		// Credit eligibility is enforced by the toggle transition itself.
		return true
	case StageReview:
		if d.Buyer == nil || len(d.LineItems) == 0 {
			return false
		}
		if d.FxLockEnabled && d.FxRateSnapshot == nil {
			return false
		}
		return true
	}
	return false
}
