package quote

import "errors"

// Status is the lifecycle state of a workflow instance.
type Status string

const (
	StatusActive    Status = "active"
	StatusSent      Status = "sent"
	StatusAbandoned Status = "abandoned"
)

var (
	ErrStageIncomplete = errors.New("current stage is incomplete")
	ErrAtFirstStage    = errors.New("already at the first stage")
	ErrAtFinalStage    = errors.New("already at the review stage")
	ErrNotAtReview     = errors.New("submit is only allowed from the review stage")
	ErrWorkflowDone    = errors.New("workflow already reached a terminal state")
)

// Controller sequences the five quote stages. Forward motion is gated by the
// current stage's validator; backward motion and cancellation are always
// allowed. Once the controller reaches sent or abandoned it stays there: a
// new quote gets a fresh draft and a fresh controller, never a reset.
type Controller struct {
	stage  Stage
	status Status
}

func NewController() *Controller {
	return &Controller{stage: StageBuyer, status: StatusActive}
}

func (c *Controller) Stage() Stage {
	return c.stage
}

func (c *Controller) Status() Status {
	return c.status
}

func (c *Controller) Terminal() bool {
	return c.status != StatusActive
}

// Next advances to the following stage if the current stage's validator
// passes on the given draft.
func (c *Controller) Next(d Draft) error {
	if c.Terminal() {
		return ErrWorkflowDone
	}
	idx := stageIndex(c.stage)
	if idx >= len(stageOrder)-1 {
		return ErrAtFinalStage
	}
	if !c.stage.Complete(d) {
		return ErrStageIncomplete
	}
	c.stage = stageOrder[idx+1]
	return nil
}

// Back moves one stage backwards. It never inspects the draft.
func (c *Controller) Back() error {
	if c.Terminal() {
		return ErrWorkflowDone
	}
	idx := stageIndex(c.stage)
	if idx <= 0 {
		return ErrAtFirstStage
	}
	c.stage = stageOrder[idx-1]
	return nil
}

// Cancel abandons the workflow from any active stage.
func (c *Controller) Cancel() error {
	if c.Terminal() {
		return ErrWorkflowDone
	}
	c.status = StatusAbandoned
	return nil
}

// Submit marks the workflow sent. It is only legal from the review stage and
// only when the review validator passes; callers are expected to complete
// delivery side effects before calling it, so a failed delivery leaves the
// controller parked at review for a retry.
func (c *Controller) Submit(d Draft) error {
	if c.Terminal() {
		return ErrWorkflowDone
	}
	if c.stage != StageReview {
		return ErrNotAtReview
	}
	if !StageReview.Complete(d) {
		return ErrStageIncomplete
	}
	c.status = StatusSent
	return nil
}
