package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stonetrade/internal/domain/quote"
	"stonetrade/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound      = errors.New("quote session not found")
	ErrInvalidSessionID     = errors.New("invalid session id")
	ErrInvalidSellerID      = errors.New("invalid seller id")
	ErrBuyerNotFound        = errors.New("buyer not found")
	ErrSlabNotFound         = errors.New("slab not found")
	ErrNotificationDispatch = errors.New("notification dispatch failed")
)

// QuoteSessionView is the read model handed to the HTTP layer: the current
// draft, the workflow position and the freshly evaluated totals.
type QuoteSessionView struct {
	ID        string
	SellerID  string
	Stage     quote.Stage
	Status    quote.Status
	Draft     quote.Draft
	Totals    quote.Totals
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IQuoteSessionUseCase drives the five-stage quote construction workflow.
//
// Each session owns exactly one mutable draft. Messages are applied to
// completion one at a time; there is no partial application and no second
// writer.

type IQuoteSessionUseCase interface {
	Start(ctx context.Context, sellerID string) (QuoteSessionView, error)
	Get(ctx context.Context, sessionID string) (QuoteSessionView, error)
	SelectBuyer(ctx context.Context, sessionID, buyerID string) (QuoteSessionView, error)
	AddLineItem(ctx context.Context, sessionID, slabID string, quantity int) (QuoteSessionView, error)
	Apply(ctx context.Context, sessionID string, msg quote.Message) (QuoteSessionView, error)
	Next(ctx context.Context, sessionID string) (QuoteSessionView, error)
	Back(ctx context.Context, sessionID string) (QuoteSessionView, error)
	Cancel(ctx context.Context, sessionID string) error
	ComputeFreight(ctx context.Context, sessionID string) (QuoteSessionView, error)
	Submit(ctx context.Context, sessionID string) (quote.SentQuote, error)
}

type quoteSession struct {
	mu sync.Mutex

	id        string
	sellerID  string
	draft     quote.Draft
	ctrl      *quote.Controller
	createdAt time.Time
	updatedAt time.Time
}

type QuoteSessionUseCase struct {
	buyers   interfaces.IBuyerDirectory
	slabs    interfaces.ISlabCatalog
	fx       interfaces.IFxRateSource
	dispatch interfaces.INotificationDispatch
	archive  interfaces.ISentQuoteRepository
	engine   quote.Engine
	log      *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*quoteSession
}

var _ IQuoteSessionUseCase = (*QuoteSessionUseCase)(nil)

func NewQuoteSessionUseCase(
	buyers interfaces.IBuyerDirectory,
	slabs interfaces.ISlabCatalog,
	fx interfaces.IFxRateSource,
	dispatch interfaces.INotificationDispatch,
	archive interfaces.ISentQuoteRepository,
	engine quote.Engine,
	log *zap.Logger,
) *QuoteSessionUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteSessionUseCase{
		buyers:   buyers,
		slabs:    slabs,
		fx:       fx,
		dispatch: dispatch,
		archive:  archive,
		engine:   engine,
		log:      log,
		sessions: make(map[string]*quoteSession),
	}
}

func (u *QuoteSessionUseCase) Start(ctx context.Context, sellerID string) (QuoteSessionView, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return QuoteSessionView{}, ErrInvalidSellerID
	}

	now := time.Now().UTC()
	s := &quoteSession{
		id:        uuid.NewString(),
		sellerID:  sellerID,
		draft:     quote.NewDraft(),
		ctrl:      quote.NewController(),
		createdAt: now,
		updatedAt: now,
	}

	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()

	u.log.Info("quote session started", zap.String("session_id", s.id), zap.String("seller_id", sellerID))
	return u.view(s), nil
}

func (u *QuoteSessionUseCase) Get(ctx context.Context, sessionID string) (QuoteSessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return QuoteSessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return u.view(s), nil
}

func (u *QuoteSessionUseCase) SelectBuyer(ctx context.Context, sessionID, buyerID string) (QuoteSessionView, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return QuoteSessionView{}, ErrBuyerNotFound
	}

	buyer, err := u.buyers.Get(ctx, buyerID)
	if err != nil {
		return QuoteSessionView{}, err
	}
	if buyer.ID == "" {
		return QuoteSessionView{}, ErrBuyerNotFound
	}

	return u.Apply(ctx, sessionID, quote.SetBuyer{Buyer: buyer})
}

func (u *QuoteSessionUseCase) AddLineItem(ctx context.Context, sessionID, slabID string, quantity int) (QuoteSessionView, error) {
	if quantity <= 0 {
		return QuoteSessionView{}, quote.ErrInvalidQuantity
	}
	slabID = strings.TrimSpace(slabID)
	if slabID == "" {
		return QuoteSessionView{}, ErrSlabNotFound
	}

	slab, err := u.slabs.Get(ctx, slabID)
	if err != nil {
		return QuoteSessionView{}, err
	}
	if slab.ID == "" {
		return QuoteSessionView{}, ErrSlabNotFound
	}

	return u.Apply(ctx, sessionID, quote.AddLineItem{
		ProductID:     slab.ID,
		ProductName:   slab.Name,
		UnitAreaPrice: slab.ListPrice,
		AreaPerUnit:   slab.AreaPerUnit,
		Quantity:      quantity,
	})
}

// Apply runs one transition message against the session's draft. After a
// successful transition it captures the fx snapshot when the draft needs one
// and does not have it yet.
func (u *QuoteSessionUseCase) Apply(ctx context.Context, sessionID string, msg quote.Message) (QuoteSessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return QuoteSessionView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl.Terminal() {
		return QuoteSessionView{}, quote.ErrWorkflowDone
	}

	next, err := quote.Apply(s.draft, msg)
	if err != nil {
		return QuoteSessionView{}, err
	}
	s.draft = next
	s.updatedAt = time.Now().UTC()

	if err := u.ensureFxSnapshot(ctx, s); err != nil {
		u.log.Warn("fx snapshot capture failed",
			zap.String("session_id", s.id), zap.Error(err))
	}

	return u.view(s), nil
}

// ensureFxSnapshot captures the draft's one-and-only fx rate once the fx
// lock is enabled and a buyer is known. Caller holds the session lock.
func (u *QuoteSessionUseCase) ensureFxSnapshot(ctx context.Context, s *quoteSession) error {
	d := s.draft
	if !d.FxLockEnabled || d.FxRateSnapshot != nil || d.Buyer == nil {
		return nil
	}

	rate, err := u.fx.Rate(ctx, d.Currency, d.Buyer.PreferredCurrency)
	if err != nil {
		return err
	}
	next, err := quote.Apply(d, quote.SetFxRate{Rate: rate})
	if err != nil {
		return err
	}
	s.draft = next
	return nil
}

func (u *QuoteSessionUseCase) Next(ctx context.Context, sessionID string) (QuoteSessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return QuoteSessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ctrl.Next(s.draft); err != nil {
		return QuoteSessionView{}, err
	}
	s.updatedAt = time.Now().UTC()
	return u.view(s), nil
}

func (u *QuoteSessionUseCase) Back(ctx context.Context, sessionID string) (QuoteSessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return QuoteSessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ctrl.Back(); err != nil {
		return QuoteSessionView{}, err
	}
	s.updatedAt = time.Now().UTC()
	return u.view(s), nil
}

// Cancel abandons the workflow and discards the draft; the session id is no
// longer resolvable afterwards.
func (u *QuoteSessionUseCase) Cancel(ctx context.Context, sessionID string) error {
	s, err := u.session(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	err = s.ctrl.Cancel()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	u.mu.Lock()
	delete(u.sessions, s.id)
	u.mu.Unlock()

	u.log.Info("quote session abandoned", zap.String("session_id", s.id))
	return nil
}

// ComputeFreight runs the freight heuristic and stores the result on the
// draft. This is the seller's explicit "estimate freight" action.
func (u *QuoteSessionUseCase) ComputeFreight(ctx context.Context, sessionID string) (QuoteSessionView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return QuoteSessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl.Terminal() {
		return QuoteSessionView{}, quote.ErrWorkflowDone
	}

	amount := u.engine.FreightEstimate(s.draft)
	next, err := quote.Apply(s.draft, quote.SetFreightEstimate{Amount: amount})
	if err != nil {
		return QuoteSessionView{}, err
	}
	s.draft = next
	s.updatedAt = time.Now().UTC()
	return u.view(s), nil
}

// Submit finalizes the draft from the review stage. Delivery runs before the
// controller is marked sent: a dispatch failure leaves the workflow parked
// at review with the draft intact, and the seller may submit again.
func (u *QuoteSessionUseCase) Submit(ctx context.Context, sessionID string) (quote.SentQuote, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return quote.SentQuote{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl.Terminal() {
		return quote.SentQuote{}, quote.ErrWorkflowDone
	}
	if s.ctrl.Stage() != quote.StageReview {
		return quote.SentQuote{}, quote.ErrNotAtReview
	}
	if !quote.StageReview.Complete(s.draft) {
		return quote.SentQuote{}, quote.ErrStageIncomplete
	}

	totals := u.engine.Totals(s.draft)
	sent := quote.NewSentQuote(uuid.NewString(), s.sellerID, s.draft, totals, time.Now().UTC())

	if err := u.dispatch.Send(ctx, sent); err != nil {
		u.log.Error("quote dispatch failed, session stays at review",
			zap.String("session_id", s.id), zap.String("quote_id", sent.ID), zap.Error(err))
		return quote.SentQuote{}, fmt.Errorf("%w: %v", ErrNotificationDispatch, err)
	}

	if _, err := u.archive.Save(ctx, sent); err != nil {
		// The quote is already on its way to the buyer; losing the archive
		// copy must not fail the submission.
		u.log.Error("sent quote archive write failed",
			zap.String("quote_id", sent.ID), zap.Error(err))
	}

	if err := s.ctrl.Submit(s.draft); err != nil {
		return quote.SentQuote{}, err
	}
	s.updatedAt = time.Now().UTC()

	u.log.Info("quote sent",
		zap.String("session_id", s.id),
		zap.String("quote_id", sent.ID),
		zap.String("buyer_id", sent.BuyerID),
		zap.String("buyer_facing_total", sent.BuyerFacingTotal.String()))
	return sent, nil
}

func (u *QuoteSessionUseCase) session(id string) (*quoteSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	u.mu.RLock()
	s, ok := u.sessions[id]
	u.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (u *QuoteSessionUseCase) view(s *quoteSession) QuoteSessionView {
	return QuoteSessionView{
		ID:        s.id,
		SellerID:  s.sellerID,
		Stage:     s.ctrl.Stage(),
		Status:    s.ctrl.Status(),
		Draft:     s.draft,
		Totals:    u.engine.Totals(s.draft),
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
}
