package usecase

import (
	"context"
	"errors"
	"strings"

	"stonetrade/internal/domain/quote"
	"stonetrade/internal/usecase/interfaces"
)

var (
	ErrSentQuoteNotFound  = errors.New("sent quote not found")
	ErrInvalidSentQuoteID = errors.New("invalid sent quote id")
)

// ISentQuoteUseCase reads the archive of finalized quotes and renders the
// buyer-facing document for one of them.
type ISentQuoteUseCase interface {
	GetByID(ctx context.Context, id string) (quote.SentQuote, error)
	ListBySeller(ctx context.Context, sellerID string) ([]quote.SentQuote, error)
	RenderDocument(ctx context.Context, id string) ([]byte, error)
}

type SentQuoteUseCase struct {
	archive  interfaces.ISentQuoteRepository
	renderer interfaces.IDocumentRenderer
}

var _ ISentQuoteUseCase = (*SentQuoteUseCase)(nil)

func NewSentQuoteUseCase(archive interfaces.ISentQuoteRepository, renderer interfaces.IDocumentRenderer) *SentQuoteUseCase {
	return &SentQuoteUseCase{archive: archive, renderer: renderer}
}

func (u *SentQuoteUseCase) GetByID(ctx context.Context, id string) (quote.SentQuote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return quote.SentQuote{}, ErrInvalidSentQuoteID
	}
	q, err := u.archive.GetByID(ctx, id)
	if err != nil {
		return quote.SentQuote{}, err
	}
	if q.ID == "" {
		return quote.SentQuote{}, ErrSentQuoteNotFound
	}
	return q, nil
}

func (u *SentQuoteUseCase) ListBySeller(ctx context.Context, sellerID string) ([]quote.SentQuote, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return nil, ErrInvalidSellerID
	}
	return u.archive.ListBySellerID(ctx, sellerID)
}

func (u *SentQuoteUseCase) RenderDocument(ctx context.Context, id string) ([]byte, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.renderer.Render(ctx, q)
}
