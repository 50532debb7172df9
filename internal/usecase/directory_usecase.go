package usecase

import (
	"context"
	"strings"

	"stonetrade/internal/domain/entities"
	"stonetrade/internal/usecase/interfaces"
)

// IDirectoryUseCase exposes buyer and slab lookups to the HTTP layer. These
// are pure pass-throughs to the external collaborators; no decision logic
// lives here beyond "not found" mapping.
type IDirectoryUseCase interface {
	SearchBuyers(ctx context.Context, term string) ([]entities.BuyerSummary, error)
	GetBuyer(ctx context.Context, id string) (entities.BuyerSummary, error)
	SearchSlabs(ctx context.Context, term string, filters entities.SlabFilters) ([]entities.SlabSummary, error)
	GetSlab(ctx context.Context, id string) (entities.SlabSummary, error)
}

type DirectoryUseCase struct {
	buyers interfaces.IBuyerDirectory
	slabs  interfaces.ISlabCatalog
}

var _ IDirectoryUseCase = (*DirectoryUseCase)(nil)

func NewDirectoryUseCase(buyers interfaces.IBuyerDirectory, slabs interfaces.ISlabCatalog) *DirectoryUseCase {
	return &DirectoryUseCase{buyers: buyers, slabs: slabs}
}

func (u *DirectoryUseCase) SearchBuyers(ctx context.Context, term string) ([]entities.BuyerSummary, error) {
	return u.buyers.Search(ctx, strings.TrimSpace(term))
}

func (u *DirectoryUseCase) GetBuyer(ctx context.Context, id string) (entities.BuyerSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BuyerSummary{}, ErrBuyerNotFound
	}
	b, err := u.buyers.Get(ctx, id)
	if err != nil {
		return entities.BuyerSummary{}, err
	}
	if b.ID == "" {
		return entities.BuyerSummary{}, ErrBuyerNotFound
	}
	return b, nil
}

func (u *DirectoryUseCase) SearchSlabs(ctx context.Context, term string, filters entities.SlabFilters) ([]entities.SlabSummary, error) {
	return u.slabs.Search(ctx, strings.TrimSpace(term), filters)
}

func (u *DirectoryUseCase) GetSlab(ctx context.Context, id string) (entities.SlabSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SlabSummary{}, ErrSlabNotFound
	}
	s, err := u.slabs.Get(ctx, id)
	if err != nil {
		return entities.SlabSummary{}, err
	}
	if s.ID == "" {
		return entities.SlabSummary{}, ErrSlabNotFound
	}
	return s, nil
}
