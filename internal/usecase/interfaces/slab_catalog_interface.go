package interfaces

import (
	"context"

	"stonetrade/internal/domain/entities"
)

// ISlabCatalog abstracts the external slab/product catalog.
type ISlabCatalog interface {
	Search(ctx context.Context, term string, filters entities.SlabFilters) ([]entities.SlabSummary, error)
	Get(ctx context.Context, id string) (entities.SlabSummary, error)
}
