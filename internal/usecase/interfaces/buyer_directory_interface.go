package interfaces

import (
	"context"

	"stonetrade/internal/domain/entities"
)

// IBuyerDirectory abstracts the external buyer/organization directory.
//
// The quote workflow only resolves buyers here; it never writes back. The
// in-process seeded implementation can be swapped for a real HTTP client
// without touching the workflow.
type IBuyerDirectory interface {
	Search(ctx context.Context, term string) ([]entities.BuyerSummary, error)
	Get(ctx context.Context, id string) (entities.BuyerSummary, error)
}
