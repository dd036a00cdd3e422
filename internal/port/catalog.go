package port

import (
	"context"

	"github.com/yufanhao/munch-backend/internal/domain"
)

// Catalog exposes the read-only candidate lists the reconciliation pipeline
// resolves against. Candidate sets are fetched fresh per call; the pipeline
// never caches or mutates catalog state.
type Catalog interface {
	ListRestaurantNames(ctx context.Context) ([]string, error)
	ListMenuItemNames(ctx context.Context, restaurantID int64) ([]string, error)
	// FindRestaurantByName returns the first restaurant whose name matches
	// exactly, or domain.ErrRestaurantNotFound.
	FindRestaurantByName(ctx context.Context, name string) (*domain.Restaurant, error)
}
