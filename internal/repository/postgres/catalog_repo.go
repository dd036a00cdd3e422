package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/port"
)

type catalogRepo struct {
	db *sqlx.DB
}

// NewCatalogRepo creates the read-only catalog view used by the
// reconciliation pipeline. Candidate lists come straight from the tables on
// every call; nothing is cached.
func NewCatalogRepo(db *sqlx.DB) port.Catalog {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListRestaurantNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names, "SELECT name FROM restaurants ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("catalogRepo.ListRestaurantNames: %w", err)
	}
	return names, nil
}

func (r *catalogRepo) ListMenuItemNames(ctx context.Context, restaurantID int64) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names,
		"SELECT name FROM foods WHERE restaurant_id = $1 ORDER BY id", restaurantID)
	if err != nil {
		return nil, fmt.Errorf("catalogRepo.ListMenuItemNames: %w", err)
	}
	return names, nil
}

func (r *catalogRepo) FindRestaurantByName(ctx context.Context, name string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.db.GetContext(ctx, &rest,
		"SELECT * FROM restaurants WHERE name = $1 ORDER BY id LIMIT 1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("catalogRepo.FindRestaurantByName: %w", err)
	}
	return &rest, nil
}
