package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/port"
)

type restaurantRepo struct {
	db *sqlx.DB
}

// NewRestaurantRepo creates a new PostgreSQL-backed RestaurantRepository.
func NewRestaurantRepo(db *sqlx.DB) port.RestaurantRepository {
	return &restaurantRepo{db: db}
}

func (r *restaurantRepo) Create(ctx context.Context, rest *domain.Restaurant) error {
	rest.CreatedAt = time.Now().UTC()
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO restaurants (name, address, cuisine, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		rest.Name, rest.Address, rest.Cuisine, rest.CreatedAt).Scan(&rest.ID)
	if err != nil {
		return fmt.Errorf("restaurantRepo.Create: %w", err)
	}
	return nil
}

func (r *restaurantRepo) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.db.GetContext(ctx, &rest,
		"SELECT * FROM restaurants WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("restaurantRepo.GetByID: %w", err)
	}
	return &rest, nil
}

func (r *restaurantRepo) List(ctx context.Context, offset, limit int) ([]domain.Restaurant, int, error) {
	var restaurants []domain.Restaurant
	err := r.db.SelectContext(ctx, &restaurants,
		"SELECT * FROM restaurants ORDER BY id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("restaurantRepo.List: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM restaurants"); err != nil {
		return nil, 0, fmt.Errorf("restaurantRepo.List count: %w", err)
	}
	return restaurants, total, nil
}

func (r *restaurantRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("restaurantRepo.Delete: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}
