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

type foodRepo struct {
	db *sqlx.DB
}

// NewFoodRepo creates a new PostgreSQL-backed FoodRepository.
func NewFoodRepo(db *sqlx.DB) port.FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) Create(ctx context.Context, f *domain.Food) error {
	f.CreatedAt = time.Now().UTC()
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO foods (restaurant_id, name, price, category, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		f.RestaurantID, f.Name, f.Price, f.Category, f.CreatedAt).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("foodRepo.Create: %w", err)
	}
	return nil
}

func (r *foodRepo) GetByID(ctx context.Context, id int64) (*domain.Food, error) {
	var f domain.Food
	err := r.db.GetContext(ctx, &f, "SELECT * FROM foods WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, fmt.Errorf("foodRepo.GetByID: %w", err)
	}
	return &f, nil
}

func (r *foodRepo) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Food, error) {
	var foods []domain.Food
	err := r.db.SelectContext(ctx, &foods,
		"SELECT * FROM foods WHERE restaurant_id = $1 ORDER BY id", restaurantID)
	if err != nil {
		return nil, fmt.Errorf("foodRepo.ListByRestaurant: %w", err)
	}
	return foods, nil
}

func (r *foodRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM foods WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("foodRepo.Delete: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ErrFoodNotFound
	}
	return nil
}
