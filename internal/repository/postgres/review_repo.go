package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/port"
)

type reviewRepo struct {
	db *sqlx.DB
}

// NewReviewRepo creates a new PostgreSQL-backed ReviewRepository.
func NewReviewRepo(db *sqlx.DB) port.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, rev *domain.Review) error {
	rev.CreatedAt = time.Now().UTC()
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO reviews (user_id, restaurant_id, rating, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		rev.UserID, rev.RestaurantID, rev.Rating, rev.Comment, rev.CreatedAt).Scan(&rev.ID)
	if err != nil {
		return fmt.Errorf("reviewRepo.Create: %w", err)
	}
	return nil
}

func (r *reviewRepo) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.SelectContext(ctx, &reviews,
		"SELECT * FROM reviews WHERE restaurant_id = $1 ORDER BY created_at DESC", restaurantID)
	if err != nil {
		return nil, fmt.Errorf("reviewRepo.ListByRestaurant: %w", err)
	}
	return reviews, nil
}
