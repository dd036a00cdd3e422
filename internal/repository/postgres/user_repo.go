package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/port"
)

type userRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new PostgreSQL-backed UserRepository.
func NewUserRepo(db *sqlx.DB) port.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *domain.User) error {
	u.CreatedAt = time.Now().UTC()
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO users (username, password_hash, email, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		u.Username, u.PasswordHash, u.Email, u.Phone, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("userRepo.Create: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("userRepo.GetByID: %w", err)
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	var users []domain.User
	err := r.db.SelectContext(ctx, &users,
		"SELECT * FROM users ORDER BY id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("userRepo.List: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM users"); err != nil {
		return nil, 0, fmt.Errorf("userRepo.List count: %w", err)
	}
	return users, total, nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("userRepo.Delete: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepo) AddFavorite(ctx context.Context, userID, foodID int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO favorites (user_id, food_id) VALUES ($1, $2)", userID, foodID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateFavorite
		}
		return fmt.Errorf("userRepo.AddFavorite: %w", err)
	}
	return nil
}

func (r *userRepo) RemoveFavorite(ctx context.Context, userID, foodID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND food_id = $2", userID, foodID)
	if err != nil {
		return fmt.Errorf("userRepo.RemoveFavorite: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) ListFavorites(ctx context.Context, userID int64) ([]domain.Food, error) {
	var foods []domain.Food
	err := r.db.SelectContext(ctx, &foods,
		`SELECT f.* FROM foods f
		 JOIN favorites fav ON fav.food_id = f.id
		 WHERE fav.user_id = $1
		 ORDER BY f.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("userRepo.ListFavorites: %w", err)
	}
	return foods, nil
}
