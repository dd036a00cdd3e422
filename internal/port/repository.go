package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/yufanhao/munch-backend/internal/domain"
)

// RestaurantRepository persists restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, r *domain.Restaurant) error
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Restaurant, int, error)
	Delete(ctx context.Context, id int64) error
}

// FoodRepository persists menu items.
type FoodRepository interface {
	Create(ctx context.Context, f *domain.Food) error
	GetByID(ctx context.Context, id int64) (*domain.Food, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Food, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository persists users and their favorites.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Delete(ctx context.Context, id int64) error
	AddFavorite(ctx context.Context, userID, foodID int64) error
	RemoveFavorite(ctx context.Context, userID, foodID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]domain.Food, error)
}

// ReviewRepository persists restaurant reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Review, error)
}

// PaymentRequestRepository persists peer payment requests.
type PaymentRequestRepository interface {
	Create(ctx context.Context, p *domain.PaymentRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.PaymentRequest, error)
	MarkSettled(ctx context.Context, id uuid.UUID) error
}
