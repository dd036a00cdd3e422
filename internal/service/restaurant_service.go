package service

import (
	"context"
	"io"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/menuexport"
	"github.com/yufanhao/munch-backend/internal/port"
)

// RestaurantService manages the restaurant catalog and its menus.
type RestaurantService interface {
	Create(ctx context.Context, r *domain.Restaurant) error
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Restaurant, int, error)
	Delete(ctx context.Context, id int64) error

	AddMenuItem(ctx context.Context, f *domain.Food) error
	GetMenu(ctx context.Context, restaurantID int64) ([]domain.Food, error)
	DeleteMenuItem(ctx context.Context, restaurantID, foodID int64) error
	ExportMenu(ctx context.Context, w io.Writer, restaurantID int64) error

	AddReview(ctx context.Context, rv *domain.Review) error
	ListReviews(ctx context.Context, restaurantID int64) ([]domain.Review, error)
}

type restaurantService struct {
	restaurants port.RestaurantRepository
	foods       port.FoodRepository
	reviews     port.ReviewRepository
}

// NewRestaurantService creates a new RestaurantService.
func NewRestaurantService(
	restaurants port.RestaurantRepository,
	foods port.FoodRepository,
	reviews port.ReviewRepository,
) RestaurantService {
	return &restaurantService{
		restaurants: restaurants,
		foods:       foods,
		reviews:     reviews,
	}
}

func (s *restaurantService) Create(ctx context.Context, r *domain.Restaurant) error {
	return s.restaurants.Create(ctx, r)
}

func (s *restaurantService) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	return s.restaurants.GetByID(ctx, id)
}

func (s *restaurantService) List(ctx context.Context, offset, limit int) ([]domain.Restaurant, int, error) {
	return s.restaurants.List(ctx, offset, limit)
}

func (s *restaurantService) Delete(ctx context.Context, id int64) error {
	return s.restaurants.Delete(ctx, id)
}

func (s *restaurantService) AddMenuItem(ctx context.Context, f *domain.Food) error {
	if _, err := s.restaurants.GetByID(ctx, f.RestaurantID); err != nil {
		return err
	}
	return s.foods.Create(ctx, f)
}

func (s *restaurantService) GetMenu(ctx context.Context, restaurantID int64) ([]domain.Food, error) {
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.foods.ListByRestaurant(ctx, restaurantID)
}

func (s *restaurantService) DeleteMenuItem(ctx context.Context, restaurantID, foodID int64) error {
	food, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		return err
	}
	if food.RestaurantID != restaurantID {
		return domain.ErrFoodNotFound
	}
	return s.foods.Delete(ctx, foodID)
}

func (s *restaurantService) ExportMenu(ctx context.Context, w io.Writer, restaurantID int64) error {
	restaurant, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	foods, err := s.foods.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}
	return menuexport.Write(w, restaurant, foods)
}

func (s *restaurantService) AddReview(ctx context.Context, rv *domain.Review) error {
	if rv.Rating < 1 || rv.Rating > 5 {
		return domain.ErrInvalidRating
	}
	if _, err := s.restaurants.GetByID(ctx, rv.RestaurantID); err != nil {
		return err
	}
	return s.reviews.Create(ctx, rv)
}

func (s *restaurantService) ListReviews(ctx context.Context, restaurantID int64) ([]domain.Review, error) {
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.reviews.ListByRestaurant(ctx, restaurantID)
}
