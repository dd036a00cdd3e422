package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/port"
)

// UserService manages user accounts and favorites.
type UserService interface {
	Register(ctx context.Context, username, password, email, phone string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Delete(ctx context.Context, id int64) error

	AddFavorite(ctx context.Context, userID, foodID int64) error
	RemoveFavorite(ctx context.Context, userID, foodID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]domain.Food, error)
}

type userService struct {
	users port.UserRepository
	foods port.FoodRepository
}

// NewUserService creates a new UserService.
func NewUserService(users port.UserRepository, foods port.FoodRepository) UserService {
	return &userService{users: users, foods: foods}
}

func (s *userService) Register(ctx context.Context, username, password, email, phone string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	u := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Phone:        phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	return s.users.List(ctx, offset, limit)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func (s *userService) AddFavorite(ctx context.Context, userID, foodID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.foods.GetByID(ctx, foodID); err != nil {
		return err
	}
	return s.users.AddFavorite(ctx, userID, foodID)
}

func (s *userService) RemoveFavorite(ctx context.Context, userID, foodID int64) error {
	return s.users.RemoveFavorite(ctx, userID, foodID)
}

func (s *userService) ListFavorites(ctx context.Context, userID int64) ([]domain.Food, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.users.ListFavorites(ctx, userID)
}
