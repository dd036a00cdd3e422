package domain

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant represents a canonical restaurant in the catalog.
type Restaurant struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Cuisine   string    `db:"cuisine" json:"cuisine"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Food represents a menu item belonging to a restaurant.
type Food struct {
	ID           int64     `db:"id" json:"id"`
	RestaurantID int64     `db:"restaurant_id" json:"restaurant_id"`
	Name         string    `db:"name" json:"name"`
	Price        float64   `db:"price" json:"price"`
	Category     string    `db:"category" json:"category"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// User represents an app user.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Review is a user's rating of a restaurant.
type Review struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	RestaurantID int64     `db:"restaurant_id" json:"restaurant_id"`
	Rating       int       `db:"rating" json:"rating"`
	Comment      string    `db:"comment" json:"comment"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// PaymentRequest is a peer-to-peer request for money. Only the deep link is
// constructed here; execution happens in the payment app.
type PaymentRequest struct {
	ID          uuid.UUID            `db:"id" json:"id"`
	FromUserID  int64                `db:"from_user_id" json:"from_user_id"`
	ToUserID    int64                `db:"to_user_id" json:"to_user_id"`
	Amount      float64              `db:"amount" json:"amount"`
	Note        string               `db:"note" json:"note"`
	Status      PaymentRequestStatus `db:"status" json:"status"`
	PaymentLink string               `db:"payment_link" json:"payment_link"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
	SettledAt   *time.Time           `db:"settled_at" json:"settled_at"`
}
