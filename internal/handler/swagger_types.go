package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ReconcileRequest represents the reconcile request body.
type ReconcileRequest struct {
	Restaurant string `json:"restaurant" binding:"required" example:"Pho Tim Vietnamese"`
	Item       string `json:"item" binding:"required" example:"beef pho"`
}

// CreateRestaurantRequest represents the create restaurant request body.
type CreateRestaurantRequest struct {
	Name    string `json:"name" binding:"required" example:"Pho Time"`
	Address string `json:"address" example:"512 University Ave"`
	Cuisine string `json:"cuisine" example:"vietnamese"`
}

// CreateFoodRequest represents the create menu item request body.
type CreateFoodRequest struct {
	Name     string  `json:"name" binding:"required" example:"Beef Pho"`
	Price    float64 `json:"price" binding:"required" example:"13.95"`
	Category string  `json:"category" example:"noodles"`
}

// CreateReviewRequest represents the create review request body.
type CreateReviewRequest struct {
	UserID  int64  `json:"user_id" binding:"required" example:"42"`
	Rating  int    `json:"rating" binding:"required" example:"5"`
	Comment string `json:"comment" example:"Best pho in town"`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required" example:"janedoe"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
	Email    string `json:"email" binding:"required" example:"jane.doe@example.com"`
	Phone    string `json:"phone" example:"+15551234567"`
}

// AddFavoriteRequest represents the add favorite request body.
type AddFavoriteRequest struct {
	FoodID int64 `json:"food_id" binding:"required" example:"7"`
}

// CreatePaymentRequest represents the create payment request body.
type CreatePaymentRequest struct {
	FromUserID int64   `json:"from_user_id" binding:"required" example:"1"`
	ToUserID   int64   `json:"to_user_id" binding:"required" example:"2"`
	Amount     float64 `json:"amount" binding:"required" example:"18.50"`
	Note       string  `json:"note" example:"dinner at Pho Time"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Uptime string `json:"uptime,omitempty" example:"3h12m5s"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
