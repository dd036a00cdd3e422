package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrRestaurantNotFound    = errors.New("restaurant not found")
	ErrFoodNotFound          = errors.New("food not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicateUsername     = errors.New("username already exists")
	ErrDuplicateFavorite     = errors.New("food already in favorites")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrUnsupportedImageType  = errors.New("unsupported image type")
	ErrImageTooLarge         = errors.New("image exceeds maximum allowed size")
	ErrPaymentRequestSettled = errors.New("payment request already settled")
	ErrSelfPaymentRequest    = errors.New("cannot request payment from yourself")
)
