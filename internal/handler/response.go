package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/imaging"
	"github.com/yufanhao/munch-backend/internal/parser"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var decodeErr *imaging.DecodeError
	var extractionErr *parser.ExtractionError
	var parseErr *parser.ParseError

	switch {
	case errors.Is(err, domain.ErrRestaurantNotFound):
		return http.StatusNotFound, "RESTAURANT_NOT_FOUND", "restaurant not found"
	case errors.Is(err, domain.ErrFoodNotFound):
		return http.StatusNotFound, "FOOD_NOT_FOUND", "menu item not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "USER_NOT_FOUND", "user not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict, "DUPLICATE_USERNAME", "username already exists"
	case errors.Is(err, domain.ErrDuplicateFavorite):
		return http.StatusConflict, "DUPLICATE_FAVORITE", "food is already a favorite"
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, "INVALID_RATING", "rating must be between 1 and 5"
	case errors.Is(err, domain.ErrUnsupportedImageType):
		return http.StatusBadRequest, "UNSUPPORTED_IMAGE_TYPE", "unsupported image type; allowed: jpeg, png, gif"
	case errors.Is(err, domain.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "image exceeds maximum allowed size"
	case errors.Is(err, domain.ErrPaymentRequestSettled):
		return http.StatusConflict, "ALREADY_SETTLED", "payment request is already settled"
	case errors.Is(err, domain.ErrSelfPaymentRequest):
		return http.StatusBadRequest, "SELF_PAYMENT_REQUEST", "cannot request payment from yourself"
	case errors.As(err, &decodeErr):
		return http.StatusBadRequest, "INVALID_IMAGE", "image could not be decoded"
	case errors.As(err, &extractionErr):
		return http.StatusInternalServerError, "EXTRACTION_FAILED", err.Error()
	case errors.As(err, &parseErr):
		return http.StatusInternalServerError, "PARSE_FAILED", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

// parsePagination reads offset/limit query parameters with sane defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return offset, limit
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return 0, false
	}
	return id, true
}
