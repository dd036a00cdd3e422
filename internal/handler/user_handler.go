package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yufanhao/munch-backend/internal/service"
)

// UserHandler handles user and favorites endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /api/v1/users
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User details"
// @Success 201 {object} Response{data=domain.User} "User created"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 409 {object} ErrorResponseBody "Username already exists"
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "username, password (min 8 chars), and email are required")
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Username, req.Password, req.Email, req.Phone)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, user)
}

// GetByID handles GET /api/v1/users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response{data=domain.User} "User details"
// @Failure 404 {object} ErrorResponseBody "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

// List handles GET /api/v1/users
// @Summary List users
// @Tags users
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.User,meta=PagMeta} "List of users"
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	users, total, err := h.userService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, users, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Delete handles DELETE /api/v1/users/:id
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response{data=MessageResponse} "User deleted"
// @Failure 404 {object} ErrorResponseBody "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "user deleted"})
}

// AddFavorite handles POST /api/v1/users/:id/favorites
// @Summary Favorite a menu item
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body AddFavoriteRequest true "Food to favorite"
// @Success 201 {object} Response{data=MessageResponse} "Favorite added"
// @Failure 404 {object} ErrorResponseBody "User or food not found"
// @Failure 409 {object} ErrorResponseBody "Already a favorite"
// @Router /users/{id}/favorites [post]
func (h *UserHandler) AddFavorite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		FoodID int64 `json:"food_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "food_id is required")
		return
	}

	if err := h.userService.AddFavorite(c.Request.Context(), id, req.FoodID); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"message": "favorite added"})
}

// RemoveFavorite handles DELETE /api/v1/users/:id/favorites/:foodId
// @Summary Remove a favorite
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param foodId path int true "Food ID"
// @Success 200 {object} Response{data=MessageResponse} "Favorite removed"
// @Failure 404 {object} ErrorResponseBody "Favorite not found"
// @Router /users/{id}/favorites/{foodId} [delete]
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	foodID, ok := parseID(c, "foodId")
	if !ok {
		return
	}

	if err := h.userService.RemoveFavorite(c.Request.Context(), id, foodID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "favorite removed"})
}

// ListFavorites handles GET /api/v1/users/:id/favorites
// @Summary List a user's favorites
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response{data=[]domain.Food} "Favorite menu items"
// @Failure 404 {object} ErrorResponseBody "User not found"
// @Router /users/{id}/favorites [get]
func (h *UserHandler) ListFavorites(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	foods, err := h.userService.ListFavorites(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, foods)
}
