package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/service"
)

// RestaurantHandler handles restaurant, menu, and review endpoints.
type RestaurantHandler struct {
	restaurantService service.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(restaurantService service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// Create handles POST /api/v1/restaurants
// @Summary Create a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param request body CreateRestaurantRequest true "Restaurant details"
// @Success 201 {object} Response{data=domain.Restaurant} "Restaurant created"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Router /restaurants [post]
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address"`
		Cuisine string `json:"cuisine"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	restaurant := &domain.Restaurant{
		Name:    req.Name,
		Address: req.Address,
		Cuisine: req.Cuisine,
	}
	if err := h.restaurantService.Create(c.Request.Context(), restaurant); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, restaurant)
}

// GetByID handles GET /api/v1/restaurants/:id
// @Summary Get restaurant by ID
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} Response{data=domain.Restaurant} "Restaurant details"
// @Failure 404 {object} ErrorResponseBody "Restaurant not found"
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	restaurant, err := h.restaurantService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, restaurant)
}

// List handles GET /api/v1/restaurants
// @Summary List restaurants
// @Tags restaurants
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Restaurant,meta=PagMeta} "List of restaurants"
// @Router /restaurants [get]
func (h *RestaurantHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	restaurants, total, err := h.restaurantService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, restaurants, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Delete handles DELETE /api/v1/restaurants/:id
// @Summary Delete a restaurant
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} Response{data=MessageResponse} "Restaurant deleted"
// @Failure 404 {object} ErrorResponseBody "Restaurant not found"
// @Router /restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.restaurantService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "restaurant deleted"})
}

// AddMenuItem handles POST /api/v1/restaurants/:id/menu
// @Summary Add a menu item
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body CreateFoodRequest true "Menu item details"
// @Success 201 {object} Response{data=domain.Food} "Menu item created"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Restaurant not found"
// @Router /restaurants/{id}/menu [post]
func (h *RestaurantHandler) AddMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name     string  `json:"name" binding:"required"`
		Price    float64 `json:"price" binding:"required"`
		Category string  `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name and price are required")
		return
	}

	food := &domain.Food{
		RestaurantID: id,
		Name:         req.Name,
		Price:        req.Price,
		Category:     req.Category,
	}
	if err := h.restaurantService.AddMenuItem(c.Request.Context(), food); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, food)
}

// GetMenu handles GET /api/v1/restaurants/:id/menu
// @Summary Get a restaurant menu
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} Response{data=[]domain.Food} "Menu items"
// @Failure 404 {object} ErrorResponseBody "Restaurant not found"
// @Router /restaurants/{id}/menu [get]
func (h *RestaurantHandler) GetMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	foods, err := h.restaurantService.GetMenu(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, foods)
}

// DeleteMenuItem handles DELETE /api/v1/restaurants/:id/menu/:foodId
// @Summary Delete a menu item
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param foodId path int true "Food ID"
// @Success 200 {object} Response{data=MessageResponse} "Menu item deleted"
// @Failure 404 {object} ErrorResponseBody "Restaurant or menu item not found"
// @Router /restaurants/{id}/menu/{foodId} [delete]
func (h *RestaurantHandler) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	foodID, ok := parseID(c, "foodId")
	if !ok {
		return
	}

	if err := h.restaurantService.DeleteMenuItem(c.Request.Context(), id, foodID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "menu item deleted"})
}

// ExportMenu handles GET /api/v1/restaurants/:id/menu/export
// @Summary Export a restaurant menu as xlsx
// @Tags restaurants
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Restaurant ID"
// @Success 200 {file} binary "Menu workbook"
// @Failure 404 {object} ErrorResponseBody "Restaurant not found"
// @Router /restaurants/{id}/menu/export [get]
func (h *RestaurantHandler) ExportMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="menu-%d.xlsx"`, id))

	if err := h.restaurantService.ExportMenu(c.Request.Context(), c.Writer, id); err != nil {
		HandleError(c, err)
		return
	}
}

// AddReview handles POST /api/v1/restaurants/:id/reviews
// @Summary Review a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body CreateReviewRequest true "Review details"
// @Success 201 {object} Response{data=domain.Review} "Review created"
// @Failure 400 {object} ErrorResponseBody "Invalid rating"
// @Failure 404 {object} ErrorResponseBody "Restaurant not found"
// @Router /restaurants/{id}/reviews [post]
func (h *RestaurantHandler) AddReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		UserID  int64  `json:"user_id" binding:"required"`
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id and rating are required")
		return
	}

	review := &domain.Review{
		UserID:       req.UserID,
		RestaurantID: id,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := h.restaurantService.AddReview(c.Request.Context(), review); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, review)
}

// ListReviews handles GET /api/v1/restaurants/:id/reviews
// @Summary List restaurant reviews
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} Response{data=[]domain.Review} "Reviews"
// @Failure 404 {object} ErrorResponseBody "Restaurant not found"
// @Router /restaurants/{id}/reviews [get]
func (h *RestaurantHandler) ListReviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.restaurantService.ListReviews(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, reviews)
}
