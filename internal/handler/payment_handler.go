package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yufanhao/munch-backend/internal/service"
)

// PaymentHandler handles peer payment request endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create handles POST /api/v1/payment-requests
// @Summary Create a payment request
// @Description Record a peer payment request and build its deep link. No payment is executed.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreatePaymentRequest true "Payment request details"
// @Success 201 {object} Response{data=domain.PaymentRequest} "Payment request created"
// @Failure 400 {object} ErrorResponseBody "Invalid request or self request"
// @Failure 404 {object} ErrorResponseBody "User not found"
// @Router /payment-requests [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req struct {
		FromUserID int64   `json:"from_user_id" binding:"required"`
		ToUserID   int64   `json:"to_user_id" binding:"required"`
		Amount     float64 `json:"amount" binding:"required,gt=0"`
		Note       string  `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "from_user_id, to_user_id, and a positive amount are required")
		return
	}

	payment, err := h.paymentService.CreateRequest(c.Request.Context(), req.FromUserID, req.ToUserID, req.Amount, req.Note)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, payment)
}

// GetByID handles GET /api/v1/payment-requests/:id
// @Summary Get payment request by ID
// @Tags payments
// @Produce json
// @Param id path string true "Payment request ID (UUID)"
// @Success 200 {object} Response{data=domain.PaymentRequest} "Payment request details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Payment request not found"
// @Router /payment-requests/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment request ID")
		return
	}

	payment, err := h.paymentService.GetRequest(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, payment)
}

// ListByUser handles GET /api/v1/users/:id/payment-requests
// @Summary List a user's payment requests
// @Description List payment requests where the user is sender or recipient, newest first
// @Tags payments
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Response{data=[]domain.PaymentRequest} "Payment requests"
// @Router /users/{id}/payment-requests [get]
func (h *PaymentHandler) ListByUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListRequests(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, payments)
}

// Settle handles POST /api/v1/payment-requests/:id/settle
// @Summary Settle a payment request
// @Description Mark a pending payment request as settled
// @Tags payments
// @Produce json
// @Param id path string true "Payment request ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Payment request settled"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Payment request not found"
// @Failure 409 {object} ErrorResponseBody "Already settled"
// @Router /payment-requests/{id}/settle [post]
func (h *PaymentHandler) Settle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid payment request ID")
		return
	}

	if err := h.paymentService.SettleRequest(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "payment request settled"})
}
