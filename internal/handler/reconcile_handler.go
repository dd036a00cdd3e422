package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yufanhao/munch-backend/internal/service"
)

// ReconcileHandler handles catalog reconciliation endpoints.
type ReconcileHandler struct {
	reconcileService service.ReconcileService
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(reconcileService service.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{reconcileService: reconcileService}
}

// Reconcile handles POST /api/v1/receipts/reconcile
// @Summary Reconcile receipt names against the catalog
// @Description Resolve a receipt-derived restaurant and item name onto canonical catalog records. Unresolved names come back null.
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body ReconcileRequest true "Names to resolve"
// @Success 200 {object} Response{data=domain.ResolvedPair} "Resolution result"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Router /receipts/reconcile [post]
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	var req struct {
		Restaurant string `json:"restaurant" binding:"required"`
		Item       string `json:"item" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "restaurant and item are required")
		return
	}

	pair, err := h.reconcileService.Resolve(c.Request.Context(), req.Restaurant, req.Item)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pair)
}
