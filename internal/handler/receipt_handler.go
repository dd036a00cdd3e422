package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/service"
)

// ReceiptHandler handles receipt parsing endpoints.
type ReceiptHandler struct {
	receiptService service.ReceiptService
	imageCfg       *config.ImageConfig
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(receiptService service.ReceiptService, imageCfg *config.ImageConfig) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, imageCfg: imageCfg}
}

// Parse handles POST /api/v1/receipts/parse
// @Summary Parse a receipt image
// @Description Upload a receipt image and extract a structured receipt via the vision model
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Receipt image (jpeg, png, or gif)"
// @Success 201 {object} Response{data=domain.ParsedReceipt} "Parsed receipt"
// @Failure 400 {object} ErrorResponseBody "Missing or undecodable image"
// @Failure 413 {object} ErrorResponseBody "Image too large"
// @Failure 500 {object} ErrorResponseBody "Extraction or parsing failed"
// @Router /receipts/parse [post]
func (h *ReceiptHandler) Parse(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_IMAGE", "image file is required")
		return
	}

	if fileHeader.Size > int64(h.imageCfg.MaxFileSizeMB)*1024*1024 {
		HandleError(c, domain.ErrImageTooLarge)
		return
	}

	// Most multipart clients label file parts application/octet-stream;
	// unknown types go through and the decoder has the final say. Only an
	// explicitly foreign type is rejected up front.
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" && contentType != "application/octet-stream" {
		if _, ok := domain.AllowedImageContentTypes[contentType]; !ok {
			HandleError(c, domain.ErrUnsupportedImageType)
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_IMAGE", "could not read uploaded file")
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_IMAGE", "could not read uploaded file")
		return
	}

	receipt, err := h.receiptService.Parse(c.Request.Context(), imageBytes)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, receipt)
}
