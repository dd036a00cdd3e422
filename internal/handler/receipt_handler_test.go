package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/handler"
	"github.com/yufanhao/munch-backend/internal/imaging"
	"github.com/yufanhao/munch-backend/internal/parser"
	"github.com/yufanhao/munch-backend/mocks"
)

func newReceiptRouter(svc *mocks.MockReceiptService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewReceiptHandler(svc, &config.ImageConfig{MaxDimension: 1024, MaxFileSizeMB: 20})
	r.POST("/api/v1/receipts/parse", h.Parse)
	return r
}

func multipartImage(t *testing.T, fieldName string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(fieldName, "receipt.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func multipartImageTyped(t *testing.T, partType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="receipt.bin"`)
	header.Set("Content-Type", partType)
	fw, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp
}

func TestParseReceiptSuccess(t *testing.T) {
	svc := new(mocks.MockReceiptService)
	svc.On("Parse", mock.Anything, mock.Anything).Return(&domain.ParsedReceipt{
		StoreName: "Pho Time",
		Items: []domain.ParsedReceiptItem{
			{ID: 1, Name: "Beef Pho", Price: 13.95},
		},
		Total:           15.79,
		PaymentMethod:   domain.PaymentCredit,
		AssignedFriends: []int64{},
	}, nil)

	body, contentType := multipartImage(t, "image", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts/parse", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	newReceiptRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.True(t, resp.Success)

	data, _ := json.Marshal(resp.Data)
	assert.Contains(t, string(data), `"store_name":"Pho Time"`)
	assert.Contains(t, string(data), `"assigned_friends":[]`)
}

func TestParseReceiptMissingImage(t *testing.T) {
	svc := new(mocks.MockReceiptService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts/parse", nil)
	w := httptest.NewRecorder()

	newReceiptRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MISSING_IMAGE", resp.Error.Code)
	svc.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
}

func TestParseReceiptWrongFieldName(t *testing.T) {
	svc := new(mocks.MockReceiptService)

	body, contentType := multipartImage(t, "file", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts/parse", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	newReceiptRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "MISSING_IMAGE", resp.Error.Code)
}

func TestParseReceiptExtractionFailure(t *testing.T) {
	svc := new(mocks.MockReceiptService)
	svc.On("Parse", mock.Anything, mock.Anything).
		Return(nil, &parser.ExtractionError{Provider: "openai", Err: errors.New("api down")})

	body, contentType := multipartImage(t, "image", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts/parse", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	newReceiptRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "EXTRACTION_FAILED", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "api down")
}

func TestParseReceiptOctetStreamPartAccepted(t *testing.T) {
	svc := new(mocks.MockReceiptService)
	svc.On("Parse", mock.Anything, mock.Anything).
		Return(&domain.ParsedReceipt{StoreName: "Pho Time", AssignedFriends: []int64{}}, nil)

	body, contentType := multipartImageTyped(t, "application/octet-stream", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts/parse", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	newReceiptRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertCalled(t, "Parse", mock.Anything, mock.Anything)
}

func TestParseReceiptForeignContentTypeRejected(t *testing.T) {
	svc := new(mocks.MockReceiptService)

	body, contentType := multipartImageTyped(t, "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts/parse", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	newReceiptRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "UNSUPPORTED_IMAGE_TYPE", resp.Error.Code)
	svc.AssertNotCalled(t, "Parse", mock.Anything, mock.Anything)
}

func TestParseReceiptUndecodableImage(t *testing.T) {
	svc := new(mocks.MockReceiptService)
	svc.On("Parse", mock.Anything, mock.Anything).
		Return(nil, &imaging.DecodeError{Err: errors.New("bad png")})

	body, contentType := multipartImage(t, "image", []byte("not an image"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts/parse", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	newReceiptRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "INVALID_IMAGE", resp.Error.Code)
}
