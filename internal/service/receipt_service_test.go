package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/parser"
	"github.com/yufanhao/munch-backend/internal/port"
	"github.com/yufanhao/munch-backend/internal/service"
	"github.com/yufanhao/munch-backend/mocks"
)

const extractorOutput = "```json\n" + `{
	"store_name": "Pho Time",
	"items": [
		{"name": "Beef Pho", "price": 13.95},
		{"name": "Beef Pho", "price": 13.95},
		{"name": "Spring Rolls", "price": 6.50}
	],
	"tax": 2.84,
	"tips": 5.00,
	"total": 42.24,
	"payment_total": 42.24,
	"payment_method": "credit"
}` + "\n```"

func testImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))
	for x := 0; x < 100; x++ {
		img.Set(x, 30, color.White)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testImageCfg() *config.ImageConfig {
	return &config.ImageConfig{MaxDimension: 1024, MaxFileSizeMB: 20}
}

func TestParseAssignsSequentialItemIDs(t *testing.T) {
	extractor := new(mocks.MockReceiptExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).Return(extractorOutput, nil)

	svc := service.NewReceiptService(extractor, nil, testImageCfg(), &config.S3Config{})
	receipt, err := svc.Parse(context.Background(), testImage(t))

	require.NoError(t, err)
	assert.Equal(t, "Pho Time", receipt.StoreName)
	require.Len(t, receipt.Items, 3)
	for i, item := range receipt.Items {
		assert.Equal(t, i+1, item.ID, "item IDs are 1-based and sequential")
	}
	assert.Equal(t, "Beef Pho", receipt.Items[0].Name)
	assert.Equal(t, "Beef Pho", receipt.Items[1].Name, "duplicate lines stay separate entries")
	assert.Equal(t, domain.PaymentCredit, receipt.PaymentMethod)
	require.NotNil(t, receipt.AssignedFriends)
	assert.Empty(t, receipt.AssignedFriends)
}

func TestParsePassesNormalizedImageToExtractor(t *testing.T) {
	extractor := new(mocks.MockReceiptExtractor)
	var captured port.ExtractInput
	extractor.On("Extract", mock.Anything, mock.MatchedBy(func(in port.ExtractInput) bool {
		captured = in
		return true
	})).Return(extractorOutput, nil)

	svc := service.NewReceiptService(extractor, nil, testImageCfg(), &config.S3Config{})
	_, err := svc.Parse(context.Background(), testImage(t))

	require.NoError(t, err)
	assert.Equal(t, "image/png", captured.ContentType)
	assert.NotEmpty(t, captured.ImageBase64)
}

func TestParseUndecodableImage(t *testing.T) {
	extractor := new(mocks.MockReceiptExtractor)

	svc := service.NewReceiptService(extractor, nil, testImageCfg(), &config.S3Config{})
	_, err := svc.Parse(context.Background(), []byte("not an image"))

	require.Error(t, err)
	extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestParseExtractionErrorPropagates(t *testing.T) {
	extractor := new(mocks.MockReceiptExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).
		Return("", &parser.ExtractionError{Provider: "openai", Err: errors.New("api down")})

	svc := service.NewReceiptService(extractor, nil, testImageCfg(), &config.S3Config{})
	_, err := svc.Parse(context.Background(), testImage(t))

	require.Error(t, err)
	var extractionErr *parser.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestParseUnparseableOutputPropagates(t *testing.T) {
	extractor := new(mocks.MockReceiptExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).Return("I could not read the receipt.", nil)

	svc := service.NewReceiptService(extractor, nil, testImageCfg(), &config.S3Config{})
	_, err := svc.Parse(context.Background(), testImage(t))

	require.Error(t, err)
	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "I could not read the receipt.", parseErr.RawOutput)
}

func TestParseArchivesOriginalWhenBucketConfigured(t *testing.T) {
	extractor := new(mocks.MockReceiptExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).Return(extractorOutput, nil)
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "munch-receipts"
	})).Return(&port.UploadOutput{}, nil)

	svc := service.NewReceiptService(extractor, storage, testImageCfg(), &config.S3Config{Bucket: "munch-receipts"})
	_, err := svc.Parse(context.Background(), testImage(t))

	require.NoError(t, err)
	storage.AssertNumberOfCalls(t, "Upload", 1)
}

func TestParseArchivalFailureDoesNotFailRequest(t *testing.T) {
	extractor := new(mocks.MockReceiptExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).Return(extractorOutput, nil)
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket unreachable"))

	svc := service.NewReceiptService(extractor, storage, testImageCfg(), &config.S3Config{Bucket: "munch-receipts"})
	receipt, err := svc.Parse(context.Background(), testImage(t))

	require.NoError(t, err)
	assert.Equal(t, "Pho Time", receipt.StoreName)
}

func TestParseSkipsArchivalWithoutBucket(t *testing.T) {
	extractor := new(mocks.MockReceiptExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).Return(extractorOutput, nil)
	storage := new(mocks.MockObjectStorage)

	svc := service.NewReceiptService(extractor, storage, testImageCfg(), &config.S3Config{})
	_, err := svc.Parse(context.Background(), testImage(t))

	require.NoError(t, err)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}
