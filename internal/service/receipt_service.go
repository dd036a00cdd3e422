package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/imaging"
	"github.com/yufanhao/munch-backend/internal/parser"
	"github.com/yufanhao/munch-backend/internal/port"
)

// ReceiptService runs the receipt extraction pipeline: preprocess the image,
// extract a structured record through the vision model, normalize the
// response, and augment it with sequential item IDs.
type ReceiptService interface {
	Parse(ctx context.Context, imageBytes []byte) (*domain.ParsedReceipt, error)
}

type receiptService struct {
	extractor port.ReceiptExtractor
	storage   port.ObjectStorage // nil when archival is disabled
	imageCfg  *config.ImageConfig
	s3Cfg     *config.S3Config
}

// NewReceiptService creates a new ReceiptService. storage may be nil to
// disable receipt image archival.
func NewReceiptService(
	extractor port.ReceiptExtractor,
	storage port.ObjectStorage,
	imageCfg *config.ImageConfig,
	s3Cfg *config.S3Config,
) ReceiptService {
	return &receiptService{
		extractor: extractor,
		storage:   storage,
		imageCfg:  imageCfg,
		s3Cfg:     s3Cfg,
	}
}

func (s *receiptService) Parse(ctx context.Context, imageBytes []byte) (*domain.ParsedReceipt, error) {
	normalized, contentType, err := imaging.Normalize(imageBytes, s.imageCfg.MaxDimension)
	if err != nil {
		return nil, err
	}

	// Archival is best-effort: a storage failure degrades to a log line,
	// never a failed request.
	s.archive(ctx, imageBytes)

	raw, err := s.extractor.Extract(ctx, port.ExtractInput{
		ImageBase64: imaging.EncodeBase64(normalized),
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	summary, err := parser.NormalizeResponse(raw)
	if err != nil {
		return nil, err
	}

	return assembleParsedReceipt(summary), nil
}

// assembleParsedReceipt assigns sequential 1-based item identifiers in
// appearance order and attaches the empty collaborator list. Parsed fields
// are carried over unchanged.
func assembleParsedReceipt(summary *domain.ReceiptSummary) *domain.ParsedReceipt {
	items := make([]domain.ParsedReceiptItem, 0, len(summary.Items))
	for i, it := range summary.Items {
		items = append(items, domain.ParsedReceiptItem{
			ID:    i + 1,
			Name:  it.Name,
			Price: it.Price,
		})
	}
	return &domain.ParsedReceipt{
		StoreName:       summary.StoreName,
		Items:           items,
		Tax:             summary.Tax,
		Tips:            summary.Tips,
		Total:           summary.Total,
		PaymentTotal:    summary.PaymentTotal,
		PaymentMethod:   summary.PaymentMethod,
		AssignedFriends: []int64{},
	}
}

func (s *receiptService) archive(ctx context.Context, imageBytes []byte) {
	if s.storage == nil || s.s3Cfg.Bucket == "" {
		return
	}
	key := fmt.Sprintf("receipts/%s", uuid.New())
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(imageBytes),
		ContentType: "application/octet-stream",
	})
	if err != nil {
		log.Printf("receiptService.archive: failed to archive receipt image: %v", err)
	}
}
