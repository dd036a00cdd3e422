package parser

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/yufanhao/munch-backend/internal/domain"
)

// fencedJSON matches a markdown code block (optionally tagged json) and
// captures the object inside it.
var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// wire types use pointers so that absent fields are distinguishable from
// explicit zeros when applying defaults.
type wireItem struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type wireReceipt struct {
	StoreName     *string    `json:"store_name"`
	StoreAddress  *string    `json:"store_address"`
	Items         []wireItem `json:"items"`
	Tax           *float64   `json:"tax"`
	Tips          *float64   `json:"tips"`
	Total         *float64   `json:"total"`
	PaymentTotal  *float64   `json:"payment_total"`
	PaymentMethod *string    `json:"payment_method"`
}

// NormalizeResponse recovers a strict ReceiptSummary from a possibly
// free-form model completion. Markdown fencing is stripped, the text is
// parsed as the receipt schema, and field-level defaults are applied: absent
// numbers become 0 and absent strings become empty. PaymentMethod is never
// defaulted; a missing or invalid value is a hard ParseError.
func NormalizeResponse(completion string) (*domain.ReceiptSummary, error) {
	text := strings.TrimSpace(completion)
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	var wire wireReceipt
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, &ParseError{RawOutput: completion, Err: err}
	}

	if wire.PaymentMethod == nil {
		return nil, &ParseError{RawOutput: completion, Err: errors.New("missing payment_method")}
	}
	method := domain.PaymentMethod(*wire.PaymentMethod)
	if !method.Valid() {
		return nil, &ParseError{RawOutput: completion, Err: errors.New("invalid payment_method: " + *wire.PaymentMethod)}
	}

	summary := &domain.ReceiptSummary{
		StoreName:     strOrEmpty(wire.StoreName),
		StoreAddress:  strOrEmpty(wire.StoreAddress),
		Tax:           numOrZero(wire.Tax),
		Tips:          numOrZero(wire.Tips),
		Total:         numOrZero(wire.Total),
		PaymentTotal:  numOrZero(wire.PaymentTotal),
		PaymentMethod: method,
	}

	summary.Items = make([]domain.ReceiptItem, 0, len(wire.Items))
	for _, it := range wire.Items {
		summary.Items = append(summary.Items, domain.ReceiptItem{
			Name:  strOrEmpty(it.Name),
			Price: numOrZero(it.Price),
		})
	}

	return summary, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func numOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
