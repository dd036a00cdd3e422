package domain

// PaymentMethod is the closed set of payment methods a receipt can report.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCheck  PaymentMethod = "check"
	PaymentOther  PaymentMethod = "other"
)

// ValidPaymentMethods enumerates the accepted payment method values.
var ValidPaymentMethods = map[PaymentMethod]bool{
	PaymentCash:   true,
	PaymentCredit: true,
	PaymentDebit:  true,
	PaymentCheck:  true,
	PaymentOther:  true,
}

// Valid reports whether m is a member of the closed enumeration.
func (m PaymentMethod) Valid() bool {
	return ValidPaymentMethods[m]
}

// PaymentRequestStatus represents the lifecycle of a payment request.
type PaymentRequestStatus string

const (
	PaymentRequestPending PaymentRequestStatus = "pending"
	PaymentRequestSettled PaymentRequestStatus = "settled"
)

// ImageType represents the allowed receipt image types for upload.
type ImageType string

const (
	ImageTypeJPG ImageType = "jpg"
	ImageTypePNG ImageType = "png"
	ImageTypeGIF ImageType = "gif"
)

// AllowedImageContentTypes maps MIME content types back to ImageType.
var AllowedImageContentTypes = map[string]ImageType{
	"image/jpeg": ImageTypeJPG,
	"image/png":  ImageTypePNG,
	"image/gif":  ImageTypeGIF,
}
