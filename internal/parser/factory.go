package parser

import (
	"fmt"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/port"
)

// ProviderFactory is a function that creates a ReceiptExtractor from config.
type ProviderFactory func(cfg *config.ParserConfig) (port.ReceiptExtractor, error)

// registry of extraction provider factories, populated via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extraction provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewExtractor creates a ReceiptExtractor using the registered factory for
// the configured provider.
func NewExtractor(cfg *config.ParserConfig) (port.ReceiptExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extraction provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
