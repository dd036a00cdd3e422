package matcher

import (
	"fmt"

	"github.com/yufanhao/munch-backend/internal/config"
	"github.com/yufanhao/munch-backend/internal/port"
)

// ProviderFactory is a function that creates a Matcher from config.
type ProviderFactory func(cfg *config.MatcherConfig) (port.Matcher, error)

// registry of matcher provider factories, populated via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a matcher provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewMatcher creates a Matcher using the registered factory for the
// configured provider.
func NewMatcher(cfg *config.MatcherConfig) (port.Matcher, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown matcher provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
