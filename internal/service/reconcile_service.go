package service

import (
	"context"
	"errors"
	"log"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/port"
)

// Context hints passed to the matcher to bias its judgment.
const (
	restaurantHint = "restaurant names"
	menuItemHint   = "food items from the restaurant menu"
)

// ReconcileService maps noisy receipt-derived names onto canonical catalog
// records. Resolution is advisory: matcher failures degrade to null fields,
// never to a failed request.
type ReconcileService interface {
	Resolve(ctx context.Context, restaurantName, itemName string) (*domain.ResolvedPair, error)
}

type reconcileService struct {
	matcher port.Matcher
	catalog port.Catalog
}

// NewReconcileService creates a new ReconcileService.
func NewReconcileService(matcher port.Matcher, catalog port.Catalog) ReconcileService {
	return &reconcileService{matcher: matcher, catalog: catalog}
}

// Resolve runs the two-stage protocol: the restaurant name against the full
// restaurant catalog first, and only on success the item name against that
// restaurant's menu. Stage-one failure short-circuits to (null, null).
// Catalog errors propagate; matcher errors are logged and treated as no
// match.
func (s *reconcileService) Resolve(ctx context.Context, restaurantName, itemName string) (*domain.ResolvedPair, error) {
	pair := &domain.ResolvedPair{}

	restaurantNames, err := s.catalog.ListRestaurantNames(ctx)
	if err != nil {
		return nil, err
	}

	restaurantMatch, err := s.matcher.ClosestMatch(ctx, restaurantName, restaurantNames, restaurantHint)
	if err != nil {
		log.Printf("reconcileService.Resolve: restaurant match failed for %q: %v", restaurantName, err)
		return pair, nil
	}
	if restaurantMatch == "" {
		return pair, nil
	}
	pair.Restaurant = &restaurantMatch

	restaurant, err := s.catalog.FindRestaurantByName(ctx, restaurantMatch)
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			// The matched name came from the catalog, so this only happens
			// when the restaurant was deleted mid-flight.
			log.Printf("reconcileService.Resolve: matched restaurant %q no longer in catalog", restaurantMatch)
			return pair, nil
		}
		return nil, err
	}

	menuItemNames, err := s.catalog.ListMenuItemNames(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	itemMatch, err := s.matcher.ClosestMatch(ctx, itemName, menuItemNames, menuItemHint)
	if err != nil {
		log.Printf("reconcileService.Resolve: item match failed for %q: %v", itemName, err)
		return pair, nil
	}
	if itemMatch != "" {
		pair.Item = &itemMatch
	}
	return pair, nil
}
