package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yufanhao/munch-backend/internal/domain"
	"github.com/yufanhao/munch-backend/internal/service"
	"github.com/yufanhao/munch-backend/mocks"
)

func TestResolveBothStagesSucceed(t *testing.T) {
	catalog := new(mocks.MockCatalog)
	matcher := new(mocks.MockMatcher)

	catalog.On("ListRestaurantNames", mock.Anything).Return([]string{"Pho Time", "Taco Bell"}, nil)
	matcher.On("ClosestMatch", mock.Anything, "pho tim", []string{"Pho Time", "Taco Bell"}, "restaurant names").
		Return("Pho Time", nil)
	catalog.On("FindRestaurantByName", mock.Anything, "Pho Time").
		Return(&domain.Restaurant{ID: 7, Name: "Pho Time"}, nil)
	catalog.On("ListMenuItemNames", mock.Anything, int64(7)).Return([]string{"Beef Pho", "Spring Rolls"}, nil)
	matcher.On("ClosestMatch", mock.Anything, "beef pho", []string{"Beef Pho", "Spring Rolls"}, "food items from the restaurant menu").
		Return("Beef Pho", nil)

	svc := service.NewReconcileService(matcher, catalog)
	pair, err := svc.Resolve(context.Background(), "pho tim", "beef pho")

	require.NoError(t, err)
	require.NotNil(t, pair.Restaurant)
	assert.Equal(t, "Pho Time", *pair.Restaurant)
	require.NotNil(t, pair.Item)
	assert.Equal(t, "Beef Pho", *pair.Item)
}

func TestResolveRestaurantMissShortCircuits(t *testing.T) {
	catalog := new(mocks.MockCatalog)
	matcher := new(mocks.MockMatcher)

	catalog.On("ListRestaurantNames", mock.Anything).Return([]string{"Taco Bell"}, nil)
	matcher.On("ClosestMatch", mock.Anything, "pho tim", []string{"Taco Bell"}, "restaurant names").
		Return("", nil)

	svc := service.NewReconcileService(matcher, catalog)
	pair, err := svc.Resolve(context.Background(), "pho tim", "beef pho")

	require.NoError(t, err)
	assert.Nil(t, pair.Restaurant)
	assert.Nil(t, pair.Item)
	catalog.AssertNotCalled(t, "ListMenuItemNames", mock.Anything, mock.Anything)
	matcher.AssertNumberOfCalls(t, "ClosestMatch", 1)
}

func TestResolveItemMissKeepsRestaurant(t *testing.T) {
	catalog := new(mocks.MockCatalog)
	matcher := new(mocks.MockMatcher)

	catalog.On("ListRestaurantNames", mock.Anything).Return([]string{"Pho Time"}, nil)
	matcher.On("ClosestMatch", mock.Anything, "pho tim", mock.Anything, "restaurant names").
		Return("Pho Time", nil)
	catalog.On("FindRestaurantByName", mock.Anything, "Pho Time").
		Return(&domain.Restaurant{ID: 7, Name: "Pho Time"}, nil)
	catalog.On("ListMenuItemNames", mock.Anything, int64(7)).Return([]string{"Spring Rolls"}, nil)
	matcher.On("ClosestMatch", mock.Anything, "birria taco", mock.Anything, "food items from the restaurant menu").
		Return("", nil)

	svc := service.NewReconcileService(matcher, catalog)
	pair, err := svc.Resolve(context.Background(), "pho tim", "birria taco")

	require.NoError(t, err)
	require.NotNil(t, pair.Restaurant)
	assert.Equal(t, "Pho Time", *pair.Restaurant)
	assert.Nil(t, pair.Item)
}

func TestResolveMatcherFailureDegradesToNull(t *testing.T) {
	catalog := new(mocks.MockCatalog)
	matcher := new(mocks.MockMatcher)

	catalog.On("ListRestaurantNames", mock.Anything).Return([]string{"Pho Time"}, nil)
	matcher.On("ClosestMatch", mock.Anything, "pho tim", mock.Anything, "restaurant names").
		Return("", errors.New("api timeout"))

	svc := service.NewReconcileService(matcher, catalog)
	pair, err := svc.Resolve(context.Background(), "pho tim", "beef pho")

	require.NoError(t, err, "matcher failure must not fail the request")
	assert.Nil(t, pair.Restaurant)
	assert.Nil(t, pair.Item)
}

func TestResolveItemMatcherFailureKeepsRestaurant(t *testing.T) {
	catalog := new(mocks.MockCatalog)
	matcher := new(mocks.MockMatcher)

	catalog.On("ListRestaurantNames", mock.Anything).Return([]string{"Pho Time"}, nil)
	matcher.On("ClosestMatch", mock.Anything, "pho tim", mock.Anything, "restaurant names").
		Return("Pho Time", nil)
	catalog.On("FindRestaurantByName", mock.Anything, "Pho Time").
		Return(&domain.Restaurant{ID: 7, Name: "Pho Time"}, nil)
	catalog.On("ListMenuItemNames", mock.Anything, int64(7)).Return([]string{"Beef Pho"}, nil)
	matcher.On("ClosestMatch", mock.Anything, "beef pho", mock.Anything, "food items from the restaurant menu").
		Return("", errors.New("api timeout"))

	svc := service.NewReconcileService(matcher, catalog)
	pair, err := svc.Resolve(context.Background(), "pho tim", "beef pho")

	require.NoError(t, err)
	require.NotNil(t, pair.Restaurant)
	assert.Nil(t, pair.Item)
}

func TestResolveCatalogErrorPropagates(t *testing.T) {
	catalog := new(mocks.MockCatalog)
	matcher := new(mocks.MockMatcher)

	catalog.On("ListRestaurantNames", mock.Anything).Return(nil, errors.New("db down"))

	svc := service.NewReconcileService(matcher, catalog)
	_, err := svc.Resolve(context.Background(), "pho tim", "beef pho")

	require.Error(t, err)
	matcher.AssertNotCalled(t, "ClosestMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveRestaurantDeletedMidFlight(t *testing.T) {
	catalog := new(mocks.MockCatalog)
	matcher := new(mocks.MockMatcher)

	catalog.On("ListRestaurantNames", mock.Anything).Return([]string{"Pho Time"}, nil)
	matcher.On("ClosestMatch", mock.Anything, "pho tim", mock.Anything, "restaurant names").
		Return("Pho Time", nil)
	catalog.On("FindRestaurantByName", mock.Anything, "Pho Time").
		Return(nil, domain.ErrRestaurantNotFound)

	svc := service.NewReconcileService(matcher, catalog)
	pair, err := svc.Resolve(context.Background(), "pho tim", "beef pho")

	require.NoError(t, err)
	require.NotNil(t, pair.Restaurant)
	assert.Nil(t, pair.Item)
}
