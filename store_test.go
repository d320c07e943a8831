package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"gocraftify.io/store/cart"
	"gocraftify.io/store/catalog"
	"gocraftify.io/store/driver"
	"gocraftify.io/store/event"
	"gocraftify.io/store/models/enum"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	kv := driver.NewMemory()
	logger := zap.NewNop()
	svc := NewService(
		cart.NewStore(kv, stripe.CurrencyUSD, logger),
		catalog.Demo(),
		event.NewRepository(kv, logger),
		nil, // no event bus in a single-page session
		logger,
	)
	t.Cleanup(svc.Shutdown)
	return svc
}

func TestCartFlowEndToEnd(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 1, "Vanilla Bean Candle", 35.00, "images/vanilla.jpg")
	require.NoError(t, err)
	cartModel, err := svc.AddToCart(ctx, 1, "Vanilla Bean Candle", 35.00, "images/vanilla.jpg")
	require.NoError(t, err)

	require.Len(t, cartModel.Items, 1)
	assert.Equal(t, uint64(2), cartModel.Items[0].Quantity)

	totals, err := svc.GetCartTotals(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 70.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 3.50, totals.Tax, 1e-9)
	assert.InDelta(t, 5.00, totals.Shipping, 1e-9)
	assert.InDelta(t, 78.50, totals.Total, 1e-9)
	assert.Equal(t, uint64(2), totals.ItemCount)
}

func TestCartItemReferenceErrorsPropagate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RemoveCartItem(ctx, 42)
	assert.ErrorIs(t, err, cart.ErrNotFound)

	_, err = svc.SetCartItemQuantity(ctx, 42, 3)
	assert.ErrorIs(t, err, cart.ErrNotFound)

	_, err = svc.AdjustCartItemQuantity(ctx, 42, 1)
	assert.ErrorIs(t, err, cart.ErrNotFound)
}

func TestClearCart(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, 7, "Rose Gift Box", 55.00, "")
	require.NoError(t, err)

	cartModel, err := svc.ClearCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cartModel.Items)

	totals, err := svc.GetCartTotals(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 5.00, totals.Total, 1e-9)
}

func TestVisibleProductsPipeline(t *testing.T) {
	svc := newTestService(t)

	visible := svc.VisibleProducts(
		catalog.Criteria{Category: "candles"},
		enum.SortKeyPriceAsc,
	)

	require.Len(t, visible, 3)
	assert.Equal(t, "Lavender Candle", visible[0].Name)
	assert.Equal(t, "Jasmine Candle", visible[1].Name)
	assert.Equal(t, "Vanilla Bean Candle", visible[2].Name)

	// Relaxing the filter restores the full catalog.
	all := svc.VisibleProducts(catalog.Criteria{}, enum.SortKeyDefault)
	assert.Len(t, all, len(catalog.Demo()))
}

func TestFilterAndSortBoundaryOps(t *testing.T) {
	svc := newTestService(t)

	filtered := svc.FilterCatalog(catalog.Criteria{SearchTerm: "gift"})
	require.Len(t, filtered, 2)

	sorted := svc.SortCatalog(filtered, enum.SortKeyPriceDesc)
	assert.Equal(t, "Wood Box Gift Set", sorted[0].Name)
	assert.Equal(t, "Rose Gift Box", sorted[1].Name)
}

func TestRecommendations(t *testing.T) {
	svc := newTestService(t)

	recs := svc.Recommendations(1, "")
	require.NotEmpty(t, recs)
	for _, p := range recs {
		assert.NotEqual(t, uint64(1), p.ID)
	}
	assert.LessOrEqual(t, len(recs), catalog.DefaultRecommendationLimit)
}

func TestProcessEventDedupes(t *testing.T) {
	svc := newTestService(t).(*service)
	ctx := context.Background()

	evt := newCartEvent(enum.EventTypeCartItemAdded, 1, 1)
	require.NoError(t, svc.ProcessEvent(ctx, evt))

	recorded, err := svc.event.GetByID(ctx, evt.ID)
	require.NoError(t, err)
	assert.True(t, recorded.Processed)

	// Redelivery of the same event is a no-op.
	require.NoError(t, svc.ProcessEvent(ctx, evt))
}

func TestProcessEventUnknownType(t *testing.T) {
	svc := newTestService(t).(*service)

	evt := newCartEvent(enum.EventType("cart.unknown"), 0, 0)
	err := svc.ProcessEvent(context.Background(), evt)
	assert.Error(t, err)
}
