// Package store is the client-side core of the Craftify demo storefront:
// the cart store with its derived totals, and the catalog filter/sort
// pipeline producing the displayed product list. The surrounding page layer
// drives it through Service and renders whatever comes back; the core never
// reads presentation state.
package store

import (
	"context"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"gocraftify.io/store/cart"
	"gocraftify.io/store/catalog"
	"gocraftify.io/store/event"
	"gocraftify.io/store/models"
	"gocraftify.io/store/models/enum"
)

type Service interface {
	GetCart(ctx context.Context) (*models.Cart, error)
	AddToCart(ctx context.Context, productID uint64, name string, unitPrice float64, image string) (*models.Cart, error)
	RemoveCartItem(ctx context.Context, productID uint64) (*models.Cart, error)
	SetCartItemQuantity(ctx context.Context, productID uint64, quantity uint64) (*models.Cart, error)
	AdjustCartItemQuantity(ctx context.Context, productID uint64, delta int64) (*models.Cart, error)
	ClearCart(ctx context.Context) (*models.Cart, error)
	GetCartTotals(ctx context.Context) (models.Totals, error)

	FilterCatalog(criteria catalog.Criteria) []models.Product
	SortCatalog(products []models.Product, key enum.SortKey) []models.Product
	VisibleProducts(criteria catalog.Criteria, key enum.SortKey) []models.Product
	Recommendations(currentProductID uint64, category string) []models.Product

	Shutdown()
}

type service struct {
	cart    cart.Store
	catalog []models.Product
	event   event.Repository

	eventManager *EventManager
	workerPool   *WorkerPool

	logger *zap.Logger
}

func NewService(
	cartStore cart.Store, catalogProducts []models.Product, eventRepo event.Repository,
	natsConn *nats.Conn,
	logger *zap.Logger) Service {
	s := &service{
		cart:    cartStore,
		catalog: catalogProducts,
		event:   eventRepo,
		logger:  logger,
	}
	s.eventManager = NewEventManager(natsConn, logger)
	s.workerPool = NewWorkerPool(4, s, logger)
	s.registerEventHandlers()

	// 訂閱事件
	if err := s.eventManager.SubscribeToEvents(s.workerPool); err != nil {
		logger.Error("Failed to subscribe to events", zap.Error(err))
	}

	return s
}

func (s *service) GetCart(ctx context.Context) (*models.Cart, error) {
	return s.cart.Load(ctx)
}

func (s *service) AddToCart(ctx context.Context, productID uint64, name string, unitPrice float64, image string) (*models.Cart, error) {
	cartModel, err := s.cart.Add(ctx, productID, name, unitPrice, image)
	if err != nil {
		return nil, err
	}

	s.publish(newCartEvent(enum.EventTypeCartItemAdded, productID, 1))
	return cartModel, nil
}

func (s *service) RemoveCartItem(ctx context.Context, productID uint64) (*models.Cart, error) {
	cartModel, err := s.cart.Remove(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.publish(newCartEvent(enum.EventTypeCartItemRemoved, productID, 0))
	return cartModel, nil
}

func (s *service) SetCartItemQuantity(ctx context.Context, productID uint64, quantity uint64) (*models.Cart, error) {
	cartModel, err := s.cart.SetQuantity(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}

	idx := cartModel.ItemIndex(productID)
	s.publish(newCartEvent(enum.EventTypeCartQuantityUpdated, productID, cartModel.Items[idx].Quantity))
	return cartModel, nil
}

func (s *service) AdjustCartItemQuantity(ctx context.Context, productID uint64, delta int64) (*models.Cart, error) {
	cartModel, err := s.cart.AdjustQuantity(ctx, productID, delta)
	if err != nil {
		return nil, err
	}

	idx := cartModel.ItemIndex(productID)
	s.publish(newCartEvent(enum.EventTypeCartQuantityUpdated, productID, cartModel.Items[idx].Quantity))
	return cartModel, nil
}

func (s *service) ClearCart(ctx context.Context) (*models.Cart, error) {
	cartModel, err := s.cart.Clear(ctx)
	if err != nil {
		return nil, err
	}

	s.publish(newCartEvent(enum.EventTypeCartCleared, 0, 0))
	return cartModel, nil
}

// GetCartTotals recomputes the summary from the current cart; nothing is
// cached between calls.
func (s *service) GetCartTotals(ctx context.Context) (models.Totals, error) {
	cartModel, err := s.cart.Load(ctx)
	if err != nil {
		return models.Totals{}, err
	}
	return cartModel.Totals(), nil
}

func (s *service) FilterCatalog(criteria catalog.Criteria) []models.Product {
	return catalog.Filter(s.catalog, criteria)
}

func (s *service) SortCatalog(products []models.Product, key enum.SortKey) []models.Product {
	return catalog.Sort(products, key)
}

// VisibleProducts runs the full pipeline from the complete catalog, so a
// relaxed filter or a new sort key never loses products narrowed away by an
// earlier view.
func (s *service) VisibleProducts(criteria catalog.Criteria, key enum.SortKey) []models.Product {
	return catalog.Pipeline{Criteria: criteria, SortKey: key}.Apply(s.catalog)
}

func (s *service) Recommendations(currentProductID uint64, category string) []models.Product {
	return catalog.Recommend(s.catalog, currentProductID, category, catalog.DefaultRecommendationLimit)
}

func (s *service) Shutdown() {
	s.workerPool.Shutdown()
}

func (s *service) publish(event *models.Event) {
	if err := s.eventManager.Publish(event); err != nil {
		s.logger.Warn("Failed to publish cart event",
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}
