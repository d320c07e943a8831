package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"gocraftify.io/store/driver"
	"gocraftify.io/store/models"
)

// StorageKey is the single fixed key the serialized cart lives under.
const StorageKey = "craftifyCart"

// ErrNotFound indicates a mutation referenced a product id that is not in
// the cart, usually a stale UI reference.
var ErrNotFound = errors.New("cart item not found")

// Store is the single source of truth for the shopper's selected items.
// Every mutation runs as one load-mutate-persist sequence against the
// persistence port before returning the resulting cart.
type Store interface {
	Load(ctx context.Context) (*models.Cart, error)
	Add(ctx context.Context, productID uint64, name string, unitPrice float64, image string) (*models.Cart, error)
	SetQuantity(ctx context.Context, productID uint64, quantity uint64) (*models.Cart, error)
	AdjustQuantity(ctx context.Context, productID uint64, delta int64) (*models.Cart, error)
	Remove(ctx context.Context, productID uint64) (*models.Cart, error)
	Clear(ctx context.Context) (*models.Cart, error)
}

var _ Store = (*store)(nil)

type store struct {
	kv       driver.KV
	currency stripe.Currency
	logger   *zap.Logger
}

func NewStore(kv driver.KV, currency stripe.Currency, logger *zap.Logger) Store {
	return &store{
		kv:       kv,
		currency: currency,
		logger:   logger,
	}
}

// Load reads the persisted cart. An absent or malformed value yields an
// empty cart rather than an error, so a corrupted session never blocks
// the shopper.
func (s *store) Load(ctx context.Context) (*models.Cart, error) {
	raw, found, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart := models.NewCart()
	cart.Currency = s.currency
	cart.Items = []models.CartItem{}

	if !found {
		return cart, nil
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("Discarding malformed persisted cart", zap.Error(err))
		return cart, nil
	}

	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
	}
	cart.Items = items

	return cart, nil
}

func (s *store) Add(ctx context.Context, productID uint64, name string, unitPrice float64, image string) (*models.Cart, error) {
	cart, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if idx := cart.ItemIndex(productID); idx >= 0 {
		cart.Items[idx].Quantity++
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ID:        productID,
			Name:      name,
			UnitPrice: unitPrice,
			Image:     image,
			Quantity:  1,
		})
	}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *store) SetQuantity(ctx context.Context, productID uint64, quantity uint64) (*models.Cart, error) {
	cart, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := cart.ItemIndex(productID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}

	if quantity < 1 {
		quantity = 1
	}
	cart.Items[idx].Quantity = quantity

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *store) AdjustQuantity(ctx context.Context, productID uint64, delta int64) (*models.Cart, error) {
	cart, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := cart.ItemIndex(productID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}

	quantity := int64(cart.Items[idx].Quantity) + delta
	if quantity < 1 {
		quantity = 1
	}
	cart.Items[idx].Quantity = uint64(quantity)

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *store) Remove(ctx context.Context, productID uint64) (*models.Cart, error) {
	cart, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := cart.ItemIndex(productID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *store) Clear(ctx context.Context) (*models.Cart, error) {
	cart, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	cart.Items = []models.CartItem{}

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *store) persist(ctx context.Context, cart *models.Cart) error {
	raw, err := json.Marshal(cart.Items)
	if err != nil {
		s.logger.Error("Failed to serialize cart", zap.Error(err))
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	if err := s.kv.Set(ctx, StorageKey, string(raw)); err != nil {
		s.logger.Error("Failed to persist cart", zap.Error(err))
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
