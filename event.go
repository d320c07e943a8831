package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nuid"
	"go.uber.org/zap"

	"gocraftify.io/store/models"
	"gocraftify.io/store/models/enum"
)

// eventSubjectPrefix is the NATS subject space for cart change events.
const eventSubjectPrefix = "store.cart.event."

type EventHandler func(context.Context, *models.Event) error

// EventManager publishes cart change events and dispatches received ones to
// registered handlers. A nil NATS connection disables the bus entirely;
// cart mutations stay fully functional without it.
type EventManager struct {
	natsConn *nats.Conn
	handlers map[enum.EventType]EventHandler
	logger   *zap.Logger
}

func NewEventManager(natsConn *nats.Conn, logger *zap.Logger) *EventManager {
	return &EventManager{
		natsConn: natsConn,
		handlers: make(map[enum.EventType]EventHandler),
		logger:   logger,
	}
}

func (em *EventManager) RegisterHandler(eventType enum.EventType, handler EventHandler) {
	em.handlers[eventType] = handler
}

func (em *EventManager) GetHandler(eventType enum.EventType) (EventHandler, bool) {
	handler, exists := em.handlers[eventType]
	return handler, exists
}

func (em *EventManager) Publish(event *models.Event) error {
	if em.natsConn == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return em.natsConn.Publish(eventSubjectPrefix+string(event.Type), data)
}

func (em *EventManager) SubscribeToEvents(wp *WorkerPool) error {
	if em.natsConn == nil {
		return nil
	}

	_, err := em.natsConn.Subscribe(eventSubjectPrefix+">", func(msg *nats.Msg) {
		var event models.Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			em.logger.Error("Failed to unmarshal event", zap.Error(err))
			return
		}

		wp.Submit(context.Background(), &event)
	})

	return err
}

// newCartEvent stamps a fresh event for one cart mutation.
func newCartEvent(eventType enum.EventType, productID, quantity uint64) *models.Event {
	now := time.Now()
	return &models.Event{
		ID:        nuid.Next(),
		Type:      eventType,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *service) registerEventHandlers() {
	eventHandlers := map[enum.EventType]EventHandler{
		enum.EventTypeCartItemAdded:       s.handleCartMutation,
		enum.EventTypeCartItemRemoved:     s.handleCartMutation,
		enum.EventTypeCartQuantityUpdated: s.handleCartMutation,
		enum.EventTypeCartCleared:         s.handleCartCleared,
	}

	for eventType, handler := range eventHandlers {
		s.eventManager.RegisterHandler(eventType, handler)
	}
}

// handleCartMutation recomputes and logs the cart summary after a mutation,
// the hook other page components key their refresh off.
func (s *service) handleCartMutation(ctx context.Context, event *models.Event) error {
	cart, err := s.cart.Load(ctx)
	if err != nil {
		return err
	}

	totals := cart.Totals()
	s.logger.Info("Cart updated",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Uint64("product_id", event.ProductID),
		zap.Float64("subtotal", totals.Subtotal),
		zap.Uint64("item_count", totals.ItemCount))

	return nil
}

func (s *service) handleCartCleared(_ context.Context, event *models.Event) error {
	s.logger.Info("Cart cleared", zap.String("event_id", event.ID))
	return nil
}

func (s *service) ProcessEvent(ctx context.Context, event *models.Event) error {
	if existing, err := s.event.GetByID(ctx, event.ID); err == nil && existing.Processed {
		s.logger.Info("Event already processed", zap.String("event_id", event.ID))
		return nil
	}

	handler, exists := s.eventManager.GetHandler(event.Type)
	if !exists {
		return fmt.Errorf("no handler registered for event type: %s", event.Type)
	}

	if err := s.event.Create(ctx, event); err != nil {
		s.logger.Error("Failed to record event", zap.Error(err))
		return err
	}

	if err := handler(ctx, event); err != nil {
		s.logger.Error("Failed to handle event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
		return err
	}

	if err := s.event.MarkAsProcessed(ctx, event.ID); err != nil {
		s.logger.Warn("Failed to mark event as processed", zap.String("event_id", event.ID), zap.Error(err))
	}

	return nil
}
