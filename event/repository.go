package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gocraftify.io/store/driver"
	"gocraftify.io/store/models"
)

// ErrNotFound indicates no event with the given id has been recorded.
var ErrNotFound = errors.New("event not found")

var _ Repository = (*repository)(nil)

// Repository records cart events so a redelivered event is processed only
// once. Events live in the same key-value port as the cart itself.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	MarkAsProcessed(ctx context.Context, id string) error
}

type repository struct {
	kv     driver.KV
	logger *zap.Logger
}

func NewRepository(kv driver.KV, logger *zap.Logger) Repository {
	return &repository{
		kv:     kv,
		logger: logger,
	}
}

func (r *repository) Create(ctx context.Context, event *models.Event) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	if err := r.kv.Set(ctx, eventKey(event.ID), string(raw)); err != nil {
		r.logger.Error("Failed to record event", zap.String("event_id", event.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	raw, found, err := r.kv.Get(ctx, eventKey(id))
	if err != nil {
		r.logger.Error("Failed to get event", zap.String("event_id", id), zap.Error(err))
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var event models.Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return nil, fmt.Errorf("failed to decode event %s: %w", id, err)
	}
	return &event, nil
}

func (r *repository) MarkAsProcessed(ctx context.Context, id string) error {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	event.Processed = true
	event.UpdatedAt = time.Now()

	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	return r.kv.Set(ctx, eventKey(id), string(raw))
}

func eventKey(id string) string {
	return "event:" + id
}
