package models

import (
	"time"

	"gocraftify.io/store/models/enum"
)

// Event 代表一次購物車變動事件
type Event struct {
	ID        string         `json:"id"`
	Type      enum.EventType `json:"type"`
	ProductID uint64         `json:"product_id"`
	Quantity  uint64         `json:"quantity"`
	Processed bool           `json:"processed"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
