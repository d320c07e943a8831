package enum

// EventType 表示購物車變動事件的種類
type EventType string

const (
	EventTypeCartItemAdded       EventType = "cart.item_added"
	EventTypeCartItemRemoved     EventType = "cart.item_removed"
	EventTypeCartQuantityUpdated EventType = "cart.quantity_updated"
	EventTypeCartCleared         EventType = "cart.cleared"
)
