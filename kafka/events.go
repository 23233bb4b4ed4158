package kafka

import "time"

// CartActivityEvent represents a cart mutation performed by a session
type CartActivityEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	SessionID  string    `json:"session_id"`
	ProductID  uint      `json:"product_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	TotalItems int       `json:"total_items"`
	TotalCost  float64   `json:"total_cost"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeCartItemAdded   = "cart.item.added"
	EventTypeCartItemUpdated = "cart.item.updated"
	EventTypeCartItemRemoved = "cart.item.removed"
	EventTypeCartCleared     = "cart.cleared"
)

// Kafka topics
const (
	TopicCartActivity = "cart-activity"
)
