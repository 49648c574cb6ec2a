package outbox

import (
	"time"
)

// Message is an order event waiting to be published to RabbitMQ. Rows are
// written inside the order placement transaction and drained by the
// outbox worker.
type Message struct {
	ID           int64
	ExchangeName string
	RoutingKey   string
	Payload      []byte
	ContentType  string
	RetryCount   int
	MaxRetries   int
	LastError    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	NextRetryAt  time.Time
}
