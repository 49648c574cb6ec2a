package order

import (
	"time"

	"github.com/teraskopi54/pos/internal/service/models/orderitem"
	"github.com/teraskopi54/pos/internal/service/models/payment"
)

// Order represents a placed customer order. Orders are append-only: once
// committed they are never mutated or deleted.
type Order struct {
	ID            int64                 `json:"id"`
	CustomerName  string                `json:"customerName"`
	PaymentMethod payment.Method        `json:"paymentMethod"`
	OrderDate     time.Time             `json:"orderDate"`
	Items         []orderitem.OrderItem `json:"items"`
}
