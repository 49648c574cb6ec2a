package orderitem

import (
	"github.com/teraskopi54/pos/internal/service/models/money"
)

// OrderItem is one line of an order. Product name, variant, size and
// prices are denormalized snapshots taken at time of sale, so the order
// record stays accurate when the catalog changes later.
type OrderItem struct {
	ID          int64       `json:"id"`
	OrderID     int64       `json:"orderId"`
	ProductID   int64       `json:"productId"`
	ProductName string      `json:"productName"`
	Variant     string      `json:"variant,omitempty"`
	Size        string      `json:"size,omitempty"`
	Quantity    int         `json:"quantity"`
	Price       money.Cents `json:"price"`
	TotalPrice  money.Cents `json:"totalPrice"`
}
