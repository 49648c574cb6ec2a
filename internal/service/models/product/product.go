package product

import (
	"time"

	"github.com/teraskopi54/pos/internal/service/models/money"
)

// Product is a catalog entry. Image holds the stored file name of the
// product photo, empty when none was uploaded.
type Product struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Category  string      `json:"category,omitempty"`
	Price     money.Cents `json:"price"`
	Image     string      `json:"image,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
