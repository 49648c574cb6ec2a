package iproduct

import (
	"context"

	"github.com/teraskopi54/pos/internal/service/models/product"
)

// PostgresRepository is an interface for the product postgres repository.
type PostgresRepository interface {
	List(ctx context.Context) ([]product.Product, error)
	GetByID(ctx context.Context, id int64) (*product.Product, error)
	Insert(ctx context.Context, p product.Product) (*product.Product, error)
	Update(ctx context.Context, p product.Product) (*product.Product, error)
	Delete(ctx context.Context, id int64) error
}
