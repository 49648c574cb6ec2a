package iinventory

import (
	"context"

	"github.com/teraskopi54/pos/internal/service/models/inventory"
)

// PostgresRepository is an interface for the inventory postgres repository.
type PostgresRepository interface {
	List(ctx context.Context) ([]inventory.Item, error)
	GetByID(ctx context.Context, id int64) (*inventory.Item, error)
	Insert(ctx context.Context, item inventory.Item) (*inventory.Item, error)
	Update(ctx context.Context, item inventory.Item) (*inventory.Item, error)
	Delete(ctx context.Context, id int64) error
}
