package ibranch

import (
	"context"

	"github.com/teraskopi54/pos/internal/service/models/branch"
)

// PostgresRepository is an interface for the café branch postgres repository.
type PostgresRepository interface {
	List(ctx context.Context) ([]branch.Branch, error)
	GetByID(ctx context.Context, id int64) (*branch.Branch, error)
	Insert(ctx context.Context, b branch.Branch) (*branch.Branch, error)
	Update(ctx context.Context, b branch.Branch) (*branch.Branch, error)
	Delete(ctx context.Context, id int64) error
}
