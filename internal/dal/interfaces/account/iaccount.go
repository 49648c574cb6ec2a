package iaccount

import (
	"context"

	"github.com/teraskopi54/pos/internal/service/models/account"
)

// PostgresRepository is an interface for the account postgres repository.
type PostgresRepository interface {
	Insert(ctx context.Context, a account.Account) (*account.Account, error)
	GetByUsername(ctx context.Context, username string, role account.Role) (*account.Account, error)
}
