package uow

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	iorder "github.com/teraskopi54/pos/internal/dal/interfaces/order"
	iorderitem "github.com/teraskopi54/pos/internal/dal/interfaces/orderitem"
	"github.com/teraskopi54/pos/internal/dal/interfaces/ioutboxrepo"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	orderrepo "github.com/teraskopi54/pos/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/teraskopi54/pos/internal/dal/repositories/orderitem/postgres"
	outboxrepo "github.com/teraskopi54/pos/internal/dal/repositories/outbox/postgres"
)

// unitOfWork scopes order placement writes to one transaction. Before
// Begin the repositories run on the pool; after Begin they are rebound to
// the open transaction so every write commits or rolls back together.
type unitOfWork struct {
	pool          *pgxpool.Pool
	tx            pgx.Tx
	orderRepo     iorder.PostgresRepository
	orderItemRepo iorderitem.PostgresRepository
	outboxRepo    ioutboxrepo.IOutboxRepository
}

func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	pool := client.Pool()

	return &unitOfWork{
		pool:          pool,
		orderRepo:     orderrepo.NewPostgresOrderRepository(pool),
		orderItemRepo: orderitemrepo.NewPostgresOrderItemRepository(pool),
		outboxRepo:    outboxrepo.NewOutboxRepository(pool),
	}
}

func (u *unitOfWork) OrderRepository() iorder.PostgresRepository {
	return u.orderRepo
}

func (u *unitOfWork) OrderItemRepository() iorderitem.PostgresRepository {
	return u.orderItemRepo
}

func (u *unitOfWork) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return u.outboxRepo
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(tx)
	u.outboxRepo = outboxrepo.NewOutboxRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

// Rollback is a no-op after Commit: pgx reports ErrTxClosed, which is
// swallowed so callers can defer it unconditionally.
func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	if err := u.tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		return err
	}
	return nil
}
