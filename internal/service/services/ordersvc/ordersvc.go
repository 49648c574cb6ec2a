package ordersvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"
	iorder "github.com/teraskopi54/pos/internal/dal/interfaces/order"
	iorderitem "github.com/teraskopi54/pos/internal/dal/interfaces/orderitem"
	"github.com/teraskopi54/pos/internal/dal/interfaces/ioutboxrepo"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	"github.com/teraskopi54/pos/internal/dal/uow"
	"github.com/teraskopi54/pos/internal/service/models/apperrors"
	"github.com/teraskopi54/pos/internal/service/models/money"
	"github.com/teraskopi54/pos/internal/service/models/order"
	"github.com/teraskopi54/pos/internal/service/models/orderitem"
	"github.com/teraskopi54/pos/internal/service/models/outbox"
)

// ErrEmptyCart is returned before any store interaction when a submitted
// order carries no line items.
var ErrEmptyCart = errors.New("order must contain at least one item")

const (
	routingKeyOrderPlaced   = "order.placed"
	defaultTxTimeout        = 10 * time.Second
	defaultOutboxMaxRetries = 5
)

// OrderService is a service for placing and listing orders.
type OrderService struct {
	pgClient   *postgres.Client
	txTimeout  time.Duration
	exchange   string
	uowFactory func() unitOfWork
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorder.PostgresRepository
	OrderItemRepository() iorderitem.PostgresRepository
	OutboxRepository() ioutboxrepo.IOutboxRepository
}

func (s *OrderService) newUOW() unitOfWork {
	if s.uowFactory != nil {
		return s.uowFactory()
	}
	return uow.NewUnitOfWork(s.pgClient)
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{
		txTimeout: defaultTxTimeout,
		exchange:  viper.GetString("rabbitmq.exchange"),
	}
	if seconds := viper.GetInt("order.tx_timeout_seconds"); seconds > 0 {
		s.txTimeout = time.Duration(seconds) * time.Second
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// PlaceOrder persists one order and all of its line items atomically:
// either every row commits or none do. The order-placed event rides the
// same transaction via the outbox table. Empty carts are rejected before
// a transaction is opened.
func (s *OrderService) PlaceOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	if len(o.Items) == 0 {
		return nil, ErrEmptyCart
	}

	ctx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	work := s.newUOW()

	if err := work.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStoreUnavailable, err)
	}
	defer func() {
		if err := work.Rollback(ctx); err != nil {
			slog.Error("Failed to roll back order placement", "error", err)
		}
	}()

	inserted, err := work.OrderRepository().Insert(ctx, o)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	items := make([]orderitem.OrderItem, len(o.Items))
	for i, item := range o.Items {
		item.OrderID = inserted.ID
		if item.TotalPrice == 0 {
			item.TotalPrice = item.Price * money.Cents(item.Quantity)
		}
		items[i] = item
	}

	items, err = work.OrderItemRepository().BulkInsert(ctx, items)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	inserted.Items = items

	if err := work.OutboxRepository().Insert(ctx, s.orderPlacedMessage(inserted)); err != nil {
		return nil, apperrors.Classify(err)
	}

	if err := work.Commit(ctx); err != nil {
		return nil, apperrors.Classify(err)
	}

	return inserted, nil
}

func (s *OrderService) orderPlacedMessage(o *order.Order) outbox.Message {
	payload, err := json.Marshal(o)
	if err != nil {
		// Order models always marshal; keep the event with an empty body
		// rather than failing the placement.
		slog.Error("Failed to marshal order event", "order_id", o.ID, "error", err)
		payload = []byte("{}")
	}

	now := time.Now()

	return outbox.Message{
		ExchangeName: s.exchange,
		RoutingKey:   routingKeyOrderPlaced,
		Payload:      payload,
		ContentType:  "application/json",
		MaxRetries:   defaultOutboxMaxRetries,
		CreatedAt:    now,
		UpdatedAt:    now,
		NextRetryAt:  now,
	}
}

// GetOrders retrieves orders with their items, grouped per order.
func (s *OrderService) GetOrders(
	ctx context.Context,
	query order.QueryOrdersModel,
) ([]order.Order, error) {
	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, &query)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	if len(orders) == 0 {
		return []order.Order{}, nil
	}

	itemQuery := &orderitem.QueryOrderItemsModel{}
	for _, o := range orders {
		itemQuery.OrderIds = append(itemQuery.OrderIds, o.ID)
	}
	items, err := work.OrderItemRepository().Query(ctx, itemQuery)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	for i := range orders {
		for _, item := range items {
			if item.OrderID == orders[i].ID {
				orders[i].Items = append(orders[i].Items, item)
			}
		}
	}

	return orders, nil
}
