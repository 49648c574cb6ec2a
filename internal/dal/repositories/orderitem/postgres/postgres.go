package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	"github.com/teraskopi54/pos/internal/service/models/money"
	"github.com/teraskopi54/pos/internal/service/models/orderitem"
)

// OrderItemDal represents order item data access layer model.
type OrderItemDal struct {
	Id              int64  `db:"id"`
	OrderId         int64  `db:"order_id"`
	ProductId       int64  `db:"product_id"`
	ProductName     string `db:"product_name"`
	Variant         string `db:"variant"`
	Size            string `db:"size"`
	Quantity        int    `db:"quantity"`
	PriceCents      int64  `db:"price_cents"`
	TotalPriceCents int64  `db:"total_price_cents"`
}

// ToModel converts OrderItemDal to service layer OrderItem model.
func (oi *OrderItemDal) ToModel() *orderitem.OrderItem {
	return &orderitem.OrderItem{
		ID:          oi.Id,
		OrderID:     oi.OrderId,
		ProductID:   oi.ProductId,
		ProductName: oi.ProductName,
		Variant:     oi.Variant,
		Size:        oi.Size,
		Quantity:    oi.Quantity,
		Price:       money.Cents(oi.PriceCents),
		TotalPrice:  money.Cents(oi.TotalPriceCents),
	}
}

// PostgresOrderItemRepository represents a Postgres order item repository.
type PostgresOrderItemRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderItemRepository creates a new Postgres order item repository.
func NewPostgresOrderItemRepository(conn postgres.GenericConn) *PostgresOrderItemRepository {
	return &PostgresOrderItemRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// BulkInsert inserts all line items of an order and returns them with
// generated ids. Runs on whatever connection the repository was bound to,
// so inside a transaction all rows commit or roll back together.
func (r *PostgresOrderItemRepository) BulkInsert(
	ctx context.Context,
	orderItems []orderitem.OrderItem,
) ([]orderitem.OrderItem, error) {
	if len(orderItems) == 0 {
		return []orderitem.OrderItem{}, nil
	}

	builder := r.sb.
		Insert("order_items").
		Columns(
			"order_id",
			"product_id",
			"product_name",
			"variant",
			"size",
			"quantity",
			"price_cents",
			"total_price_cents",
		).
		Suffix("RETURNING id, order_id, product_id, product_name, variant, size, quantity, price_cents, total_price_cents")

	for _, oi := range orderItems {
		builder = builder.Values(
			oi.OrderID,
			oi.ProductID,
			oi.ProductName,
			oi.Variant,
			oi.Size,
			oi.Quantity,
			int64(oi.Price),
			int64(oi.TotalPrice),
		)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build bulk insert query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk insert order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal

		err := rows.Scan(
			&dal.Id,
			&dal.OrderId,
			&dal.ProductId,
			&dal.ProductName,
			&dal.Variant,
			&dal.Size,
			&dal.Quantity,
			&dal.PriceCents,
			&dal.TotalPriceCents,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Query retrieves order items based on filter criteria.
func (r *PostgresOrderItemRepository) Query(
	ctx context.Context,
	filter *orderitem.QueryOrderItemsModel,
) ([]orderitem.OrderItem, error) {
	query := r.sb.
		Select(
			"id",
			"order_id",
			"product_id",
			"product_name",
			"variant",
			"size",
			"quantity",
			"price_cents",
			"total_price_cents",
		).
		From("order_items").
		OrderBy("id")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.OrderIds) > 0 {
		query = query.Where(sq.Eq{"order_id": filter.OrderIds})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal

		err := rows.Scan(
			&dal.Id,
			&dal.OrderId,
			&dal.ProductId,
			&dal.ProductName,
			&dal.Variant,
			&dal.Size,
			&dal.Quantity,
			&dal.PriceCents,
			&dal.TotalPriceCents,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
