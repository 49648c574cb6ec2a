package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	"github.com/teraskopi54/pos/internal/service/models/order"
	"github.com/teraskopi54/pos/internal/service/models/orderitem"
	"github.com/teraskopi54/pos/internal/service/models/payment"
)

// OrderDal represents order data access layer model.
type OrderDal struct {
	Id            int64     `db:"id"`
	CustomerName  string    `db:"customer_name"`
	PaymentMethod string    `db:"payment_method"`
	OrderDate     time.Time `db:"order_date"`
}

// ToModel converts OrderDal to service layer Order model.
func (o *OrderDal) ToModel() (*order.Order, error) {
	method, err := payment.ParseMethod(o.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:            o.Id,
		CustomerName:  o.CustomerName,
		PaymentMethod: method,
		OrderDate:     o.OrderDate,
		Items:         []orderitem.OrderItem{}, // Populated separately
	}, nil
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn postgres.GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert appends one order row. The order date is assigned by the store
// at commit time unless the caller supplied one.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (*order.Order, error) {
	sql := `
		INSERT INTO orders (customer_name, payment_method, order_date)
		VALUES ($1, $2, COALESCE($3, now()))
		RETURNING id, customer_name, payment_method, order_date
	`

	var suppliedDate pgtype.Timestamptz
	if !o.OrderDate.IsZero() {
		suppliedDate = pgtype.Timestamptz{Time: o.OrderDate, Valid: true}
	}

	var dal OrderDal
	var orderDate pgtype.Timestamptz
	err := r.conn.QueryRow(ctx, sql, o.CustomerName, o.PaymentMethod.String(), suppliedDate).Scan(
		&dal.Id,
		&dal.CustomerName,
		&dal.PaymentMethod,
		&orderDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	dal.OrderDate = orderDate.Time

	model, err := dal.ToModel()
	if err != nil {
		return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
	}

	model.Items = append(model.Items, o.Items...)

	return model, nil
}

// Query retrieves orders based on filter criteria.
func (r *PostgresOrderRepository) Query(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	query := r.sb.
		Select(
			"id",
			"customer_name",
			"payment_method",
			"order_date",
		).
		From("orders").
		OrderBy("id")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
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
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		var orderDate pgtype.Timestamptz

		err := rows.Scan(
			&dal.Id,
			&dal.CustomerName,
			&dal.PaymentMethod,
			&orderDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		dal.OrderDate = orderDate.Time

		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
