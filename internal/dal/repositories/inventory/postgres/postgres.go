package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	"github.com/teraskopi54/pos/internal/service/models/inventory"
)

const inventoryColumns = "id, name, quantity, unit, created_at, updated_at"

// InventoryDal represents inventory data access layer model.
type InventoryDal struct {
	Id        int64     `db:"id"`
	Name      string    `db:"name"`
	Quantity  int       `db:"quantity"`
	Unit      string    `db:"unit"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToModel converts InventoryDal to service layer Item model.
func (i *InventoryDal) ToModel() *inventory.Item {
	return &inventory.Item{
		ID:        i.Id,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Unit:      i.Unit,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// PostgresInventoryRepository represents a Postgres inventory repository.
type PostgresInventoryRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresInventoryRepository creates a new Postgres inventory repository.
func NewPostgresInventoryRepository(conn postgres.GenericConn) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostgresInventoryRepository) scanOne(row pgx.Row) (*inventory.Item, error) {
	var dal InventoryDal
	err := row.Scan(
		&dal.Id,
		&dal.Name,
		&dal.Quantity,
		&dal.Unit,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return dal.ToModel(), nil
}

// List retrieves all inventory items.
func (r *PostgresInventoryRepository) List(ctx context.Context) ([]inventory.Item, error) {
	sql, args, err := r.sb.
		Select(inventoryColumns).
		From("inventory").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	result := []inventory.Item{}
	for rows.Next() {
		model, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// GetByID retrieves one inventory item by id.
func (r *PostgresInventoryRepository) GetByID(ctx context.Context, id int64) (*inventory.Item, error) {
	sql, args, err := r.sb.
		Select(inventoryColumns).
		From("inventory").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	return model, nil
}

// Insert creates a new inventory item and returns it with the generated id.
func (r *PostgresInventoryRepository) Insert(ctx context.Context, item inventory.Item) (*inventory.Item, error) {
	sql, args, err := r.sb.
		Insert("inventory").
		Columns("name", "quantity", "unit", "created_at", "updated_at").
		Values(item.Name, item.Quantity, item.Unit, item.CreatedAt, item.UpdatedAt).
		Suffix("RETURNING " + inventoryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to insert inventory item: %w", err)
	}

	return model, nil
}

// Update modifies an existing inventory item. Returns pgx.ErrNoRows when
// the id does not exist.
func (r *PostgresInventoryRepository) Update(ctx context.Context, item inventory.Item) (*inventory.Item, error) {
	sql, args, err := r.sb.
		Update("inventory").
		Set("name", item.Name).
		Set("quantity", item.Quantity).
		Set("unit", item.Unit).
		Set("updated_at", item.UpdatedAt).
		Where(sq.Eq{"id": item.ID}).
		Suffix("RETURNING " + inventoryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	return model, nil
}

// Delete removes an inventory item by id. Returns pgx.ErrNoRows when the
// id does not exist.
func (r *PostgresInventoryRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.
		Delete("inventory").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
