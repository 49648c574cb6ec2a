package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	"github.com/teraskopi54/pos/internal/service/models/money"
	"github.com/teraskopi54/pos/internal/service/models/product"
)

const productColumns = "id, name, category, price_cents, image, created_at, updated_at"

// ProductDal represents product data access layer model.
type ProductDal struct {
	Id         int64     `db:"id"`
	Name       string    `db:"name"`
	Category   string    `db:"category"`
	PriceCents int64     `db:"price_cents"`
	Image      string    `db:"image"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// ToModel converts ProductDal to service layer Product model.
func (p *ProductDal) ToModel() *product.Product {
	return &product.Product{
		ID:        p.Id,
		Name:      p.Name,
		Category:  p.Category,
		Price:     money.Cents(p.PriceCents),
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PostgresProductRepository represents a Postgres product repository.
type PostgresProductRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresProductRepository creates a new Postgres product repository.
func NewPostgresProductRepository(conn postgres.GenericConn) *PostgresProductRepository {
	return &PostgresProductRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostgresProductRepository) scanOne(row pgx.Row) (*product.Product, error) {
	var dal ProductDal
	err := row.Scan(
		&dal.Id,
		&dal.Name,
		&dal.Category,
		&dal.PriceCents,
		&dal.Image,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return dal.ToModel(), nil
}

// List retrieves all products.
func (r *PostgresProductRepository) List(ctx context.Context) ([]product.Product, error) {
	sql, args, err := r.sb.
		Select(productColumns).
		From("products").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	result := []product.Product{}
	for rows.Next() {
		model, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// GetByID retrieves one product by id.
func (r *PostgresProductRepository) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	sql, args, err := r.sb.
		Select(productColumns).
		From("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return model, nil
}

// Insert creates a new product and returns it with the generated id.
func (r *PostgresProductRepository) Insert(ctx context.Context, p product.Product) (*product.Product, error) {
	sql, args, err := r.sb.
		Insert("products").
		Columns("name", "category", "price_cents", "image", "created_at", "updated_at").
		Values(p.Name, p.Category, int64(p.Price), p.Image, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + productColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return model, nil
}

// Update modifies an existing product. Returns pgx.ErrNoRows when the id
// does not exist.
func (r *PostgresProductRepository) Update(ctx context.Context, p product.Product) (*product.Product, error) {
	sql, args, err := r.sb.
		Update("products").
		Set("name", p.Name).
		Set("category", p.Category).
		Set("price_cents", int64(p.Price)).
		Set("image", p.Image).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + productColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return model, nil
}

// Delete removes a product by id. Returns pgx.ErrNoRows when the id does
// not exist.
func (r *PostgresProductRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.
		Delete("products").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
