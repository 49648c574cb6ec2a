package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	"github.com/teraskopi54/pos/internal/service/models/branch"
)

const branchColumns = "id, name, address, phone, created_at, updated_at"

// BranchDal represents café branch data access layer model.
type BranchDal struct {
	Id        int64     `db:"id"`
	Name      string    `db:"name"`
	Address   string    `db:"address"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToModel converts BranchDal to service layer Branch model.
func (b *BranchDal) ToModel() *branch.Branch {
	return &branch.Branch{
		ID:        b.Id,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// PostgresBranchRepository represents a Postgres café branch repository.
type PostgresBranchRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresBranchRepository creates a new Postgres café branch repository.
func NewPostgresBranchRepository(conn postgres.GenericConn) *PostgresBranchRepository {
	return &PostgresBranchRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostgresBranchRepository) scanOne(row pgx.Row) (*branch.Branch, error) {
	var dal BranchDal
	err := row.Scan(
		&dal.Id,
		&dal.Name,
		&dal.Address,
		&dal.Phone,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return dal.ToModel(), nil
}

// List retrieves all café branches.
func (r *PostgresBranchRepository) List(ctx context.Context) ([]branch.Branch, error) {
	sql, args, err := r.sb.
		Select(branchColumns).
		From("cafe_branches").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query branches: %w", err)
	}
	defer rows.Close()

	result := []branch.Branch{}
	for rows.Next() {
		model, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// GetByID retrieves one café branch by id.
func (r *PostgresBranchRepository) GetByID(ctx context.Context, id int64) (*branch.Branch, error) {
	sql, args, err := r.sb.
		Select(branchColumns).
		From("cafe_branches").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	return model, nil
}

// Insert creates a new café branch and returns it with the generated id.
func (r *PostgresBranchRepository) Insert(ctx context.Context, b branch.Branch) (*branch.Branch, error) {
	sql, args, err := r.sb.
		Insert("cafe_branches").
		Columns("name", "address", "phone", "created_at", "updated_at").
		Values(b.Name, b.Address, b.Phone, b.CreatedAt, b.UpdatedAt).
		Suffix("RETURNING " + branchColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to insert branch: %w", err)
	}

	return model, nil
}

// Update modifies an existing café branch. Returns pgx.ErrNoRows when the
// id does not exist.
func (r *PostgresBranchRepository) Update(ctx context.Context, b branch.Branch) (*branch.Branch, error) {
	sql, args, err := r.sb.
		Update("cafe_branches").
		Set("name", b.Name).
		Set("address", b.Address).
		Set("phone", b.Phone).
		Set("updated_at", b.UpdatedAt).
		Where(sq.Eq{"id": b.ID}).
		Suffix("RETURNING " + branchColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}

	return model, nil
}

// Delete removes a café branch by id. Returns pgx.ErrNoRows when the id
// does not exist.
func (r *PostgresBranchRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.
		Delete("cafe_branches").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
