package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	"github.com/teraskopi54/pos/internal/service/models/account"
)

const accountColumns = "id, username, password_hash, role, created_at"

// AccountDal represents account data access layer model.
type AccountDal struct {
	Id           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// ToModel converts AccountDal to service layer Account model.
func (a *AccountDal) ToModel() (*account.Account, error) {
	role, err := account.ParseRole(a.Role)
	if err != nil {
		return nil, err
	}

	return &account.Account{
		ID:           a.Id,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Role:         role,
		CreatedAt:    a.CreatedAt,
	}, nil
}

// PostgresAccountRepository represents a Postgres account repository.
type PostgresAccountRepository struct {
	conn postgres.GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresAccountRepository creates a new Postgres account repository.
func NewPostgresAccountRepository(conn postgres.GenericConn) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostgresAccountRepository) scanOne(row pgx.Row) (*account.Account, error) {
	var dal AccountDal
	err := row.Scan(
		&dal.Id,
		&dal.Username,
		&dal.PasswordHash,
		&dal.Role,
		&dal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return dal.ToModel()
}

// Insert creates a new account and returns it with the generated id.
func (r *PostgresAccountRepository) Insert(ctx context.Context, a account.Account) (*account.Account, error) {
	sql, args, err := r.sb.
		Insert("accounts").
		Columns("username", "password_hash", "role", "created_at").
		Values(a.Username, a.PasswordHash, a.Role.String(), a.CreatedAt).
		Suffix("RETURNING " + accountColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return model, nil
}

// GetByUsername retrieves one account by username and role.
func (r *PostgresAccountRepository) GetByUsername(
	ctx context.Context,
	username string,
	role account.Role,
) (*account.Account, error) {
	sql, args, err := r.sb.
		Select(accountColumns).
		From("accounts").
		Where(sq.Eq{"username": username, "role": role.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	model, err := r.scanOne(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return model, nil
}
