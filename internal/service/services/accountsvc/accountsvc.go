package accountsvc

import (
	"context"
	"errors"
	"time"

	iaccount "github.com/teraskopi54/pos/internal/dal/interfaces/account"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	accountrepo "github.com/teraskopi54/pos/internal/dal/repositories/account/postgres"
	"github.com/teraskopi54/pos/internal/service/models/account"
	"github.com/teraskopi54/pos/internal/service/models/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on any login failure. Lookup misses
// and hash mismatches are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AccountService registers and authenticates cashier and stock-clerk
// accounts. There are no sessions: every login call is stateless.
type AccountService struct {
	repo iaccount.PostgresRepository
}

// option is a function that configures the AccountService.
type option func(*AccountService)

// MustNewAccountService creates a new AccountService.
func MustNewAccountService(opts ...option) *AccountService {
	s := &AccountService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the AccountService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *AccountService) {
		s.repo = accountrepo.NewPostgresAccountRepository(pgClient.Pool())
	}
}

// Register creates an account with the credential bcrypt-hashed. The
// plaintext is never persisted or returned.
func (s *AccountService) Register(
	ctx context.Context,
	username, password string,
	role account.Role,
) (*account.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, account.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return created, nil
}

// Login verifies the submitted credential against the stored hash.
func (s *AccountService) Login(
	ctx context.Context,
	username, password string,
	role account.Role,
) error {
	a, err := s.repo.GetByUsername(ctx, username, role)
	if err != nil {
		if errors.Is(apperrors.Classify(err), apperrors.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return apperrors.Classify(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}

	return nil
}
