package accountsvc

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/teraskopi54/pos/internal/service/models/account"
)

type mockAccountRepo struct {
	nextID   int64
	accounts []account.Account
}

func (m *mockAccountRepo) Insert(_ context.Context, a account.Account) (*account.Account, error) {
	m.nextID++
	a.ID = m.nextID
	m.accounts = append(m.accounts, a)
	return &a, nil
}

func (m *mockAccountRepo) GetByUsername(
	_ context.Context,
	username string,
	role account.Role,
) (*account.Account, error) {
	for _, a := range m.accounts {
		if a.Username == username && a.Role == role {
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := &AccountService{repo: repo}

	created, err := svc.Register(context.Background(), "ana", "s3cret", account.RoleCashier)

	require.NoError(t, err)
	assert.Equal(t, "ana", created.Username)
	assert.Equal(t, account.RoleCashier, created.Role)
	assert.NotEqual(t, "s3cret", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(created.PasswordHash), []byte("s3cret")))
}

func TestLogin(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := &AccountService{repo: repo}

	_, err := svc.Register(context.Background(), "ana", "s3cret", account.RoleCashier)
	require.NoError(t, err)

	assert.NoError(t, svc.Login(context.Background(), "ana", "s3cret", account.RoleCashier))

	// Wrong password, unknown user, and wrong role all fail the same way.
	assert.ErrorIs(t,
		svc.Login(context.Background(), "ana", "wrong", account.RoleCashier),
		ErrInvalidCredentials)
	assert.ErrorIs(t,
		svc.Login(context.Background(), "nobody", "s3cret", account.RoleCashier),
		ErrInvalidCredentials)
	assert.ErrorIs(t,
		svc.Login(context.Background(), "ana", "s3cret", account.RoleStock),
		ErrInvalidCredentials)
}
