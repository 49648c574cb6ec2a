package productsvc

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teraskopi54/pos/internal/service/models/apperrors"
	"github.com/teraskopi54/pos/internal/service/models/product"
)

type mockProductRepo struct {
	nextID   int64
	products map[int64]product.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: map[int64]product.Product{}}
}

func (m *mockProductRepo) List(_ context.Context) ([]product.Product, error) {
	out := make([]product.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id int64) (*product.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (m *mockProductRepo) Insert(_ context.Context, p product.Product) (*product.Product, error) {
	m.nextID++
	p.ID = m.nextID
	m.products[p.ID] = p
	return &p, nil
}

func (m *mockProductRepo) Update(_ context.Context, p product.Product) (*product.Product, error) {
	if _, ok := m.products[p.ID]; !ok {
		return nil, pgx.ErrNoRows
	}
	m.products[p.ID] = p
	return &p, nil
}

func (m *mockProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.products, id)
	return nil
}

type mockImageStore struct {
	saved string
}

func (m *mockImageStore) Save(originalName string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	m.saved = originalName
	return "stored-" + originalName, nil
}

func TestCreate_WithImage(t *testing.T) {
	repo := newMockProductRepo()
	store := &mockImageStore{}
	svc := &ProductService{repo: repo, images: store}

	created, err := svc.Create(context.Background(),
		product.Product{Name: "Latte", Price: 2500},
		&Upload{Filename: "latte.png", Reader: strings.NewReader("img")})

	require.NoError(t, err)
	assert.Equal(t, "stored-latte.png", created.Image)
	assert.Equal(t, "latte.png", store.saved)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreate_WithoutImage(t *testing.T) {
	repo := newMockProductRepo()
	svc := &ProductService{repo: repo}

	created, err := svc.Create(context.Background(),
		product.Product{Name: "Latte", Price: 2500}, nil)

	require.NoError(t, err)
	assert.Empty(t, created.Image)
}

func TestUpdate_WithoutImageKeepsStored(t *testing.T) {
	repo := newMockProductRepo()
	store := &mockImageStore{}
	svc := &ProductService{repo: repo, images: store}

	created, err := svc.Create(context.Background(),
		product.Product{Name: "Latte", Price: 2500},
		&Upload{Filename: "abc123.png", Reader: strings.NewReader("img")})
	require.NoError(t, err)
	require.Equal(t, "stored-abc123.png", created.Image)

	updated, err := svc.Update(context.Background(),
		product.Product{ID: created.ID, Name: "Latte", Price: 2750}, nil)

	require.NoError(t, err)
	assert.Equal(t, "stored-abc123.png", updated.Image,
		"imageless update must not wipe the stored image reference")
	assert.Equal(t, "stored-abc123.png", repo.products[created.ID].Image)
}

func TestUpdate_WithImageReplacesStored(t *testing.T) {
	repo := newMockProductRepo()
	store := &mockImageStore{}
	svc := &ProductService{repo: repo, images: store}

	created, err := svc.Create(context.Background(),
		product.Product{Name: "Latte", Price: 2500},
		&Upload{Filename: "old.png", Reader: strings.NewReader("img")})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(),
		product.Product{ID: created.ID, Name: "Latte", Price: 2500},
		&Upload{Filename: "new.png", Reader: strings.NewReader("img")})

	require.NoError(t, err)
	assert.Equal(t, "stored-new.png", updated.Image)
}

func TestUpdate_MissingRow(t *testing.T) {
	svc := &ProductService{repo: newMockProductRepo()}

	_, err := svc.Update(context.Background(), product.Product{ID: 42, Name: "Latte"}, nil)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete_MissingRow(t *testing.T) {
	svc := &ProductService{repo: newMockProductRepo()}

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	repo := newMockProductRepo()
	svc := &ProductService{repo: repo}

	created, err := svc.Create(context.Background(),
		product.Product{Name: "Mocha", Price: 3000}, nil)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mocha", got.Name)

	_, err = svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
