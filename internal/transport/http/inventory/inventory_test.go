package inventoryhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teraskopi54/pos/internal/service/models/apperrors"
	"github.com/teraskopi54/pos/internal/service/models/inventory"
)

type mockService struct {
	items   []inventory.Item
	item    *inventory.Item
	err     error
	deleted int64
}

func (m *mockService) List(_ context.Context) ([]inventory.Item, error) {
	return m.items, m.err
}

func (m *mockService) GetByID(_ context.Context, _ int64) (*inventory.Item, error) {
	return m.item, m.err
}

func (m *mockService) Create(_ context.Context, item inventory.Item) (*inventory.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	item.ID = 1
	return &item, nil
}

func (m *mockService) Update(_ context.Context, item inventory.Item) (*inventory.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &item, nil
}

func (m *mockService) Delete(_ context.Context, id int64) error {
	m.deleted = id
	return m.err
}

func newRequestWithID(method, target, id string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestList(t *testing.T) {
	svc := &mockService{items: []inventory.Item{{ID: 1, Name: "Arabica beans", Quantity: 12, Unit: "kg"}}}

	rec := httptest.NewRecorder()
	List(rec, httptest.NewRequest(http.MethodGet, "/api/inventory", nil), svc)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []inventory.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Arabica beans", got[0].Name)
}

func TestGet_NotFound(t *testing.T) {
	svc := &mockService{err: apperrors.ErrNotFound}

	rec := httptest.NewRecorder()
	Get(rec, newRequestWithID(http.MethodGet, "/api/inventory/99", "99", ""), svc)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestGet_InvalidID(t *testing.T) {
	rec := httptest.NewRecorder()
	Get(rec, newRequestWithID(http.MethodGet, "/api/inventory/abc", "abc", ""), &mockService{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate(t *testing.T) {
	svc := &mockService{}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/inventory",
		strings.NewReader(`{"name": "Whole milk", "quantity": 24, "unit": "liter"}`))
	Create(rec, req, svc)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got inventory.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Whole milk", got.Name)
}

func TestCreate_MissingName(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/inventory",
		strings.NewReader(`{"quantity": 24}`))
	Create(rec, req, &mockService{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdate(t *testing.T) {
	svc := &mockService{}

	rec := httptest.NewRecorder()
	req := newRequestWithID(http.MethodPut, "/api/inventory/3", "3",
		`{"name": "Whole milk", "quantity": 18, "unit": "liter"}`)
	Update(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)

	var got inventory.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, 18, got.Quantity)
}

func TestDelete(t *testing.T) {
	svc := &mockService{}

	rec := httptest.NewRecorder()
	Delete(rec, newRequestWithID(http.MethodDelete, "/api/inventory/3", "3", ""), svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), svc.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := &mockService{err: apperrors.ErrNotFound}

	rec := httptest.NewRecorder()
	Delete(rec, newRequestWithID(http.MethodDelete, "/api/inventory/99", "99", ""), svc)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
