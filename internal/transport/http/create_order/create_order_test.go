package createorder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teraskopi54/pos/internal/service/models/apperrors"
	"github.com/teraskopi54/pos/internal/service/models/money"
	"github.com/teraskopi54/pos/internal/service/models/order"
	"github.com/teraskopi54/pos/internal/service/services/ordersvc"
)

type mockService struct {
	placed *order.Order
	err    error
	got    *order.Order
}

func (m *mockService) PlaceOrder(_ context.Context, o order.Order) (*order.Order, error) {
	m.got = &o
	if m.err != nil {
		return nil, m.err
	}
	return m.placed, nil
}

func TestPlaceOrder(t *testing.T) {
	svc := &mockService{placed: &order.Order{ID: 7, CustomerName: "Ana"}}

	body := `{
		"customerName": "Ana",
		"paymentMethod": "cash",
		"items": [
			{"productId": 1, "productName": "Latte", "variant": "hot", "size": "medium", "quantity": 2, "price": "25.00"},
			{"productId": 2, "productName": "Croissant", "quantity": 1, "price": "40.00"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	PlaceOrder(rec, req, svc)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string       `json:"message"`
		Order   *order.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "order placed", resp.Message)
	assert.Equal(t, int64(7), resp.Order.ID)

	require.NotNil(t, svc.got)
	require.Len(t, svc.got.Items, 2)
	assert.Equal(t, money.Cents(2500), svc.got.Items[0].Price)
	assert.Equal(t, "hot", svc.got.Items[0].Variant)
}

func TestPlaceOrder_BadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	PlaceOrder(rec, req, &mockService{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestPlaceOrder_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no customer name", `{"paymentMethod": "cash", "items": [{"productId": 1, "quantity": 1, "price": "1.00"}]}`},
		{"no payment method", `{"customerName": "Ana", "items": [{"productId": 1, "quantity": 1, "price": "1.00"}]}`},
		{"zero quantity", `{"customerName": "Ana", "paymentMethod": "cash", "items": [{"productId": 1, "quantity": 0, "price": "1.00"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			PlaceOrder(rec, req, &mockService{})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc := &mockService{err: ordersvc.ErrEmptyCart}

	body := `{"customerName": "Ana", "paymentMethod": "cash", "items": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	PlaceOrder(rec, req, svc)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least one item")
}

func TestPlaceOrder_StoreUnavailable(t *testing.T) {
	svc := &mockService{err: apperrors.ErrStoreUnavailable}

	body := `{"customerName": "Ana", "paymentMethod": "cash", "items": [{"productId": 1, "quantity": 1, "price": "1.00"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	PlaceOrder(rec, req, svc)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
