package products

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teraskopi54/pos/internal/service/models/apperrors"
	"github.com/teraskopi54/pos/internal/service/models/money"
	"github.com/teraskopi54/pos/internal/service/models/product"
	"github.com/teraskopi54/pos/internal/service/services/productsvc"
)

type mockService struct {
	products []product.Product
	prod     *product.Product
	err      error
	gotImage *productsvc.Upload
	deleted  int64
}

func (m *mockService) List(_ context.Context) ([]product.Product, error) {
	return m.products, m.err
}

func (m *mockService) GetByID(_ context.Context, _ int64) (*product.Product, error) {
	return m.prod, m.err
}

func (m *mockService) Create(
	_ context.Context,
	p product.Product,
	img *productsvc.Upload,
) (*product.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.gotImage = img
	p.ID = 1
	return &p, nil
}

func (m *mockService) Update(
	_ context.Context,
	p product.Product,
	img *productsvc.Upload,
) (*product.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.gotImage = img
	return &p, nil
}

func (m *mockService) Delete(_ context.Context, id int64) error {
	m.deleted = id
	return m.err
}

func newRequestWithID(method, target, id string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, fileBody string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(fileBody))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return buf, mw.FormDataContentType()
}

func TestCreate_JSON(t *testing.T) {
	svc := &mockService{}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products",
		strings.NewReader(`{"name": "Latte", "category": "coffee", "price": "25.00"}`))
	Create(rec, req, svc)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got product.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, money.Cents(2500), got.Price)
	assert.Nil(t, svc.gotImage)
}

func TestCreate_MultipartWithImage(t *testing.T) {
	svc := &mockService{}

	body, contentType := multipartBody(t,
		map[string]string{"name": "Latte", "category": "coffee", "price": "25.00"},
		"image", "latte.png", "image-bytes")

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	Create(rec, req, svc)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.gotImage)
	assert.Equal(t, "latte.png", svc.gotImage.Filename)
}

func TestCreate_MultipartWithoutImage(t *testing.T) {
	svc := &mockService{}

	body, contentType := multipartBody(t,
		map[string]string{"name": "Latte", "price": "25.00"}, "", "", "")

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	Create(rec, req, svc)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, svc.gotImage)
}

func TestCreate_BadPrice(t *testing.T) {
	body, contentType := multipartBody(t,
		map[string]string{"name": "Latte", "price": "25.0001"}, "", "", "")

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	Create(rec, req, &mockService{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet_NotFound(t *testing.T) {
	svc := &mockService{err: apperrors.ErrNotFound}

	rec := httptest.NewRecorder()
	Get(rec, newRequestWithID(http.MethodGet, "/api/products/99", "99", nil), svc)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestList(t *testing.T) {
	svc := &mockService{products: []product.Product{
		{ID: 1, Name: "Latte", Category: "coffee", Price: 2500},
	}}

	rec := httptest.NewRecorder()
	List(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil), svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"25.00"`)
}

func TestUpdate(t *testing.T) {
	svc := &mockService{}

	rec := httptest.NewRecorder()
	req := newRequestWithID(http.MethodPut, "/api/products/4", "4",
		strings.NewReader(`{"name": "Latte", "price": "27.50"}`))
	Update(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)

	var got product.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, money.Cents(2750), got.Price)
}

func TestDelete(t *testing.T) {
	svc := &mockService{}

	rec := httptest.NewRecorder()
	Delete(rec, newRequestWithID(http.MethodDelete, "/api/products/4", "4", nil), svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), svc.deleted)
}
