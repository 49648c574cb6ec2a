package products

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/teraskopi54/pos/internal/service/models/money"
	"github.com/teraskopi54/pos/internal/service/models/product"
	"github.com/teraskopi54/pos/internal/service/services/productsvc"
	"github.com/teraskopi54/pos/internal/transport/http/respond"
)

const maxUploadSize = 32 << 20

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]product.Product, error)
	GetByID(ctx context.Context, id int64) (*product.Product, error)
	Create(ctx context.Context, p product.Product, img *productsvc.Upload) (*product.Product, error)
	Update(ctx context.Context, p product.Product, img *productsvc.Upload) (*product.Product, error)
	Delete(ctx context.Context, id int64) error
}

// productRequest represents a create or update product request.
type productRequest struct {
	Name     string      `json:"name"     validate:"required"`
	Category string      `json:"category"`
	Price    money.Cents `json:"price"    validate:"gte=0"`
}

func (r *productRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *productRequest) toModel(id int64) product.Product {
	return product.Product{
		ID:       id,
		Name:     r.Name,
		Category: r.Category,
		Price:    r.Price,
	}
}

// decodeRequest reads a product request from either a JSON body or a
// multipart form carrying an optional `image` file.
func decodeRequest(r *http.Request) (*productRequest, *productsvc.Upload, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return nil, nil, err
		}

		price, err := money.Parse(r.FormValue("price"))
		if err != nil {
			return nil, nil, err
		}

		req := &productRequest{
			Name:     r.FormValue("name"),
			Category: r.FormValue("category"),
			Price:    price,
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return req, nil, nil
			}
			return nil, nil, err
		}

		return req, &productsvc.Upload{Filename: header.Filename, Reader: file}, nil
	}

	req := &productRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, nil, err
	}

	return req, nil, nil
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func closeUpload(img *productsvc.Upload) {
	if img == nil {
		return
	}
	if closer, ok := img.Reader.(io.Closer); ok {
		_ = closer.Close()
	}
}

// List handles the list products request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	products, err := service.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error listing products", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, products)
}

// Get handles the get product request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid product id")

		return
	}

	p, err := service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// Create handles the create product request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req, img, err := decodeRequest(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding create product request", "error", err)

		return
	}
	defer closeUpload(img)

	if err := req.Validate(); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())

		return
	}

	created, err := service.Create(r.Context(), req.toModel(0), img)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error creating product", "error", err)

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

// Update handles the update product request.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid product id")

		return
	}

	req, img, err := decodeRequest(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding update product request", "error", err)

		return
	}
	defer closeUpload(img)

	if err := req.Validate(); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())

		return
	}

	updated, err := service.Update(r.Context(), req.toModel(id), img)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error updating product", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, updated)
}

// Delete handles the delete product request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid product id")

		return
	}

	if err := service.Delete(r.Context(), id); err != nil {
		respond.Error(w, err)

		return
	}

	respond.Message(w, http.StatusOK, "product deleted")
}
