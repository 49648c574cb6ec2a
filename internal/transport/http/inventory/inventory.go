package inventoryhttp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/teraskopi54/pos/internal/service/models/inventory"
	"github.com/teraskopi54/pos/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]inventory.Item, error)
	GetByID(ctx context.Context, id int64) (*inventory.Item, error)
	Create(ctx context.Context, item inventory.Item) (*inventory.Item, error)
	Update(ctx context.Context, item inventory.Item) (*inventory.Item, error)
	Delete(ctx context.Context, id int64) error
}

// itemRequest represents a create or update inventory request.
type itemRequest struct {
	Name     string `json:"name"     validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Unit     string `json:"unit"`
}

func (r *itemRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *itemRequest) toModel(id int64) inventory.Item {
	return inventory.Item{
		ID:       id,
		Name:     r.Name,
		Quantity: r.Quantity,
		Unit:     r.Unit,
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*itemRequest, bool) {
	req := &itemRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding inventory request", "error", err)

		return nil, false
	}
	if err := req.Validate(); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())

		return nil, false
	}

	return req, true
}

// List handles the list inventory request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	items, err := service.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error listing inventory", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, items)
}

// Get handles the get inventory item request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid inventory id")

		return
	}

	item, err := service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, item)
}

// Create handles the create inventory item request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	created, err := service.Create(r.Context(), req.toModel(0))
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error creating inventory item", "error", err)

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

// Update handles the update inventory item request.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid inventory id")

		return
	}

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	updated, err := service.Update(r.Context(), req.toModel(id))
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error updating inventory item", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, updated)
}

// Delete handles the delete inventory item request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid inventory id")

		return
	}

	if err := service.Delete(r.Context(), id); err != nil {
		respond.Error(w, err)

		return
	}

	respond.Message(w, http.StatusOK, "inventory item deleted")
}
