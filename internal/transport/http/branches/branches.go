package branches

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/teraskopi54/pos/internal/service/models/branch"
	"github.com/teraskopi54/pos/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]branch.Branch, error)
	GetByID(ctx context.Context, id int64) (*branch.Branch, error)
	Create(ctx context.Context, b branch.Branch) (*branch.Branch, error)
	Update(ctx context.Context, b branch.Branch) (*branch.Branch, error)
	Delete(ctx context.Context, id int64) error
}

// branchRequest represents a create or update branch request.
type branchRequest struct {
	Name    string `json:"name"    validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone"`
}

func (r *branchRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *branchRequest) toModel(id int64) branch.Branch {
	return branch.Branch{
		ID:      id,
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*branchRequest, bool) {
	req := &branchRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding branch request", "error", err)

		return nil, false
	}
	if err := req.Validate(); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())

		return nil, false
	}

	return req, true
}

// List handles the list branches request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	branches, err := service.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error listing branches", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, branches)
}

// Get handles the get branch request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid branch id")

		return
	}

	b, err := service.GetByID(r.Context(), id)
	if err != nil {
		respond.Error(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, b)
}

// Create handles the create branch request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	created, err := service.Create(r.Context(), req.toModel(0))
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error creating branch", "error", err)

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

// Update handles the update branch request.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid branch id")

		return
	}

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	updated, err := service.Update(r.Context(), req.toModel(id))
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error updating branch", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, updated)
}

// Delete handles the delete branch request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid branch id")

		return
	}

	if err := service.Delete(r.Context(), id); err != nil {
		respond.Error(w, err)

		return
	}

	respond.Message(w, http.StatusOK, "branch deleted")
}
