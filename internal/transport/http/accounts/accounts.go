package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/teraskopi54/pos/internal/service/models/account"
	"github.com/teraskopi54/pos/internal/service/services/accountsvc"
	"github.com/teraskopi54/pos/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	Register(ctx context.Context, username, password string, role account.Role) (*account.Account, error)
	Login(ctx context.Context, username, password string, role account.Role) error
}

// credentialsRequest represents a register or login request.
type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *credentialsRequest) Validate() error {
	return validator.New().Struct(r)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*credentialsRequest, bool) {
	req := &credentialsRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding credentials request", "error", err)

		return nil, false
	}
	if err := req.Validate(); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())

		return nil, false
	}

	return req, true
}

// Register handles an account registration request for the given role.
func Register(w http.ResponseWriter, r *http.Request, service service, role account.Role) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	created, err := service.Register(r.Context(), req.Username, req.Password, role)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error registering account", "role", role.String(), "error", err)

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

// Login handles a stateless credential check for the given role. No
// session or token is issued.
func Login(w http.ResponseWriter, r *http.Request, service service, role account.Role) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	if err := service.Login(r.Context(), req.Username, req.Password, role); err != nil {
		if errors.Is(err, accountsvc.ErrInvalidCredentials) {
			respond.Message(w, http.StatusBadRequest, err.Error())
		} else {
			respond.Error(w, err)
			slog.Error("Error logging in", "role", role.String(), "error", err)
		}

		return
	}

	respond.Message(w, http.StatusOK, "login successful")
}
