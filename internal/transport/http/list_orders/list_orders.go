package listorders

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/teraskopi54/pos/internal/service/models/order"
	"github.com/teraskopi54/pos/internal/transport/http/respond"
)

type service interface {
	GetOrders(ctx context.Context, query order.QueryOrdersModel) ([]order.Order, error)
}

type queryOrdersRequest struct {
	Ids    []int64 `schema:"ids,omitempty"`
	Limit  int     `schema:"limit,omitempty"`
	Offset int     `schema:"offset,omitempty"`
}

func (q *queryOrdersRequest) ToModel() order.QueryOrdersModel {
	return order.QueryOrdersModel{
		Ids:    q.Ids,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
}

// ListOrders returns placed orders grouped with their line items.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &queryOrdersRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding request", "error", err)

		return
	}

	orders, err := service.GetOrders(r.Context(), query.ToModel())
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error getting orders", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, orders)
}
