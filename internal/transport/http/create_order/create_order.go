package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teraskopi54/pos/internal/service/models/money"
	"github.com/teraskopi54/pos/internal/service/models/order"
	"github.com/teraskopi54/pos/internal/service/models/orderitem"
	"github.com/teraskopi54/pos/internal/service/models/payment"
	"github.com/teraskopi54/pos/internal/service/services/ordersvc"
	"github.com/teraskopi54/pos/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	PlaceOrder(ctx context.Context, o order.Order) (*order.Order, error)
}

// itemInPlaceOrderRequest represents one line item in a place order request.
type itemInPlaceOrderRequest struct {
	ProductID   int64       `json:"productId"   validate:"gt=0"`
	ProductName string      `json:"productName"`
	Variant     string      `json:"variant"`
	Size        string      `json:"size"`
	Quantity    int         `json:"quantity"    validate:"gt=0"`
	Price       money.Cents `json:"price"       validate:"gte=0"`
	TotalPrice  money.Cents `json:"totalPrice"  validate:"gte=0"`
}

// toModel converts itemInPlaceOrderRequest to orderitem.OrderItem.
func (r *itemInPlaceOrderRequest) toModel() orderitem.OrderItem {
	return orderitem.OrderItem{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Variant:     r.Variant,
		Size:        r.Size,
		Quantity:    r.Quantity,
		Price:       r.Price,
		TotalPrice:  r.TotalPrice,
	}
}

// placeOrderRequest represents a place order request.
type placeOrderRequest struct {
	CustomerName  string                    `json:"customerName"  validate:"required"`
	PaymentMethod string                    `json:"paymentMethod" validate:"required"`
	OrderDate     *time.Time                `json:"orderDate"`
	Items         []itemInPlaceOrderRequest `json:"items"         validate:"dive"`
}

func (r *placeOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts placeOrderRequest to order.Order.
func (r *placeOrderRequest) toModel() (*order.Order, error) {
	method, err := payment.ParseMethod(r.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items := make([]orderitem.OrderItem, len(r.Items))
	for i := range r.Items {
		items[i] = r.Items[i].toModel()
	}

	o := &order.Order{
		CustomerName:  r.CustomerName,
		PaymentMethod: method,
		Items:         items,
	}
	if r.OrderDate != nil {
		o.OrderDate = *r.OrderDate
	}

	return o, nil
}

// placeOrderResponse confirms a placed order.
type placeOrderResponse struct {
	Message string       `json:"message"`
	Order   *order.Order `json:"order"`
}

// PlaceOrder handles the place order request.
func PlaceOrder(w http.ResponseWriter, r *http.Request, service service) {
	orderReq := placeOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&orderReq); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding request body for place order", "error", err)

		return
	}

	if err := orderReq.Validate(); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		slog.Error("Error validating request body for place order", "error", err)

		return
	}

	model, err := orderReq.toModel()
	if err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		slog.Error("Error converting place order request to model", "error", err)

		return
	}

	placed, err := service.PlaceOrder(r.Context(), *model)
	if err != nil {
		if errors.Is(err, ordersvc.ErrEmptyCart) {
			respond.Message(w, http.StatusBadRequest, err.Error())
		} else {
			respond.Error(w, err)
		}
		slog.Error("Error placing order", "error", err)

		return
	}

	respond.JSON(w, http.StatusCreated, placeOrderResponse{
		Message: "order placed",
		Order:   placed,
	})
}
