package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	"github.com/teraskopi54/pos/internal/service/models/account"
	"github.com/teraskopi54/pos/internal/service/models/branch"
	"github.com/teraskopi54/pos/internal/service/models/inventory"
	"github.com/teraskopi54/pos/internal/service/models/order"
	"github.com/teraskopi54/pos/internal/service/models/product"
	"github.com/teraskopi54/pos/internal/service/services/productsvc"
	accountshttp "github.com/teraskopi54/pos/internal/transport/http/accounts"
	brancheshttp "github.com/teraskopi54/pos/internal/transport/http/branches"
	createorder "github.com/teraskopi54/pos/internal/transport/http/create_order"
	inventoryhttp "github.com/teraskopi54/pos/internal/transport/http/inventory"
	listorders "github.com/teraskopi54/pos/internal/transport/http/list_orders"
	productshttp "github.com/teraskopi54/pos/internal/transport/http/products"
	uploadshttp "github.com/teraskopi54/pos/internal/transport/http/uploads"
	"github.com/teraskopi54/pos/pkg/http/middleware/trace"
	"github.com/teraskopi54/pos/pkg/logger"
)

type orderService interface {
	PlaceOrder(ctx context.Context, o order.Order) (*order.Order, error)
	GetOrders(ctx context.Context, query order.QueryOrdersModel) ([]order.Order, error)
}

type productService interface {
	List(ctx context.Context) ([]product.Product, error)
	GetByID(ctx context.Context, id int64) (*product.Product, error)
	Create(ctx context.Context, p product.Product, img *productsvc.Upload) (*product.Product, error)
	Update(ctx context.Context, p product.Product, img *productsvc.Upload) (*product.Product, error)
	Delete(ctx context.Context, id int64) error
	StoreImage(img productsvc.Upload) (string, error)
}

type inventoryService interface {
	List(ctx context.Context) ([]inventory.Item, error)
	GetByID(ctx context.Context, id int64) (*inventory.Item, error)
	Create(ctx context.Context, item inventory.Item) (*inventory.Item, error)
	Update(ctx context.Context, item inventory.Item) (*inventory.Item, error)
	Delete(ctx context.Context, id int64) error
}

type branchService interface {
	List(ctx context.Context) ([]branch.Branch, error)
	GetByID(ctx context.Context, id int64) (*branch.Branch, error)
	Create(ctx context.Context, b branch.Branch) (*branch.Branch, error)
	Update(ctx context.Context, b branch.Branch) (*branch.Branch, error)
	Delete(ctx context.Context, id int64) error
}

type accountService interface {
	Register(ctx context.Context, username, password string, role account.Role) (*account.Account, error)
	Login(ctx context.Context, username, password string, role account.Role) error
}

type HTTPTransport struct {
	server     *http.Server
	router     *chi.Mux
	orders     orderService
	products   productService
	inventory  inventoryService
	branches   branchService
	accounts   accountService
	uploadsDir string
}

func NewHTTPTransport(
	orders orderService,
	products productService,
	inventory inventoryService,
	branches branchService,
	accounts accountService,
	uploadsDir string,
) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:     server,
		router:     router,
		orders:     orders,
		products:   products,
		inventory:  inventory,
		branches:   branches,
		accounts:   accounts,
		uploadsDir: uploadsDir,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Post("/orders", h.placeOrder)
		r.Get("/orders", h.listOrders)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Post("/", h.createProduct)
			r.Get("/{id}", h.getProduct)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", h.listInventory)
			r.Post("/", h.createInventoryItem)
			r.Get("/{id}", h.getInventoryItem)
			r.Put("/{id}", h.updateInventoryItem)
			r.Delete("/{id}", h.deleteInventoryItem)
		})

		r.Route("/cafe-branch", func(r chi.Router) {
			r.Get("/", h.listBranches)
			r.Post("/", h.createBranch)
			r.Get("/{id}", h.getBranch)
			r.Put("/{id}", h.updateBranch)
			r.Delete("/{id}", h.deleteBranch)
		})

		r.Post("/register-cashier", h.registerCashier)
		r.Post("/register-stock", h.registerStock)
		r.Post("/login-cashier", h.loginCashier)
		r.Post("/login-stock", h.loginStock)

		r.Post("/upload-images", h.uploadImage)
	})

	h.router.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(h.uploadsDir))))
}

func (h *HTTPTransport) placeOrder(w http.ResponseWriter, r *http.Request) {
	createorder.PlaceOrder(w, r, h.orders)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orders)
}

func (h *HTTPTransport) listProducts(w http.ResponseWriter, r *http.Request) {
	productshttp.List(w, r, h.products)
}

func (h *HTTPTransport) getProduct(w http.ResponseWriter, r *http.Request) {
	productshttp.Get(w, r, h.products)
}

func (h *HTTPTransport) createProduct(w http.ResponseWriter, r *http.Request) {
	productshttp.Create(w, r, h.products)
}

func (h *HTTPTransport) updateProduct(w http.ResponseWriter, r *http.Request) {
	productshttp.Update(w, r, h.products)
}

func (h *HTTPTransport) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productshttp.Delete(w, r, h.products)
}

func (h *HTTPTransport) listInventory(w http.ResponseWriter, r *http.Request) {
	inventoryhttp.List(w, r, h.inventory)
}

func (h *HTTPTransport) getInventoryItem(w http.ResponseWriter, r *http.Request) {
	inventoryhttp.Get(w, r, h.inventory)
}

func (h *HTTPTransport) createInventoryItem(w http.ResponseWriter, r *http.Request) {
	inventoryhttp.Create(w, r, h.inventory)
}

func (h *HTTPTransport) updateInventoryItem(w http.ResponseWriter, r *http.Request) {
	inventoryhttp.Update(w, r, h.inventory)
}

func (h *HTTPTransport) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	inventoryhttp.Delete(w, r, h.inventory)
}

func (h *HTTPTransport) listBranches(w http.ResponseWriter, r *http.Request) {
	brancheshttp.List(w, r, h.branches)
}

func (h *HTTPTransport) getBranch(w http.ResponseWriter, r *http.Request) {
	brancheshttp.Get(w, r, h.branches)
}

func (h *HTTPTransport) createBranch(w http.ResponseWriter, r *http.Request) {
	brancheshttp.Create(w, r, h.branches)
}

func (h *HTTPTransport) updateBranch(w http.ResponseWriter, r *http.Request) {
	brancheshttp.Update(w, r, h.branches)
}

func (h *HTTPTransport) deleteBranch(w http.ResponseWriter, r *http.Request) {
	brancheshttp.Delete(w, r, h.branches)
}

func (h *HTTPTransport) registerCashier(w http.ResponseWriter, r *http.Request) {
	accountshttp.Register(w, r, h.accounts, account.RoleCashier)
}

func (h *HTTPTransport) registerStock(w http.ResponseWriter, r *http.Request) {
	accountshttp.Register(w, r, h.accounts, account.RoleStock)
}

func (h *HTTPTransport) loginCashier(w http.ResponseWriter, r *http.Request) {
	accountshttp.Login(w, r, h.accounts, account.RoleCashier)
}

func (h *HTTPTransport) loginStock(w http.ResponseWriter, r *http.Request) {
	accountshttp.Login(w, r, h.accounts, account.RoleStock)
}

func (h *HTTPTransport) uploadImage(w http.ResponseWriter, r *http.Request) {
	uploadshttp.UploadImage(w, r, h.products)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
