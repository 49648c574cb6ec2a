package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/teraskopi54/pos/internal/dal/postgres"
	"github.com/teraskopi54/pos/internal/dal/rabbitmq"
	outboxrepo "github.com/teraskopi54/pos/internal/dal/repositories/outbox/postgres"
	"github.com/teraskopi54/pos/internal/jaeger"
	"github.com/teraskopi54/pos/internal/service/services/accountsvc"
	"github.com/teraskopi54/pos/internal/service/services/branchsvc"
	"github.com/teraskopi54/pos/internal/service/services/inventorysvc"
	"github.com/teraskopi54/pos/internal/service/services/ordersvc"
	"github.com/teraskopi54/pos/internal/service/services/productsvc"
	"github.com/teraskopi54/pos/internal/storage/images"
	httptransport "github.com/teraskopi54/pos/internal/transport/http"
	outboxworker "github.com/teraskopi54/pos/internal/worker/outbox"
)

// App represents the application.
type App struct {
	orderSvc       *ordersvc.OrderService
	productSvc     *productsvc.ProductService
	inventorySvc   *inventorysvc.InventoryService
	branchSvc      *branchsvc.BranchService
	accountSvc     *accountsvc.AccountService
	transport      *httptransport.HTTPTransport
	postgresClient *postgres.Client
	rabbitClient   *rabbitmq.Client
	outboxWorker   *outboxworker.Worker
	tracerProvider *sdktrace.TracerProvider
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	app := &App{}

	if viper.GetBool("tracing.enabled") {
		app.tracerProvider = jaeger.MustSetupTracing()
	}

	app.postgresClient = postgres.MustNewClient()

	app.orderSvc = ordersvc.MustNewOrderService(
		ordersvc.WithPostgresClient(app.postgresClient),
	)

	imageStore := images.MustNewStore()

	app.productSvc = productsvc.MustNewProductService(
		productsvc.WithPostgresClient(app.postgresClient),
		productsvc.WithImageStore(imageStore),
	)

	app.inventorySvc = inventorysvc.MustNewInventoryService(
		inventorysvc.WithPostgresClient(app.postgresClient),
	)

	app.branchSvc = branchsvc.MustNewBranchService(
		branchsvc.WithPostgresClient(app.postgresClient),
	)

	app.accountSvc = accountsvc.MustNewAccountService(
		accountsvc.WithPostgresClient(app.postgresClient),
	)

	app.transport = httptransport.NewHTTPTransport(
		app.orderSvc,
		app.productSvc,
		app.inventorySvc,
		app.branchSvc,
		app.accountSvc,
		imageStore.Dir(),
	)
	app.transport.RegisterRoutes()

	if viper.GetBool("rabbitmq.enabled") {
		app.rabbitClient = rabbitmq.MustNewClient()
		if err := app.rabbitClient.DeclareExchange(viper.GetString("rabbitmq.exchange")); err != nil {
			panic(err)
		}

		app.outboxWorker = outboxworker.NewWorker(
			outboxrepo.NewOutboxRepository(app.postgresClient.Pool()),
			app.rabbitClient,
		)
	}

	return app
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	if a.outboxWorker != nil {
		go a.outboxWorker.Start(workerCtx)
	}

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	cancelWorker()
	if a.outboxWorker != nil {
		a.outboxWorker.Stop()
	}

	if a.rabbitClient != nil {
		if err := a.rabbitClient.Close(); err != nil {
			slog.Error("RabbitMQ connection close error", "error", err)
		} else {
			slog.Info("RabbitMQ connection closed gracefully")
		}
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			slog.Error("Tracer provider shutdown error", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
}
