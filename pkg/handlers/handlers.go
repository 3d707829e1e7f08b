package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mkani/billing/pkg/api"
	"github.com/mkani/billing/pkg/authz"
	"github.com/mkani/billing/pkg/handlers/invoices"
	"github.com/mkani/billing/pkg/handlers/notifications"
	"github.com/mkani/billing/pkg/handlers/packages"
	"github.com/mkani/billing/pkg/handlers/render"
	"github.com/mkani/billing/pkg/handlers/transactions"
	"github.com/mkani/billing/pkg/handlers/wallets"
	"github.com/mkani/billing/pkg/middleware"
	"github.com/mkani/billing/pkg/scheduler"
	"github.com/mkani/billing/pkg/storage"
)

// ApiHandler implements the generated server interface by composing the
// per-resource handlers.
type ApiHandler struct {
	*invoices.InvoicesHandler
	*packages.PackagesHandler
	*transactions.TransactionsHandler
	*wallets.WalletsHandler
	*notifications.NotificationsHandler
}

// Dependencies are the services behind the API.
type Dependencies struct {
	Wallets   storage.WalletStore
	Ledger    storage.LedgerReader
	Invoices  invoices.InvoiceService
	Packages  packages.PackageService
	Runner    invoices.JobRunner
	Scheduler scheduler.Scheduler
	Rent      transactions.RentService
	TopUps    wallets.TopUpService
	Inbox     notifications.Inbox
}

// NewApiHandler wires the resource handlers.
func NewApiHandler(d Dependencies) *ApiHandler {
	return &ApiHandler{
		InvoicesHandler:      invoices.NewInvoicesHandler(d.Invoices, d.Scheduler, d.Runner),
		PackagesHandler:      packages.NewPackagesHandler(d.Packages),
		TransactionsHandler:  transactions.NewTransactionsHandler(d.Rent, d.Wallets, d.Ledger),
		WalletsHandler:       wallets.NewWalletsHandler(d.Wallets, d.TopUps),
		NotificationsHandler: notifications.NewNotificationsHandler(d.Inbox),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// NewRouter mounts si behind request logging and principal loading. Routes
// added to the returned router outside the API, such as health checks, are
// not authenticated.
func NewRouter(si api.ServerInterface, loader authz.Loader, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewStructuredLogger(logger, "/healthz", "/metrics"))
	r.Use(chimw.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(authz.Middleware(loader, logger))
		api.HandlerWithOptions(si, api.ChiServerOptions{
			BaseRouter:       r,
			ErrorHandlerFunc: render.ParamError,
		})
	})
	return r
}

// Pinger checks a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health answers 200 while db is reachable and 503 otherwise.
func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}
}
