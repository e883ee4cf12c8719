package handler

import (
	"net/http"

	"github.com/boddenberg/casa-cashflow-go/internal/infra/observability"
	"github.com/boddenberg/casa-cashflow-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware. All
// household-scoped routes require a valid access token whose household
// matches the {householdId} path parameter.
func NewRouter(
	cashflowSvc *service.CashflowService,
	financeSvc *service.FinanceService,
	authSvc *service.AuthService,
	metrics *observability.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// =============================================
		// Authentication
		// =============================================
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authRegisterHandler(authSvc, logger))
			r.Post("/login", authLoginHandler(authSvc, logger))
			r.Post("/refresh", authRefreshHandler(authSvc, logger))

			r.Group(func(r chi.Router) {
				r.Use(JWTAuthMiddleware(authSvc, logger))
				r.Post("/logout", authLogoutHandler(authSvc, logger))
			})
		})

		// =============================================
		// Projection metrics
		// =============================================
		r.Get("/metrics/cashflow", cashflowMetricsHandler(cashflowSvc))

		// =============================================
		// Household-scoped routes (protected)
		// =============================================
		r.Route("/households/{householdId}", func(r chi.Router) {
			r.Use(JWTAuthMiddleware(authSvc, logger))
			r.Use(HouseholdScopeMiddleware(logger))

			// Cashflow projection
			r.Get("/cashflow", getCashflowHandler(cashflowSvc, logger))

			// Projection snapshots
			r.Get("/cashflow/snapshots", listSnapshotsHandler(cashflowSvc, logger))
			r.Get("/cashflow/snapshots/{snapshotId}", getSnapshotHandler(cashflowSvc, logger))

			// Accounts
			r.Get("/accounts", listAccountsHandler(financeSvc, logger))
			r.Post("/accounts", createAccountHandler(financeSvc, logger))
			r.Put("/accounts/{accountId}", updateAccountHandler(financeSvc, logger))
			r.Delete("/accounts/{accountId}", deleteAccountHandler(financeSvc, logger))

			// Recurring income
			r.Get("/recurring-income", listRecurringIncomeHandler(financeSvc, logger))
			r.Post("/recurring-income", createRecurringIncomeHandler(financeSvc, logger))
			r.Put("/recurring-income/{itemId}", updateRecurringIncomeHandler(financeSvc, logger))
			r.Delete("/recurring-income/{itemId}", deleteRecurringIncomeHandler(financeSvc, logger))

			// Single-shot income
			r.Get("/single-shot-income", listSingleShotIncomeHandler(financeSvc, logger))
			r.Post("/single-shot-income", createSingleShotIncomeHandler(financeSvc, logger))
			r.Delete("/single-shot-income/{itemId}", deleteSingleShotIncomeHandler(financeSvc, logger))

			// Fixed expenses
			r.Get("/fixed-expenses", listFixedExpensesHandler(financeSvc, logger))
			r.Post("/fixed-expenses", createFixedExpenseHandler(financeSvc, logger))
			r.Put("/fixed-expenses/{itemId}", updateFixedExpenseHandler(financeSvc, logger))
			r.Delete("/fixed-expenses/{itemId}", deleteFixedExpenseHandler(financeSvc, logger))

			// Single-shot expenses
			r.Get("/single-shot-expenses", listSingleShotExpensesHandler(financeSvc, logger))
			r.Post("/single-shot-expenses", createSingleShotExpenseHandler(financeSvc, logger))
			r.Delete("/single-shot-expenses/{itemId}", deleteSingleShotExpenseHandler(financeSvc, logger))

			// Credit cards
			r.Get("/credit-cards", listCreditCardsHandler(financeSvc, logger))
			r.Post("/credit-cards", createCreditCardHandler(financeSvc, logger))
			r.Put("/credit-cards/{cardId}", updateCreditCardHandler(financeSvc, logger))
			r.Delete("/credit-cards/{cardId}", deleteCreditCardHandler(financeSvc, logger))

			// Future statements
			r.Get("/future-statements", listFutureStatementsHandler(financeSvc, logger))
			r.Post("/future-statements", createFutureStatementHandler(financeSvc, logger))
			r.Delete("/future-statements/{stmtId}", deleteFutureStatementHandler(financeSvc, logger))

			// Notifications
			r.Get("/notifications", listNotificationsHandler(cashflowSvc, logger))
			r.Post("/notifications/{notifId}/read", markNotificationReadHandler(cashflowSvc, logger))
		})
	})

	return r
}

// ============================================================
// Health & metrics
// ============================================================

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func cashflowMetricsHandler(svc *service.CashflowService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.GetMetrics())
	}
}
