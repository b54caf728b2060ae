package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rechargehub/rechargehub-backend/api/controllers"
	"github.com/rechargehub/rechargehub-backend/api/middleware"
	"github.com/rechargehub/rechargehub-backend/pkg/config"
	"github.com/rechargehub/rechargehub-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	catalogService controllers.CatalogService,
	settlementService controllers.SettlementService,
	historyService controllers.TransactionHistoryService,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/services", controllers.ServiceTypeList(catalogService, logg))
			r.Get("/services/{serviceType}/operators", controllers.OperatorList(catalogService, logg))
			r.Get("/services/{serviceType}/operators/{operatorKey}/plans", controllers.PlanList(catalogService, logg))
		})
		r.Post("/settlements", controllers.SettlementCreate(settlementService, logg))
		r.Get("/transactions/recent", controllers.TransactionList(historyService, cfg.Ledger.RecentWindow, logg))
	})

	return r
}
