package gymledger

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/avdeevmax/gym-ledger/internal/config"
	entrylist "github.com/avdeevmax/gym-ledger/internal/http/handlers/entry/list"
	"github.com/avdeevmax/gym-ledger/internal/http/handlers/entry/record"
	"github.com/avdeevmax/gym-ledger/internal/http/handlers/health"
	"github.com/avdeevmax/gym-ledger/internal/http/handlers/quote"
	"github.com/avdeevmax/gym-ledger/internal/http/handlers/reference/staff"
	"github.com/avdeevmax/gym-ledger/internal/http/handlers/reference/types"
	resourcelist "github.com/avdeevmax/gym-ledger/internal/http/handlers/resource/list"
	"github.com/avdeevmax/gym-ledger/internal/http/mware"
	ledgerservice "github.com/avdeevmax/gym-ledger/internal/services/ledger"
	referenceservice "github.com/avdeevmax/gym-ledger/internal/services/reference"
	"github.com/avdeevmax/gym-ledger/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, db *repository.Storage, ledger *ledgerservice.LedgerService, reference *referenceservice.ReferenceService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		mware.MetricsMiddleware,
		mware.RateLimitMiddleware(logger, cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/quote", quote.New(logger).ServeHTTP)
		r.Post("/entries", record.New(logger, ledger).ServeHTTP)
		r.Get("/members/{memberID}/entries", entrylist.New(logger, ledger).ServeHTTP)
		r.Get("/resources", resourcelist.New(logger, ledger).ServeHTTP)
		r.Get("/membership-types", types.New(logger, reference).ServeHTTP)
		r.Get("/staff", staff.New(logger, reference).ServeHTTP)
		r.Get("/health", health.New(logger, db).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
