// Package gymledger собирает приложение журнала оплат: хранилище,
// миграции, сервисы, HTTP-сервер и необязательный планировщик
// уведомлений об истекающих периодах.
package gymledger

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/avdeevmax/gym-ledger/internal/config"
	"github.com/avdeevmax/gym-ledger/internal/lib/rabbitmq"
	"github.com/avdeevmax/gym-ledger/internal/lib/sl"
	"github.com/avdeevmax/gym-ledger/internal/migrations"
	ledgerservice "github.com/avdeevmax/gym-ledger/internal/services/ledger"
	referenceservice "github.com/avdeevmax/gym-ledger/internal/services/reference"
	schedulerservice "github.com/avdeevmax/gym-ledger/internal/services/scheduler"
	"github.com/avdeevmax/gym-ledger/internal/storage/repository"
)

// Параметры подключения к RabbitMQ.
const (
	amqpRetries = 5
	amqpDelay   = 3 * time.Second
)

// App держит HTTP-сервер и ресурсы приложения.
type App struct {
	server    *http.Server
	logger    *slog.Logger
	db        *repository.Storage
	scheduler *schedulerservice.SchedulerService
	cfg       *config.Config
}

// New собирает приложение: подключает хранилище, накатывает миграции,
// строит сервисы и маршруты. Планировщик уведомлений создаётся только
// при заданном адресе RabbitMQ.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	ledger := ledgerservice.NewLedgerService(db, logger)
	reference := referenceservice.NewReferenceService(db, logger, cfg.CacheTTL)

	var scheduler *schedulerservice.SchedulerService
	if cfg.AMQPAddress != "" {
		conn, err := rabbitmq.Connect(cfg.AMQPAddress, amqpRetries, amqpDelay)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(conn)
		if err != nil {
			return nil, err
		}
		scheduler = schedulerservice.NewSchedulerService(db, rabbitmq.NewPublisher(ch), logger)
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, db, ledger, reference)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:    srv,
		logger:    logger,
		db:        db,
		scheduler: scheduler,
		cfg:       cfg,
	}, nil
}

// Run запускает HTTP-сервер и планировщик уведомлений, останавливает
// их мягко по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	if a.scheduler != nil {
		go a.scheduler.Run(ctx, a.cfg.ExpiryScanInterval, a.cfg.ExpiryNoticeDays)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", sl.Err(closeErr))
		}
		return err
	}
}
