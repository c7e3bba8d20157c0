// Package services содержит планировщик уведомлений: периодически ищет
// ресурсы, период которых заканчивается в ближайшие дни, и публикует
// уведомления в очередь. Планировщик только уведомляет — сами статусы
// ресурсов пересчитываются лениво при чтении.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/avdeevmax/gym-ledger/internal/lib/rabbitmq"
	"github.com/avdeevmax/gym-ledger/internal/lib/sl"
	"github.com/avdeevmax/gym-ledger/internal/models"
)

// SchedulerRepository определяет выборку ресурсов с истекающим периодом.
type SchedulerRepository interface {
	FindResourcesExpiringWithin(ctx context.Context, days int) ([]*models.ExpiryNotice, error)
}

// Publisher публикует сообщение в очередь уведомлений.
type Publisher interface {
	Publish(exchange, routingKey string, message any) error
}

// SchedulerService находит истекающие периоды и рассылает уведомления.
type SchedulerService struct {
	repo SchedulerRepository
	pub  Publisher
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo SchedulerRepository, pub Publisher, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		pub:  pub,
		log:  log,
	}
}

// Run запускает цикл сканирования: первый проход сразу, дальше по тикеру,
// до отмены контекста.
func (s *SchedulerService) Run(ctx context.Context, interval time.Duration, days int) {
	s.scan(ctx, days)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scan(ctx, days)
		}
	}
}

func (s *SchedulerService) scan(ctx context.Context, days int) {
	s.log.Info("scanning for expiring resource periods", slog.Int("days", days))
	notices, err := s.repo.FindResourcesExpiringWithin(ctx, days)
	if err != nil {
		s.log.Error("failed to find expiring resources", sl.Err(err))
		return
	}
	if len(notices) == 0 {
		s.log.Info("no expiring resource periods found")
		return
	}
	s.log.Info("found expiring resource periods", "count", len(notices))
	for _, notice := range notices {
		err = s.pub.Publish(rabbitmq.NotificationsExchange, rabbitmq.ExpiringRoutingKey, notice)
		if err != nil {
			s.log.Error("failed to publish notice", sl.Err(err))
		}
	}
}
