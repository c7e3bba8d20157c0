// Package services содержит бизнес-логику журнала оплат: проведение
// операций по ресурсам (оплата, продление, отмена, возврат) и выборку
// истории клиента.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avdeevmax/gym-ledger/internal/lib/datestamp"
	"github.com/avdeevmax/gym-ledger/internal/lib/paging"
	"github.com/avdeevmax/gym-ledger/internal/lib/pricing"
	"github.com/avdeevmax/gym-ledger/internal/models"
)

var (
	// ErrResourceNotFound — ресурс из запроса не существует.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrInvalidAmount — неположительная сумма для оплаты или продления.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDate — непустая, но некорректная дата начала.
	ErrInvalidDate = errors.New("invalid date")
	// ErrPersistenceFailure оборачивает ошибки хранилища.
	ErrPersistenceFailure = errors.New("persistence failure")
)

// LedgerRepository определяет методы хранилища для журнала и ресурсов.
type LedgerRepository interface {
	// CreateEntry атомарно добавляет запись журнала и применяет новое
	// состояние ресурса. Либо применяется всё, либо ничего.
	CreateEntry(ctx context.Context, entry models.LedgerEntry, resource models.Resource) error
	// ListEntriesByMember возвращает записи клиента, отсортированные
	// по времени создания по убыванию, одновременные — в порядке вставки.
	ListEntriesByMember(ctx context.Context, memberID string) ([]*models.LedgerEntry, error)
	// GetResource возвращает ресурс по ID, nil — если его нет.
	GetResource(ctx context.Context, id string) (*models.Resource, error)
	// ListResources возвращает все ресурсы в порядке номера.
	ListResources(ctx context.Context) ([]*models.Resource, error)
}

// LedgerService реализует проведение операций по журналу.
// Операции над одним ресурсом сериализуются через именованный мьютекс,
// чтобы продление всегда читало свежий текущий период; разные ресурсы
// обрабатываются параллельно.
type LedgerService struct {
	repo LedgerRepository
	log  *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

// NewLedgerService создает новый экземпляр LedgerService.
func NewLedgerService(repo LedgerRepository, log *slog.Logger) *LedgerService {
	return &LedgerService{
		repo:  repo,
		log:   log,
		locks: make(map[string]*sync.Mutex),
		now:   time.Now,
	}
}

func (s *LedgerService) resourceLock(resourceID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[resourceID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[resourceID] = lock
	}
	return lock
}

// Record проводит операцию: валидирует запрос, строит новый биллинговый
// период для оплаты/продления и атомарно применяет запись журнала вместе
// с новым состоянием ресурса. Валидация выполняется до любых изменений,
// её провал гарантирует отсутствие побочных эффектов.
func (s *LedgerService) Record(ctx context.Context, req models.DummyLedgerEntry) (*models.LedgerEntry, error) {
	const op = "services.ledger.Record"

	occupies := req.Action == models.ActionPayment || req.Action == models.ActionExtension
	if occupies && req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	today := s.today()
	if req.StartDate != "" {
		ts := datestamp.ToTimestamp(req.StartDate)
		if ts == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.StartDate)
		}
		today = time.Unix(*ts, 0).In(time.Local)
	}

	lock := s.resourceLock(req.ResourceID)
	lock.Lock()
	defer lock.Unlock()

	resource, err := s.repo.GetResource(ctx, req.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrPersistenceFailure, err)
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}

	entry := models.LedgerEntry{
		ID:         uuid.NewString(),
		MemberID:   req.MemberID,
		ResourceID: req.ResourceID,
		Action:     req.Action,
		Amount:     req.Amount,
		Method:     req.Method,
		CreatedAt:  s.now(),
		Notes:      req.Notes,
	}

	updated := *resource
	switch {
	case occupies:
		period, err := pricing.Extend(resource.CurrentPeriod, req.Months, today)
		if err != nil {
			return nil, err
		}
		entry.Period = period
		updated.Status = models.StatusOccupied
		updated.HolderID = req.MemberID
		updated.CurrentPeriod = &period
	case req.Action == models.ActionCancellation:
		if resource.CurrentPeriod != nil {
			entry.Period = *resource.CurrentPeriod
		}
		updated.Status = models.StatusAvailable
		updated.HolderID = ""
		updated.CurrentPeriod = nil
	default: // refund: состояние ресурса не меняется
		if resource.CurrentPeriod != nil {
			entry.Period = *resource.CurrentPeriod
		}
	}

	if err := s.repo.CreateEntry(ctx, entry, updated); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrPersistenceFailure, err)
	}

	s.log.Info("recorded ledger entry",
		slog.String("id", entry.ID),
		slog.String("action", entry.Action),
		slog.String("resource_id", entry.ResourceID))
	return &entry, nil
}

// EntriesForMember возвращает страницу истории клиента. Фильтр по действию
// и поиск по комментарию применяются до нарезки на страницы.
func (s *LedgerService) EntriesForMember(ctx context.Context, memberID string, f paging.Filter, page, pageSize int) (paging.Page[*models.LedgerEntry], error) {
	const op = "services.ledger.EntriesForMember"

	entries, err := s.repo.ListEntriesByMember(ctx, memberID)
	if err != nil {
		return paging.Page[*models.LedgerEntry]{}, fmt.Errorf("%s: %w: %v", op, ErrPersistenceFailure, err)
	}

	filtered := paging.Apply(entries, f,
		func(e *models.LedgerEntry) string { return e.Action },
		func(e *models.LedgerEntry) string { return e.Notes })
	return paging.Paginate(filtered, page, pageSize)
}

// ListResources возвращает страницу ресурсов. Статус каждого ресурса
// пересчитывается относительно текущего момента, так что фильтр по статусу
// видит истёкшие периоды без записи в хранилище.
func (s *LedgerService) ListResources(ctx context.Context, f paging.Filter, page, pageSize int) (paging.Page[*models.Resource], error) {
	const op = "services.ledger.ListResources"

	resources, err := s.repo.ListResources(ctx)
	if err != nil {
		return paging.Page[*models.Resource]{}, fmt.Errorf("%s: %w: %v", op, ErrPersistenceFailure, err)
	}

	now := s.now()
	for _, r := range resources {
		r.Status = r.EffectiveStatus(now)
	}

	filtered := paging.Apply(resources, f,
		func(r *models.Resource) string { return r.Status },
		func(r *models.Resource) string { return r.Number })
	return paging.Paginate(filtered, page, pageSize)
}

func (s *LedgerService) today() time.Time {
	year, month, day := s.now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
