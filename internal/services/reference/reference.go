// Package services содержит чтение справочных данных (типы абонементов,
// персонал) через кеш с ограниченным временем жизни, чтобы не гонять
// повторные запросы к хранилищу при каждом открытии формы.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avdeevmax/gym-ledger/internal/cache"
	"github.com/avdeevmax/gym-ledger/internal/models"
)

// Ключи кеша справочных данных.
const (
	membershipTypesKey = "membership_types"
	staffKey           = "staff"
)

// ReferenceRepository определяет методы хранилища для справочников.
type ReferenceRepository interface {
	ListMembershipTypes(ctx context.Context) ([]*models.MembershipType, error)
	ListStaff(ctx context.Context) ([]*models.StaffMember, error)
}

// ReferenceService отдаёт справочные данные, кешируя их на время жизни TTL.
// Кеши создаются при конструировании сервиса и живут вместе с ним.
type ReferenceService struct {
	repo  ReferenceRepository
	log   *slog.Logger
	types *cache.Cache[[]*models.MembershipType]
	staff *cache.Cache[[]*models.StaffMember]
}

// NewReferenceService создает новый экземпляр ReferenceService
// с заданным временем жизни кеша.
func NewReferenceService(repo ReferenceRepository, log *slog.Logger, ttl time.Duration) *ReferenceService {
	return &ReferenceService{
		repo:  repo,
		log:   log,
		types: cache.New[[]*models.MembershipType](ttl),
		staff: cache.New[[]*models.StaffMember](ttl),
	}
}

// MembershipTypes возвращает типы абонементов из кеша или хранилища.
func (s *ReferenceService) MembershipTypes(ctx context.Context) ([]*models.MembershipType, error) {
	const op = "services.reference.MembershipTypes"

	if cached, ok := s.types.Get(membershipTypesKey); ok {
		return cached, nil
	}

	types, err := s.repo.ListMembershipTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.types.Set(membershipTypesKey, types)
	s.log.Info("membership types cached", slog.Int("count", len(types)))
	return types, nil
}

// Staff возвращает список сотрудников из кеша или хранилища.
func (s *ReferenceService) Staff(ctx context.Context) ([]*models.StaffMember, error) {
	const op = "services.reference.Staff"

	if cached, ok := s.staff.Get(staffKey); ok {
		return cached, nil
	}

	staff, err := s.repo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.staff.Set(staffKey, staff)
	return staff, nil
}

// Reset сбрасывает оба кеша, следующее чтение пойдёт в хранилище.
func (s *ReferenceService) Reset() {
	s.types.Clear()
	s.staff.Clear()
}
