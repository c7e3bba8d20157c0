package repository

import (
	"context"
	"fmt"

	"github.com/avdeevmax/gym-ledger/internal/models"
)

// ListMembershipTypes возвращает справочник типов абонементов.
func (s *Storage) ListMembershipTypes(ctx context.Context) ([]*models.MembershipType, error) {
	const op = "storage.ListMembershipTypes"

	query := `SELECT id, name, monthly_fee FROM membership_types ORDER BY monthly_fee`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var types []*models.MembershipType
	for rows.Next() {
		var t models.MembershipType
		if err := rows.Scan(&t.ID, &t.Name, &t.MonthlyFee); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		types = append(types, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return types, nil
}

// ListStaff возвращает справочник сотрудников.
func (s *Storage) ListStaff(ctx context.Context) ([]*models.StaffMember, error) {
	const op = "storage.ListStaff"

	query := `SELECT id, full_name, role FROM staff ORDER BY full_name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var staff []*models.StaffMember
	for rows.Next() {
		var m models.StaffMember
		if err := rows.Scan(&m.ID, &m.FullName, &m.Role); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		staff = append(staff, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return staff, nil
}

// FindResourcesExpiringWithin возвращает занятые ресурсы, период которых
// заканчивается в ближайшие days дней, для рассылки уведомлений.
func (s *Storage) FindResourcesExpiringWithin(ctx context.Context, days int) ([]*models.ExpiryNotice, error) {
	const op = "storage.FindResourcesExpiringWithin"

	query := `SELECT holder_id, id, kind, number, period_end
	          FROM resources
	          WHERE status = 'occupied'
	            AND holder_id IS NOT NULL
	            AND period_end >= CURRENT_DATE
	            AND period_end < CURRENT_DATE + $1 * INTERVAL '1 day'
	          ORDER BY period_end`
	rows, err := s.DB.QueryContext(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var notices []*models.ExpiryNotice
	for rows.Next() {
		var n models.ExpiryNotice
		err := rows.Scan(&n.MemberID, &n.ResourceID, &n.Kind, &n.Number, &n.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		notices = append(notices, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return notices, nil
}
