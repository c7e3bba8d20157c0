package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avdeevmax/gym-ledger/internal/models"
)

// CreateEntry атомарно вставляет запись журнала и применяет новое состояние
// ресурса. Обе операции выполняются в одной транзакции: либо видно всё,
// либо ничего.
func (s *Storage) CreateEntry(ctx context.Context, entry models.LedgerEntry, resource models.Resource) error {
	const op = "storage.CreateEntry"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO ledger_entries (id, member_id, resource_id, action, amount, method,
	              period_start, period_end, period_months, created_at, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(ctx, query,
		entry.ID, entry.MemberID, entry.ResourceID, entry.Action, entry.Amount, entry.Method,
		nullDate(entry.Period.StartDate), nullDate(entry.Period.EndDate), nullMonths(entry.Period.Months),
		entry.CreatedAt, entry.Notes)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query = `UPDATE resources
	         SET status = $2, holder_id = $3, period_start = $4, period_end = $5, period_months = $6
	         WHERE id = $1`
	result, err := tx.ExecContext(ctx, query,
		resource.ID, resource.Status, nullString(resource.HolderID),
		periodStart(resource.CurrentPeriod), periodEnd(resource.CurrentPeriod), periodMonths(resource.CurrentPeriod))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: resource %s does not exist", op, resource.ID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListEntriesByMember возвращает записи клиента, свежие первыми;
// записи с одинаковым временем создания идут в порядке вставки.
func (s *Storage) ListEntriesByMember(ctx context.Context, memberID string) ([]*models.LedgerEntry, error) {
	const op = "storage.ListEntriesByMember"

	query := `SELECT id, member_id, resource_id, action, amount, method,
	                 period_start, period_end, period_months, created_at, notes
	          FROM ledger_entries
	          WHERE member_id = $1
	          ORDER BY created_at DESC, seq ASC`
	rows, err := s.DB.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []*models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		var start, end sql.NullTime
		var months sql.NullInt64
		err := rows.Scan(&e.ID, &e.MemberID, &e.ResourceID, &e.Action, &e.Amount, &e.Method,
			&start, &end, &months, &e.CreatedAt, &e.Notes)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if start.Valid && end.Valid && months.Valid {
			e.Period = models.BillingPeriod{
				StartDate: start.Time,
				EndDate:   end.Time,
				Months:    int(months.Int64),
			}
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

// GetResource возвращает ресурс по ID или nil, если такого ресурса нет.
func (s *Storage) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	const op = "storage.GetResource"

	query := `SELECT id, kind, number, status, holder_id, period_start, period_end, period_months
	          FROM resources
	          WHERE id = $1`
	r, err := scanResource(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// ListResources возвращает все ресурсы в порядке вида и номера.
func (s *Storage) ListResources(ctx context.Context) ([]*models.Resource, error) {
	const op = "storage.ListResources"

	query := `SELECT id, kind, number, status, holder_id, period_start, period_end, period_months
	          FROM resources
	          ORDER BY kind, number`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		resources = append(resources, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resources, nil
}

// CreateResource вставляет новый ресурс в статусе "available".
func (s *Storage) CreateResource(ctx context.Context, resource models.Resource) error {
	const op = "storage.CreateResource"

	query := `INSERT INTO resources (id, kind, number, status)
	          VALUES ($1, $2, $3, $4)`
	_, err := s.DB.ExecContext(ctx, query, resource.ID, resource.Kind, resource.Number, models.StatusAvailable)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResource(row rowScanner) (*models.Resource, error) {
	var r models.Resource
	var holder sql.NullString
	var start, end sql.NullTime
	var months sql.NullInt64

	err := row.Scan(&r.ID, &r.Kind, &r.Number, &r.Status, &holder, &start, &end, &months)
	if err != nil {
		return nil, err
	}
	r.HolderID = holder.String
	if start.Valid && end.Valid && months.Valid {
		r.CurrentPeriod = &models.BillingPeriod{
			StartDate: start.Time,
			EndDate:   end.Time,
			Months:    int(months.Int64),
		}
	}
	return &r, nil
}

func nullDate(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullMonths(months int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(months), Valid: months > 0}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func periodStart(p *models.BillingPeriod) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return nullDate(p.StartDate)
}

func periodEnd(p *models.BillingPeriod) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return nullDate(p.EndDate)
}

func periodMonths(p *models.BillingPeriod) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return nullMonths(p.Months)
}
