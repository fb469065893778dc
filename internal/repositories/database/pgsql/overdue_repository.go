package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	"github.com/goldsouq/debt_collection_app/internal/models"
	"github.com/goldsouq/debt_collection_app/internal/utils/mapping"
)

const overdueColumns = `status_id, customer_id, gold_overdue_25, cash_overdue_25, gold_overdue_40, cash_overdue_40, gold_overdue_60, cash_overdue_60, gold_overdue_90, cash_overdue_90, gold_overdue_90_plus, cash_overdue_90_plus, last_updated, imported_by`

// overdueBucketColumns lists only the amount columns, for the legacy
// normalization statement.
var overdueBucketColumns = []string{
	"gold_overdue_25", "cash_overdue_25",
	"gold_overdue_40", "cash_overdue_40",
	"gold_overdue_60", "cash_overdue_60",
	"gold_overdue_90", "cash_overdue_90",
	"gold_overdue_90_plus", "cash_overdue_90_plus",
}

type PgxOverdueRepository struct {
	BaseRepository
}

func newPgxOverdueRepository(pool *pgxpool.Pool) portsrepo.OverdueRepositoryFacade {
	return &PgxOverdueRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxOverdueRepository implements portsrepo.OverdueRepositoryFacade
var _ portsrepo.OverdueRepositoryFacade = (*PgxOverdueRepository)(nil)

func scanOverdueStatus(row pgx.Row) (*models.OverdueStatus, error) {
	var m models.OverdueStatus
	err := row.Scan(
		&m.StatusID,
		&m.CustomerID,
		&m.GoldOverdue25,
		&m.CashOverdue25,
		&m.GoldOverdue40,
		&m.CashOverdue40,
		&m.GoldOverdue60,
		&m.CashOverdue60,
		&m.GoldOverdue90,
		&m.CashOverdue90,
		&m.GoldOverdue90Plus,
		&m.CashOverdue90Plus,
		&m.LastUpdated,
		&m.ImportedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpsertStatus replaces the customer's whole snapshot. The conflict target is
// the unique customer_id, so each customer holds at most one live row.
func (r *PgxOverdueRepository) UpsertStatus(ctx context.Context, status domain.OverdueStatus) error {
	m := mapping.ToModelOverdueStatus(status)
	query := `
		INSERT INTO overdue_status (status_id, customer_id, gold_overdue_25, cash_overdue_25, gold_overdue_40, cash_overdue_40, gold_overdue_60, cash_overdue_60, gold_overdue_90, cash_overdue_90, gold_overdue_90_plus, cash_overdue_90_plus, last_updated, imported_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (customer_id) DO UPDATE SET
			gold_overdue_25 = EXCLUDED.gold_overdue_25,
			cash_overdue_25 = EXCLUDED.cash_overdue_25,
			gold_overdue_40 = EXCLUDED.gold_overdue_40,
			cash_overdue_40 = EXCLUDED.cash_overdue_40,
			gold_overdue_60 = EXCLUDED.gold_overdue_60,
			cash_overdue_60 = EXCLUDED.cash_overdue_60,
			gold_overdue_90 = EXCLUDED.gold_overdue_90,
			cash_overdue_90 = EXCLUDED.cash_overdue_90,
			gold_overdue_90_plus = EXCLUDED.gold_overdue_90_plus,
			cash_overdue_90_plus = EXCLUDED.cash_overdue_90_plus,
			last_updated = EXCLUDED.last_updated,
			imported_by = EXCLUDED.imported_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StatusID,
		m.CustomerID,
		m.GoldOverdue25,
		m.CashOverdue25,
		m.GoldOverdue40,
		m.CashOverdue40,
		m.GoldOverdue60,
		m.CashOverdue60,
		m.GoldOverdue90,
		m.CashOverdue90,
		m.GoldOverdue90Plus,
		m.CashOverdue90Plus,
		m.LastUpdated,
		m.ImportedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert overdue status: %w", err)
	}
	return nil
}

func (r *PgxOverdueRepository) FindStatusByCustomer(ctx context.Context, customerID string) (*domain.OverdueStatus, error) {
	query := `SELECT ` + overdueColumns + ` FROM overdue_status WHERE customer_id = $1;`
	m, err := scanOverdueStatus(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find overdue status for customer %s: %w", customerID, err)
	}
	status := mapping.ToDomainOverdueStatus(*m)
	return &status, nil
}

func (r *PgxOverdueRepository) FindAllStatuses(ctx context.Context) ([]domain.OverdueStatus, error) {
	query := `SELECT ` + overdueColumns + ` FROM overdue_status ORDER BY last_updated DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue statuses: %w", err)
	}
	defer rows.Close()

	var statuses []domain.OverdueStatus
	for rows.Next() {
		m, err := scanOverdueStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overdue status row: %w", err)
		}
		statuses = append(statuses, mapping.ToDomainOverdueStatus(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overdue status rows: %w", err)
	}
	return statuses, nil
}

// NormalizeLegacy coerces NULL bucket values, left behind by the legacy
// boolean-flag schema, to zero. Running it twice is a no-op.
func (r *PgxOverdueRepository) NormalizeLegacy(ctx context.Context) (int64, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM overdue_status;`).Scan(&total); err != nil {
		return 0, 0, fmt.Errorf("failed to count overdue statuses: %w", err)
	}

	query := `UPDATE overdue_status SET `
	where := ` WHERE `
	for i, col := range overdueBucketColumns {
		if i > 0 {
			query += ", "
			where += " OR "
		}
		query += col + " = COALESCE(" + col + ", 0)"
		where += col + " IS NULL"
	}
	tag, err := r.Pool.Exec(ctx, query+where+";")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to normalize legacy overdue rows: %w", err)
	}

	return total, tag.RowsAffected(), nil
}
