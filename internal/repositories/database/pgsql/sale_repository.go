package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	"github.com/goldsouq/debt_collection_app/internal/models"
	"github.com/goldsouq/debt_collection_app/internal/utils/mapping"
)

const saleColumns = `sale_id, branch, salesperson, gold_18_star, gold_18_plain, gold_21_plain, gold_21_star, total_sales, sale_date, imported_by`

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// SaveSales inserts the whole import in one batch round trip.
func (r *PgxSaleRepository) SaveSales(ctx context.Context, sales []domain.SaleRecord) error {
	if len(sales) == 0 {
		return nil
	}

	query := `
		INSERT INTO sales (sale_id, branch, salesperson, gold_18_star, gold_18_plain, gold_21_plain, gold_21_star, total_sales, sale_date, imported_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	batch := &pgx.Batch{}
	for _, sale := range sales {
		m := mapping.ToModelSaleRecord(sale)
		batch.Queue(query,
			m.SaleID,
			m.Branch,
			m.Salesperson,
			m.Gold18Star,
			m.Gold18Plain,
			m.Gold21Plain,
			m.Gold21Star,
			m.TotalSales,
			m.SaleDate,
			m.ImportedBy,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range sales {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert sale record: %w", err)
		}
	}
	return nil
}

func (r *PgxSaleRepository) FindAllSales(ctx context.Context) ([]domain.SaleRecord, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var ms []models.SaleRecord
	for rows.Next() {
		var m models.SaleRecord
		if err := rows.Scan(
			&m.SaleID,
			&m.Branch,
			&m.Salesperson,
			&m.Gold18Star,
			&m.Gold18Plain,
			&m.Gold21Plain,
			&m.Gold21Star,
			&m.TotalSales,
			&m.SaleDate,
			&m.ImportedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sale rows: %w", err)
	}
	return mapping.ToDomainSaleRecordSlice(ms), nil
}

func (r *PgxSaleRepository) DeleteAllSales(ctx context.Context) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM sales;`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sales: %w", err)
	}
	return tag.RowsAffected(), nil
}
