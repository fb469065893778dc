package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	"github.com/goldsouq/debt_collection_app/internal/models"
	"github.com/goldsouq/debt_collection_app/internal/utils/mapping"
)

const collectionColumns = `collection_id, customer_id, sales_person_id, gold_amount, cash_amount, notes, collection_date, created_at, created_by, last_updated_at, last_updated_by`

type PgxCollectionRepository struct {
	BaseRepository
}

func newPgxCollectionRepository(pool *pgxpool.Pool) portsrepo.CollectionRepositoryFacade {
	return &PgxCollectionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCollectionRepository implements portsrepo.CollectionRepositoryFacade
var _ portsrepo.CollectionRepositoryFacade = (*PgxCollectionRepository)(nil)

func scanCollection(row pgx.Row) (*models.Collection, error) {
	var m models.Collection
	err := row.Scan(
		&m.CollectionID,
		&m.CustomerID,
		&m.SalesPersonID,
		&m.GoldAmount,
		&m.CashAmount,
		&m.Notes,
		&m.CollectionDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCollection executes the settlement as a single transaction: the
// customer row is locked, the amounts are re-validated against the locked
// balances, the balances are decremented and the collection row is inserted.
// Concurrent settlements against the same customer serialize on the row lock,
// so the balances can never go negative.
func (r *PgxCollectionRepository) SaveCollection(ctx context.Context, collection domain.Collection) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var goldDebt, cashDebt decimal.Decimal
	lockQuery := `SELECT gold_debt, cash_debt FROM customers WHERE customer_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, collection.CustomerID).Scan(&goldDebt, &cashDebt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("customer %s: %w", collection.CustomerID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to lock customer row: %w", err)
	}

	if collection.GoldAmount.GreaterThan(goldDebt) {
		return fmt.Errorf("gold amount %s exceeds outstanding gold debt %s: %w",
			collection.GoldAmount, goldDebt, apperrors.ErrValidation)
	}
	if collection.CashAmount.GreaterThan(cashDebt) {
		return fmt.Errorf("cash amount %s exceeds outstanding cash debt %s: %w",
			collection.CashAmount, cashDebt, apperrors.ErrValidation)
	}

	updateQuery := `
		UPDATE customers
		SET gold_debt = gold_debt - $2, cash_debt = cash_debt - $3, last_updated_at = $4, last_updated_by = $5
		WHERE customer_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery,
		collection.CustomerID,
		collection.GoldAmount,
		collection.CashAmount,
		collection.LastUpdatedAt,
		collection.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to decrement customer balances: %w", err)
	}

	m := mapping.ToModelCollection(collection)
	insertQuery := `
		INSERT INTO collections (collection_id, customer_id, sales_person_id, gold_amount, cash_amount, notes, collection_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	if _, err := tx.Exec(ctx, insertQuery,
		m.CollectionID,
		m.CustomerID,
		m.SalesPersonID,
		m.GoldAmount,
		m.CashAmount,
		m.Notes,
		m.CollectionDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	return r.Commit(ctx, tx)
}

// DeleteCollection reverses a settlement: the collection amounts are added
// back onto the customer's balances and the collection row is removed, in one
// transaction.
func (r *PgxCollectionRepository) DeleteCollection(ctx context.Context, collectionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var customerID string
	var goldAmount, cashAmount decimal.Decimal
	findQuery := `SELECT customer_id, gold_amount, cash_amount FROM collections WHERE collection_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, findQuery, collectionID).Scan(&customerID, &goldAmount, &cashAmount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("collection %s: %w", collectionID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to load collection: %w", err)
	}

	restoreQuery := `
		UPDATE customers
		SET gold_debt = gold_debt + $2, cash_debt = cash_debt + $3
		WHERE customer_id = $1;
	`
	tag, err := tx.Exec(ctx, restoreQuery, customerID, goldAmount, cashAmount)
	if err != nil {
		return fmt.Errorf("failed to restore customer balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM collections WHERE collection_id = $1;`, collectionID); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxCollectionRepository) FindCollectionByID(ctx context.Context, collectionID string) (*domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE collection_id = $1;`
	m, err := scanCollection(r.Pool.QueryRow(ctx, query, collectionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find collection by ID %s: %w", collectionID, err)
	}
	collection := mapping.ToDomainCollection(*m)
	return &collection, nil
}

func (r *PgxCollectionRepository) FindCollectionsByCustomer(ctx context.Context, customerID string) ([]domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE customer_id = $1 ORDER BY collection_date DESC;`
	return r.queryCollections(ctx, query, customerID)
}

func (r *PgxCollectionRepository) FindCollectionsBySalesperson(ctx context.Context, salesPersonID string) ([]domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE sales_person_id = $1 ORDER BY collection_date DESC;`
	return r.queryCollections(ctx, query, salesPersonID)
}

func (r *PgxCollectionRepository) FindAllCollections(ctx context.Context) ([]domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections ORDER BY collection_date DESC;`
	return r.queryCollections(ctx, query)
}

func (r *PgxCollectionRepository) queryCollections(ctx context.Context, query string, args ...any) ([]domain.Collection, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	var ms []models.Collection
	for rows.Next() {
		m, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collection rows: %w", err)
	}
	return mapping.ToDomainCollectionSlice(ms), nil
}
