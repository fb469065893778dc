package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goldsouq/debt_collection_app/internal/apperrors"
	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	"github.com/goldsouq/debt_collection_app/internal/models"
	"github.com/goldsouq/debt_collection_app/internal/utils/mapping"
)

const customerColumns = `customer_id, name, phone, region, gold_debt, cash_debt, credit_limit, sales_person_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.Phone,
		&m.Region,
		&m.GoldDebt,
		&m.CashDebt,
		&m.CreditLimit,
		&m.SalesPersonID,
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

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, name, phone, region, gold_debt, cash_debt, credit_limit, sales_person_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Phone,
		m.Region,
		m.GoldDebt,
		m.CashDebt,
		m.CreditLimit,
		m.SalesPersonID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on phone
			return fmt.Errorf("phone %s already registered: %w", customer.Phone, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	customer := mapping.ToDomainCustomer(*m)
	return &customer, nil
}

func (r *PgxCustomerRepository) FindCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by phone: %w", err)
	}
	customer := mapping.ToDomainCustomer(*m)
	return &customer, nil
}

// escapeLikePattern neutralizes LIKE metacharacters in user-supplied search
// terms so they match literally.
func escapeLikePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

func (r *PgxCustomerRepository) FindCustomers(ctx context.Context, filter portsrepo.CustomerListFilter) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE 1=1`
	args := []any{}

	if filter.SalesPersonID != "" {
		args = append(args, filter.SalesPersonID)
		query += fmt.Sprintf(" AND sales_person_id = $%d", len(args))
	}
	if filter.Region != "" {
		args = append(args, filter.Region)
		query += fmt.Sprintf(" AND region = $%d", len(args))
	}
	if filter.SearchTerm != "" {
		args = append(args, "%"+escapeLikePattern(filter.SearchTerm)+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR phone ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY name ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var ms []models.Customer
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer rows: %w", err)
	}
	return mapping.ToDomainCustomerSlice(ms), nil
}

func (r *PgxCustomerRepository) FindRegions(ctx context.Context, salesPersonID string) ([]string, error) {
	query := `SELECT DISTINCT region FROM customers`
	args := []any{}
	if salesPersonID != "" {
		query += ` WHERE sales_person_id = $1`
		args = append(args, salesPersonID)
	}
	query += ` ORDER BY region ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	defer rows.Close()

	var regions []string
	for rows.Next() {
		var region string
		if err := rows.Scan(&region); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate regions: %w", err)
	}
	return regions, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $2, phone = $3, region = $4, gold_debt = $5, cash_debt = $6, credit_limit = $7, sales_person_id = $8, last_updated_at = $9, last_updated_by = $10
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Phone,
		m.Region,
		m.GoldDebt,
		m.CashDebt,
		m.CreditLimit,
		m.SalesPersonID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("phone %s already registered: %w", customer.Phone, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomerCascade(ctx context.Context, customerID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM overdue_status WHERE customer_id = $1;`, customerID); err != nil {
		return fmt.Errorf("failed to delete overdue status: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM collections WHERE customer_id = $1;`, customerID); err != nil {
		return fmt.Errorf("failed to delete collections: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxCustomerRepository) DeleteAllCustomers(ctx context.Context) (int64, int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM overdue_status;`); err != nil {
		return 0, 0, fmt.Errorf("failed to delete overdue statuses: %w", err)
	}

	collectionsTag, err := tx.Exec(ctx, `DELETE FROM collections;`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete collections: %w", err)
	}

	customersTag, err := tx.Exec(ctx, `DELETE FROM customers;`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete customers: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, 0, err
	}
	return customersTag.RowsAffected(), collectionsTag.RowsAffected(), nil
}
