package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		CollectionRepo:   newPgxCollectionRepository(dbPool),
		OverdueRepo:      newPgxOverdueRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		SaleRepo:         newPgxSaleRepository(dbPool),
	}
}
