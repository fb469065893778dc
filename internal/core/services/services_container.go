package services

import (
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.UserSvc = NewUserService(repos.UserRepo)
	container.TokenSvc = NewTokenService(cfg, repos.UserRepo)
	container.CustomerSvc = NewCustomerService(repos.CustomerRepo, repos.UserRepo)
	container.CollectionSvc = NewCollectionService(repos.CollectionRepo, repos.CustomerRepo, repos.UserRepo, repos.NotificationRepo)
	container.OverdueSvc = NewOverdueService(repos.OverdueRepo, repos.CustomerRepo)
	container.NotificationSvc = NewNotificationService(repos.NotificationRepo, repos.CustomerRepo, repos.UserRepo)
	container.SaleSvc = NewSaleService(repos.SaleRepo)
	container.ReportingSvc = NewReportingService(repos.CustomerRepo, repos.CollectionRepo)

	return container
}
