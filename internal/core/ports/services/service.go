// Package services defines the inbound ports of the application core. Handlers
// depend on these interfaces; the concrete implementations live in
// internal/core/services.
package services

// ServiceContainer aggregates every application service for injection into the
// HTTP layer.
type ServiceContainer struct {
	UserSvc         UserService
	TokenSvc        TokenService
	CustomerSvc     CustomerService
	CollectionSvc   CollectionService
	OverdueSvc      OverdueService
	NotificationSvc NotificationService
	SaleSvc         SaleService
	ReportingSvc    ReportingService
}
