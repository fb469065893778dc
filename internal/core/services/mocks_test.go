package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portsrepo "github.com/goldsouq/debt_collection_app/internal/core/ports/repositories"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) FindUsersByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.UserRole, name string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, role, name, updatedBy, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindCustomers(ctx context.Context, filter portsrepo.CustomerListFilter) ([]domain.Customer, error) {
	args := m.Called(ctx, filter)
	var customers []domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]domain.Customer)
	}
	return customers, args.Error(1)
}

func (m *MockCustomerRepository) FindRegions(ctx context.Context, salesPersonID string) ([]string, error) {
	args := m.Called(ctx, salesPersonID)
	var regions []string
	if args.Get(0) != nil {
		regions = args.Get(0).([]string)
	}
	return regions, args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomerCascade(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteAllCustomers(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

// --- Mock CollectionRepository ---

type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) FindCollectionByID(ctx context.Context, collectionID string) (*domain.Collection, error) {
	args := m.Called(ctx, collectionID)
	var collection *domain.Collection
	if args.Get(0) != nil {
		collection = args.Get(0).(*domain.Collection)
	}
	return collection, args.Error(1)
}

func (m *MockCollectionRepository) FindCollectionsByCustomer(ctx context.Context, customerID string) ([]domain.Collection, error) {
	args := m.Called(ctx, customerID)
	var collections []domain.Collection
	if args.Get(0) != nil {
		collections = args.Get(0).([]domain.Collection)
	}
	return collections, args.Error(1)
}

func (m *MockCollectionRepository) FindCollectionsBySalesperson(ctx context.Context, salesPersonID string) ([]domain.Collection, error) {
	args := m.Called(ctx, salesPersonID)
	var collections []domain.Collection
	if args.Get(0) != nil {
		collections = args.Get(0).([]domain.Collection)
	}
	return collections, args.Error(1)
}

func (m *MockCollectionRepository) FindAllCollections(ctx context.Context) ([]domain.Collection, error) {
	args := m.Called(ctx)
	var collections []domain.Collection
	if args.Get(0) != nil {
		collections = args.Get(0).([]domain.Collection)
	}
	return collections, args.Error(1)
}

func (m *MockCollectionRepository) SaveCollection(ctx context.Context, collection domain.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *MockCollectionRepository) DeleteCollection(ctx context.Context, collectionID string) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

var _ portsrepo.CollectionRepositoryFacade = (*MockCollectionRepository)(nil)

// --- Mock OverdueRepository ---

type MockOverdueRepository struct {
	mock.Mock
}

func (m *MockOverdueRepository) FindStatusByCustomer(ctx context.Context, customerID string) (*domain.OverdueStatus, error) {
	args := m.Called(ctx, customerID)
	var status *domain.OverdueStatus
	if args.Get(0) != nil {
		status = args.Get(0).(*domain.OverdueStatus)
	}
	return status, args.Error(1)
}

func (m *MockOverdueRepository) FindAllStatuses(ctx context.Context) ([]domain.OverdueStatus, error) {
	args := m.Called(ctx)
	var statuses []domain.OverdueStatus
	if args.Get(0) != nil {
		statuses = args.Get(0).([]domain.OverdueStatus)
	}
	return statuses, args.Error(1)
}

func (m *MockOverdueRepository) UpsertStatus(ctx context.Context, status domain.OverdueStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockOverdueRepository) NormalizeLegacy(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

var _ portsrepo.OverdueRepositoryFacade = (*MockOverdueRepository)(nil)

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	var notification *domain.Notification
	if args.Get(0) != nil {
		notification = args.Get(0).(*domain.Notification)
	}
	return notification, args.Error(1)
}

func (m *MockNotificationRepository) FindNotificationsByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

var _ portsrepo.NotificationRepositoryFacade = (*MockNotificationRepository)(nil)

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindAllSales(ctx context.Context) ([]domain.SaleRecord, error) {
	args := m.Called(ctx)
	var sales []domain.SaleRecord
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.SaleRecord)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) SaveSales(ctx context.Context, sales []domain.SaleRecord) error {
	args := m.Called(ctx, sales)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteAllSales(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

// --- Shared fixtures ---

func adminCaller() domain.AuthContext {
	return domain.AuthContext{UserID: "admin-1", Role: domain.RoleAdmin}
}

func salespersonCaller() domain.AuthContext {
	return domain.AuthContext{UserID: "sp-1", Role: domain.RoleSalesperson}
}

func rolePtr(r domain.UserRole) *domain.UserRole { return &r }
