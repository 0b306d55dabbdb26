package usecases

import (
	"context"

	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/domain/entitlement"
	"accesshub/internal/domain/user"
	"accesshub/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc          func(ctx context.Context, r *accessrequest.AccessRequest) error
	UpdateFunc        func(ctx context.Context, r *accessrequest.AccessRequest) error
	GetByIDFunc       func(ctx context.Context, id uint) (*accessrequest.AccessRequest, error)
	ExistsPendingFunc func(ctx context.Context, userID, catalogItemID uint) (bool, error)
	ListByStatusFunc  func(ctx context.Context, status accessrequest.Status) ([]*accessrequest.AccessRequest, error)
	ListByUserFunc    func(ctx context.Context, userID uint) ([]*accessrequest.AccessRequest, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, r *accessrequest.AccessRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *accessrequest.AccessRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) ExistsPending(ctx context.Context, userID, catalogItemID uint) (bool, error) {
	if m.ExistsPendingFunc != nil {
		return m.ExistsPendingFunc(ctx, userID, catalogItemID)
	}
	return false, nil
}

func (m *mockRequestRepository) ListByStatus(ctx context.Context, status accessrequest.Status) ([]*accessrequest.AccessRequest, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockRequestRepository) ListByUser(ctx context.Context, userID uint) ([]*accessrequest.AccessRequest, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

type mockCatalogRepository struct {
	CreateFunc       func(ctx context.Context, item *catalog.Item) error
	GetByIDFunc      func(ctx context.Context, id uint) (*catalog.Item, error)
	ListFunc         func(ctx context.Context) ([]*catalog.Item, error)
	ListActiveFunc   func(ctx context.Context) ([]*catalog.Item, error)
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
}

func (m *mockCatalogRepository) Create(ctx context.Context, item *catalog.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *mockCatalogRepository) GetByID(ctx context.Context, id uint) (*catalog.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCatalogRepository) List(ctx context.Context) ([]*catalog.Item, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) ListActive(ctx context.Context) ([]*catalog.Item, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

type mockEntitlementRepository struct {
	CreateFunc            func(ctx context.Context, e *entitlement.Entitlement) error
	ExistsFunc            func(ctx context.Context, userID, catalogItemID uint) (bool, error)
	GetByUserFunc         func(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error)
	ListItemIDsByUserFunc func(ctx context.Context, userID uint) ([]uint, error)
}

func (m *mockEntitlementRepository) Create(ctx context.Context, e *entitlement.Entitlement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockEntitlementRepository) Exists(ctx context.Context, userID, catalogItemID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, catalogItemID)
	}
	return false, nil
}

func (m *mockEntitlementRepository) GetByUser(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockEntitlementRepository) ListItemIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	if m.ListItemIDsByUserFunc != nil {
		return m.ListItemIDsByUserFunc(ctx, userID)
	}
	return nil, nil
}

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	UpdateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	ListFunc             func(ctx context.Context, offset, limit int) ([]*user.User, int64, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockReviewNotifier struct {
	SendReviewNotificationFunc func(ctx context.Context, n ReviewNotification) error
}

func (m *mockReviewNotifier) SendReviewNotification(ctx context.Context, n ReviewNotification) error {
	if m.SendReviewNotificationFunc != nil {
		return m.SendReviewNotificationFunc(ctx, n)
	}
	return nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
