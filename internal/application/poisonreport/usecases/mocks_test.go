package usecases

import (
	"context"
	"sync"

	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type mockReportRepository struct {
	CreateFunc  func(ctx context.Context, f *record.Fields) (int64, error)
	UpdateFunc  func(ctx context.Context, id int64, f *record.Fields) error
	GetByIDFunc func(ctx context.Context, id int64) (*poisonreport.Report, error)
	SearchFunc  func(ctx context.Context, filter poisonreport.SearchFilter) ([]*poisonreport.Report, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockReportRepository) Create(ctx context.Context, f *record.Fields) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	return 1, nil
}

func (m *mockReportRepository) Update(ctx context.Context, id int64, f *record.Fields) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, f)
	}
	return nil
}

func (m *mockReportRepository) GetByID(ctx context.Context, id int64) (*poisonreport.Report, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("poison report not found")
}

func (m *mockReportRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return true, nil
}

func (m *mockReportRepository) Search(ctx context.Context, filter poisonreport.SearchFilter) ([]*poisonreport.Report, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockReportRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockChildRepository struct {
	spec               record.ChildSpec
	DeleteByParentFunc func(ctx context.Context, parentID int64) error
}

func (m *mockChildRepository) Spec() record.ChildSpec { return m.spec }

func (m *mockChildRepository) Create(ctx context.Context, parentID int64, f *record.Fields) (int64, error) {
	return 0, nil
}

func (m *mockChildRepository) CreateBatch(ctx context.Context, parentID int64, rows []*record.Fields) error {
	return nil
}

func (m *mockChildRepository) GetByID(ctx context.Context, id int64) (*record.Child, error) {
	return nil, nil
}

func (m *mockChildRepository) Update(ctx context.Context, id int64, f *record.Fields) error {
	return nil
}

func (m *mockChildRepository) Delete(ctx context.Context, id int64) error { return nil }

func (m *mockChildRepository) DeleteByParent(ctx context.Context, parentID int64) error {
	if m.DeleteByParentFunc != nil {
		return m.DeleteByParentFunc(ctx, parentID)
	}
	return nil
}

func (m *mockChildRepository) ListByParent(ctx context.Context, parentID int64) ([]*record.Child, error) {
	return nil, nil
}

type mockAttachmentManager struct {
	PromoteAllFunc func(ctx context.Context, ownerID int64, names []string) ([]string, error)
	LockFilesFunc  func(ctx context.Context, ownerID int64) ([]string, error)

	mu     sync.Mutex
	purged []string
}

func (m *mockAttachmentManager) PromoteAll(ctx context.Context, ownerID int64, names []string) ([]string, error) {
	if m.PromoteAllFunc != nil {
		return m.PromoteAllFunc(ctx, ownerID, names)
	}
	return names, nil
}

func (m *mockAttachmentManager) LockFiles(ctx context.Context, ownerID int64) ([]string, error) {
	if m.LockFilesFunc != nil {
		return m.LockFilesFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockAttachmentManager) PurgeAll(ctx context.Context, ownerID int64, names []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purged = append(m.purged, names...)
}

type mockAuthorizer struct {
	AuthorizeFunc func(ctx context.Context, actor record.Actor, kind record.Kind, action record.Action) error
}

func (m *mockAuthorizer) Authorize(ctx context.Context, actor record.Actor, kind record.Kind, action record.Action) error {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, actor, kind, action)
	}
	return record.RequireActor(actor)
}

type mockTxManager struct {
	calls     int
	committed bool
}

type inTxKey struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	err := fn(context.WithValue(ctx, inTxKey{}, true))
	m.committed = err == nil
	return err
}

func newMockLogger() logger.Interface {
	return logger.NewLogger()
}

var inspector = record.Actor{EmpID: 12, Role: "inspector"}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(inTxKey{}).(bool)
	return v
}
