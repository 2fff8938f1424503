package usecases

import (
	"context"
	"sync"

	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type mockComplaintRepository struct {
	CreateFunc  func(ctx context.Context, f *record.Fields) (int64, error)
	UpdateFunc  func(ctx context.Context, id int64, f *record.Fields) error
	GetByIDFunc func(ctx context.Context, id int64) (*complaint.Complaint, error)
	ExistsFunc  func(ctx context.Context, id int64) (bool, error)
	ListFunc    func(ctx context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockComplaintRepository) Create(ctx context.Context, f *record.Fields) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	return 1, nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, id int64, f *record.Fields) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, f)
	}
	return nil
}

func (m *mockComplaintRepository) GetByID(ctx context.Context, id int64) (*complaint.Complaint, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("complaint not found")
}

func (m *mockComplaintRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockComplaintRepository) List(ctx context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockComplaintRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockProductRepository struct {
	DeleteByParentFunc func(ctx context.Context, parentID int64) error
}

func (m *mockProductRepository) Spec() record.ChildSpec {
	return complaint.ProductSpec
}

func (m *mockProductRepository) Create(ctx context.Context, parentID int64, f *record.Fields) (int64, error) {
	return 0, nil
}

func (m *mockProductRepository) CreateBatch(ctx context.Context, parentID int64, rows []*record.Fields) error {
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*record.Child, error) {
	return nil, nil
}

func (m *mockProductRepository) Update(ctx context.Context, id int64, f *record.Fields) error {
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	return nil
}

func (m *mockProductRepository) DeleteByParent(ctx context.Context, parentID int64) error {
	if m.DeleteByParentFunc != nil {
		return m.DeleteByParentFunc(ctx, parentID)
	}
	return nil
}

func (m *mockProductRepository) ListByParent(ctx context.Context, parentID int64) ([]*record.Child, error) {
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

// mockTxManager runs fn directly with a ctx marked by inTxKey; committed
// reports whether fn succeeded.
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

type mockRecorder struct {
	writes []string
}

func (m *mockRecorder) RecordWrite(kind, op string) {
	m.writes = append(m.writes, kind+"/"+op)
}

func newMockLogger() logger.Interface {
	return logger.NewLogger()
}

var clerk = record.Actor{EmpID: 41, Role: "clerk"}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(inTxKey{}).(bool)
	return v
}
