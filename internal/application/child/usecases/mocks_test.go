package usecases

import (
	"context"

	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

type mockChildRepository struct {
	spec record.ChildSpec

	CreateFunc       func(ctx context.Context, parentID int64, f *record.Fields) (int64, error)
	CreateBatchFunc  func(ctx context.Context, parentID int64, rows []*record.Fields) error
	UpdateFunc       func(ctx context.Context, id int64, f *record.Fields) error
	DeleteFunc       func(ctx context.Context, id int64) error
	ListByParentFunc func(ctx context.Context, parentID int64) ([]*record.Child, error)
}

func newMockContacts() *mockChildRepository {
	return &mockChildRepository{spec: poisonreport.ContactSpec}
}

func (m *mockChildRepository) Spec() record.ChildSpec {
	return m.spec
}

func (m *mockChildRepository) Create(ctx context.Context, parentID int64, f *record.Fields) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, parentID, f)
	}
	return 1, nil
}

func (m *mockChildRepository) CreateBatch(ctx context.Context, parentID int64, rows []*record.Fields) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, parentID, rows)
	}
	return nil
}

func (m *mockChildRepository) GetByID(ctx context.Context, id int64) (*record.Child, error) {
	return nil, nil
}

func (m *mockChildRepository) Update(ctx context.Context, id int64, f *record.Fields) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, f)
	}
	return nil
}

func (m *mockChildRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockChildRepository) DeleteByParent(ctx context.Context, parentID int64) error {
	return nil
}

func (m *mockChildRepository) ListByParent(ctx context.Context, parentID int64) ([]*record.Child, error) {
	if m.ListByParentFunc != nil {
		return m.ListByParentFunc(ctx, parentID)
	}
	return nil, nil
}

type mockParentChecker struct {
	existing map[int64]bool
	err      error
}

func (m *mockParentChecker) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existing[id], m.err
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

type mockRecorder struct {
	writes []string
}

func (m *mockRecorder) RecordWrite(kind, op string) {
	m.writes = append(m.writes, kind+"/"+op)
}

func newMockLogger() logger.Interface {
	return logger.NewLogger()
}

var inspector = record.Actor{EmpID: 12, Role: "inspector"}

func reportExists(ids ...int64) *mockParentChecker {
	m := &mockParentChecker{existing: map[int64]bool{}}
	for _, id := range ids {
		m.existing[id] = true
	}
	return m
}
