package usecases

import (
	"context"
	stderrors "errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/constants"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

func TestCreatePoisonReportUseCase_Execute(t *testing.T) {
	var saved *record.Fields
	repo := &mockReportRepository{
		CreateFunc: func(ctx context.Context, f *record.Fields) (int64, error) {
			saved = f
			return 21, nil
		},
	}
	mgr := &mockAttachmentManager{
		PromoteAllFunc: func(ctx context.Context, ownerID int64, names []string) ([]string, error) {
			assert.Equal(t, int64(21), ownerID)
			return []string{"pr_21_1_a.pdf", "pr_21_1_b.pdf"}, nil
		},
	}
	uc := NewCreatePoisonReportUseCase(repo, mgr, &mockAuthorizer{}, nil, newMockLogger())

	result, err := uc.Execute(context.Background(), CreatePoisonReportCommand{
		Fields: map[string]any{
			"source_name":     "Al Noor Hospital",
			"total_consumers": "14",
			"attachments":     `["evil.pdf"]`,
		},
		PendingAttachments: []string{"temp_1_a.pdf", "temp_1_b.pdf"},
		Actor:              inspector,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), result.ID)
	assert.Len(t, result.Attachments, 2)
	assert.False(t, saved.Has(poisonreport.ColAttachments))
	v, _ := saved.Get("total_consumers")
	assert.Equal(t, int64(14), v)
}

func TestCreatePoisonReportUseCase_Execute_Errors(t *testing.T) {
	uc := NewCreatePoisonReportUseCase(&mockReportRepository{}, &mockAttachmentManager{}, &mockAuthorizer{}, nil, newMockLogger())
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreatePoisonReportCommand{Fields: map[string]any{"source_name": "x"}})
	assert.True(t, errors.IsUnauthorizedError(err))

	_, err = uc.Execute(ctx, CreatePoisonReportCommand{Fields: map[string]any{"report_datetime": "soon"}, Actor: inspector})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdatePoisonReportUseCase_Execute(t *testing.T) {
	var saved *record.Fields
	repo := &mockReportRepository{
		UpdateFunc: func(ctx context.Context, id int64, f *record.Fields) error {
			if id == 404 {
				return errors.NewNotFoundError("poison report not found")
			}
			saved = f
			return nil
		},
	}
	uc := NewUpdatePoisonReportUseCase(repo, &mockAttachmentManager{}, &mockAuthorizer{}, nil, newMockLogger())
	ctx := context.Background()

	result, err := uc.Execute(ctx, UpdatePoisonReportCommand{
		ID:     3,
		Fields: map[string]any{"final_diagnosis": "Salmonella", "closed_datetime": "2024-06-01"},
		Actor:  inspector,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.ID)
	want := slices.DeleteFunc(poisonreport.AllowList.Names(), func(name string) bool {
		return name != "final_diagnosis" && name != "closed_datetime"
	})
	want = append(want, record.ColUpdatedBy, record.ColUpdatedAt)
	assert.Equal(t, want, saved.Columns(), "edit set follows allow-list order, then the audit stamp")
	assert.Equal(t, []string{"closed_datetime", "final_diagnosis"}, want[:2])

	_, err = uc.Execute(ctx, UpdatePoisonReportCommand{ID: 404, Fields: map[string]any{"notes": "x"}, Actor: inspector})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(ctx, UpdatePoisonReportCommand{ID: 3, Fields: map[string]any{"id": 3}, Actor: inspector})
	assert.True(t, errors.IsValidationError(err))
}

func TestDeletePoisonReportUseCase_Execute(t *testing.T) {
	var steps []string
	contacts := &mockChildRepository{spec: poisonreport.ContactSpec, DeleteByParentFunc: func(ctx context.Context, id int64) error {
		steps = append(steps, "contacts")
		return nil
	}}
	meals := &mockChildRepository{spec: poisonreport.MealSpec, DeleteByParentFunc: func(ctx context.Context, id int64) error {
		steps = append(steps, "meals")
		return nil
	}}
	repo := &mockReportRepository{DeleteFunc: func(ctx context.Context, id int64) error {
		steps = append(steps, "report")
		return nil
	}}
	mgr := &mockAttachmentManager{LockFilesFunc: func(ctx context.Context, ownerID int64) ([]string, error) {
		assert.True(t, inTx(ctx), "the list is read under the delete transaction")
		steps = append(steps, "lock")
		return []string{"pr_3_1_a.pdf", "pr_3_1_b.pdf"}, nil
	}}
	tx := &mockTxManager{}
	uc := NewDeletePoisonReportUseCase(repo, contacts, meals, mgr, tx, &mockAuthorizer{}, nil, newMockLogger())

	require.NoError(t, uc.Execute(context.Background(), DeletePoisonReportCommand{ID: 3, Actor: inspector}))
	assert.Equal(t, []string{"lock", "contacts", "meals", "report"}, steps)
	assert.True(t, tx.committed)
	assert.Equal(t, []string{"pr_3_1_a.pdf", "pr_3_1_b.pdf"}, mgr.purged)
}

func TestDeletePoisonReportUseCase_Execute_RollbackKeepsFiles(t *testing.T) {
	meals := &mockChildRepository{spec: poisonreport.MealSpec, DeleteByParentFunc: func(ctx context.Context, id int64) error {
		return stderrors.New("lock timeout")
	}}
	mgr := &mockAttachmentManager{LockFilesFunc: func(ctx context.Context, ownerID int64) ([]string, error) {
		return []string{"pr_3_1_a.pdf"}, nil
	}}
	tx := &mockTxManager{}
	uc := NewDeletePoisonReportUseCase(&mockReportRepository{}, &mockChildRepository{spec: poisonreport.ContactSpec}, meals, mgr, tx, &mockAuthorizer{}, nil, newMockLogger())

	err := uc.Execute(context.Background(), DeletePoisonReportCommand{ID: 3, Actor: inspector})
	assert.True(t, errors.IsStorageError(err))
	assert.False(t, tx.committed)
	assert.Empty(t, mgr.purged)
}

func TestSearchPoisonReportsUseCase_Execute(t *testing.T) {
	var seen poisonreport.SearchFilter
	repo := &mockReportRepository{SearchFunc: func(ctx context.Context, filter poisonreport.SearchFilter) ([]*poisonreport.Report, error) {
		seen = filter
		return []*poisonreport.Report{{ID: 1, Fields: record.NewFields()}}, nil
	}}
	uc := NewSearchPoisonReportsUseCase(repo, newMockLogger())
	ctx := context.Background()

	items, err := uc.Execute(ctx, poisonreport.SearchFilter{Query: "Noor", Limit: 99999})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, constants.MaxListLimit, seen.Limit)

	raw, err := items[0].MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"attachments":[]`)

	from := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, poisonreport.SearchFilter{DateFrom: &from, DateTo: &to})
	assert.True(t, errors.IsValidationError(err))
}

func TestGetPoisonReportUseCase_Execute(t *testing.T) {
	repo := &mockReportRepository{GetByIDFunc: func(ctx context.Context, id int64) (*poisonreport.Report, error) {
		if id == 1 {
			return &poisonreport.Report{ID: 1, Fields: record.NewFields(), Attachments: []string{"pr_1_1_a.pdf"}}, nil
		}
		return nil, stderrors.New("bad connection")
	}}
	uc := NewGetPoisonReportUseCase(repo, newMockLogger())

	got, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	v, _ := got.Get(poisonreport.ColAttachments)
	assert.Equal(t, []string{"pr_1_1_a.pdf"}, v)

	_, err = uc.Execute(context.Background(), 2)
	assert.True(t, errors.IsStorageError(err))
}
