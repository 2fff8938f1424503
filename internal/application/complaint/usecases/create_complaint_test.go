package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/complaint/valueobjects"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

func TestCreateComplaintUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name        string
		fields      map[string]any
		wantStatus  string
		wantUrgency string
	}{
		{
			name:        "pests category is urgent and new",
			fields:      map[string]any{"complainant_name": "Huda", "complaint_category": "الحشرات والقوارض"},
			wantStatus:  valueobjects.StatusNew.String(),
			wantUrgency: valueobjects.UrgencyUrgent.String(),
		},
		{
			name:        "section action derives status",
			fields:      map[string]any{"complainant_name": "Omar", "section_actions": "مخالفة"},
			wantStatus:  valueobjects.StatusValid.String(),
			wantUrgency: valueobjects.UrgencyUnspecified.String(),
		},
		{
			name:        "closing write keeps supplied status",
			fields:      map[string]any{"closed_datetime": "2024-05-02 10:00", "complaint_status": "الشكوى غير صحيحة"},
			wantStatus:  valueobjects.StatusInvalid.String(),
			wantUrgency: valueobjects.UrgencyUnspecified.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *record.Fields
			repo := &mockComplaintRepository{
				CreateFunc: func(ctx context.Context, f *record.Fields) (int64, error) {
					saved = f
					return 12, nil
				},
			}
			rec := &mockRecorder{}
			uc := NewCreateComplaintUseCase(repo, &mockAttachmentManager{}, &mockAuthorizer{}, rec, newMockLogger())
			uc.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

			result, err := uc.Execute(context.Background(), CreateComplaintCommand{Fields: tt.fields, Actor: clerk})

			require.NoError(t, err)
			assert.Equal(t, int64(12), result.ID)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantUrgency, result.Urgency)
			assert.Equal(t, []string{}, result.Attachments)

			require.NotNil(t, saved)
			assert.Equal(t, tt.wantStatus, saved.String(complaint.ColStatus))
			assert.Equal(t, tt.wantUrgency, saved.String(complaint.ColResponseSpeed))
			v, _ := saved.Get(record.ColCreatedBy)
			assert.Equal(t, int64(41), v)
			v, _ = saved.Get(record.ColUpdatedAt)
			assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), v)
			assert.Equal(t, []string{"complaint/create"}, rec.writes)
		})
	}
}

func TestCreateComplaintUseCase_Execute_IgnoresUnknownAndMetaKeys(t *testing.T) {
	var saved *record.Fields
	repo := &mockComplaintRepository{
		CreateFunc: func(ctx context.Context, f *record.Fields) (int64, error) {
			saved = f
			return 3, nil
		},
	}
	uc := NewCreateComplaintUseCase(repo, &mockAttachmentManager{}, &mockAuthorizer{}, nil, newMockLogger())

	_, err := uc.Execute(context.Background(), CreateComplaintCommand{
		Fields: map[string]any{
			"id":               99,
			"complainant_name": "Huda",
			"attachment_url":   "cp_1_1_x.pdf",
			"response_speed":   "طارئة استجابة فورية",
			"__proto__":        "y",
		},
		Actor: clerk,
	})
	require.NoError(t, err)

	assert.False(t, saved.Has("id"))
	assert.False(t, saved.Has("attachment_url"))
	assert.False(t, saved.Has("__proto__"))
	assert.Equal(t, valueobjects.UrgencyUnspecified.String(), saved.String(complaint.ColResponseSpeed), "urgency is derived only")
}

func TestCreateComplaintUseCase_Execute_PromotesPendingAttachments(t *testing.T) {
	var promotedFor int64
	mgr := &mockAttachmentManager{
		PromoteAllFunc: func(ctx context.Context, ownerID int64, names []string) ([]string, error) {
			promotedFor = ownerID
			return []string{"cp_8_1_" + names[0]}, nil
		},
	}
	repo := &mockComplaintRepository{
		CreateFunc: func(ctx context.Context, f *record.Fields) (int64, error) { return 8, nil },
	}
	uc := NewCreateComplaintUseCase(repo, mgr, &mockAuthorizer{}, nil, newMockLogger())

	result, err := uc.Execute(context.Background(), CreateComplaintCommand{
		Fields:             map[string]any{"complainant_name": "Huda"},
		PendingAttachments: []string{"temp_1_scan.pdf"},
		Actor:              clerk,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), promotedFor)
	assert.Equal(t, []string{"cp_8_1_temp_1_scan.pdf"}, result.Attachments)
}

func TestCreateComplaintUseCase_Execute_PromotionFailureKeepsRecord(t *testing.T) {
	mgr := &mockAttachmentManager{
		PromoteAllFunc: func(ctx context.Context, ownerID int64, names []string) ([]string, error) {
			return nil, errors.NewStorageError("failed to store attachment")
		},
	}
	uc := NewCreateComplaintUseCase(&mockComplaintRepository{}, mgr, &mockAuthorizer{}, nil, newMockLogger())

	result, err := uc.Execute(context.Background(), CreateComplaintCommand{
		Fields:             map[string]any{"complainant_name": "Huda"},
		PendingAttachments: []string{"temp_1_scan.pdf"},
		Actor:              clerk,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Empty(t, result.Attachments)
}

func TestCreateComplaintUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateComplaintCommand
		authz   *mockAuthorizer
		repoErr error
		check   func(error) bool
	}{
		{
			name:  "no actor",
			cmd:   CreateComplaintCommand{Fields: map[string]any{"complainant_name": "x"}},
			authz: &mockAuthorizer{},
			check: errors.IsUnauthorizedError,
		},
		{
			name: "role denied",
			cmd:  CreateComplaintCommand{Fields: map[string]any{"complainant_name": "x"}, Actor: clerk},
			authz: &mockAuthorizer{AuthorizeFunc: func(ctx context.Context, a record.Actor, k record.Kind, act record.Action) error {
				return errors.NewForbiddenError("denied")
			}},
			check: errors.IsForbiddenError,
		},
		{
			name:  "nothing allow-listed",
			cmd:   CreateComplaintCommand{Fields: map[string]any{"bogus": "x"}, Actor: clerk},
			authz: &mockAuthorizer{},
			check: errors.IsValidationError,
		},
		{
			name:  "bad date",
			cmd:   CreateComplaintCommand{Fields: map[string]any{"received_datetime": "yesterday"}, Actor: clerk},
			authz: &mockAuthorizer{},
			check: errors.IsValidationError,
		},
		{
			name:    "driver error is hidden",
			cmd:     CreateComplaintCommand{Fields: map[string]any{"complainant_name": "x"}, Actor: clerk},
			authz:   &mockAuthorizer{},
			repoErr: stderrors.New("Error 1205: Lock wait timeout exceeded"),
			check:   errors.IsStorageError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			repo := &mockComplaintRepository{
				CreateFunc: func(ctx context.Context, f *record.Fields) (int64, error) {
					created = true
					return 0, tt.repoErr
				},
			}
			uc := NewCreateComplaintUseCase(repo, &mockAttachmentManager{}, tt.authz, nil, newMockLogger())

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, tt.check(err), "got %v", err)
			assert.NotContains(t, err.Error(), "Lock wait")
			if tt.repoErr == nil {
				assert.False(t, created, "nothing is written when checks fail")
			}
		})
	}
}
