package poisonreport

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	childuc "github.com/shjfcs/foodwatch/internal/application/child/usecases"
	"github.com/shjfcs/foodwatch/internal/application/poisonreport/usecases"
	"github.com/shjfcs/foodwatch/internal/application/upload"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/infrastructure/permission"
	"github.com/shjfcs/foodwatch/internal/infrastructure/persistence/testutil"
	"github.com/shjfcs/foodwatch/internal/infrastructure/repository"
	"github.com/shjfcs/foodwatch/internal/infrastructure/storage/local"
	"github.com/shjfcs/foodwatch/internal/shared/config"
	"github.com/shjfcs/foodwatch/internal/shared/db"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

var (
	inspector    = record.Actor{EmpID: 12, Role: "inspector"}
	divisionHead = record.Actor{EmpID: 2, Role: "division_head"}
)

type stack struct {
	service     *ServiceDDD
	stager      *upload.Stager
	attachments *upload.Manager
	store       *local.Store
}

func newStack(t *testing.T) *stack {
	t.Helper()
	gdb := testutil.NewDB(t)
	log := logger.NewLogger()

	enforcer, err := permission.NewEnforcer(gdb, log)
	require.NoError(t, err)
	require.NoError(t, enforcer.SeedDefaults())

	store, err := local.New(t.TempDir())
	require.NoError(t, err)

	stager := upload.NewStager(store, upload.PolicyFromConfig(config.AttachmentConfig{}), nil, log)
	attachments := upload.NewManager(store, repository.NewPoisonReportAttachmentRepository(gdb), stager, nil, log)

	svc := NewServiceDDD(
		repository.NewPoisonReportRepository(gdb),
		repository.NewContactRepository(gdb),
		repository.NewMealRepository(gdb),
		attachments,
		db.NewTransactionManager(gdb),
		enforcer,
		nil,
		log,
	)
	return &stack{service: svc, stager: stager, attachments: attachments, store: store}
}

func TestPoisonReportWorkflow_EndToEnd(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	var staged []string
	for _, name := range []string{"lab.pdf", "photo.jpg"} {
		n, err := s.stager.StageUpload(ctx, strings.NewReader(name), name)
		require.NoError(t, err)
		staged = append(staged, n)
	}

	created, err := s.service.CreateReport(ctx, usecases.CreatePoisonReportCommand{
		Fields: map[string]any{
			"source_name":        "Al Noor Restaurant",
			"hospital_name":      "Rashid Hospital",
			"facility_unique_id": "F-100",
			"report_datetime":    "2024-06-01T13:00",
		},
		PendingAttachments: append(staged, "temp_1_already_promoted.pdf"),
		Actor:              inspector,
	})
	require.NoError(t, err)
	assert.Len(t, created.Attachments, 2, "missing staged names are skipped")

	_, err = s.service.BulkCreateContacts(ctx, childuc.BulkCreateChildrenCommand{
		ParentID: created.ID,
		Rows:     []map[string]any{{"contact_name": "Fatima", "contact_age": 34}, {"contact_name": "Ali"}},
		Actor:    inspector,
	})
	require.NoError(t, err)

	for _, meal := range []map[string]any{
		{"day_number": 2, "meal_type": "lunch", "meal_name": "Rice"},
		{"day_number": 1, "meal_type": "dinner", "meal_name": "Shawarma"},
	} {
		_, err := s.service.CreateMeal(ctx, childuc.CreateChildCommand{ParentID: created.ID, Fields: meal, Actor: inspector})
		require.NoError(t, err)
	}

	meals, err := s.service.ListMeals(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "Shawarma", meals[0].String("meal_name"))

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	found, err := s.service.SearchReports(ctx, poisonreport.SearchFilter{Query: "Rashid", Facility: "F-100", DateFrom: &from})
	require.NoError(t, err)
	require.Len(t, found, 1)

	got, err := s.service.GetReport(ctx, created.ID)
	require.NoError(t, err)
	v, _ := got.Get(poisonreport.ColAttachments)
	assert.Equal(t, created.Attachments, v)

	err = s.service.DeleteReport(ctx, usecases.DeletePoisonReportCommand{ID: created.ID, Actor: inspector})
	assert.True(t, errors.IsForbiddenError(err))

	require.NoError(t, s.service.DeleteReport(ctx, usecases.DeletePoisonReportCommand{ID: created.ID, Actor: divisionHead}))

	_, err = s.service.GetReport(ctx, created.ID)
	assert.True(t, errors.IsNotFoundError(err))
	_, err = s.service.ListContacts(ctx, created.ID)
	assert.True(t, errors.IsNotFoundError(err))

	files, err := s.store.List(ctx, "poison_reports/")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestPoisonReportWorkflow_ContactAndMealEdits(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	created, err := s.service.CreateReport(ctx, usecases.CreatePoisonReportCommand{
		Fields: map[string]any{"source_name": "Cafe"},
		Actor:  inspector,
	})
	require.NoError(t, err)
	assert.Empty(t, created.Attachments)

	contact, err := s.service.CreateContact(ctx, childuc.CreateChildCommand{
		ParentID: created.ID,
		Fields:   map[string]any{"contact_name": "Mona"},
		Actor:    inspector,
	})
	require.NoError(t, err)

	require.NoError(t, s.service.UpdateContact(ctx, childuc.UpdateChildCommand{
		ID:     contact.ID,
		Fields: map[string]any{"symptoms": "vomiting"},
		Actor:  inspector,
	}))

	contacts, err := s.service.ListContacts(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "vomiting", contacts[0].String("symptoms"))

	meal, err := s.service.CreateMeal(ctx, childuc.CreateChildCommand{
		ParentID: created.ID,
		Fields:   map[string]any{"meal_name": "Soup", "day_number": "1"},
		Actor:    inspector,
	})
	require.NoError(t, err)
	require.NoError(t, s.service.UpdateMeal(ctx, childuc.UpdateChildCommand{
		ID:     meal.ID,
		Fields: map[string]any{"meal_type": "breakfast"},
		Actor:  inspector,
	}))

	supervisor := record.Actor{EmpID: 5, Role: "supervisor"}
	require.NoError(t, s.service.DeleteContact(ctx, childuc.DeleteChildCommand{ID: contact.ID, Actor: supervisor}))
	require.NoError(t, s.service.DeleteMeal(ctx, childuc.DeleteChildCommand{ID: meal.ID, Actor: supervisor}))

	_, err = s.service.CreateMeal(ctx, childuc.CreateChildCommand{
		ParentID: created.ID,
		Fields:   map[string]any{"day_number": 1},
		Actor:    inspector,
	})
	assert.True(t, errors.IsValidationError(err), "meal_name is required")

	_, err = s.service.UpdateReport(ctx, usecases.UpdatePoisonReportCommand{
		ID:     created.ID,
		Fields: map[string]any{"final_result": "closed"},
		Actor:  inspector,
	})
	require.NoError(t, err)
}
