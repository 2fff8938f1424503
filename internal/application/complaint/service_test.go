package complaint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	childuc "github.com/shjfcs/foodwatch/internal/application/child/usecases"
	"github.com/shjfcs/foodwatch/internal/application/common"
	"github.com/shjfcs/foodwatch/internal/application/complaint/usecases"
	"github.com/shjfcs/foodwatch/internal/application/upload"
	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/complaint/valueobjects"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/infrastructure/metrics"
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
	clerk   = record.Actor{EmpID: 41, Role: "clerk"}
	manager = record.Actor{EmpID: 7, Role: "manager"}
)

type stack struct {
	service *ServiceDDD
	stager  *upload.Stager
	store   *local.Store
	files   *notifyingStore
}

// notifyingStore reports every completed Move to onMove when it is set.
type notifyingStore struct {
	attachment.FileStore
	onMove func(dst string)
}

func (s *notifyingStore) Move(ctx context.Context, src, dst string) error {
	err := s.FileStore.Move(ctx, src, dst)
	if err == nil && s.onMove != nil {
		s.onMove(dst)
	}
	return err
}

func newStack(t *testing.T) *stack {
	return newStackWith(t, nil)
}

// newStackWith builds the service over sqlite and a temp dir. wrap, when
// set, replaces the attachment manager the use cases see.
func newStackWith(t *testing.T, wrap func(*upload.Manager) common.AttachmentManager) *stack {
	t.Helper()
	gdb := testutil.NewDB(t)
	log := logger.NewLogger()

	enforcer, err := permission.NewEnforcer(gdb, log)
	require.NoError(t, err)
	require.NoError(t, enforcer.SeedDefaults())

	store, err := local.New(t.TempDir())
	require.NoError(t, err)
	files := &notifyingStore{FileStore: store}

	m := metrics.New()
	stager := upload.NewStager(store, upload.PolicyFromConfig(config.AttachmentConfig{}), m, log)
	mgr := upload.NewManager(files, repository.NewComplaintAttachmentRepository(gdb), stager, m, log)

	var attachments common.AttachmentManager = mgr
	if wrap != nil {
		attachments = wrap(mgr)
	}

	svc := NewServiceDDD(
		repository.NewComplaintRepository(gdb),
		repository.NewProductRepository(gdb),
		attachments,
		db.NewTransactionManager(gdb),
		enforcer,
		m,
		log,
	)
	return &stack{service: svc, stager: stager, store: store, files: files}
}

func TestComplaintWorkflow_EndToEnd(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	staged, err := s.stager.StageUpload(ctx, strings.NewReader("%PDF"), "scan.pdf")
	require.NoError(t, err)

	created, err := s.service.CreateComplaint(ctx, usecases.CreateComplaintCommand{
		Fields: map[string]any{
			"complainant_name":   "Huda",
			"complaint_category": "الحشرات والقوارض",
			"received_datetime":  "2024-05-01T08:30",
		},
		PendingAttachments: []string{staged},
		Actor:              clerk,
	})
	require.NoError(t, err)
	assert.Equal(t, valueobjects.UrgencyUrgent.String(), created.Urgency)
	assert.Equal(t, valueobjects.StatusNew.String(), created.Status)
	require.Len(t, created.Attachments, 1)

	updated, err := s.service.UpdateComplaint(ctx, usecases.UpdateComplaintCommand{
		ID:     created.ID,
		Fields: map[string]any{"section_actions": "مخالفة"},
		Actor:  clerk,
	})
	require.NoError(t, err)
	assert.Equal(t, "الشكوى صحيحة", updated.Status)

	got, err := s.service.GetComplaint(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "الشكوى صحيحة", got.String(complaint.ColStatus))
	assert.Equal(t, valueobjects.UrgencyUrgent.String(), got.String(complaint.ColResponseSpeed))
	assert.Equal(t, created.Attachments[0], got.String(complaint.ColAttachmentURL))

	list, err := s.service.ListComplaints(ctx, complaint.ListFilter{ComplainantName: "Hu"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestComplaintWorkflow_BulkProductsAreAtomic(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	created, err := s.service.CreateComplaint(ctx, usecases.CreateComplaintCommand{
		Fields: map[string]any{"complainant_name": "Omar"},
		Actor:  clerk,
	})
	require.NoError(t, err)

	_, err = s.service.BulkCreateProducts(ctx, childuc.BulkCreateChildrenCommand{
		ParentID: created.ID,
		Rows: []map[string]any{
			{"product_name": "Milk"},
			{"product_name": "   ", "batch_number": "B-2"},
		},
		Actor: clerk,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "row 2: product_name is required", errors.GetAppError(err).Message)

	products, err := s.service.ListProducts(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, products)

	res, err := s.service.BulkCreateProducts(ctx, childuc.BulkCreateChildrenCommand{
		ParentID: created.ID,
		Rows:     []map[string]any{{"product_name": "Milk"}, {"product_name": "Bread"}},
		Actor:    clerk,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)

	products, err = s.service.ListProducts(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Milk", products[0].String("product_name"))

	_, err = s.service.BulkCreateProducts(ctx, childuc.BulkCreateChildrenCommand{
		ParentID: 9999,
		Rows:     []map[string]any{{"product_name": "Milk"}},
		Actor:    clerk,
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestComplaintWorkflow_DeleteNeedsManager(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	created, err := s.service.CreateComplaint(ctx, usecases.CreateComplaintCommand{
		Fields: map[string]any{"complainant_name": "Salem"},
		Actor:  clerk,
	})
	require.NoError(t, err)

	staged, err := s.stager.StageUpload(ctx, strings.NewReader("img"), "site.png")
	require.NoError(t, err)
	updated, err := s.service.UpdateComplaint(ctx, usecases.UpdateComplaintCommand{
		ID:                 created.ID,
		Fields:             map[string]any{"complaint_subject": "rodents in kitchen"},
		PendingAttachments: []string{staged},
		Actor:              clerk,
	})
	require.NoError(t, err)
	require.Len(t, updated.Attachments, 1)

	_, err = s.service.CreateProduct(ctx, childuc.CreateChildCommand{
		ParentID: created.ID,
		Fields:   map[string]any{"product_name": "Cheese"},
		Actor:    clerk,
	})
	require.NoError(t, err)

	err = s.service.DeleteComplaint(ctx, usecases.DeleteComplaintCommand{ID: created.ID, Actor: clerk})
	assert.True(t, errors.IsForbiddenError(err))

	require.NoError(t, s.service.DeleteComplaint(ctx, usecases.DeleteComplaintCommand{ID: created.ID, Actor: manager}))

	_, err = s.service.GetComplaint(ctx, created.ID)
	assert.True(t, errors.IsNotFoundError(err))

	_, err = s.service.ListProducts(ctx, created.ID)
	assert.True(t, errors.IsNotFoundError(err))

	files, err := s.store.List(ctx, "complaints/")
	require.NoError(t, err)
	assert.Empty(t, files)
}

// promoteDuringDelete starts a promotion of staged onto the owner as soon as
// the delete has read the attachment list, and holds the delete until that
// promotion has moved its file into the owner directory.
type promoteDuringDelete struct {
	*upload.Manager
	staged   string
	moved    chan struct{}
	promoted chan error
}

func (p *promoteDuringDelete) LockFiles(ctx context.Context, ownerID int64) ([]string, error) {
	names, err := p.Manager.LockFiles(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	go func() {
		_, err := p.Manager.Promote(context.Background(), ownerID, p.staged)
		p.promoted <- err
	}()
	<-p.moved
	return names, nil
}

func TestComplaintWorkflow_DeleteRacingPromotionLeavesNoFiles(t *testing.T) {
	racer := &promoteDuringDelete{
		moved:    make(chan struct{}, 1),
		promoted: make(chan error, 1),
	}
	s := newStackWith(t, func(m *upload.Manager) common.AttachmentManager {
		racer.Manager = m
		return racer
	})
	ctx := context.Background()

	first, err := s.stager.StageUpload(ctx, strings.NewReader("%PDF first"), "first.pdf")
	require.NoError(t, err)
	created, err := s.service.CreateComplaint(ctx, usecases.CreateComplaintCommand{
		Fields:             map[string]any{"complainant_name": "Salem"},
		PendingAttachments: []string{first},
		Actor:              clerk,
	})
	require.NoError(t, err)
	require.Len(t, created.Attachments, 1)

	racer.staged, err = s.stager.StageUpload(ctx, strings.NewReader("late"), "late.pdf")
	require.NoError(t, err)
	s.files.onMove = func(dst string) {
		if strings.HasSuffix(dst, racer.staged) {
			racer.moved <- struct{}{}
		}
	}

	require.NoError(t, s.service.DeleteComplaint(ctx, usecases.DeleteComplaintCommand{ID: created.ID, Actor: manager}))

	err = <-racer.promoted
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err), "the promotion waits for the delete and finds no owner")

	files, err := s.store.List(ctx, "complaints/")
	require.NoError(t, err)
	assert.Empty(t, files, "neither the listed nor the racing file survives the delete")
}

func TestComplaintWorkflow_ProductEdits(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	created, err := s.service.CreateComplaint(ctx, usecases.CreateComplaintCommand{
		Fields: map[string]any{"complainant_name": "Salem"},
		Actor:  clerk,
	})
	require.NoError(t, err)

	product, err := s.service.CreateProduct(ctx, childuc.CreateChildCommand{
		ParentID: created.ID,
		Fields:   map[string]any{"product_name": "Cheese"},
		Actor:    clerk,
	})
	require.NoError(t, err)

	err = s.service.UpdateProduct(ctx, childuc.UpdateChildCommand{
		ID:     product.ID,
		Fields: map[string]any{"product_name": ""},
		Actor:  clerk,
	})
	assert.True(t, errors.IsValidationError(err))

	require.NoError(t, s.service.UpdateProduct(ctx, childuc.UpdateChildCommand{
		ID:     product.ID,
		Fields: map[string]any{"product_name": "Goat cheese"},
		Actor:  clerk,
	}))

	products, err := s.service.ListProducts(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Goat cheese", products[0].String("product_name"))

	err = s.service.DeleteProduct(ctx, childuc.DeleteChildCommand{ID: product.ID, Actor: clerk})
	assert.True(t, errors.IsForbiddenError(err), "clerks cannot delete products")

	supervisor := record.Actor{EmpID: 9, Role: "supervisor"}
	require.NoError(t, s.service.DeleteProduct(ctx, childuc.DeleteChildCommand{ID: product.ID, Actor: supervisor}))

	err = s.service.DeleteProduct(ctx, childuc.DeleteChildCommand{ID: product.ID, Actor: supervisor})
	assert.True(t, errors.IsNotFoundError(err))

	assert.Len(t, s.service.Lookups().Categories, len(valueobjects.Categories()))
}
