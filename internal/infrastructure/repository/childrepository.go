package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/infrastructure/persistence"
	"github.com/shjfcs/foodwatch/internal/infrastructure/persistence/models"
	"github.com/shjfcs/foodwatch/internal/shared/db"
)

// childModel is implemented by the pointer types of the child row models.
type childModel interface {
	GetID() int64
	GetParentID() int64
	SetParentID(id int64)
	AuditInfo() *models.Audit
}

// ChildRepository stores one child kind. M is the row model and P its
// pointer type.
type ChildRepository[M any, P interface {
	*M
	childModel
}] struct {
	db    *gorm.DB
	txm   *db.TransactionManager
	codec *persistence.FieldCodec
	spec  record.ChildSpec
	order []string
}

func newChildRepository[M any, P interface {
	*M
	childModel
}](gdb *gorm.DB, spec record.ChildSpec, order ...string) *ChildRepository[M, P] {
	return &ChildRepository[M, P]{
		db:    gdb,
		txm:   db.NewTransactionManager(gdb),
		codec: persistence.NewFieldCodec(gdb),
		spec:  spec,
		order: append(order, "id"),
	}
}

// NewProductRepository stores complaint products in insertion order.
func NewProductRepository(gdb *gorm.DB) *ChildRepository[models.ComplaintProductModel, *models.ComplaintProductModel] {
	return newChildRepository[models.ComplaintProductModel](gdb, complaint.ProductSpec)
}

// NewContactRepository stores poison report contacts in insertion order.
func NewContactRepository(gdb *gorm.DB) *ChildRepository[models.PoisonContactModel, *models.PoisonContactModel] {
	return newChildRepository[models.PoisonContactModel](gdb, poisonreport.ContactSpec)
}

// NewMealRepository stores poison report meals ordered by day and meal.
func NewMealRepository(gdb *gorm.DB) *ChildRepository[models.PoisonMealModel, *models.PoisonMealModel] {
	return newChildRepository[models.PoisonMealModel](gdb, poisonreport.MealSpec,
		poisonreport.ColDayNumber, poisonreport.ColMealType)
}

func (r *ChildRepository[M, P]) Spec() record.ChildSpec {
	return r.spec
}

func (r *ChildRepository[M, P]) Create(ctx context.Context, parentID int64, f *record.Fields) (int64, error) {
	model := P(new(M))
	if err := r.codec.Assign(ctx, model, f); err != nil {
		return 0, err
	}
	model.SetParentID(parentID)

	cols := append(f.Columns(), r.spec.ParentColumn)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Select(cols).Create(model).Error; err != nil {
		return 0, writeError(r.spec.Kind, "create", err)
	}

	return model.GetID(), nil
}

// CreateBatch inserts rows in order inside one transaction. When ctx
// already carries a transaction the batch joins it.
func (r *ChildRepository[M, P]) CreateBatch(ctx context.Context, parentID int64, rows []*record.Fields) error {
	return r.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		for i, f := range rows {
			if _, err := r.Create(txCtx, parentID, f); err != nil {
				return &record.RowError{Row: i, Err: err}
			}
		}
		return nil
	})
}

func (r *ChildRepository[M, P]) GetByID(ctx context.Context, id int64) (*record.Child, error) {
	model := P(new(M))
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(model, id).Error; err != nil {
		return nil, readError(r.spec.Kind, err)
	}

	return r.toChild(ctx, model)
}

func (r *ChildRepository[M, P]) Update(ctx context.Context, id int64, f *record.Fields) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(P(new(M))).
		Where("id = ?", id).
		Updates(f.Map())

	if result.Error != nil {
		return writeError(r.spec.Kind, "update", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(r.spec.Kind)
	}

	return nil
}

func (r *ChildRepository[M, P]) Delete(ctx context.Context, id int64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(P(new(M)), id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.spec.Kind.Label(), result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(r.spec.Kind)
	}

	return nil
}

func (r *ChildRepository[M, P]) DeleteByParent(ctx context.Context, parentID int64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where(r.spec.ParentColumn+" = ?", parentID).
		Delete(P(new(M))).Error
	if err != nil {
		return fmt.Errorf("failed to delete %s rows: %w", r.spec.Kind.Label(), err)
	}

	return nil
}

func (r *ChildRepository[M, P]) ListByParent(ctx context.Context, parentID int64) ([]*record.Child, error) {
	var rows []M
	tx := db.GetTxFromContext(ctx, r.db).Where(r.spec.ParentColumn+" = ?", parentID)
	for _, col := range r.order {
		tx = tx.Order(col)
	}

	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s rows: %w", r.spec.Kind.Label(), err)
	}

	out := make([]*record.Child, 0, len(rows))
	for i := range rows {
		c, err := r.toChild(ctx, P(&rows[i]))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *ChildRepository[M, P]) toChild(ctx context.Context, model P) (*record.Child, error) {
	fields, err := r.codec.Snapshot(ctx, model, r.spec.AllowList)
	if err != nil {
		return nil, err
	}

	audit := model.AuditInfo()
	return &record.Child{
		ID:        model.GetID(),
		ParentID:  model.GetParentID(),
		Fields:    fields,
		CreatedAt: audit.CreatedAt,
		UpdatedAt: audit.UpdatedAt,
	}, nil
}

var (
	_ record.ChildRepository = (*ChildRepository[models.ComplaintProductModel, *models.ComplaintProductModel])(nil)
	_ record.ChildRepository = (*ChildRepository[models.PoisonContactModel, *models.PoisonContactModel])(nil)
	_ record.ChildRepository = (*ChildRepository[models.PoisonMealModel, *models.PoisonMealModel])(nil)
)
