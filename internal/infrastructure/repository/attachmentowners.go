package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/infrastructure/persistence/models"
	"github.com/shjfcs/foodwatch/internal/shared/db"
)

// ComplaintAttachmentRepository keeps the single attachment_url slot of a
// complaint.
type ComplaintAttachmentRepository struct {
	db  *gorm.DB
	txm *db.TransactionManager
}

func NewComplaintAttachmentRepository(gdb *gorm.DB) *ComplaintAttachmentRepository {
	return &ComplaintAttachmentRepository{db: gdb, txm: db.NewTransactionManager(gdb)}
}

func (r *ComplaintAttachmentRepository) Kind() attachment.OwnerKind {
	return attachment.ComplaintOwner
}

func (r *ComplaintAttachmentRepository) ListAttachments(ctx context.Context, ownerID int64) ([]string, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Select("id", "attachment_url").First(&model, ownerID).Error; err != nil {
		return nil, readError(record.KindComplaint, err)
	}

	return slotToList(model.AttachmentURL), nil
}

func (r *ComplaintAttachmentRepository) LockAttachments(ctx context.Context, ownerID int64) ([]string, error) {
	var model models.ComplaintModel
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "attachment_url").
		First(&model, ownerID).Error
	if err != nil {
		return nil, readError(record.KindComplaint, err)
	}
	return slotToList(model.AttachmentURL), nil
}

func (r *ComplaintAttachmentRepository) UpdateAttachments(ctx context.Context, ownerID int64, fn func([]string) ([]string, error)) error {
	return r.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		current, err := r.LockAttachments(txCtx, ownerID)
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		if len(next) > 1 {
			return fmt.Errorf("complaint %d holds one attachment, got %d", ownerID, len(next))
		}

		var slot *string
		if len(next) == 1 {
			slot = &next[0]
		}
		err = tx.
			Model(&models.ComplaintModel{}).
			Where("id = ?", ownerID).
			Update("attachment_url", slot).Error
		if err != nil {
			return fmt.Errorf("failed to update complaint attachment: %w", err)
		}
		return nil
	})
}

func slotToList(slot *string) []string {
	if slot == nil || *slot == "" {
		return []string{}
	}
	return []string{*slot}
}

// PoisonReportAttachmentRepository keeps the JSON attachment list of a
// poison report.
type PoisonReportAttachmentRepository struct {
	db  *gorm.DB
	txm *db.TransactionManager
}

func NewPoisonReportAttachmentRepository(gdb *gorm.DB) *PoisonReportAttachmentRepository {
	return &PoisonReportAttachmentRepository{db: gdb, txm: db.NewTransactionManager(gdb)}
}

func (r *PoisonReportAttachmentRepository) Kind() attachment.OwnerKind {
	return attachment.PoisonReportOwner
}

func (r *PoisonReportAttachmentRepository) ListAttachments(ctx context.Context, ownerID int64) ([]string, error) {
	var model models.PoisonReportModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Select("id", "attachments").First(&model, ownerID).Error; err != nil {
		return nil, readError(record.KindPoisonReport, err)
	}

	return listOrEmpty(model.Attachments), nil
}

func (r *PoisonReportAttachmentRepository) LockAttachments(ctx context.Context, ownerID int64) ([]string, error) {
	var model models.PoisonReportModel
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "attachments").
		First(&model, ownerID).Error
	if err != nil {
		return nil, readError(record.KindPoisonReport, err)
	}
	return listOrEmpty(model.Attachments), nil
}

func (r *PoisonReportAttachmentRepository) UpdateAttachments(ctx context.Context, ownerID int64, fn func([]string) ([]string, error)) error {
	return r.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		current, err := r.LockAttachments(txCtx, ownerID)
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		if next == nil {
			next = []string{}
		}

		err = tx.
			Model(&models.PoisonReportModel{}).
			Where("id = ?", ownerID).
			Update("attachments", datatypes.JSONSlice[string](next)).Error
		if err != nil {
			return fmt.Errorf("failed to update poison report attachments: %w", err)
		}
		return nil
	})
}

func listOrEmpty(names []string) []string {
	out := make([]string, 0, len(names))
	return append(out, names...)
}

var (
	_ attachment.OwnerRepository = (*ComplaintAttachmentRepository)(nil)
	_ attachment.OwnerRepository = (*PoisonReportAttachmentRepository)(nil)
)
