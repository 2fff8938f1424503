package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/infrastructure/persistence"
	"github.com/shjfcs/foodwatch/internal/infrastructure/persistence/models"
	"github.com/shjfcs/foodwatch/internal/shared/constants"
	"github.com/shjfcs/foodwatch/internal/shared/db"
)

type ComplaintRepository struct {
	db    *gorm.DB
	codec *persistence.FieldCodec
}

func NewComplaintRepository(gdb *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db:    gdb,
		codec: persistence.NewFieldCodec(gdb),
	}
}

func (r *ComplaintRepository) Create(ctx context.Context, f *record.Fields) (int64, error) {
	model := &models.ComplaintModel{}
	if err := r.codec.Assign(ctx, model, f); err != nil {
		return 0, err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Select(f.Columns()).Create(model).Error; err != nil {
		return 0, writeError(record.KindComplaint, "create", err)
	}

	return model.ID, nil
}

func (r *ComplaintRepository) Update(ctx context.Context, id int64, f *record.Fields) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ?", id).
		Updates(f.Map())

	if result.Error != nil {
		return writeError(record.KindComplaint, "update", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(record.KindComplaint)
	}

	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		return nil, readError(record.KindComplaint, err)
	}

	return r.toDomain(ctx, &model)
}

func (r *ComplaintRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ComplaintModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check complaint: %w", err)
	}

	return count > 0, nil
}

func (r *ComplaintRepository) List(ctx context.Context, filter complaint.ListFilter) ([]*complaint.Complaint, error) {
	var rows []models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Scopes(
			db.Contains("establishment_unique_id", filter.EstablishmentUniqueID),
			db.Contains("complaints_source", filter.ComplaintsSource),
			db.Contains("hotline_complaint_number", filter.HotlineComplaintNumber),
			db.Contains("complainant_name", filter.ComplainantName),
			db.Contains("complaint_category", filter.ComplaintCategory),
			db.Contains("complaint_status", filter.ComplaintStatus),
			db.Equals("created_by_empid", filter.CreatedByEmpID),
			db.Equals("supervisor_empid", filter.SupervisorEmpID),
			db.Equals("manager_empid", filter.ManagerEmpID),
			db.Limit(filter.Limit, constants.DefaultListLimit, constants.MaxListLimit),
		).
		Order("received_datetime DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	out := make([]*complaint.Complaint, 0, len(rows))
	for i := range rows {
		c, err := r.toDomain(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Delete removes the complaint row only; products and files are the
// caller's responsibility.
func (r *ComplaintRepository) Delete(ctx context.Context, id int64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ComplaintModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(record.KindComplaint)
	}

	return nil
}

func (r *ComplaintRepository) toDomain(ctx context.Context, m *models.ComplaintModel) (*complaint.Complaint, error) {
	fields, err := r.codec.Snapshot(ctx, m, complaint.AllowList)
	if err != nil {
		return nil, err
	}

	c := &complaint.Complaint{
		ID:        m.ID,
		Fields:    fields,
		CreatedBy: m.CreatedByEmpID,
		UpdatedBy: m.UpdatedByEmpID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.AttachmentURL != nil {
		c.AttachmentURL = *m.AttachmentURL
	}
	return c, nil
}
