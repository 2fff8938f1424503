package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/infrastructure/persistence"
	"github.com/shjfcs/foodwatch/internal/infrastructure/persistence/models"
	"github.com/shjfcs/foodwatch/internal/shared/constants"
	"github.com/shjfcs/foodwatch/internal/shared/db"
)

var poisonReportSearchColumns = []string{
	"source_name",
	"food_source",
	"hospital_name",
	"suspected_food",
}

type PoisonReportRepository struct {
	db    *gorm.DB
	codec *persistence.FieldCodec
}

func NewPoisonReportRepository(gdb *gorm.DB) *PoisonReportRepository {
	return &PoisonReportRepository{
		db:    gdb,
		codec: persistence.NewFieldCodec(gdb),
	}
}

func (r *PoisonReportRepository) Create(ctx context.Context, f *record.Fields) (int64, error) {
	model := &models.PoisonReportModel{}
	if err := r.codec.Assign(ctx, model, f); err != nil {
		return 0, err
	}

	// Reports start with an empty attachment list rather than NULL.
	model.Attachments = []string{}
	cols := append(f.Columns(), poisonreport.ColAttachments)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Select(cols).Create(model).Error; err != nil {
		return 0, writeError(record.KindPoisonReport, "create", err)
	}

	return model.ID, nil
}

func (r *PoisonReportRepository) Update(ctx context.Context, id int64, f *record.Fields) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PoisonReportModel{}).
		Where("id = ?", id).
		Updates(f.Map())

	if result.Error != nil {
		return writeError(record.KindPoisonReport, "update", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(record.KindPoisonReport)
	}

	return nil
}

func (r *PoisonReportRepository) GetByID(ctx context.Context, id int64) (*poisonreport.Report, error) {
	var model models.PoisonReportModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		return nil, readError(record.KindPoisonReport, err)
	}

	return r.toDomain(ctx, &model)
}

func (r *PoisonReportRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.PoisonReportModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check poison report: %w", err)
	}

	return count > 0, nil
}

// Search returns reports newest first.
func (r *PoisonReportRepository) Search(ctx context.Context, filter poisonreport.SearchFilter) ([]*poisonreport.Report, error) {
	var rows []models.PoisonReportModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Scopes(
		db.ContainsAny(poisonReportSearchColumns, filter.Query),
		db.Limit(filter.Limit, constants.DefaultListLimit, constants.MaxListLimit),
	)
	if filter.Facility != "" {
		query = query.Where("(facility_unique_id = ? OR establishment_unique_id = ?)", filter.Facility, filter.Facility)
	}
	if filter.DateFrom != nil {
		query = query.Where("report_datetime >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("report_datetime <= ?", *filter.DateTo)
	}

	err := query.
		Order("report_datetime DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search poison reports: %w", err)
	}

	out := make([]*poisonreport.Report, 0, len(rows))
	for i := range rows {
		rep, err := r.toDomain(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, nil
}

func (r *PoisonReportRepository) Delete(ctx context.Context, id int64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.PoisonReportModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete poison report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(record.KindPoisonReport)
	}

	return nil
}

func (r *PoisonReportRepository) toDomain(ctx context.Context, m *models.PoisonReportModel) (*poisonreport.Report, error) {
	fields, err := r.codec.Snapshot(ctx, m, poisonreport.AllowList)
	if err != nil {
		return nil, err
	}

	attachments := []string(m.Attachments)
	if attachments == nil {
		attachments = []string{}
	}

	return &poisonreport.Report{
		ID:          m.ID,
		Fields:      fields,
		Attachments: attachments,
		CreatedBy:   m.CreatedByEmpID,
		UpdatedBy:   m.UpdatedByEmpID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}
