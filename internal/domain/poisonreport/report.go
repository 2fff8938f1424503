// Package poisonreport models food-poisoning investigation reports together
// with their contacts and meal history.
package poisonreport

import (
	"context"
	"time"

	"github.com/shjfcs/foodwatch/internal/domain/record"
)

// Report is a stored poison report. Attachments is the authoritative,
// ordered list of committed evidence files.
type Report struct {
	ID          int64
	Fields      *record.Fields
	Attachments []string
	CreatedBy   *int64
	UpdatedBy   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SearchFilter narrows a report search. Query matches source name, food
// source, hospital or suspected food. Facility matches either the facility
// or the establishment id. The date bounds apply to report_datetime.
type SearchFilter struct {
	Query    string
	Facility string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
}

// Repository persists poison reports.
type Repository interface {
	Create(ctx context.Context, f *record.Fields) (int64, error)
	Update(ctx context.Context, id int64, f *record.Fields) error
	GetByID(ctx context.Context, id int64) (*Report, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, filter SearchFilter) ([]*Report, error)
	Delete(ctx context.Context, id int64) error
}
