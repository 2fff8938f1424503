// Package complaint models consumer food-safety complaints, their product
// samples and the rules that keep status and urgency in step with the
// section action and category.
package complaint

import (
	"context"
	"time"

	"github.com/shjfcs/foodwatch/internal/domain/complaint/valueobjects"
	"github.com/shjfcs/foodwatch/internal/domain/record"
)

// Complaint is a stored complaint. Fields holds the allow-listed columns as
// read; AttachmentURL is the single committed evidence file, if any.
type Complaint struct {
	ID            int64
	Fields        *record.Fields
	AttachmentURL string
	CreatedBy     *int64
	UpdatedBy     *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *Complaint) Status() valueobjects.Status {
	return valueobjects.Status(c.Fields.String(ColStatus))
}

func (c *Complaint) Urgency() valueobjects.Urgency {
	return valueobjects.Urgency(c.Fields.String(ColResponseSpeed))
}

// Attachments returns the committed file list, which holds at most one name.
func (c *Complaint) Attachments() []string {
	if c.AttachmentURL == "" {
		return nil
	}
	return []string{c.AttachmentURL}
}

// ApplyDerivations rewrites the derived columns of an edit set in place:
//
//  1. a closing write (non-empty closed_datetime) keeps the supplied status,
//     or sets the closed status;
//  2. otherwise a section action with a known status overrides the status;
//  3. a category always rewrites response_speed, and a response_speed sent
//     without a category is dropped.
//
// On create a missing status becomes StatusNew and a missing category
// stores UrgencyUnspecified.
func ApplyDerivations(f *record.Fields, creating bool) {
	if closedAt, ok := f.Get(ColClosedAt); ok && closedAt != nil {
		if f.String(ColStatus) == "" {
			f.Set(ColStatus, valueobjects.StatusClosed.String())
		}
	} else if f.Has(ColSectionAction) {
		if s := valueobjects.DeriveStatus(f.String(ColSectionAction)); s != valueobjects.StatusNone {
			f.Set(ColStatus, s.String())
		}
	}

	switch {
	case f.Has(ColCategory):
		f.Set(ColResponseSpeed, valueobjects.DeriveUrgency(f.String(ColCategory)).String())
	case creating:
		f.Set(ColResponseSpeed, valueobjects.UrgencyUnspecified.String())
	default:
		f.Delete(ColResponseSpeed)
	}

	if creating && f.String(ColStatus) == "" {
		f.Set(ColStatus, valueobjects.StatusNew.String())
	}
}

// ListFilter narrows a complaint listing. Text filters are substring
// matches; employee filters are exact.
type ListFilter struct {
	EstablishmentUniqueID  string
	ComplaintsSource       string
	HotlineComplaintNumber string
	ComplainantName        string
	ComplaintCategory      string
	ComplaintStatus        string
	CreatedByEmpID         *int64
	SupervisorEmpID        *int64
	ManagerEmpID           *int64
	Limit                  int
}

// Repository persists complaints.
type Repository interface {
	Create(ctx context.Context, f *record.Fields) (int64, error)
	Update(ctx context.Context, id int64, f *record.Fields) error
	GetByID(ctx context.Context, id int64) (*Complaint, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Complaint, error)
	Delete(ctx context.Context, id int64) error
}
