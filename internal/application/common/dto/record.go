// Package dto renders records for API responses.
package dto

import (
	"time"

	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
)

// RecordDTO is a record rendered as one flat JSON object: id first, then the
// allow-listed columns in form order, then attachments and audit columns.
type RecordDTO struct {
	fields *record.Fields
}

func (d *RecordDTO) MarshalJSON() ([]byte, error) {
	return d.fields.MarshalJSON()
}

func (d *RecordDTO) Get(col string) (any, bool) {
	return d.fields.Get(col)
}

func (d *RecordDTO) String(col string) string {
	return d.fields.String(col)
}

func (d *RecordDTO) Columns() []string {
	return d.fields.Columns()
}

func newRecordDTO(id int64, fields *record.Fields) (*RecordDTO, *record.Fields) {
	flat := record.NewFields()
	flat.Set("id", id)
	if fields != nil {
		for _, col := range fields.Columns() {
			v, _ := fields.Get(col)
			flat.Set(col, v)
		}
	}
	return &RecordDTO{fields: flat}, flat
}

func setAudit(flat *record.Fields, createdBy, updatedBy *int64, createdAt, updatedAt time.Time) {
	flat.Set(record.ColCreatedBy, createdBy)
	flat.Set(record.ColCreatedAt, createdAt)
	flat.Set(record.ColUpdatedBy, updatedBy)
	flat.Set(record.ColUpdatedAt, updatedAt)
}

func FromComplaint(c *complaint.Complaint) *RecordDTO {
	d, flat := newRecordDTO(c.ID, c.Fields)
	if c.AttachmentURL == "" {
		flat.Set(complaint.ColAttachmentURL, nil)
	} else {
		flat.Set(complaint.ColAttachmentURL, c.AttachmentURL)
	}
	setAudit(flat, c.CreatedBy, c.UpdatedBy, c.CreatedAt, c.UpdatedAt)
	return d
}

func FromComplaints(cs []*complaint.Complaint) []*RecordDTO {
	out := make([]*RecordDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromComplaint(c))
	}
	return out
}

func FromPoisonReport(r *poisonreport.Report) *RecordDTO {
	d, flat := newRecordDTO(r.ID, r.Fields)
	attachments := r.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	flat.Set(poisonreport.ColAttachments, attachments)
	setAudit(flat, r.CreatedBy, r.UpdatedBy, r.CreatedAt, r.UpdatedAt)
	return d
}

func FromPoisonReports(rs []*poisonreport.Report) []*RecordDTO {
	out := make([]*RecordDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromPoisonReport(r))
	}
	return out
}

// FromChild renders a child row with its parent column after the id.
func FromChild(spec record.ChildSpec, c *record.Child) *RecordDTO {
	flat := record.NewFields()
	flat.Set("id", c.ID)
	flat.Set(spec.ParentColumn, c.ParentID)
	if c.Fields != nil {
		for _, col := range c.Fields.Columns() {
			v, _ := c.Fields.Get(col)
			flat.Set(col, v)
		}
	}
	flat.Set(record.ColCreatedAt, c.CreatedAt)
	flat.Set(record.ColUpdatedAt, c.UpdatedAt)
	return &RecordDTO{fields: flat}
}

func FromChildren(spec record.ChildSpec, cs []*record.Child) []*RecordDTO {
	out := make([]*RecordDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromChild(spec, c))
	}
	return out
}
