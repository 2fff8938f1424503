package complaint

import "github.com/shjfcs/foodwatch/internal/domain/record"

// Column names the workflow reads or derives.
const (
	ColCategory      = "complaint_category"
	ColStatus        = "complaint_status"
	ColResponseSpeed = "response_speed"
	ColSectionAction = "section_actions"
	ColClosedAt      = "closed_datetime"
	ColReceivedAt    = "received_datetime"
	ColAttachmentURL = "attachment_url"
	ColComplaintID   = "complaint_id"
	ColProductName   = "product_name"
)

// AllowList is every client-writable complaint column. attachment_url is
// owned by the attachment manager and is not writable here.
var AllowList = record.NewAllowList(record.KindComplaint, []record.Column{
	{Name: "establishment_unique_id", Rule: record.Text},
	{Name: ColReceivedAt, Rule: record.DateTime},
	{Name: "complaints_source", Rule: record.Text},
	{Name: "hotline_complaint_number", Rule: record.Text},
	{Name: "complainant_name", Rule: record.Text},
	{Name: "complainant_phone", Rule: record.Text},
	{Name: "complainant_statement", Rule: record.Narrative},
	{Name: "inspector_followup", Rule: record.Narrative},
	{Name: "sample_status", Rule: record.Text},
	{Name: "complainant_contact_action", Rule: record.Text},
	{Name: "inspector_received_datetime", Rule: record.DateTime},
	{Name: "complaint_subject", Rule: record.Narrative},
	{Name: "site_manager_statement", Rule: record.Narrative},
	{Name: "supervisor_empid", Rule: record.Integer},
	{Name: "manager_empid", Rule: record.Integer},
	{Name: "supervisor_comment", Rule: record.Narrative},
	{Name: ColCategory, Rule: record.Text},
	{Name: ColStatus, Rule: record.Text},
	{Name: ColResponseSpeed, Rule: record.Text},
	{Name: ColSectionAction, Rule: record.Text},
	{Name: "food_poisoning_suspect", Rule: record.Text},
	{Name: "division_head_comment", Rule: record.Narrative},
	{Name: "taken_actions", Rule: record.Narrative},
	{Name: "followup_datetime", Rule: record.DateTime},
	{Name: ColClosedAt, Rule: record.DateTime},
})

// ProductAllowList is every client-writable product column.
var ProductAllowList = record.NewAllowList(record.KindProduct, []record.Column{
	{Name: ColProductName, Rule: record.Text},
	{Name: "brand_name", Rule: record.Text},
	{Name: "sample_type", Rule: record.Text},
	{Name: "country_of_origin", Rule: record.Text},
	{Name: "production_date", Rule: record.Date},
	{Name: "expiry_date", Rule: record.Date},
	{Name: "weight", Rule: record.Text},
	{Name: "batch_number", Rule: record.Text},
	{Name: "lab_result", Rule: record.Text},
	{Name: "notes", Rule: record.Text},
})

// ProductSpec describes products as children of complaints.
var ProductSpec = record.ChildSpec{
	Kind:         record.KindProduct,
	Parent:       record.KindComplaint,
	ParentColumn: ColComplaintID,
	AllowList:    ProductAllowList,
	Required:     []string{ColProductName},
}
