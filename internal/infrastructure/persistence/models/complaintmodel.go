package models

import "time"

type ComplaintModel struct {
	ID                        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	EstablishmentUniqueID     *string    `gorm:"column:establishment_unique_id;size:64;index"`
	ReceivedDatetime          *time.Time `gorm:"column:received_datetime;index"`
	ComplaintsSource          *string    `gorm:"column:complaints_source;size:100"`
	HotlineComplaintNumber    *string    `gorm:"column:hotline_complaint_number;size:64"`
	ComplainantName           *string    `gorm:"column:complainant_name;size:150"`
	ComplainantPhone          *string    `gorm:"column:complainant_phone;size:32"`
	ComplainantStatement      string     `gorm:"column:complainant_statement;type:text"`
	InspectorFollowup         string     `gorm:"column:inspector_followup;type:text"`
	SampleStatus              *string    `gorm:"column:sample_status;size:100"`
	ComplainantContactAction  *string    `gorm:"column:complainant_contact_action;size:100"`
	InspectorReceivedDatetime *time.Time `gorm:"column:inspector_received_datetime"`
	ComplaintSubject          string     `gorm:"column:complaint_subject;type:text"`
	SiteManagerStatement      string     `gorm:"column:site_manager_statement;type:text"`
	SupervisorEmpID           *int64     `gorm:"column:supervisor_empid;index"`
	ManagerEmpID              *int64     `gorm:"column:manager_empid;index"`
	SupervisorComment         string     `gorm:"column:supervisor_comment;type:text"`
	ComplaintCategory         *string    `gorm:"column:complaint_category;size:100"`
	ComplaintStatus           *string    `gorm:"column:complaint_status;size:100"`
	ResponseSpeed             *string    `gorm:"column:response_speed;size:100"`
	SectionActions            *string    `gorm:"column:section_actions;size:100"`
	FoodPoisoningSuspect      *string    `gorm:"column:food_poisoning_suspect;size:100"`
	DivisionHeadComment       string     `gorm:"column:division_head_comment;type:text"`
	TakenActions              string     `gorm:"column:taken_actions;type:text"`
	FollowupDatetime          *time.Time `gorm:"column:followup_datetime"`
	ClosedDatetime            *time.Time `gorm:"column:closed_datetime"`
	AttachmentURL             *string    `gorm:"column:attachment_url;size:255"`
	Audit
}

func (ComplaintModel) TableName() string {
	return "complaints"
}

type ComplaintProductModel struct {
	ID              int64      `gorm:"column:id;primaryKey;autoIncrement"`
	ComplaintID     int64      `gorm:"column:complaint_id;not null;index"`
	ProductName     string     `gorm:"column:product_name;size:200;not null"`
	BrandName       *string    `gorm:"column:brand_name;size:150"`
	SampleType      *string    `gorm:"column:sample_type;size:100"`
	CountryOfOrigin *string    `gorm:"column:country_of_origin;size:100"`
	ProductionDate  *time.Time `gorm:"column:production_date;type:date"`
	ExpiryDate      *time.Time `gorm:"column:expiry_date;type:date"`
	Weight          *string    `gorm:"column:weight;size:50"`
	BatchNumber     *string    `gorm:"column:batch_number;size:100"`
	LabResult       *string    `gorm:"column:lab_result;size:255"`
	Notes           *string    `gorm:"column:notes;type:text"`
	Audit
}

func (ComplaintProductModel) TableName() string {
	return "complaint_products"
}

func (m *ComplaintProductModel) GetID() int64         { return m.ID }
func (m *ComplaintProductModel) GetParentID() int64   { return m.ComplaintID }
func (m *ComplaintProductModel) SetParentID(id int64) { m.ComplaintID = id }
