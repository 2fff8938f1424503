package models

import (
	"time"

	"gorm.io/datatypes"
)

type PoisonReportModel struct {
	ID                           int64                       `gorm:"column:id;primaryKey;autoIncrement"`
	EstablishmentUniqueID        *string                     `gorm:"column:establishment_unique_id;size:64;index"`
	SourceType                   *string                     `gorm:"column:source_type;size:100"`
	SourceName                   *string                     `gorm:"column:source_name;size:200"`
	SourceArea                   *string                     `gorm:"column:source_area;size:100"`
	SourceActivity               *string                     `gorm:"column:source_activity;size:150"`
	SourceDescription            *string                     `gorm:"column:source_description;type:text"`
	ReportDatetime               *time.Time                  `gorm:"column:report_datetime;index"`
	InspectorReceivedDatetime    *time.Time                  `gorm:"column:inspector_received_datetime"`
	ReportSource                 *string                     `gorm:"column:report_source;size:100"`
	InfectionOfficer             *string                     `gorm:"column:infection_officer;size:150"`
	InfectionOfficerPhone        *string                     `gorm:"column:infection_officer_phone;size:32"`
	HospitalName                 *string                     `gorm:"column:hospital_name;size:200"`
	AdmissionDatetime            *time.Time                  `gorm:"column:admission_datetime"`
	FoodSource                   *string                     `gorm:"column:food_source;size:200"`
	FacilityUniqueID             *string                     `gorm:"column:facility_unique_id;size:64;index"`
	EatingDatetime               *time.Time                  `gorm:"column:eating_datetime"`
	SamplesEntryDatetime         *time.Time                  `gorm:"column:samples_entry_datetime"`
	SamplesResultDatetime        *time.Time                  `gorm:"column:samples_result_datetime"`
	FollowupDatetime             *time.Time                  `gorm:"column:followup_datetime"`
	ClosedDatetime               *time.Time                  `gorm:"column:closed_datetime"`
	ConsumedOnSite               *string                     `gorm:"column:consumed_on_site;size:20"`
	LastPestControl              *string                     `gorm:"column:last_pest_control;size:100"`
	SuspectedFood                *string                     `gorm:"column:suspected_food;size:255"`
	TotalConsumers               *int64                      `gorm:"column:total_consumers"`
	TotalSymptomatic             *int64                      `gorm:"column:total_symptomatic"`
	PatientSamplesTaken          *string                     `gorm:"column:patient_samples_taken;size:20"`
	PatientSamplesResults        *string                     `gorm:"column:patient_samples_results;type:text"`
	EstablishmentSamplesTaken    *string                     `gorm:"column:establishment_samples_taken;size:20"`
	EstablishmentSamplesResults  *string                     `gorm:"column:establishment_samples_results;type:text"`
	TimeBetweenFoodAndSymptoms   *string                     `gorm:"column:time_between_food_and_symptoms;size:100"`
	Symptoms                     *string                     `gorm:"column:symptoms;type:text"`
	EstablishmentActions         *string                     `gorm:"column:establishment_actions;type:text"`
	ProductionVolume             *string                     `gorm:"column:production_volume;size:100"`
	InitialDiagnosis             *string                     `gorm:"column:initial_diagnosis;type:text"`
	FinalDiagnosis               *string                     `gorm:"column:final_diagnosis;type:text"`
	FinalResult                  *string                     `gorm:"column:final_result;type:text"`
	InvestigationRecommendations *string                     `gorm:"column:investigation_recommendations;type:text"`
	InvestigationTeamMembers     *string                     `gorm:"column:investigation_team_members;type:text"`
	SupervisorEmpID              *int64                      `gorm:"column:supervisor_empid"`
	SectionHeadEmpID             *int64                      `gorm:"column:section_head_empid"`
	DivisionHeadEmpID            *int64                      `gorm:"column:division_head_empid"`
	SectionHeadDatetime          *time.Time                  `gorm:"column:section_head_datetime"`
	FormNumber                   *string                     `gorm:"column:form_number;size:64"`
	Attachments                  datatypes.JSONSlice[string] `gorm:"column:attachments"`
	Notes                        *string                     `gorm:"column:notes;type:text"`
	Audit
}

func (PoisonReportModel) TableName() string {
	return "poison_reports"
}

type PoisonContactModel struct {
	ID                int64   `gorm:"column:id;primaryKey;autoIncrement"`
	PoisonReportID    int64   `gorm:"column:poison_report_id;not null;index"`
	ContactName       string  `gorm:"column:contact_name;size:150;not null"`
	ContactAge        *int64  `gorm:"column:contact_age"`
	ContactGender     *string `gorm:"column:contact_gender;size:20"`
	ContactPhone      *string `gorm:"column:contact_phone;size:32"`
	ContactInfoSource *string `gorm:"column:contact_info_source;size:100"`
	Symptoms          *string `gorm:"column:symptoms;type:text"`
	Audit
}

func (PoisonContactModel) TableName() string {
	return "poison_contacts"
}

func (m *PoisonContactModel) GetID() int64         { return m.ID }
func (m *PoisonContactModel) GetParentID() int64   { return m.PoisonReportID }
func (m *PoisonContactModel) SetParentID(id int64) { m.PoisonReportID = id }

type PoisonMealModel struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement"`
	PoisonReportID int64   `gorm:"column:poison_report_id;not null;index"`
	DayNumber      *int64  `gorm:"column:day_number"`
	MealType       *string `gorm:"column:meal_type;size:50"`
	MealName       string  `gorm:"column:meal_name;size:200;not null"`
	MealDetails    *string `gorm:"column:meal_details;type:text"`
	Audit
}

func (PoisonMealModel) TableName() string {
	return "poison_meals"
}

func (m *PoisonMealModel) GetID() int64         { return m.ID }
func (m *PoisonMealModel) GetParentID() int64   { return m.PoisonReportID }
func (m *PoisonMealModel) SetParentID(id int64) { m.PoisonReportID = id }

// All lists the record models in dependency order.
func All() []any {
	return []any{
		&ComplaintModel{},
		&ComplaintProductModel{},
		&PoisonReportModel{},
		&PoisonContactModel{},
		&PoisonMealModel{},
	}
}
