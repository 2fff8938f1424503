package poisonreport

import "github.com/shjfcs/foodwatch/internal/domain/record"

const (
	ColReportDatetime   = "report_datetime"
	ColFacilityUniqueID = "facility_unique_id"
	ColEstablishmentID  = "establishment_unique_id"
	ColAttachments      = "attachments"
	ColPoisonReportID   = "poison_report_id"
	ColContactName      = "contact_name"
	ColMealName         = "meal_name"
	ColDayNumber        = "day_number"
	ColMealType         = "meal_type"
)

// AllowList is every client-writable report column. The attachments list is
// owned by the attachment manager and is not writable here.
var AllowList = record.NewAllowList(record.KindPoisonReport, []record.Column{
	{Name: ColEstablishmentID, Rule: record.Text},
	{Name: "source_type", Rule: record.Text},
	{Name: "source_name", Rule: record.Text},
	{Name: "source_area", Rule: record.Text},
	{Name: "source_activity", Rule: record.Text},
	{Name: "source_description", Rule: record.Text},
	{Name: ColReportDatetime, Rule: record.DateTime},
	{Name: "inspector_received_datetime", Rule: record.DateTime},
	{Name: "report_source", Rule: record.Text},
	{Name: "infection_officer", Rule: record.Text},
	{Name: "infection_officer_phone", Rule: record.Text},
	{Name: "hospital_name", Rule: record.Text},
	{Name: "admission_datetime", Rule: record.DateTime},
	{Name: "food_source", Rule: record.Text},
	{Name: ColFacilityUniqueID, Rule: record.Text},
	{Name: "eating_datetime", Rule: record.DateTime},
	{Name: "samples_entry_datetime", Rule: record.DateTime},
	{Name: "samples_result_datetime", Rule: record.DateTime},
	{Name: "followup_datetime", Rule: record.DateTime},
	{Name: "closed_datetime", Rule: record.DateTime},
	{Name: "consumed_on_site", Rule: record.Text},
	{Name: "last_pest_control", Rule: record.Text},
	{Name: "suspected_food", Rule: record.Text},
	{Name: "total_consumers", Rule: record.Integer},
	{Name: "total_symptomatic", Rule: record.Integer},
	{Name: "patient_samples_taken", Rule: record.Text},
	{Name: "patient_samples_results", Rule: record.Text},
	{Name: "establishment_samples_taken", Rule: record.Text},
	{Name: "establishment_samples_results", Rule: record.Text},
	{Name: "time_between_food_and_symptoms", Rule: record.Text},
	{Name: "symptoms", Rule: record.Text},
	{Name: "establishment_actions", Rule: record.Text},
	{Name: "production_volume", Rule: record.Text},
	{Name: "initial_diagnosis", Rule: record.Text},
	{Name: "final_diagnosis", Rule: record.Text},
	{Name: "final_result", Rule: record.Text},
	{Name: "investigation_recommendations", Rule: record.Text},
	{Name: "investigation_team_members", Rule: record.Text},
	{Name: "supervisor_empid", Rule: record.Integer},
	{Name: "section_head_empid", Rule: record.Integer},
	{Name: "division_head_empid", Rule: record.Integer},
	{Name: "section_head_datetime", Rule: record.DateTime},
	{Name: "form_number", Rule: record.Text},
	{Name: "notes", Rule: record.Text},
})

var ContactAllowList = record.NewAllowList(record.KindContact, []record.Column{
	{Name: ColContactName, Rule: record.Text},
	{Name: "contact_age", Rule: record.Integer},
	{Name: "contact_gender", Rule: record.Text},
	{Name: "contact_phone", Rule: record.Text},
	{Name: "contact_info_source", Rule: record.Text},
	{Name: "symptoms", Rule: record.Text},
})

var MealAllowList = record.NewAllowList(record.KindMeal, []record.Column{
	{Name: ColDayNumber, Rule: record.Integer},
	{Name: ColMealType, Rule: record.Text},
	{Name: ColMealName, Rule: record.Text},
	{Name: "meal_details", Rule: record.Text},
})

// ContactSpec describes people who shared the suspect food.
var ContactSpec = record.ChildSpec{
	Kind:         record.KindContact,
	Parent:       record.KindPoisonReport,
	ParentColumn: ColPoisonReportID,
	AllowList:    ContactAllowList,
	Required:     []string{ColContactName},
}

// MealSpec describes the meal history taken during the investigation.
var MealSpec = record.ChildSpec{
	Kind:         record.KindMeal,
	Parent:       record.KindPoisonReport,
	ParentColumn: ColPoisonReportID,
	AllowList:    MealAllowList,
	Required:     []string{ColMealName},
}
