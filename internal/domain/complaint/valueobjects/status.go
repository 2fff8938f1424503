package valueobjects

import "strings"

// Status is the value stored in complaints.complaint_status.
type Status string

const (
	StatusNone       Status = ""
	StatusNew        Status = "جديدة"
	StatusInvalid    Status = "الشكوى غير صحيحة"
	StatusValid      Status = "الشكوى صحيحة"
	StatusInProgress Status = "الشكوى قيد الاجراء"
	StatusReferred   Status = "تم تحويل الشكوى الى جهة الاختصاص"
	StatusClosed     Status = "تم الإغلاق"
)

func (s Status) String() string {
	return string(s)
}

// SectionAction is the outcome the inspection section records.
type SectionAction string

const (
	ActionFile            SectionAction = "حفظ"
	ActionViolation       SectionAction = "مخالفة"
	ActionSeizure         SectionAction = "تحفظ"
	ActionSample          SectionAction = "اخذ عينة"
	ActionWarning         SectionAction = "انذار"
	ActionInspectorFollow SectionAction = "متابعة من المفتش"
	ActionReferral        SectionAction = "التحويل الى جهة الاختصاص"
)

var sectionActions = []SectionAction{
	ActionFile,
	ActionViolation,
	ActionSeizure,
	ActionSample,
	ActionWarning,
	ActionInspectorFollow,
	ActionReferral,
}

var statusByAction = map[SectionAction]Status{
	ActionFile:            StatusInvalid,
	ActionViolation:       StatusValid,
	ActionSeizure:         StatusInProgress,
	ActionSample:          StatusInProgress,
	ActionWarning:         StatusInProgress,
	ActionInspectorFollow: StatusInProgress,
	ActionReferral:        StatusReferred,
}

// DeriveStatus maps a section action to the complaint status it implies.
// Unknown or blank input yields StatusNone, meaning no derivation.
func DeriveStatus(action string) Status {
	return statusByAction[SectionAction(strings.TrimSpace(action))]
}

// SectionActionOption pairs an action with its derived status for lookups.
type SectionActionOption struct {
	Action SectionAction `json:"action"`
	Status Status        `json:"status"`
}

func SectionActions() []SectionActionOption {
	out := make([]SectionActionOption, len(sectionActions))
	for i, a := range sectionActions {
		out[i] = SectionActionOption{Action: a, Status: statusByAction[a]}
	}
	return out
}
