// Package record holds the pieces shared by every workflow record kind:
// column allow-lists, the ordered edit set built from client input, audit
// stamping and the acting employee.
package record

// Kind identifies a persisted record type.
type Kind string

const (
	KindComplaint    Kind = "complaint"
	KindProduct      Kind = "product"
	KindPoisonReport Kind = "poison_report"
	KindContact      Kind = "contact"
	KindMeal         Kind = "meal"
)

var kindTables = map[Kind]string{
	KindComplaint:    "complaints",
	KindProduct:      "complaint_products",
	KindPoisonReport: "poison_reports",
	KindContact:      "poison_contacts",
	KindMeal:         "poison_meals",
}

var kindLabels = map[Kind]string{
	KindComplaint:    "complaint",
	KindProduct:      "product",
	KindPoisonReport: "poison report",
	KindContact:      "contact",
	KindMeal:         "meal",
}

// Table returns the table backing the kind.
func (k Kind) Table() string {
	return kindTables[k]
}

// Label returns a human-readable name for messages.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	_, ok := kindTables[k]
	return ok
}
