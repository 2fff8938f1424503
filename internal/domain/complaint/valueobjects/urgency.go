// Package valueobjects holds the complaint classification tables: the
// category to urgency tier mapping and the section action to status mapping.
package valueobjects

import "strings"

// Urgency is the response-speed tier stored in complaints.response_speed.
type Urgency string

const (
	UrgencyUrgent      Urgency = "عاجلة خلال يوم عمل واحد"
	UrgencyNormal      Urgency = "عادية خلال خمس أيام عمل"
	UrgencyEmergency   Urgency = "طارئة استجابة فورية"
	UrgencyComplex     Urgency = "معقدة خلال فترة غير محددة"
	UrgencyUnspecified Urgency = "غير محددة"
)

func (u Urgency) String() string {
	return string(u)
}

// Category is a complaint classification chosen on intake.
type Category string

const (
	CategoryGeneralHygiene        Category = "النظافة العامة"
	CategoryPreparationStorage    Category = "طرق اعداد وحفظ"
	CategoryCommercialFraud       Category = "الغش التجارى"
	CategoryPests                 Category = "الحشرات والقوارض"
	CategoryGeneralViolations     Category = "المخالفات العامة"
	CategoryProduceFishMarket     Category = "مخالفات سوق الخضار والسمك"
	CategoryVeterinary            Category = "مخالفات قسم البيطرة"
	CategoryPoisoningNoReport     Category = "اشتباة تسمم غذائى بدون تقرير مستشفى"
	CategoryBuildingsFacilities   Category = "المبانى والمنشات"
	CategorySuspectedPoisoning    Category = "اشتباة تسمم غذائى"
	CategoryPrecautionaryMeasures Category = "إجراءات احترازية"
	CategoryMultiAgency           Category = "شكوى تحتاج الى الاشتراك مع جهات اخرى"
)

// categories keeps the form order; urgencyByCategory is the lookup.
var categories = []Category{
	CategoryGeneralHygiene,
	CategoryPreparationStorage,
	CategoryCommercialFraud,
	CategoryPests,
	CategoryGeneralViolations,
	CategoryProduceFishMarket,
	CategoryVeterinary,
	CategoryPoisoningNoReport,
	CategoryBuildingsFacilities,
	CategorySuspectedPoisoning,
	CategoryPrecautionaryMeasures,
	CategoryMultiAgency,
}

var urgencyByCategory = map[Category]Urgency{
	CategoryGeneralHygiene:        UrgencyUrgent,
	CategoryPreparationStorage:    UrgencyUrgent,
	CategoryCommercialFraud:       UrgencyUrgent,
	CategoryPests:                 UrgencyUrgent,
	CategoryGeneralViolations:     UrgencyUrgent,
	CategoryProduceFishMarket:     UrgencyUrgent,
	CategoryVeterinary:            UrgencyUrgent,
	CategoryPoisoningNoReport:     UrgencyUrgent,
	CategoryBuildingsFacilities:   UrgencyNormal,
	CategorySuspectedPoisoning:    UrgencyEmergency,
	CategoryPrecautionaryMeasures: UrgencyEmergency,
	CategoryMultiAgency:           UrgencyComplex,
}

// DeriveUrgency maps a category to its urgency tier. Unknown or blank input
// yields UrgencyUnspecified.
func DeriveUrgency(category string) Urgency {
	if u, ok := urgencyByCategory[Category(strings.TrimSpace(category))]; ok {
		return u
	}
	return UrgencyUnspecified
}

// CategoryOption pairs a category with its tier for lookup responses.
type CategoryOption struct {
	Category Category `json:"category"`
	Urgency  Urgency  `json:"urgency"`
}

// Categories returns every known category with its tier, in form order.
func Categories() []CategoryOption {
	out := make([]CategoryOption, len(categories))
	for i, c := range categories {
		out[i] = CategoryOption{Category: c, Urgency: urgencyByCategory[c]}
	}
	return out
}
