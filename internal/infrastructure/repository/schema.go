package repository

import (
	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/infrastructure/persistence"
)

// ExpectedSchema lists every table and column the repositories touch.
func ExpectedSchema() []persistence.TableColumns {
	return persistence.ExpectedTables(
		[]record.AllowList{
			complaint.AllowList,
			complaint.ProductAllowList,
			poisonreport.AllowList,
			poisonreport.ContactAllowList,
			poisonreport.MealAllowList,
		},
		map[record.Kind][]string{
			attachment.ComplaintOwner.Record:    {complaint.ColAttachmentURL},
			attachment.PoisonReportOwner.Record: {poisonreport.ColAttachments},
			record.KindProduct:                  {complaint.ColComplaintID},
			record.KindContact:                  {poisonreport.ColPoisonReportID},
			record.KindMeal:                     {poisonreport.ColPoisonReportID},
		},
	)
}
