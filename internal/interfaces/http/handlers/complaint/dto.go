package complaint

import (
	"github.com/gin-gonic/gin"

	"github.com/shjfcs/foodwatch/internal/domain/complaint"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

// ListComplaintsRequest carries the list filters accepted on GET /complaints.
type ListComplaintsRequest struct {
	EstablishmentUniqueID  string `form:"establishment_unique_id" binding:"omitempty,max=100"`
	ComplaintsSource       string `form:"complaints_source" binding:"omitempty,max=100"`
	HotlineComplaintNumber string `form:"hotline_complaint_number" binding:"omitempty,max=100"`
	ComplainantName        string `form:"complainant_name" binding:"omitempty,max=200"`
	ComplaintCategory      string `form:"complaint_category" binding:"omitempty,max=200"`
	ComplaintStatus        string `form:"complaint_status" binding:"omitempty,max=100"`
	CreatedByEmpID         *int64 `form:"created_by_empid" binding:"omitempty,gt=0"`
	SupervisorEmpID        *int64 `form:"supervisor_empid" binding:"omitempty,gt=0"`
	ManagerEmpID           *int64 `form:"manager_empid" binding:"omitempty,gt=0"`
	Limit                  int    `form:"limit" binding:"omitempty,min=0"`
}

func (r *ListComplaintsRequest) ToFilter() complaint.ListFilter {
	return complaint.ListFilter{
		EstablishmentUniqueID:  r.EstablishmentUniqueID,
		ComplaintsSource:       r.ComplaintsSource,
		HotlineComplaintNumber: r.HotlineComplaintNumber,
		ComplainantName:        r.ComplainantName,
		ComplaintCategory:      r.ComplaintCategory,
		ComplaintStatus:        r.ComplaintStatus,
		CreatedByEmpID:         r.CreatedByEmpID,
		SupervisorEmpID:        r.SupervisorEmpID,
		ManagerEmpID:           r.ManagerEmpID,
		Limit:                  r.Limit,
	}
}

func parseListComplaintsRequest(c *gin.Context) (*ListComplaintsRequest, error) {
	var req ListComplaintsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, errors.NewValidationError("invalid list filter", err.Error())
	}
	return &req, nil
}
