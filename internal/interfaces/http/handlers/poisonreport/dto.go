package poisonreport

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shjfcs/foodwatch/internal/domain/poisonreport"
	"github.com/shjfcs/foodwatch/internal/shared/biztime"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

// SearchReportsRequest carries the search parameters of GET /poison-reports.
type SearchReportsRequest struct {
	Query    string `form:"q" binding:"omitempty,max=200"`
	Facility string `form:"facility" binding:"omitempty,max=100"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Limit    int    `form:"limit" binding:"omitempty,min=0"`
}

// ToFilter parses the date bounds. A bare date covers the whole business
// day: date_from starts at its midnight and date_to ends at its last instant.
func (r *SearchReportsRequest) ToFilter() (poisonreport.SearchFilter, error) {
	filter := poisonreport.SearchFilter{
		Query:    strings.TrimSpace(r.Query),
		Facility: strings.TrimSpace(r.Facility),
		Limit:    r.Limit,
	}

	from, err := parseBound("date_from", r.DateFrom, false)
	if err != nil {
		return filter, err
	}
	to, err := parseBound("date_to", r.DateTo, true)
	if err != nil {
		return filter, err
	}
	filter.DateFrom, filter.DateTo = from, to
	return filter, nil
}

func parseBound(name, value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if day, err := time.ParseInLocation(time.DateOnly, value, biztime.Location()); err == nil {
		if endOfDay {
			day = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		t := day.UTC()
		return &t, nil
	}

	t, err := biztime.ParseDateTime(value)
	if err != nil {
		return nil, errors.NewValidationError(name + " must be a date or date/time")
	}
	return &t, nil
}

func parseSearchReportsRequest(c *gin.Context) (poisonreport.SearchFilter, error) {
	var req SearchReportsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return poisonreport.SearchFilter{}, errors.NewValidationError("invalid search parameters", err.Error())
	}
	return req.ToFilter()
}

