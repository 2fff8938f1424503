package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

// ParseIDParam parses a positive integer record id from a URL path parameter.
// entityName is used in error messages (e.g., "complaint", "meal").
func ParseIDParam(c *gin.Context, paramName, entityName string) (int64, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return id, nil
}
