package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/shjfcs/foodwatch/internal/domain/record"
	"github.com/shjfcs/foodwatch/internal/interfaces/http/handlers/common"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
	"github.com/shjfcs/foodwatch/internal/shared/utils"
)

// PermissionMiddleware guards routes whose handlers do not pass through a
// use case that authorizes on its own, such as attachment edits.
type PermissionMiddleware struct {
	authorizer record.Authorizer
	logger     logger.Interface
}

func NewPermissionMiddleware(authorizer record.Authorizer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		authorizer: authorizer,
		logger:     logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(kind record.Kind, action record.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := common.ActorFromContext(c)
		if err := m.authorizer.Authorize(c.Request.Context(), actor, kind, action); err != nil {
			m.logger.Warnw("permission denied",
				"empid", actor.EmpID,
				"role", actor.Role,
				"kind", kind,
				"action", action,
			)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
