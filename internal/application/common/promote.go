package common

import (
	"context"

	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

// PromotePending promotes staged names onto an owner whose row write has
// already committed. A failed promotion does not undo the write: it is
// logged and the names promoted so far are returned.
func PromotePending(ctx context.Context, mgr AttachmentManager, ownerID int64, stagedNames []string, log logger.Interface) []string {
	if len(stagedNames) == 0 || mgr == nil {
		return []string{}
	}

	promoted, err := mgr.PromoteAll(ctx, ownerID, stagedNames)
	if err != nil {
		log.Errorw("failed to promote pending attachments",
			"owner_id", ownerID,
			"pending", stagedNames,
			"promoted", promoted,
			"error", err,
		)
	}
	if promoted == nil {
		promoted = []string{}
	}
	return promoted
}
