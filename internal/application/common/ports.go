// Package common holds the ports shared by the record use cases.
package common

import "context"

// TransactionManager runs fn in one database transaction carried by ctx.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AttachmentManager is the part of the upload manager a record use case
// needs: promotion on create or update, and purging on delete.
type AttachmentManager interface {
	PromoteAll(ctx context.Context, ownerID int64, stagedNames []string) ([]string, error)
	// LockFiles reads the list under the row lock of the transaction in ctx.
	LockFiles(ctx context.Context, ownerID int64) ([]string, error)
	PurgeAll(ctx context.Context, ownerID int64, names []string)
}

// WriteRecorder counts committed record writes.
type WriteRecorder interface {
	RecordWrite(kind, op string)
}

// Write operations passed to WriteRecorder.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

type nopRecorder struct{}

func (nopRecorder) RecordWrite(string, string) {}

// RecorderOrNop returns r, or a recorder that drops everything when r is nil.
func RecorderOrNop(r WriteRecorder) WriteRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
