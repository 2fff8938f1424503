package record

import (
	"context"
	"time"

	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

// Audit columns present on every record table.
const (
	ColCreatedBy = "created_by_empid"
	ColCreatedAt = "created_at"
	ColUpdatedBy = "updated_by_empid"
	ColUpdatedAt = "updated_at"
)

// Actor is the authenticated employee performing a write.
type Actor struct {
	EmpID int64
	Role  string
}

func (a Actor) Present() bool {
	return a.EmpID > 0
}

// RequireActor returns an unauthorized error when no employee is attached.
func RequireActor(a Actor) error {
	if !a.Present() {
		return errors.NewUnauthorizedError("authentication required")
	}
	return nil
}

// StampCreate sets all four audit columns.
func StampCreate(f *Fields, actor Actor, now time.Time) {
	f.Set(ColCreatedBy, actor.EmpID)
	f.Set(ColCreatedAt, now)
	StampUpdate(f, actor, now)
}

// StampUpdate sets the updated_* audit columns.
func StampUpdate(f *Fields, actor Actor, now time.Time) {
	f.Set(ColUpdatedBy, actor.EmpID)
	f.Set(ColUpdatedAt, now)
}

// Action is an operation subject to role policy.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Authorizer decides whether an actor may perform action on a record kind.
// A denial is returned as a forbidden error.
type Authorizer interface {
	Authorize(ctx context.Context, actor Actor, kind Kind, action Action) error
}
