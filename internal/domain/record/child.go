package record

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Child is a row owned by a parent record: a complaint product, or a
// poison report contact or meal.
type Child struct {
	ID        int64
	ParentID  int64
	Fields    *Fields
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChildSpec describes a child kind: its parent, the column linking to it,
// the writable columns and the columns that must be non-blank on create.
type ChildSpec struct {
	Kind         Kind
	Parent       Kind
	ParentColumn string
	AllowList    AllowList
	Required     []string
}

// MissingRequired returns the first required column that is absent or blank.
func (s ChildSpec) MissingRequired(f *Fields) (string, bool) {
	for _, col := range s.Required {
		if strings.TrimSpace(f.String(col)) == "" {
			return col, true
		}
	}
	return "", false
}

// ChildRepository persists the rows of one child kind.
type ChildRepository interface {
	Spec() ChildSpec
	Create(ctx context.Context, parentID int64, f *Fields) (int64, error)
	// CreateBatch inserts every row or none. A failing row is reported as
	// a *RowError.
	CreateBatch(ctx context.Context, parentID int64, rows []*Fields) error
	GetByID(ctx context.Context, id int64) (*Child, error)
	Update(ctx context.Context, id int64, f *Fields) error
	Delete(ctx context.Context, id int64) error
	DeleteByParent(ctx context.Context, parentID int64) error
	ListByParent(ctx context.Context, parentID int64) ([]*Child, error)
}

// ParentChecker reports whether a parent record exists.
type ParentChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// RowError identifies the batch row (0-based) that failed to insert.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row+1, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
