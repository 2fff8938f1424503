package attachment

import (
	"context"
	"fmt"
	"path"

	"github.com/shjfcs/foodwatch/internal/domain/record"
)

// StagingDir holds uploads not yet promoted to an owner.
const StagingDir = "temp"

// OwnerKind describes a record kind that owns committed files.
type OwnerKind struct {
	// Name is the URL segment for the kind.
	Name   string
	Record record.Kind
	Dir    string
	Prefix string
	// Capacity caps the list length; 0 means unbounded. When a promotion
	// exceeds the cap the oldest names are evicted.
	Capacity int
}

var (
	ComplaintOwner = OwnerKind{
		Name:     "complaints",
		Record:   record.KindComplaint,
		Dir:      "complaints",
		Prefix:   "cp",
		Capacity: 1,
	}
	PoisonReportOwner = OwnerKind{
		Name:   "poison-reports",
		Record: record.KindPoisonReport,
		Dir:    "poison_reports",
		Prefix: "pr",
	}
)

// OwnerKindByName resolves a URL segment to an owner kind.
func OwnerKindByName(name string) (OwnerKind, bool) {
	for _, k := range []OwnerKind{ComplaintOwner, PoisonReportOwner} {
		if k.Name == name {
			return k, true
		}
	}
	return OwnerKind{}, false
}

// Key returns the store key of a committed file.
func (k OwnerKind) Key(name string) string {
	return path.Join(k.Dir, name)
}

// CommittedName is the name a staged file takes when promoted to owner id.
func (k OwnerKind) CommittedName(ownerID, unix int64, stagedName string) string {
	return fmt.Sprintf("%s_%d_%d_%s", k.Prefix, ownerID, unix, stagedName)
}

// Trim applies the capacity to names, returning the kept and evicted names.
func (k OwnerKind) Trim(names []string) (kept, evicted []string) {
	if k.Capacity <= 0 || len(names) <= k.Capacity {
		return names, nil
	}
	cut := len(names) - k.Capacity
	return names[cut:], names[:cut]
}

// StagedKey returns the store key of a staged file.
func StagedKey(name string) string {
	return path.Join(StagingDir, name)
}

// OwnerRepository reads and mutates the committed file list of one owner
// kind. The list is the only record of which committed files exist.
type OwnerRepository interface {
	Kind() OwnerKind
	// ListAttachments returns the list, or a not-found error if the owner
	// row is missing.
	ListAttachments(ctx context.Context, ownerID int64) ([]string, error)
	// UpdateAttachments re-reads the list under a row lock, passes it to fn
	// and stores the result in the same transaction. Concurrent updates for
	// one owner are serialized.
	UpdateAttachments(ctx context.Context, ownerID int64, fn func(current []string) ([]string, error)) error
	// LockAttachments reads the list under a row lock held by the
	// transaction carried in ctx, so no promotion can commit until that
	// transaction ends.
	LockAttachments(ctx context.Context, ownerID int64) ([]string, error)
}
