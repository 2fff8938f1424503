package attachment

import (
	"context"
	"slices"
	"sync"

	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
)

// memOwnerRepository keeps committed lists in memory.
type memOwnerRepository struct {
	kind  attachment.OwnerKind
	mu    sync.Mutex
	lists map[int64][]string
}

func newMemOwnerRepository(kind attachment.OwnerKind, ids ...int64) *memOwnerRepository {
	r := &memOwnerRepository{kind: kind, lists: map[int64][]string{}}
	for _, id := range ids {
		r.lists[id] = []string{}
	}
	return r
}

func (r *memOwnerRepository) Kind() attachment.OwnerKind {
	return r.kind
}

func (r *memOwnerRepository) ListAttachments(ctx context.Context, ownerID int64) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.lists[ownerID]
	if !ok {
		return nil, errors.NewNotFoundError(r.kind.Record.Label() + " not found")
	}
	return slices.Clone(list), nil
}

func (r *memOwnerRepository) UpdateAttachments(ctx context.Context, ownerID int64, fn func(current []string) ([]string, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.lists[ownerID]
	if !ok {
		return errors.NewNotFoundError(r.kind.Record.Label() + " not found")
	}
	next, err := fn(slices.Clone(list))
	if err != nil {
		return err
	}
	r.lists[ownerID] = next
	return nil
}

func (r *memOwnerRepository) LockAttachments(ctx context.Context, ownerID int64) ([]string, error) {
	return r.ListAttachments(ctx, ownerID)
}
