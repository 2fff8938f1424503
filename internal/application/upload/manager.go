package upload

import (
	"context"
	stderrors "errors"
	"io"
	"slices"
	"time"

	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/infrastructure/metrics"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

// Manager moves staged files into the committed list of one owner kind and
// removes them again. The list lives on the owner row; every change to it
// goes through OwnerRepository.UpdateAttachments.
type Manager struct {
	store    attachment.FileStore
	owners   attachment.OwnerRepository
	kind     attachment.OwnerKind
	stager   *Stager
	recorder Recorder
	now      func() time.Time
	logger   logger.Interface
}

func NewManager(
	store attachment.FileStore,
	owners attachment.OwnerRepository,
	stager *Stager,
	recorder Recorder,
	logger logger.Interface,
) *Manager {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	kind := owners.Kind()
	return &Manager{
		store:    store,
		owners:   owners,
		kind:     kind,
		stager:   stager,
		recorder: recorder,
		now:      time.Now,
		logger:   logger.With("owner", kind.Name),
	}
}

func (m *Manager) Kind() attachment.OwnerKind {
	return m.kind
}

// Promote moves a staged file to the owner's directory and appends it to
// the list. A staged file that no longer exists is skipped with "" and no
// error, so a resubmitted form does not fail on names it already promoted.
func (m *Manager) Promote(ctx context.Context, ownerID int64, stagedName string) (string, error) {
	staged := attachment.BaseName(stagedName)
	if staged == "" {
		return "", errors.NewValidationError("staged file name is required")
	}

	committed := m.kind.CommittedName(ownerID, m.now().Unix(), staged)
	dst := m.kind.Key(committed)

	err := m.store.Move(ctx, attachment.StagedKey(staged), dst)
	switch {
	case stderrors.Is(err, attachment.ErrNotExist):
		m.logger.Infow("staged file already gone, skipping", "owner_id", ownerID, "staged", staged)
		return "", nil
	case stderrors.Is(err, attachment.ErrExists):
		return "", errors.NewConflictError("attachment already exists", committed)
	case err != nil:
		m.logger.Errorw("failed to move staged file", "owner_id", ownerID, "staged", staged, "error", err)
		return "", errors.NewStorageError("failed to store attachment")
	}

	var evicted []string
	err = m.owners.UpdateAttachments(ctx, ownerID, func(current []string) ([]string, error) {
		next := append(slices.Clone(current), committed)
		kept, dropped := m.kind.Trim(next)
		evicted = dropped
		return kept, nil
	})
	if err != nil {
		if delErr := m.store.Delete(ctx, dst); delErr != nil {
			m.logger.Warnw("failed to remove orphaned attachment", "key", dst, "error", delErr)
		}
		m.logger.Errorw("failed to record attachment", "owner_id", ownerID, "name", committed, "error", err)
		return "", errors.WrapStorage(err, "failed to record attachment")
	}

	m.deleteFiles(ctx, ownerID, evicted)
	m.recorder.AttachmentOp(m.kind.Name, metrics.OpPromoted, 1)
	m.logger.Infow("attachment promoted", "owner_id", ownerID, "name", committed)
	return committed, nil
}

// PromoteAll promotes each staged name in order and returns the committed
// names. It stops at the first failure.
func (m *Manager) PromoteAll(ctx context.Context, ownerID int64, stagedNames []string) ([]string, error) {
	var committed []string
	for _, staged := range stagedNames {
		name, err := m.Promote(ctx, ownerID, staged)
		if err != nil {
			return committed, err
		}
		if name != "" {
			committed = append(committed, name)
		}
	}
	return committed, nil
}

// AttachUpload stages r and promotes it at once.
func (m *Manager) AttachUpload(ctx context.Context, ownerID int64, r io.Reader, originalName string) (string, error) {
	if _, err := m.owners.ListAttachments(ctx, ownerID); err != nil {
		return "", errors.WrapStorage(err, "failed to load attachments")
	}

	staged, err := m.stager.StageUpload(ctx, r, originalName)
	if err != nil {
		return "", err
	}

	name, err := m.Promote(ctx, ownerID, staged)
	if err != nil {
		if discardErr := m.stager.Discard(ctx, staged); discardErr != nil {
			m.logger.Warnw("failed to discard staged upload", "staged", staged, "error", discardErr)
		}
		return "", err
	}
	if name == "" {
		return "", errors.NewStorageError("staged upload disappeared before promotion")
	}
	return name, nil
}

// Detach removes filename from the list and then deletes the file. A name
// absent from the list is a not-found error and nothing is changed.
func (m *Manager) Detach(ctx context.Context, ownerID int64, filename string) error {
	name := attachment.BaseName(filename)
	if name == "" {
		return errors.NewNotFoundError("attachment not found")
	}

	err := m.owners.UpdateAttachments(ctx, ownerID, func(current []string) ([]string, error) {
		i := slices.Index(current, name)
		if i < 0 {
			return nil, errors.NewNotFoundError("attachment not found", name)
		}
		return slices.Delete(slices.Clone(current), i, i+1), nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			m.logger.Errorw("failed to detach attachment", "owner_id", ownerID, "name", name, "error", err)
		}
		return errors.WrapStorage(err, "failed to detach attachment")
	}

	m.deleteFiles(ctx, ownerID, []string{name})
	m.recorder.AttachmentOp(m.kind.Name, metrics.OpDetached, 1)
	m.logger.Infow("attachment detached", "owner_id", ownerID, "name", name)
	return nil
}

// Files returns the committed list of an owner.
func (m *Manager) Files(ctx context.Context, ownerID int64) ([]string, error) {
	names, err := m.owners.ListAttachments(ctx, ownerID)
	if err != nil {
		if !errors.IsAppError(err) {
			m.logger.Errorw("failed to list attachments", "owner_id", ownerID, "error", err)
		}
		return nil, errors.WrapStorage(err, "failed to load attachments")
	}
	return names, nil
}

// LockFiles returns the committed list under a row lock held by the
// transaction in ctx. An owner delete calls it inside its transaction so a
// concurrent Promote either commits first and is listed, or finds the row
// gone and removes its moved file.
func (m *Manager) LockFiles(ctx context.Context, ownerID int64) ([]string, error) {
	names, err := m.owners.LockAttachments(ctx, ownerID)
	if err != nil {
		if !errors.IsAppError(err) {
			m.logger.Errorw("failed to lock attachments", "owner_id", ownerID, "error", err)
		}
		return nil, errors.WrapStorage(err, "failed to load attachments")
	}
	return names, nil
}

// PurgeAll deletes the committed files of an owner whose row is being
// removed. The caller reads names with LockFiles inside the delete
// transaction and purges after commit.
// Failures are logged and never returned.
func (m *Manager) PurgeAll(ctx context.Context, ownerID int64, names []string) {
	n := m.deleteFiles(ctx, ownerID, names)
	if n > 0 {
		m.recorder.AttachmentOp(m.kind.Name, metrics.OpPurged, n)
	}
}

// Open streams a committed file. Only names present in the owner's list can
// be opened.
func (m *Manager) Open(ctx context.Context, ownerID int64, filename string) (io.ReadCloser, error) {
	name := attachment.BaseName(filename)
	names, err := m.Files(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if name == "" || !slices.Contains(names, name) {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	rc, err := m.store.Open(ctx, m.kind.Key(name))
	if stderrors.Is(err, attachment.ErrNotExist) {
		m.logger.Warnw("listed attachment missing from store", "owner_id", ownerID, "name", name)
		return nil, errors.NewNotFoundError("attachment not found")
	}
	if err != nil {
		m.logger.Errorw("failed to open attachment", "owner_id", ownerID, "name", name, "error", err)
		return nil, errors.NewStorageError("failed to read attachment")
	}
	return rc, nil
}

func (m *Manager) deleteFiles(ctx context.Context, ownerID int64, names []string) int {
	deleted := 0
	for _, name := range names {
		err := m.store.Delete(ctx, m.kind.Key(name))
		switch {
		case stderrors.Is(err, attachment.ErrNotExist):
			m.logger.Warnw("attachment file already missing", "owner_id", ownerID, "name", name)
		case err != nil:
			m.logger.Errorw("failed to delete attachment file", "owner_id", ownerID, "name", name, "error", err)
		default:
			deleted++
		}
	}
	return deleted
}
