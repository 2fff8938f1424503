// Package upload stages incoming files and moves them into the committed
// attachment lists of complaints and poison reports.
package upload

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/infrastructure/metrics"
	"github.com/shjfcs/foodwatch/internal/shared/config"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/id"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

const (
	DefaultMaxBytes  = 10 << 20
	DefaultStagedTTL = 24 * time.Hour

	collisionSuffixLength = 6
)

var DefaultExtensions = []string{"pdf", "jpg", "jpeg", "png"}

// Policy bounds what may be staged.
type Policy struct {
	MaxBytes          int64
	AllowedExtensions []string
	StagedTTL         time.Duration
}

// PolicyFromConfig fills unset values with the defaults.
func PolicyFromConfig(cfg config.AttachmentConfig) Policy {
	p := Policy{
		MaxBytes:          cfg.MaxBytes,
		AllowedExtensions: cfg.AllowedExtensions,
		StagedTTL:         cfg.StagedTTL,
	}
	if p.MaxBytes <= 0 {
		p.MaxBytes = DefaultMaxBytes
	}
	if len(p.AllowedExtensions) == 0 {
		p.AllowedExtensions = DefaultExtensions
	}
	if p.StagedTTL <= 0 {
		p.StagedTTL = DefaultStagedTTL
	}
	return p
}

func (p Policy) allows(ext string) bool {
	return ext != "" && slices.ContainsFunc(p.AllowedExtensions, func(a string) bool {
		return strings.EqualFold(strings.TrimPrefix(a, "."), ext)
	})
}

// Recorder counts attachment operations.
type Recorder interface {
	AttachmentOp(owner, op string, n int)
}

type nopRecorder struct{}

func (nopRecorder) AttachmentOp(string, string, int) {}

// Stager writes uploads into the staging directory. Staged files belong to
// no record until a Manager promotes them.
type Stager struct {
	store    attachment.FileStore
	policy   Policy
	recorder Recorder
	now      func() time.Time
	logger   logger.Interface
}

func NewStager(store attachment.FileStore, policy Policy, recorder Recorder, logger logger.Interface) *Stager {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Stager{
		store:    store,
		policy:   policy,
		recorder: recorder,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *Stager) Policy() Policy {
	return s.policy
}

// StageUpload reads r and stores it as temp/temp_<unix>_<base>.<ext>,
// returning the staged name.
func (s *Stager) StageUpload(ctx context.Context, r io.Reader, originalName string) (string, error) {
	base, ext := attachment.SplitName(originalName)
	if base == "" && ext == "" {
		return "", errors.NewUploadError("file name is required")
	}
	if !s.policy.allows(ext) {
		return "", errors.NewUploadError(fmt.Sprintf("file type %q is not allowed", ext),
			"allowed: "+strings.Join(s.policy.AllowedExtensions, ", "))
	}

	data, err := io.ReadAll(io.LimitReader(r, s.policy.MaxBytes+1))
	if err != nil {
		s.logger.Errorw("failed to read upload", "name", originalName, "error", err)
		return "", errors.NewUploadError("failed to read upload")
	}
	if int64(len(data)) > s.policy.MaxBytes {
		return "", errors.NewUploadTooLargeError(fmt.Sprintf("file exceeds %d bytes", s.policy.MaxBytes))
	}

	safe := attachment.SanitizeBase(base)
	unix := s.now().Unix()
	name := fmt.Sprintf("temp_%d_%s.%s", unix, safe, ext)

	err = s.store.Create(ctx, attachment.StagedKey(name), bytes.NewReader(data))
	if stderrors.Is(err, attachment.ErrExists) {
		suffix, idErr := id.Generate(collisionSuffixLength)
		if idErr != nil {
			return "", errors.NewInternalError("failed to name upload")
		}
		name = fmt.Sprintf("temp_%d_%s_%s.%s", unix, safe, suffix, ext)
		err = s.store.Create(ctx, attachment.StagedKey(name), bytes.NewReader(data))
		if stderrors.Is(err, attachment.ErrExists) {
			return "", errors.NewConflictError("a staged file with this name already exists")
		}
	}
	if err != nil {
		s.logger.Errorw("failed to stage upload", "name", name, "error", err)
		return "", errors.NewStorageError("failed to store upload")
	}

	s.recorder.AttachmentOp("", metrics.OpStaged, 1)
	s.logger.Infow("upload staged", "name", name, "bytes", len(data))
	return name, nil
}

// Discard deletes a staged file. A file that is already gone is not an error.
func (s *Stager) Discard(ctx context.Context, stagedName string) error {
	name := attachment.BaseName(stagedName)
	if name == "" {
		return errors.NewValidationError("staged file name is required")
	}

	err := s.store.Delete(ctx, attachment.StagedKey(name))
	if err != nil && !stderrors.Is(err, attachment.ErrNotExist) {
		s.logger.Errorw("failed to discard staged upload", "name", name, "error", err)
		return errors.NewStorageError("failed to discard upload")
	}

	return nil
}

// Reap deletes staged files last modified before olderThan.
func (s *Stager) Reap(ctx context.Context, olderThan time.Time) (int, error) {
	files, err := s.store.List(ctx, attachment.StagingDir+"/")
	if err != nil {
		return 0, fmt.Errorf("failed to list staged uploads: %w", err)
	}

	reaped := 0
	for _, f := range files {
		if !f.ModTime.Before(olderThan) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return reaped, err
		}
		err := s.store.Delete(ctx, f.Key)
		if err != nil && !stderrors.Is(err, attachment.ErrNotExist) {
			s.logger.Warnw("failed to reap staged upload", "key", f.Key, "error", err)
			continue
		}
		reaped++
	}

	if reaped > 0 {
		s.recorder.AttachmentOp("", metrics.OpReaped, reaped)
	}
	return reaped, nil
}

// ReapJob adapts Stager.Reap to the scheduler, deleting files older than
// the policy TTL on each run.
type ReapJob struct {
	stager *Stager
}

func NewReapJob(stager *Stager) *ReapJob {
	return &ReapJob{stager: stager}
}

func (j *ReapJob) Execute(ctx context.Context) (int, error) {
	ttl := j.stager.policy.StagedTTL
	if ttl <= 0 {
		ttl = DefaultStagedTTL
	}
	return j.stager.Reap(ctx, j.stager.now().Add(-ttl))
}
