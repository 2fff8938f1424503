package attachment

import (
	"context"
	"io"

	"github.com/shjfcs/foodwatch/internal/application/upload"
	"github.com/shjfcs/foodwatch/internal/domain/attachment"
)

// Stager accepts uploads that are not yet tied to a record.
type Stager interface {
	Policy() upload.Policy
	StageUpload(ctx context.Context, r io.Reader, originalName string) (string, error)
	Discard(ctx context.Context, stagedName string) error
}

// Owner manages the committed files of one owner kind.
type Owner interface {
	Kind() attachment.OwnerKind
	AttachUpload(ctx context.Context, ownerID int64, r io.Reader, originalName string) (string, error)
	Promote(ctx context.Context, ownerID int64, stagedName string) (string, error)
	Detach(ctx context.Context, ownerID int64, filename string) error
	Open(ctx context.Context, ownerID int64, filename string) (io.ReadCloser, error)
}
