// Package storage selects the attachment file store driver.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/infrastructure/storage/local"
	"github.com/shjfcs/foodwatch/internal/infrastructure/storage/s3"
	sharedConfig "github.com/shjfcs/foodwatch/internal/shared/config"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// New opens the store named by cfg.Driver. An empty driver means local.
func New(ctx context.Context, cfg sharedConfig.AttachmentConfig, s3cfg sharedConfig.S3Config) (attachment.FileStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverLocal:
		return local.New(cfg.LocalRoot)
	case DriverS3:
		return s3.New(ctx, s3cfg)
	default:
		return nil, fmt.Errorf("unknown attachment driver %q", cfg.Driver)
	}
}
