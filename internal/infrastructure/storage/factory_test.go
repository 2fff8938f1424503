package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shjfcs/foodwatch/internal/infrastructure/storage/local"
	sharedConfig "github.com/shjfcs/foodwatch/internal/shared/config"
)

func TestNew(t *testing.T) {
	store, err := New(context.Background(), sharedConfig.AttachmentConfig{LocalRoot: t.TempDir()}, sharedConfig.S3Config{})
	require.NoError(t, err)
	assert.IsType(t, &local.Store{}, store)

	_, err = New(context.Background(), sharedConfig.AttachmentConfig{Driver: "s3"}, sharedConfig.S3Config{})
	assert.Error(t, err)

	_, err = New(context.Background(), sharedConfig.AttachmentConfig{Driver: "ftp"}, sharedConfig.S3Config{})
	assert.Error(t, err)
}
