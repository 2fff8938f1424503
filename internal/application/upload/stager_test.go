package upload

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shjfcs/foodwatch/internal/domain/attachment"
	"github.com/shjfcs/foodwatch/internal/infrastructure/storage/local"
	"github.com/shjfcs/foodwatch/internal/shared/config"
	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
)

var fixedNow = time.Unix(1700000000, 0)

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *countingRecorder) AttachmentOp(owner, op string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = map[string]int{}
	}
	r.counts[owner+"/"+op] += n
}

func (r *countingRecorder) get(owner, op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[owner+"/"+op]
}

func newTestStager(t *testing.T, policy Policy) (*Stager, *local.Store, *countingRecorder) {
	t.Helper()
	store, err := local.New(t.TempDir())
	require.NoError(t, err)
	rec := &countingRecorder{}
	s := NewStager(store, policy, rec, logger.NewLogger())
	s.now = func() time.Time { return fixedNow }
	return s, store, rec
}

func TestPolicyFromConfig_Defaults(t *testing.T) {
	p := PolicyFromConfig(config.AttachmentConfig{})
	assert.Equal(t, int64(DefaultMaxBytes), p.MaxBytes)
	assert.Equal(t, DefaultExtensions, p.AllowedExtensions)
	assert.Equal(t, DefaultStagedTTL, p.StagedTTL)

	p = PolicyFromConfig(config.AttachmentConfig{MaxBytes: 5, AllowedExtensions: []string{".TXT"}})
	assert.Equal(t, int64(5), p.MaxBytes)
	assert.True(t, p.allows("txt"))
	assert.False(t, p.allows("pdf"))
	assert.False(t, p.allows(""))
}

func TestStager_StageUpload(t *testing.T) {
	s, store, rec := newTestStager(t, PolicyFromConfig(config.AttachmentConfig{}))
	ctx := context.Background()

	name, err := s.StageUpload(ctx, strings.NewReader("%PDF-1.4"), `C:\scans\lab result (final).PDF`)
	require.NoError(t, err)
	assert.Equal(t, "temp_1700000000_lab_result__final_.pdf", name)

	ok, err := store.Exists(ctx, attachment.StagedKey(name))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, rec.get("", "staged"))
}

func TestStager_StageUpload_Rejections(t *testing.T) {
	s, store, _ := newTestStager(t, Policy{MaxBytes: 4, AllowedExtensions: []string{"pdf"}})
	ctx := context.Background()

	tests := []struct {
		name     string
		body     string
		filename string
		code     int
	}{
		{"disallowed extension", "MZ", "setup.exe", http.StatusBadRequest},
		{"missing extension", "x", "README", http.StatusBadRequest},
		{"empty name", "x", "  ", http.StatusBadRequest},
		{"oversize", "12345", "big.pdf", http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.StageUpload(ctx, strings.NewReader(tt.body), tt.filename)
			require.Error(t, err)
			assert.True(t, errors.IsUploadError(err))
			assert.Equal(t, tt.code, errors.GetAppError(err).Code)
		})
	}

	files, err := store.List(ctx, attachment.StagingDir+"/")
	require.NoError(t, err)
	assert.Empty(t, files)

	name, err := s.StageUpload(ctx, strings.NewReader("1234"), "fits.pdf")
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

func TestStager_StageUpload_CollisionRetries(t *testing.T) {
	s, store, _ := newTestStager(t, PolicyFromConfig(config.AttachmentConfig{}))
	ctx := context.Background()

	first, err := s.StageUpload(ctx, strings.NewReader("a"), "scan.png")
	require.NoError(t, err)
	second, err := s.StageUpload(ctx, strings.NewReader("b"), "scan.png")
	require.NoError(t, err)

	assert.Equal(t, "temp_1700000000_scan.png", first)
	assert.NotEqual(t, first, second)
	assert.Regexp(t, `^temp_1700000000_scan_[0-9A-Za-z]{6}\.png$`, second)

	files, err := store.List(ctx, attachment.StagingDir+"/")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestStager_Discard(t *testing.T) {
	s, store, _ := newTestStager(t, PolicyFromConfig(config.AttachmentConfig{}))
	ctx := context.Background()

	name, err := s.StageUpload(ctx, strings.NewReader("a"), "scan.jpg")
	require.NoError(t, err)

	require.NoError(t, s.Discard(ctx, "../../"+name))
	ok, err := store.Exists(ctx, attachment.StagedKey(name))
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Discard(ctx, name), "discarding twice is not an error")
	assert.True(t, errors.IsValidationError(s.Discard(ctx, "..")))
}

func TestStager_Reap(t *testing.T) {
	s, store, rec := newTestStager(t, PolicyFromConfig(config.AttachmentConfig{}))
	ctx := context.Background()

	for i := range 3 {
		_, err := s.StageUpload(ctx, strings.NewReader("x"), fmt.Sprintf("f%d.pdf", i))
		require.NoError(t, err)
	}
	require.NoError(t, store.Create(ctx, "poison_reports/keep.pdf", strings.NewReader("x")))

	n, err := s.Reap(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.Reap(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, rec.get("", "reaped"))

	ok, err := store.Exists(ctx, "poison_reports/keep.pdf")
	require.NoError(t, err)
	assert.True(t, ok, "committed files are never reaped")
}

func TestReapJob_UsesPolicyTTL(t *testing.T) {
	s, _, _ := newTestStager(t, Policy{MaxBytes: 10, AllowedExtensions: []string{"pdf"}, StagedTTL: time.Hour})
	ctx := context.Background()

	_, err := s.StageUpload(ctx, strings.NewReader("x"), "a.pdf")
	require.NoError(t, err)

	job := NewReapJob(s)

	s.now = time.Now
	n, err := job.Execute(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "fresh files survive")

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	n, err = job.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
