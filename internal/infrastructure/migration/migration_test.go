package migration

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shjfcs/foodwatch/internal/infrastructure/repository"
)

func TestScripts_HaveGooseSections(t *testing.T) {
	files, err := fs.Glob(scripts, "scripts/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(scripts, name)
		require.NoError(t, err)
		text := string(body)
		assert.Contains(t, text, "-- +goose Up", name)
		assert.Contains(t, text, "-- +goose Down", name)
	}
}

func TestScripts_CoverExpectedSchema(t *testing.T) {
	files, err := fs.Glob(scripts, "scripts/*.sql")
	require.NoError(t, err)

	var all strings.Builder
	for _, name := range files {
		body, err := fs.ReadFile(scripts, name)
		require.NoError(t, err)
		all.Write(body)
	}
	ddl := all.String()

	for _, table := range repository.ExpectedSchema() {
		block := createBlock(ddl, table.Table)
		require.NotEmpty(t, block, "missing CREATE TABLE %s", table.Table)
		for _, col := range table.Columns {
			assert.Contains(t, block, "\n    "+col+" ", "%s.%s", table.Table, col)
		}
	}
}

// createBlock returns the body of the CREATE TABLE statement for table.
func createBlock(ddl, table string) string {
	start := strings.Index(ddl, "CREATE TABLE "+table+" (")
	if start < 0 {
		return ""
	}
	end := strings.Index(ddl[start:], ";")
	if end < 0 {
		return ddl[start:]
	}
	return ddl[start : start+end]
}

func TestMigrator_CreateWritesSQLFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, NewMigrator().Create(dir, "add_meal_index"))

	matches, err := filepath.Glob(filepath.Join(dir, "*_add_meal_index.sql"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	body, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
}
