package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstExistingDir(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	got, err := firstExistingDir(missing, file, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = firstExistingDir(missing, file)
	assert.ErrorIs(t, err, ErrSteamNotFound)
}
