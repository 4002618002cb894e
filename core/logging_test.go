package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggingWithPath(t *testing.T) {
	saved := log.Logger
	defer func() {
		CloseLogging()
		log.Logger = saved
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}()

	path := filepath.Join(t.TempDir(), "logs", DefaultLogPath)
	require.NoError(t, InitLoggingWithPath(path, 0))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logger := GetLogger("test")
	logger.Info().Str("path", "/x").Msg("hello")
	CloseLogging()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}
