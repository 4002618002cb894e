package core

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const DefaultLogPath = "shortcutsweep.log"

var logFile *os.File

func InitLoggingWithDefaultPath(verbosity int) error {
	path, err := xdg.CacheFile(filepath.Join(APP_NAME, DefaultLogPath))
	if err != nil {
		return err
	}

	return InitLoggingWithPath(path, verbosity)
}

// InitLoggingWithPath sends JSON log lines to path. With verbosity above zero
// a human readable copy also goes to stderr.
func InitLoggingWithPath(path string, verbosity int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	writers := []io.Writer{file}
	if verbosity > 0 {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	switch {
	case verbosity <= 0:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case verbosity == 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	CloseLogging()
	logFile = file
	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
	return nil
}

func CloseLogging() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// GetLogger returns the global logger tagged with a component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
