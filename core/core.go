package core

import (
	"context"
	"fmt"
	"io"
	"strings"

	"shortcutsweep/platform"
)

type Options struct {
	SteamRoot    string   `short:"r" long:"steam-root" description:"Steam installation directory. Detected automatically when omitted"`
	Users        []string `short:"u" long:"user" description:"Only process the given userdata account id (repeatable)"`
	DryRun       bool     `short:"d" long:"dry-run" description:"Report shortcuts that would be removed without touching any file"`
	List         bool     `short:"l" long:"list" description:"List shortcuts in every record file and exit"`
	BackupSuffix string   `short:"b" long:"backup-suffix" description:"Suffix appended to a record file path to name its backup (default .bak)"`
	Verbose      []bool   `short:"v" long:"verbose" description:"Enable verbose logging, repeat for more"`
	LogLocation  string   `long:"log-location" description:"Path to logfile. Defaults to the user's cache dir / shortcutsweep.log"`
	Config       string   `short:"c" long:"config" description:"Path to settings file. Defaults to the user's config dir / shortcutsweep/settings.yaml"`
	SetSteamRoot string   `long:"set-steam-root" description:"Store the Steam installation directory in the settings file and exit"`
}

type Message struct {
	Finished bool
	Message  string
	Err      error
}

type ChannelProvider struct {
	Logs chan Message
}

const APP_NAME = "shortcutsweep"

func MakeDefaultChannelProvider() *ChannelProvider {
	return &ChannelProvider{
		Logs: make(chan Message, 100),
	}
}

func LogMessage(logs chan Message, format string, msg ...any) {
	logs <- Message{
		Message: fmt.Sprintf(format, msg...),
	}
}

// RunSummary counts per-file outcomes of one run.
type RunSummary struct {
	Files   int
	Changed int
	Removed int
	Failed  int
}

func (s *RunSummary) String() string {
	return fmt.Sprintf("%d shortcuts file(s), %d changed, %d shortcut(s) removed, %d failed",
		s.Files, s.Changed, s.Removed, s.Failed)
}

// steamRootLocator is swapped out by tests.
var steamRootLocator = platform.GetSteamRoot

// ResolveSteamRoot prefers the command line, then settings, then detection.
func ResolveSteamRoot(ops *Options, settings *Settings) (string, error) {
	if ops.SteamRoot != "" {
		return ops.SteamRoot, nil
	}
	if settings != nil && settings.SteamRoot != "" {
		return settings.SteamRoot, nil
	}

	root, err := steamRootLocator()
	if err != nil {
		return "", WrapError(err, ErrSteamNotFound, "", "locate steam installation")
	}
	return root, nil
}

func reconcileOptionsFor(ops *Options, settings *Settings) *ReconcileOptions {
	recOps := GetDefaultReconcileOptions()
	if settings != nil {
		recOps.DryRun = settings.DryRun
		if settings.BackupSuffix != "" {
			recOps.BackupSuffix = settings.BackupSuffix
		}
	}
	if ops.DryRun {
		recOps.DryRun = true
	}
	if ops.BackupSuffix != "" {
		recOps.BackupSuffix = ops.BackupSuffix
	}
	return recOps
}

func wantsUser(ops *Options, userID string) bool {
	if len(ops.Users) == 0 {
		return true
	}
	for _, u := range ops.Users {
		if strings.TrimSpace(u) == userID {
			return true
		}
	}
	return false
}

// RequestMainOperation reconciles every user's shortcuts file, one at a time.
// A failure on one file is reported and the next file is still processed.
// Exactly one Finished message is sent, last.
func RequestMainOperation(ctx context.Context, host HostFs, ops *Options, settings *Settings, channels *ChannelProvider) *RunSummary {
	logs := channels.Logs
	logger := GetLogger("main")
	summary := &RunSummary{}
	defer func() {
		logs <- Message{
			Message:  summary.String(),
			Finished: true,
		}
	}()

	steamRoot, err := ResolveSteamRoot(ops, settings)
	if err != nil {
		summary.Failed++
		logs <- Message{Err: err}
		return summary
	}
	LogMessage(logs, "Steam installation - %s", steamRoot)

	personas, err := LoadLoginUsers(host, steamRoot)
	if err != nil {
		logger.Warn().Err(err).Msg("Could not read login users")
	}

	files, err := FindShortcutFiles(host, steamRoot)
	if err != nil {
		summary.Failed++
		logs <- Message{Err: err}
		return summary
	}

	recOps := reconcileOptionsFor(ops, settings)
	for _, sf := range files {
		if !wantsUser(ops, sf.UserID) {
			continue
		}
		if err := ctx.Err(); err != nil {
			summary.Failed++
			logs <- Message{Err: err}
			return summary
		}

		summary.Files++
		if persona := personas[sf.UserID]; persona != "" {
			LogMessage(logs, "Shortcuts file: %s (%s)", sf.Path, persona)
		} else {
			LogMessage(logs, "Shortcuts file: %s", sf.Path)
		}

		if ops.List {
			if err := listShortcutFile(host, sf.Path, logs); err != nil {
				summary.Failed++
				logs <- Message{Err: err}
			}
			continue
		}

		report, err := ReconcileFile(host, sf.Path, recOps)
		if report != nil {
			for _, s := range report.Removed {
				LogMessage(logs, "Deleting shortcut to non-existent path - %s: %s", s.AppName, s.Target())
			}
		}
		if err != nil {
			summary.Failed++
			if IsErrorCode(err, ErrWriteFailed) {
				err = fmt.Errorf("!!! shortcuts file may be damaged, restore it from %v: %w", GetErrorDetails(err)["backup"], err)
			}
			logs <- Message{Err: err}
			continue
		}

		summary.Removed += len(report.Removed)
		switch {
		case report.Written:
			summary.Changed++
			LogMessage(logs, "Removed %d of %d shortcut(s), backup at %s", len(report.Removed), report.Total, report.BackupPath)
		case report.Changed:
			summary.Changed++
			LogMessage(logs, "Dry run: would remove %d of %d shortcut(s)", len(report.Removed), report.Total)
		default:
			LogMessage(logs, "All %d shortcut(s) point to existing files", report.Total)
		}
	}

	return summary
}

func listShortcutFile(host HostFs, path string, logs chan Message) error {
	report, err := ReconcileFile(host, path, &ReconcileOptions{
		DryRun: true,
		Exists: func(string) bool { return true },
	})
	if err != nil {
		return err
	}

	for _, s := range report.Kept {
		hidden := ""
		if s.Hidden() {
			hidden = " [hidden]"
		}
		LogMessage(logs, "Shortcut: %s - %s - %s%s", s.AppName, s.Target(), s.ShortcutPath, hidden)
	}
	return nil
}

// ConsoleLogger prints messages until the Finished one, which it prints too.
func ConsoleLogger(out io.Writer, errOut io.Writer, input chan Message) {
	logger := GetLogger("console")
	for result := range input {
		if result.Err != nil {
			logger.Error().Err(result.Err).Msg("Operation failed")
			fmt.Fprintln(errOut, result.Err)
		} else if result.Message != "" {
			logger.Info().Msg(result.Message)
			fmt.Fprintln(out, result.Message)
		}

		if result.Finished {
			return
		}
	}
}
