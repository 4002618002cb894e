package core

import (
	"shortcutsweep/shortcuts"
)

const DefaultBackupSuffix = ".bak"

type ReconcileOptions struct {
	// DryRun reports what would be removed without backing up or writing.
	DryRun bool
	// BackupSuffix is appended to the record file path to name the backup.
	BackupSuffix string
	// Exists overrides the host existence check.
	Exists func(path string) bool
}

func GetDefaultReconcileOptions() *ReconcileOptions {
	return &ReconcileOptions{
		BackupSuffix: DefaultBackupSuffix,
	}
}

// FileReport is the outcome for one record file.
type FileReport struct {
	Path       string
	Total      int
	Kept       []*shortcuts.Shortcut
	Removed    []*shortcuts.Shortcut
	Changed    bool
	BackupPath string
	Written    bool
}

// Reconcile keeps hidden entries and entries whose unquoted target exists,
// in their original order, and re-indexes the survivors. changed is true iff
// anything was dropped.
func Reconcile(entries []*shortcuts.Shortcut, exists func(path string) bool) (surviving []*shortcuts.Shortcut, changed bool) {
	surviving, _ = partition(entries, exists)
	return surviving, len(surviving) != len(entries)
}

func partition(entries []*shortcuts.Shortcut, exists func(path string) bool) (kept, removed []*shortcuts.Shortcut) {
	kept = make([]*shortcuts.Shortcut, 0, len(entries))
	for _, s := range entries {
		if s.Hidden() || exists(s.Target()) {
			kept = append(kept, s)
		} else {
			removed = append(removed, s)
		}
	}
	shortcuts.Reindex(kept)
	return kept, removed
}

// ReconcileFile filters the record file at path and rewrites it when entries
// were dropped. The original is copied to path+BackupSuffix before the
// rewrite; if that copy fails the original is left alone.
func ReconcileFile(host HostFs, path string, ops *ReconcileOptions) (*FileReport, error) {
	logger := GetLogger("reconciler").With().Str("path", path).Logger()
	if ops == nil {
		ops = GetDefaultReconcileOptions()
	}

	content, err := host.ReadFile(path)
	if err != nil {
		return nil, WrapError(err, ErrReadFailed, path, "read shortcuts file")
	}

	file, err := shortcuts.Decode(content)
	if err != nil {
		return nil, WrapError(err, ErrMalformedInput, path, "parse shortcuts file")
	}

	exists := ops.Exists
	if exists == nil {
		exists = host.PathExists
	}

	report := &FileReport{
		Path:  path,
		Total: len(file.Shortcuts),
	}
	report.Kept, report.Removed = partition(file.Shortcuts, exists)
	report.Changed = len(report.Removed) > 0

	for _, s := range report.Removed {
		logger.Info().Str("app", s.AppName).Str("exe", s.Target()).Msg("Shortcut target missing")
	}

	if !report.Changed {
		logger.Debug().Int("entries", report.Total).Msg("Nothing to remove")
		return report, nil
	}
	if ops.DryRun {
		logger.Info().Int("removed", len(report.Removed)).Msg("Dry run, leaving file untouched")
		return report, nil
	}

	suffix := ops.BackupSuffix
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	backup := path + suffix
	if err := host.CopyFile(path, backup); err != nil {
		return report, WrapError(err, ErrBackupFailed, path, "backup to %s", backup).
			WithDetail("backup", backup)
	}
	report.BackupPath = backup
	logger.Debug().Str("backup", backup).Msg("Backup written")

	file.Shortcuts = report.Kept
	if err := host.WriteFile(path, file.Encode()); err != nil {
		logger.Error().Err(err).Str("backup", backup).Msg("Rewrite failed, file may be truncated")
		return report, WrapError(err, ErrWriteFailed, path, "write shortcuts file, original kept at %s", backup).
			WithDetail("backup", backup)
	}
	report.Written = true

	logger.Info().Int("removed", len(report.Removed)).Int("kept", len(report.Kept)).Msg("Shortcuts file rewritten")
	return report, nil
}
