package shortcuts

import (
	"strings"
)

// Flag is a boolean stored as an int32. The stored value is kept as is so
// producers that write something other than 0 or 1 still round-trip.
type Flag int32

func (f Flag) Enabled() bool {
	return f != 0
}

// Shortcut is one entry of the record file. Decoded entries are meant to be
// read, filtered and re-indexed; their fields are not edited in place.
type Shortcut struct {
	Index               int
	AppID               uint32
	AppName             string
	Exe                 string
	StartDir            string
	Icon                string
	ShortcutPath        string
	LaunchOptions       string
	IsHidden            Flag
	AllowDesktopConfig  Flag
	AllowOverlay        Flag
	OpenVR              Flag
	Devkit              Flag
	DevkitGameID        string
	DevkitOverrideAppID int32
	LastPlayTime        int32
	FlatpakAppID        string
	Tags                []string

	// Layout captured by Decode. Entries built by NewShortcut leave these
	// empty and encode in canonical order.
	key       []byte
	origIndex int
	layout    []slot
	tagKeys   [][]byte
}

// Option sets a field on a Shortcut built with NewShortcut.
type Option func(*Shortcut)

// NewShortcut builds an entry from explicit values. No validation is done.
func NewShortcut(index int, appName, exe string, opts ...Option) *Shortcut {
	s := &Shortcut{
		Index:   index,
		AppName: appName,
		Exe:     exe,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func WithAppID(id uint32) Option { return func(s *Shortcut) { s.AppID = id } }
func WithStartDir(dir string) Option { return func(s *Shortcut) { s.StartDir = dir } }
func WithIcon(icon string) Option { return func(s *Shortcut) { s.Icon = icon } }
func WithShortcutPath(path string) Option { return func(s *Shortcut) { s.ShortcutPath = path } }
func WithLaunchOptions(opts string) Option { return func(s *Shortcut) { s.LaunchOptions = opts } }
func WithHidden(hidden bool) Option { return func(s *Shortcut) { s.IsHidden = boolFlag(hidden) } }
func WithAllowOverlay(allow bool) Option { return func(s *Shortcut) { s.AllowOverlay = boolFlag(allow) } }
func WithLastPlayTime(t int32) Option { return func(s *Shortcut) { s.LastPlayTime = t } }
func WithFlatpakAppID(id string) Option { return func(s *Shortcut) { s.FlatpakAppID = id } }
func WithTags(tags ...string) Option { return func(s *Shortcut) { s.Tags = append([]string(nil), tags...) } }
func WithAllowDesktopConfig(allow bool) Option {
	return func(s *Shortcut) { s.AllowDesktopConfig = boolFlag(allow) }
}

func boolFlag(b bool) Flag {
	if b {
		return 1
	}
	return 0
}

// Hidden reports whether the entry is hidden in the client library.
func (s *Shortcut) Hidden() bool {
	return s.IsHidden.Enabled()
}

// Target is the executable path with its wrapping quotes removed.
func (s *Shortcut) Target() string {
	return Unquote(s.Exe)
}

// UnknownFields returns the keys of fields kept verbatim because they were
// not recognised.
func (s *Shortcut) UnknownFields() []string {
	var keys []string
	for _, sl := range s.layout {
		if sl.field == fieldUnknown {
			keys = append(keys, string(sl.key))
		}
	}
	return keys
}

// Unquote strips at most one leading and one trailing double quote.
func Unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// Reindex sets every entry's Index to its position in the slice.
func Reindex(entries []*Shortcut) {
	for i, s := range entries {
		s.Index = i
	}
}
