package shortcuts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Fields(t *testing.T) {
	b := file(entry("0", "Game A", `"C:\games\a.exe"`, 0,
		nested("tags", str("0", "favorite"), str("1", "rpg")),
	))

	f, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, f.Shortcuts, 1)
	assert.Equal(t, []byte("shortcuts"), f.Key)
	assert.Empty(t, f.Trailer)

	s := f.Shortcuts[0]
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, uint32(0xffed2979), s.AppID)
	assert.Equal(t, "Game A", s.AppName)
	assert.Equal(t, `"C:\games\a.exe"`, s.Exe)
	assert.Equal(t, `C:\games\a.exe`, s.Target())
	assert.Equal(t, `"C:\games\"`, s.StartDir)
	assert.False(t, s.Hidden())
	assert.True(t, s.AllowDesktopConfig.Enabled())
	assert.True(t, s.AllowOverlay.Enabled())
	assert.False(t, s.OpenVR.Enabled())
	assert.Equal(t, int32(1700000000), s.LastPlayTime)
	assert.Equal(t, []string{"favorite", "rpg"}, s.Tags)
	assert.Empty(t, s.UnknownFields())
}

func TestDecode_KeysMatchIgnoringCase(t *testing.T) {
	b := file(nested("0",
		str("appname", "lower"),
		str("exe", "/usr/bin/game"),
		i32("ishidden", 1),
		str("STARTDIR", "/usr/bin"),
	))

	f, err := Decode(b)
	require.NoError(t, err)
	s := f.Shortcuts[0]
	assert.Equal(t, "lower", s.AppName)
	assert.Equal(t, "/usr/bin/game", s.Exe)
	assert.Equal(t, "/usr/bin", s.StartDir)
	assert.True(t, s.Hidden())
}

func TestDecode_UnknownFieldsKept(t *testing.T) {
	b := file(entry("0", "A", "/a", 0,
		str("sortas", "alpha"),
		nested("future", i32("x", 7), str("y", "z")),
		// Known key with the wrong tag.
		str("IsHidden", "yes"),
		// Tags holding something other than strings.
		nested("tags", i32("0", 1)),
	))

	f, err := Decode(b)
	require.NoError(t, err)
	s := f.Shortcuts[0]
	assert.Equal(t, []string{"sortas", "future", "IsHidden", "tags"}, s.UnknownFields())
	assert.False(t, s.Hidden())
	assert.Nil(t, s.Tags)
}

func TestDecode_DuplicateKnownKeyKeptVerbatim(t *testing.T) {
	b := file(nested("0", str("AppName", "first"), str("appname", "second")))

	f, err := Decode(b)
	require.NoError(t, err)
	s := f.Shortcuts[0]
	assert.Equal(t, "first", s.AppName)
	assert.Equal(t, []string{"appname"}, s.UnknownFields())
}

func TestDecode_Trailer(t *testing.T) {
	b := append(file(entry("0", "A", "/a", 0)), 0xde, 0xad, 0x00)

	f, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0x00}, f.Trailer)
}

func TestDecode_EmptyContainer(t *testing.T) {
	f, err := Decode(file())
	require.NoError(t, err)
	assert.Empty(t, f.Shortcuts)
}

func TestDecode_StringsAreOpaqueBytes(t *testing.T) {
	b := file(nested("0", str("AppName", "\xff\xfe caf\xe9")))

	f, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, "\xff\xfe caf\xe9", f.Shortcuts[0].AppName)
}

func TestDecode_Malformed(t *testing.T) {
	good := file(entry("0", "A", "/a", 0))

	tests := []struct {
		name   string
		input  []byte
		offset int
	}{
		{"empty", []byte{}, 0},
		{"top level is a string", str("shortcuts", "x"), 0},
		{"unterminated key", []byte{0x00, 's', 'h'}, 1},
		{"truncated int", append(nested("shortcuts", nested("0"))[:14], 0x02, 'x', 0, 1, 2), 17},
		{"missing end of container", good[:len(good)-2], len(good) - 2},
		{"missing outer end", good[:len(good)-1], len(good) - 1},
		{"outer end is something else", withTail(good[:len(good)-1], 0x01), len(good) - 1},
		{"unknown tag", append(nested("shortcuts")[:11], 0x05, 'k', 0), 11},
		{"entry is not nested", file(str("0", "oops")), 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode(tt.input)
			require.Error(t, err)
			assert.Nil(t, f)
			assert.True(t, errors.Is(err, ErrMalformedInput))

			var me *MalformedInputError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.offset, me.Offset, me.Reason)
		})
	}
}

func withTail(b []byte, tail ...byte) []byte {
	out := append([]byte(nil), b...)
	return append(out, tail...)
}

func TestParseTree(t *testing.T) {
	b := file(nested("0", str("AppName", "A"), nested("tags", str("0", "t"))))

	root, trailer, err := ParseTree(b)
	require.NoError(t, err)
	assert.Nil(t, trailer)
	assert.True(t, root.KeyIs("SHORTCUTS"))
	require.Len(t, root.Children, 1)

	e := root.Children[0]
	assert.Equal(t, TagNested, e.Tag)
	assert.Equal(t, 11, e.Offset)
	require.Len(t, e.Children, 2)
	assert.Equal(t, []byte("A"), e.Children[0].Str)
	assert.Equal(t, []byte("t"), e.Children[1].Children[0].Str)

	assert.Equal(t, b[:len(b)-1], root.Bytes())
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "nested", TagNested.String())
	assert.Equal(t, "end", TagEnd.String())
	assert.Equal(t, "tag(0x05)", Tag(5).String())
}
