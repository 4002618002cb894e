package shortcuts

// DefaultContainerKey is the key of the top-level container the client writes.
const DefaultContainerKey = "shortcuts"

// File is a decoded record file.
type File struct {
	// Key of the top-level container as stored.
	Key       []byte
	Shortcuts []*Shortcut
	// Trailer holds any bytes after the closing end tags.
	Trailer []byte

	decoded int
}

// Decode parses a record file. Structural problems fail with an error
// matching ErrMalformedInput.
func Decode(b []byte) (*File, error) {
	root, trailer, err := ParseTree(b)
	if err != nil {
		return nil, err
	}

	f := &File{
		Key:       root.Key,
		Shortcuts: make([]*Shortcut, 0, len(root.Children)),
		Trailer:   trailer,
		decoded:   len(root.Children),
	}
	for i, c := range root.Children {
		if c.Tag != TagNested {
			return nil, malformed(c.Offset, "entry %q is %v, expected %v", c.Key, c.Tag, TagNested)
		}
		f.Shortcuts = append(f.Shortcuts, shortcutFromNode(c, i))
	}
	return f, nil
}
