package shortcuts

import "strconv"

// Encode serialises the file. For a File produced by Decode whose entry list
// is unchanged, the output is the input byte for byte. Once entries have been
// removed or moved, every entry is keyed by its Index.
func (f *File) Encode() []byte {
	key := f.Key
	if key == nil {
		key = []byte(DefaultContainerKey)
	}
	return encode(key, f.Shortcuts, f.Trailer, f.unchanged())
}

// unchanged reports whether Shortcuts is still the list Decode produced.
func (f *File) unchanged() bool {
	if len(f.Shortcuts) != f.decoded {
		return false
	}
	for i, s := range f.Shortcuts {
		if s.key == nil || s.origIndex != i || s.Index != i {
			return false
		}
	}
	return true
}

// EncodeEntries serialises entries under the default container key.
func EncodeEntries(entries []*Shortcut, trailer []byte) []byte {
	return encode([]byte(DefaultContainerKey), entries, trailer, false)
}

func encode(key []byte, entries []*Shortcut, trailer []byte, storedKeys bool) []byte {
	dst := make([]byte, 0, 512*len(entries)+len(trailer)+32)
	dst = appendHeader(dst, TagNested, key)
	for _, s := range entries {
		entryKey := s.key
		if !storedKeys {
			entryKey = []byte(strconv.Itoa(s.Index))
		}
		dst = s.appendEntry(dst, entryKey)
	}
	dst = append(dst, byte(TagEnd), byte(TagEnd))
	return append(dst, trailer...)
}

// AppendTo appends the entry, as a nested record keyed by its Index, to dst.
func (s *Shortcut) AppendTo(dst []byte) []byte {
	return s.appendEntry(dst, []byte(strconv.Itoa(s.Index)))
}

func (s *Shortcut) appendEntry(dst []byte, key []byte) []byte {
	dst = appendHeader(dst, TagNested, key)

	if s.layout == nil {
		for _, spec := range knownFields {
			dst = s.appendField(dst, spec, []byte(spec.name))
		}
	} else {
		for _, sl := range s.layout {
			if sl.field == fieldUnknown {
				dst = sl.node.AppendTo(dst)
				continue
			}
			dst = s.appendField(dst, fieldsByID[sl.field], sl.key)
		}
	}

	return append(dst, byte(TagEnd))
}
