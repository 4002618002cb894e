package shortcuts

import (
	"bytes"
	"encoding/binary"
)

// Node is one field of the tree as it appears on disk. Only the value
// matching Tag is meaningful.
type Node struct {
	Tag      Tag
	Key      []byte
	Str      []byte
	Int      int32
	Children []*Node

	// Offset is the position of the tag byte in the decoded buffer.
	Offset int
}

// KeyIs reports whether the node key equals name, ignoring case.
func (n *Node) KeyIs(name string) bool {
	return bytes.EqualFold(n.Key, []byte(name))
}

// AppendTo appends the encoded field to dst.
func (n *Node) AppendTo(dst []byte) []byte {
	dst = appendHeader(dst, n.Tag, n.Key)
	switch n.Tag {
	case TagString:
		dst = appendCString(dst, n.Str)
	case TagInt32:
		dst = binary.LittleEndian.AppendUint32(dst, uint32(n.Int))
	case TagNested:
		for _, c := range n.Children {
			dst = c.AppendTo(dst)
		}
		dst = append(dst, byte(TagEnd))
	}
	return dst
}

// Bytes returns the encoded field.
func (n *Node) Bytes() []byte {
	return n.AppendTo(nil)
}

// ParseTree reads the whole buffer into a tree. The returned node is the
// top-level container; trailer holds whatever follows the closing end tags.
func ParseTree(b []byte) (root *Node, trailer []byte, err error) {
	r := &reader{buf: b}

	start := r.off
	tag, err := r.readTag()
	if err != nil {
		return nil, nil, err
	}
	if tag != TagNested {
		return nil, nil, malformed(start, "top-level field must be %v, found %v", TagNested, tag)
	}

	root, err = r.readField(start, tag)
	if err != nil {
		return nil, nil, err
	}

	// The container is itself wrapped, so one more end tag closes the
	// implicit outer scope.
	if r.off >= len(r.buf) {
		return nil, nil, malformed(r.off, "missing end tag closing outer scope")
	}
	if Tag(r.buf[r.off]) != TagEnd {
		return nil, nil, malformed(r.off, "expected %v closing outer scope, found %v", TagEnd, Tag(r.buf[r.off]))
	}
	r.off++

	if r.off < len(r.buf) {
		trailer = append([]byte(nil), r.buf[r.off:]...)
	}
	return root, trailer, nil
}

type reader struct {
	buf []byte
	off int
}

func (r *reader) readTag() (Tag, error) {
	if r.off >= len(r.buf) {
		return 0, malformed(r.off, "unexpected end of data, expected tag")
	}
	t := Tag(r.buf[r.off])
	if !t.valid() {
		return 0, malformed(r.off, "unknown %v", t)
	}
	r.off++
	return t, nil
}

// readCString returns a copy of the bytes up to the next null and moves past it.
func (r *reader) readCString() ([]byte, error) {
	start := r.off
	i := bytes.IndexByte(r.buf[start:], 0)
	if i < 0 {
		return nil, malformed(start, "unterminated string")
	}
	r.off = start + i + 1
	return bytes.Clone(r.buf[start : start+i]), nil
}

func (r *reader) readInt32() (int32, error) {
	if len(r.buf)-r.off < 4 {
		return 0, malformed(r.off, "truncated int32, %d of 4 bytes left", len(r.buf)-r.off)
	}
	v := int32(binary.LittleEndian.Uint32(r.buf[r.off:]))
	r.off += 4
	return v, nil
}

// readField reads the key and value of a field whose tag sits at start.
func (r *reader) readField(start int, tag Tag) (*Node, error) {
	key, err := r.readCString()
	if err != nil {
		return nil, err
	}

	n := &Node{Tag: tag, Key: key, Offset: start}
	switch tag {
	case TagString:
		n.Str, err = r.readCString()
	case TagInt32:
		n.Int, err = r.readInt32()
	case TagNested:
		n.Children, err = r.readChildren(start)
	default:
		err = malformed(start, "%v cannot start a field", tag)
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *reader) readChildren(scope int) ([]*Node, error) {
	children := []*Node{}
	for {
		if r.off >= len(r.buf) {
			return nil, malformed(r.off, "nested scope opened at offset %d is missing its end tag", scope)
		}

		start := r.off
		tag, err := r.readTag()
		if err != nil {
			return nil, err
		}
		if tag == TagEnd {
			return children, nil
		}

		child, err := r.readField(start, tag)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func appendHeader(dst []byte, tag Tag, key []byte) []byte {
	dst = append(dst, byte(tag))
	return appendCString(dst, key)
}

func appendCString(dst []byte, s []byte) []byte {
	dst = append(dst, s...)
	return append(dst, 0)
}
