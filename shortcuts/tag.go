package shortcuts

import "fmt"

// Tag identifies the kind of value that follows a key.
type Tag byte

const (
	TagNested Tag = 0x00
	TagString Tag = 0x01
	TagInt32  Tag = 0x02
	TagEnd    Tag = 0x08
)

func (t Tag) String() string {
	switch t {
	case TagNested:
		return "nested"
	case TagString:
		return "string"
	case TagInt32:
		return "int32"
	case TagEnd:
		return "end"
	default:
		return fmt.Sprintf("tag(0x%02x)", byte(t))
	}
}

func (t Tag) valid() bool {
	return t == TagNested || t == TagString || t == TagInt32 || t == TagEnd
}
