// Package shortcuts reads and writes the binary shortcuts.vdf record file that
// Steam keeps per user for non-Steam game shortcuts.
//
// # Format
//
// Every field is a tag byte, a null-terminated key, and a value whose shape
// depends on the tag:
//
//	0x00 nested   fields... 0x08
//	0x01 string   bytes... 0x00
//	0x02 int32    4 bytes, little-endian
//	0x08 end      closes the current nested scope
//
// A record file is a single nested field (normally keyed "shortcuts") whose
// children are nested records keyed "0", "1", ... followed by one extra end
// tag closing the implicit outer scope. Anything after that is kept as the
// trailer.
//
// # Fidelity
//
// Decode keeps enough layout information (key casing, field order, fields it
// does not understand) for Encode to reproduce the input byte for byte. The
// only bytes that change when entries are removed are the index keys of the
// entries that moved.
package shortcuts
