// Package drawlist encodes one frame of draw operations into the versioned
// binary drawlist consumed by the presentation backend.
//
// # Format
//
// All integers are little-endian. A drawlist is a 64-byte header followed by
// three sections, each starting on a 4-byte boundary:
//
//	header    16 x u32: magic "ZRDL", version, header size, total size,
//	          cmd offset, cmd bytes, cmd count,
//	          string span offset, string count, string bytes offset, string bytes len,
//	          blob span offset, blob count, blob bytes offset, blob bytes len,
//	          reserved
//	commands  8-byte header (u16 opcode, u16 flags, u32 size) + payload
//	strings   count x (u32 offset, u32 len) spans, then the UTF-8 byte region
//	blobs     count x (u32 offset, u32 len) spans, then the byte region
//
// Span offsets are relative to the start of their byte region. Empty
// sections have zero offset and length.
//
// A style is 16 bytes: fg and bg as 0x00RRGGBB, an attribute bitfield
// (bold, italic, underline, inverse, dim, strikethrough, overline, blink in
// bits 0-7) and a reserved word.
//
// # Building
//
// A Builder is reset and refilled once per frame. Draw calls never return
// errors: the first fault is recorded and surfaced once by Build or
// BuildInto, after which the builder must be Reset.
package drawlist
