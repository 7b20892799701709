package drawlist

import (
	"encoding/binary"
	"fmt"
)

// Magic is the drawlist magic number, "ZRDL" read as a little-endian u32.
const Magic uint32 = 0x4C44525A

// HeaderSize is the fixed size of the drawlist header.
const HeaderSize = 64

const (
	cmdHeaderSize = 8
	styleSize     = 16
	spanSize      = 8
	segmentSize   = styleSize + 12
)

// Version is a drawlist format version. The set of versions is closed:
// each one is pinned by its own conformance fixtures.
type Version uint32

const (
	// V1 carries clear, fill, text, clip and text-run commands.
	V1 Version = 1
	// V2 adds SET_CURSOR.
	V2 Version = 2
)

// Latest is the newest supported version.
const Latest = V2

// Valid reports whether v is a supported version.
func (v Version) Valid() bool {
	return v == V1 || v == V2
}

// Supports reports whether op may appear in a drawlist of version v.
func (v Version) Supports(op Opcode) bool {
	if op == OpSetCursor {
		return v >= V2
	}
	return op >= OpClear && op <= OpDrawTextRun
}

func (v Version) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}

// Opcode identifies a drawlist command.
type Opcode uint16

const (
	OpClear       Opcode = 1
	OpFillRect    Opcode = 2
	OpDrawText    Opcode = 3
	OpPushClip    Opcode = 4
	OpPopClip     Opcode = 5
	OpDrawTextRun Opcode = 6
	OpSetCursor   Opcode = 7
)

var opNames = map[Opcode]string{
	OpClear:       "CLEAR",
	OpFillRect:    "FILL_RECT",
	OpDrawText:    "DRAW_TEXT",
	OpPushClip:    "PUSH_CLIP",
	OpPopClip:     "POP_CLIP",
	OpDrawTextRun: "DRAW_TEXT_RUN",
	OpSetCursor:   "SET_CURSOR",
}

func (op Opcode) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("OP(%d)", uint16(op))
}

// cmdSize is the total encoded size of each command, header included.
var cmdSize = map[Opcode]int{
	OpClear:       cmdHeaderSize,
	OpFillRect:    cmdHeaderSize + 16 + styleSize,
	OpDrawText:    cmdHeaderSize + 20 + styleSize + 4,
	OpPushClip:    cmdHeaderSize + 16,
	OpPopClip:     cmdHeaderSize,
	OpDrawTextRun: cmdHeaderSize + 16,
	OpSetCursor:   cmdHeaderSize + 12,
}

// Header is the decoded fixed drawlist header.
type Header struct {
	Magic        uint32
	Version      Version
	HeaderSize   uint32
	TotalSize    uint32
	CmdOffset    uint32
	CmdBytes     uint32
	CmdCount     uint32
	StrSpanOff   uint32
	StrCount     uint32
	StrBytesOff  uint32
	StrBytesLen  uint32
	BlobSpanOff  uint32
	BlobCount    uint32
	BlobBytesOff uint32
	BlobBytesLen uint32
	Reserved     uint32
}

func (h *Header) fields() [16]uint32 {
	return [16]uint32{
		h.Magic, uint32(h.Version), h.HeaderSize, h.TotalSize,
		h.CmdOffset, h.CmdBytes, h.CmdCount,
		h.StrSpanOff, h.StrCount, h.StrBytesOff, h.StrBytesLen,
		h.BlobSpanOff, h.BlobCount, h.BlobBytesOff, h.BlobBytesLen,
		h.Reserved,
	}
}

func (h *Header) put(b []byte) {
	for i, v := range h.fields() {
		binary.LittleEndian.PutUint32(b[i*4:], v)
	}
}

func readHeader(b []byte) Header {
	u := func(i int) uint32 { return binary.LittleEndian.Uint32(b[i*4:]) }
	return Header{
		Magic: u(0), Version: Version(u(1)), HeaderSize: u(2), TotalSize: u(3),
		CmdOffset: u(4), CmdBytes: u(5), CmdCount: u(6),
		StrSpanOff: u(7), StrCount: u(8), StrBytesOff: u(9), StrBytesLen: u(10),
		BlobSpanOff: u(11), BlobCount: u(12), BlobBytesOff: u(13), BlobBytesLen: u(14),
		Reserved: u(15),
	}
}

func align4(n int) int {
	return (n + 3) &^ 3
}
