package drawlist

import (
	"encoding/binary"

	"github.com/grindlemire/go-tuicore/internal/errors"
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/style"
)

type state uint8

const (
	stateIdle state = iota
	stateBuilding
	stateFinalized
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateBuilding:
		return "building"
	case stateFinalized:
		return "finalized"
	default:
		return "failed"
	}
}

// CursorShape selects the terminal cursor glyph.
type CursorShape uint8

const (
	CursorBlock CursorShape = iota
	CursorUnderline
	CursorBar
)

// Cursor is the desired terminal cursor state for a frame.
type Cursor struct {
	X, Y    int
	Shape   CursorShape
	Visible bool
	Blink   bool
}

// Segment is one independently styled piece of a text run.
type Segment struct {
	Text  string
	Style style.Style
}

// BlobHandle refers to an interned blob within the current frame.
type BlobHandle uint32

// Stats summarizes the content of the frame being built.
type Stats struct {
	Cmds      int
	Strings   int
	Blobs     int
	CmdBytes  int
	TextBytes int
	BlobBytes int
}

// Builder accumulates one frame of draw commands. It is reused across
// frames through Reset and must not be shared by concurrent frames.
type Builder struct {
	version Version
	limits  Limits

	state     state
	err       error
	cmds      []byte
	ncmds     int
	clipDepth int
	strings   stringTable
	blobs     blobTable

	scratch []byte // text-run blob encoding
	out     []byte // Build output, reused across frames
	outOK   bool   // out holds the current frame
}

// NewBuilder returns an idle builder producing drawlists of version v. Zero
// limit fields take their defaults.
func NewBuilder(v Version, limits Limits) (*Builder, error) {
	if !v.Valid() {
		return nil, errors.New(errors.ErrCodeUnsupported, "drawlist version %d is not supported", uint32(v))
	}
	return &Builder{version: v, limits: limits.withDefaults()}, nil
}

// Version returns the version the builder encodes.
func (b *Builder) Version() Version {
	return b.version
}

// Limits returns the effective limits.
func (b *Builder) Limits() Limits {
	return b.limits
}

// Reset returns the builder to idle, clearing its buffers for reuse
// without releasing their storage.
func (b *Builder) Reset() {
	b.state = stateIdle
	b.err = nil
	b.cmds = b.cmds[:0]
	b.ncmds = 0
	b.clipDepth = 0
	b.strings.reset()
	b.blobs.reset()
	b.scratch = b.scratch[:0]
	b.outOK = false
}

// Err returns the recorded fault, if any, without finalizing.
func (b *Builder) Err() error {
	return b.err
}

// Stats reports the current frame's content.
func (b *Builder) Stats() Stats {
	return Stats{
		Cmds:      b.ncmds,
		Strings:   b.strings.count(),
		Blobs:     b.blobs.count(),
		CmdBytes:  len(b.cmds),
		TextBytes: b.strings.data.len(),
		BlobBytes: b.blobs.data.len(),
	}
}

// fail records the first fault; later faults are dropped.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// begin moves the builder into the building state. It reports false when
// the operation must be ignored.
func (b *Builder) begin(name string) bool {
	switch b.state {
	case stateFinalized, stateFailed:
		b.fail(errors.New(errors.ErrCodeInvalidState, "%s on a %s builder without Reset", name, b.state))
		return false
	case stateIdle:
		b.state = stateBuilding
	}
	return b.err == nil
}

func (b *Builder) appendHeader(op Opcode) {
	if b.ncmds >= b.limits.MaxCmds {
		b.fail(errors.New(errors.ErrCodeLimit, "command count exceeds %d", b.limits.MaxCmds))
	}
	b.ncmds++
	b.cmds = binary.LittleEndian.AppendUint16(b.cmds, uint16(op))
	b.cmds = binary.LittleEndian.AppendUint16(b.cmds, 0)
	b.cmds = binary.LittleEndian.AppendUint32(b.cmds, uint32(cmdSize[op]))
}

func (b *Builder) appendI32(v ...int) {
	for _, n := range v {
		b.cmds = binary.LittleEndian.AppendUint32(b.cmds, uint32(int32(n)))
	}
}

func (b *Builder) appendU32(v ...uint32) {
	for _, n := range v {
		b.cmds = binary.LittleEndian.AppendUint32(b.cmds, n)
	}
}

// internString interns s and enforces the string limit.
func (b *Builder) internString(s string) uint32 {
	idx, added := b.strings.intern(s)
	if added && b.strings.count() > b.limits.MaxStrings {
		b.fail(errors.New(errors.ErrCodeLimit, "string count exceeds %d", b.limits.MaxStrings))
	}
	return idx
}

// Clear clears the whole framebuffer to the default style.
func (b *Builder) Clear() {
	if !b.begin("Clear") {
		return
	}
	b.appendHeader(OpClear)
}

// FillRect fills r with the background of s. Empty rects emit nothing.
func (b *Builder) FillRect(r geom.Rect, s style.Style) {
	if !b.begin("FillRect") || r.IsEmpty() {
		return
	}
	b.appendHeader(OpFillRect)
	b.appendI32(r.X, r.Y, r.Width, r.Height)
	b.cmds = appendStyle(b.cmds, EncodeStyle(s))
}

// DrawText draws text starting at (x, y). Identical strings within a frame
// share one string table entry. Empty text emits nothing.
func (b *Builder) DrawText(x, y int, text string, s style.Style) {
	if !b.begin("DrawText") || text == "" {
		return
	}
	idx := b.internString(text)
	b.appendHeader(OpDrawText)
	b.appendI32(x, y)
	b.appendU32(idx, 0, uint32(len(text)))
	b.cmds = appendStyle(b.cmds, EncodeStyle(s))
	b.appendU32(0)
}

// PushClip intersects the active clip with r until the matching PopClip.
func (b *Builder) PushClip(r geom.Rect) {
	if !b.begin("PushClip") {
		return
	}
	b.clipDepth++
	if b.clipDepth > b.limits.MaxClipDepth {
		b.fail(errors.New(errors.ErrCodeLimit, "clip depth exceeds %d", b.limits.MaxClipDepth))
		return
	}
	b.appendHeader(OpPushClip)
	b.appendI32(r.X, r.Y, r.Width, r.Height)
}

// PopClip restores the clip active before the last PushClip. Popping an
// empty clip stack fails the build.
func (b *Builder) PopClip() {
	if !b.begin("PopClip") {
		return
	}
	if b.clipDepth == 0 {
		b.fail(errors.New(errors.ErrCodeInvalidState, "PopClip without matching PushClip"))
		return
	}
	b.clipDepth--
	b.appendHeader(OpPopClip)
}

// AddBlob interns an opaque blob and returns its handle.
func (b *Builder) AddBlob(data []byte) BlobHandle {
	if !b.begin("AddBlob") {
		return 0
	}
	return b.addBlob(data)
}

func (b *Builder) addBlob(data []byte) BlobHandle {
	idx, added := b.blobs.intern(data)
	if added && b.blobs.count() > b.limits.MaxBlobs {
		b.fail(errors.New(errors.ErrCodeLimit, "blob count exceeds %d", b.limits.MaxBlobs))
	}
	return BlobHandle(idx)
}

// AddTextRunBlob registers a run of styled segments for DrawTextRun. The
// blob holds a u32 segment count followed by one record per segment:
// style, string index, byte offset and byte length.
func (b *Builder) AddTextRunBlob(segments []Segment) BlobHandle {
	if !b.begin("AddTextRunBlob") {
		return 0
	}
	if len(segments) > b.limits.MaxTextRunSegments {
		b.fail(errors.New(errors.ErrCodeLimit, "text run has %d segments, limit %d",
			len(segments), b.limits.MaxTextRunSegments))
		return 0
	}

	buf := binary.LittleEndian.AppendUint32(b.scratch[:0], uint32(len(segments)))
	for _, seg := range segments {
		idx := b.internString(seg.Text)
		buf = appendStyle(buf, EncodeStyle(seg.Style))
		buf = binary.LittleEndian.AppendUint32(buf, idx)
		buf = binary.LittleEndian.AppendUint32(buf, 0)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(seg.Text)))
	}
	b.scratch = buf
	return b.addBlob(buf)
}

// DrawTextRun draws a registered text run starting at (x, y).
func (b *Builder) DrawTextRun(x, y int, h BlobHandle) {
	if !b.begin("DrawTextRun") {
		return
	}
	if int(h) >= b.blobs.count() {
		b.fail(errors.New(errors.ErrCodeInvalidState, "DrawTextRun with unknown blob %d", h))
		return
	}
	b.appendHeader(OpDrawTextRun)
	b.appendI32(x, y)
	b.appendU32(uint32(h), 0)
}

// SetCursor sets the terminal cursor for the frame. It requires V2.
func (b *Builder) SetCursor(c Cursor) {
	if !b.begin("SetCursor") {
		return
	}
	if !b.version.Supports(OpSetCursor) {
		b.fail(errors.New(errors.ErrCodeUnsupported, "SET_CURSOR requires drawlist v2, builder is %s", b.version))
		return
	}
	b.appendHeader(OpSetCursor)
	b.appendI32(c.X, c.Y)
	b.cmds = append(b.cmds, byte(c.Shape), boolByte(c.Visible), boolByte(c.Blink), 0)
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
