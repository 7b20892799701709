package drawlist

import (
	"encoding/binary"

	"github.com/grindlemire/go-tuicore/internal/errors"
	"github.com/grindlemire/go-tuicore/internal/geom"
)

// Command is one decoded drawlist command. Only the fields used by its
// opcode are set.
type Command struct {
	Op     Opcode
	Rect   geom.Rect // FILL_RECT, PUSH_CLIP
	X, Y   int       // DRAW_TEXT, DRAW_TEXT_RUN
	String uint32    // DRAW_TEXT string index
	Text   string    // DRAW_TEXT resolved text
	Blob   uint32    // DRAW_TEXT_RUN blob index
	Style  WireStyle // FILL_RECT, DRAW_TEXT
	Cursor Cursor    // SET_CURSOR
}

// RunSegment is one decoded text-run segment.
type RunSegment struct {
	Text  string
	Style WireStyle
}

// Frame is a decoded drawlist.
type Frame struct {
	Header   Header
	Strings  []string
	Blobs    [][]byte
	Commands []Command
}

func formatErr(format string, args ...any) error {
	return errors.New(errors.ErrCodeFormat, format, args...)
}

// Decode validates and decodes a drawlist. The returned frame does not
// alias b.
func Decode(b []byte) (*Frame, error) {
	if len(b) < HeaderSize {
		return nil, formatErr("drawlist is %d bytes, shorter than the header", len(b))
	}
	h := readHeader(b)
	switch {
	case h.Magic != Magic:
		return nil, formatErr("bad magic 0x%08X", h.Magic)
	case !h.Version.Valid():
		return nil, errors.New(errors.ErrCodeUnsupported, "drawlist version %d is not supported", uint32(h.Version))
	case h.HeaderSize != HeaderSize:
		return nil, formatErr("header size %d, want %d", h.HeaderSize, HeaderSize)
	case int(h.TotalSize) != len(b):
		return nil, formatErr("total size %d does not match buffer length %d", h.TotalSize, len(b))
	case h.Reserved != 0:
		return nil, formatErr("reserved header field is %d", h.Reserved)
	}

	sections := []struct {
		name     string
		off, len uint64
	}{
		{"commands", uint64(h.CmdOffset), uint64(h.CmdBytes)},
		{"string spans", uint64(h.StrSpanOff), uint64(h.StrCount) * spanSize},
		{"string bytes", uint64(h.StrBytesOff), uint64(h.StrBytesLen)},
		{"blob spans", uint64(h.BlobSpanOff), uint64(h.BlobCount) * spanSize},
		{"blob bytes", uint64(h.BlobBytesOff), uint64(h.BlobBytesLen)},
	}
	for _, s := range sections {
		if s.off == 0 && s.len == 0 {
			continue
		}
		if s.off%4 != 0 || s.off < HeaderSize {
			return nil, formatErr("%s offset %d is misplaced", s.name, s.off)
		}
		if s.off+s.len > uint64(h.TotalSize) {
			return nil, formatErr("%s [%d, +%d) exceeds total size %d", s.name, s.off, s.len, h.TotalSize)
		}
	}

	f := &Frame{Header: h}
	strs, err := readTable(b, h.StrSpanOff, h.StrCount, h.StrBytesOff, h.StrBytesLen)
	if err != nil {
		return nil, err
	}
	f.Strings = make([]string, len(strs))
	for i, s := range strs {
		f.Strings[i] = string(s)
	}
	blobs, err := readTable(b, h.BlobSpanOff, h.BlobCount, h.BlobBytesOff, h.BlobBytesLen)
	if err != nil {
		return nil, err
	}
	for _, blob := range blobs {
		f.Blobs = append(f.Blobs, append([]byte(nil), blob...))
	}

	if err := f.readCommands(b[h.CmdOffset : h.CmdOffset+h.CmdBytes]); err != nil {
		return nil, err
	}
	return f, nil
}

func readTable(b []byte, spanOff, count, bytesOff, bytesLen uint32) ([][]byte, error) {
	out := make([][]byte, 0, count)
	region := b[bytesOff : bytesOff+bytesLen]
	for i := uint32(0); i < count; i++ {
		p := spanOff + i*spanSize
		off := binary.LittleEndian.Uint32(b[p:])
		n := binary.LittleEndian.Uint32(b[p+4:])
		if uint64(off)+uint64(n) > uint64(len(region)) {
			return nil, formatErr("span %d [%d, +%d) exceeds its byte region", i, off, n)
		}
		out = append(out, region[off:off+n])
	}
	return out, nil
}

func (f *Frame) readCommands(b []byte) error {
	i32 := func(p []byte) int { return int(int32(binary.LittleEndian.Uint32(p))) }
	u32 := binary.LittleEndian.Uint32

	for len(b) > 0 {
		if len(b) < cmdHeaderSize {
			return formatErr("truncated command header")
		}
		op := Opcode(binary.LittleEndian.Uint16(b))
		size := int(u32(b[4:]))
		want, known := cmdSize[op]
		switch {
		case !known:
			return formatErr("unknown opcode %d", uint16(op))
		case !f.Header.Version.Supports(op):
			return formatErr("%s is not valid in drawlist %s", op, f.Header.Version)
		case size != want:
			return formatErr("%s has size %d, want %d", op, size, want)
		case size > len(b):
			return formatErr("%s overruns the command stream", op)
		}
		p := b[cmdHeaderSize:size]
		cmd := Command{Op: op}
		switch op {
		case OpFillRect:
			cmd.Rect = geom.Rect{X: i32(p), Y: i32(p[4:]), Width: i32(p[8:]), Height: i32(p[12:])}
			cmd.Style = readStyle(p[16:])
		case OpPushClip:
			cmd.Rect = geom.Rect{X: i32(p), Y: i32(p[4:]), Width: i32(p[8:]), Height: i32(p[12:])}
		case OpDrawText:
			cmd.X, cmd.Y = i32(p), i32(p[4:])
			cmd.String = u32(p[8:])
			off, n := u32(p[12:]), u32(p[16:])
			cmd.Style = readStyle(p[20:])
			if int(cmd.String) >= len(f.Strings) {
				return formatErr("DRAW_TEXT references string %d of %d", cmd.String, len(f.Strings))
			}
			s := f.Strings[cmd.String]
			if uint64(off)+uint64(n) > uint64(len(s)) {
				return formatErr("DRAW_TEXT slice [%d, +%d) exceeds string %d", off, n, cmd.String)
			}
			cmd.Text = s[off : off+n]
		case OpDrawTextRun:
			cmd.X, cmd.Y = i32(p), i32(p[4:])
			cmd.Blob = u32(p[8:])
			if int(cmd.Blob) >= len(f.Blobs) {
				return formatErr("DRAW_TEXT_RUN references blob %d of %d", cmd.Blob, len(f.Blobs))
			}
		case OpSetCursor:
			cmd.Cursor = Cursor{
				X:       i32(p),
				Y:       i32(p[4:]),
				Shape:   CursorShape(p[8]),
				Visible: p[9] != 0,
				Blink:   p[10] != 0,
			}
		}
		f.Commands = append(f.Commands, cmd)
		b = b[size:]
	}
	if len(f.Commands) != int(f.Header.CmdCount) {
		return formatErr("decoded %d commands, header says %d", len(f.Commands), f.Header.CmdCount)
	}
	return nil
}

// TextRun decodes blob i of f as a text run.
func (f *Frame) TextRun(i uint32) ([]RunSegment, error) {
	if int(i) >= len(f.Blobs) {
		return nil, formatErr("blob %d of %d", i, len(f.Blobs))
	}
	b := f.Blobs[i]
	if len(b) < 4 {
		return nil, formatErr("text run blob %d is truncated", i)
	}
	n := int(binary.LittleEndian.Uint32(b))
	if len(b) != 4+n*segmentSize {
		return nil, formatErr("text run blob %d is %d bytes for %d segments", i, len(b), n)
	}
	out := make([]RunSegment, n)
	for k := range out {
		p := b[4+k*segmentSize:]
		idx := binary.LittleEndian.Uint32(p[styleSize:])
		off := binary.LittleEndian.Uint32(p[styleSize+4:])
		ln := binary.LittleEndian.Uint32(p[styleSize+8:])
		if int(idx) >= len(f.Strings) || uint64(off)+uint64(ln) > uint64(len(f.Strings[idx])) {
			return nil, formatErr("text run blob %d segment %d references a bad string", i, k)
		}
		out[k] = RunSegment{Text: f.Strings[idx][off : off+ln], Style: readStyle(p)}
	}
	return out, nil
}
