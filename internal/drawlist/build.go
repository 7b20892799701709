package drawlist

import (
	"encoding/binary"

	"github.com/grindlemire/go-tuicore/internal/errors"
)

// Sink is a caller-owned destination for BuildInto. Acquire hands out a
// buffer of at least size bytes; Commit publishes the first n bytes. After
// a successful Acquire, exactly one of Commit or Abort is called.
type Sink interface {
	Acquire(size int) ([]byte, error)
	Commit(n int) error
	Abort()
}

// finalize checks the frame and computes the header. On failure the
// builder moves to the failed state.
func (b *Builder) finalize() (Header, error) {
	if b.state == stateFailed {
		return Header{}, errors.New(errors.ErrCodeInvalidState, "build on a failed builder without Reset")
	}
	if b.err == nil && b.clipDepth != 0 {
		b.fail(errors.New(errors.ErrCodeInvalidState, "%d PushClip without matching PopClip", b.clipDepth))
	}
	if b.err != nil {
		b.state = stateFailed
		return Header{}, b.err
	}

	h := Header{
		Magic:      Magic,
		Version:    b.version,
		HeaderSize: HeaderSize,
		CmdCount:   uint32(b.ncmds),
	}
	off := HeaderSize
	if b.ncmds > 0 {
		h.CmdOffset = uint32(off)
		h.CmdBytes = uint32(len(b.cmds))
		off += len(b.cmds)
	}
	if n := b.strings.count(); n > 0 {
		h.StrSpanOff = uint32(off)
		h.StrCount = uint32(n)
		off += n * spanSize
		h.StrBytesOff = uint32(off)
		h.StrBytesLen = uint32(b.strings.data.len())
		off += align4(b.strings.data.len())
	}
	if n := b.blobs.count(); n > 0 {
		h.BlobSpanOff = uint32(off)
		h.BlobCount = uint32(n)
		off += n * spanSize
		h.BlobBytesOff = uint32(off)
		h.BlobBytesLen = uint32(b.blobs.data.len())
		off += align4(b.blobs.data.len())
	}
	if off > b.limits.MaxTotalBytes {
		b.fail(errors.New(errors.ErrCodeLimit, "drawlist is %d bytes, limit %d", off, b.limits.MaxTotalBytes))
		b.state = stateFailed
		return Header{}, b.err
	}
	h.TotalSize = uint32(off)
	return h, nil
}

// encode writes the frame described by h into dst, which must hold
// h.TotalSize bytes.
func (b *Builder) encode(h Header, dst []byte) {
	clear(dst[:h.TotalSize])
	h.put(dst)
	copy(dst[h.CmdOffset:], b.cmds)
	writeTable(dst, h.StrSpanOff, h.StrBytesOff, b.strings.spans, b.strings.data.buf)
	writeTable(dst, h.BlobSpanOff, h.BlobBytesOff, b.blobs.spans, b.blobs.data.buf)
}

func writeTable(dst []byte, spanOff, bytesOff uint32, spans []span, data []byte) {
	if len(spans) == 0 {
		return
	}
	for i, sp := range spans {
		p := int(spanOff) + i*spanSize
		binary.LittleEndian.PutUint32(dst[p:], sp.off)
		binary.LittleEndian.PutUint32(dst[p+4:], sp.len)
	}
	copy(dst[bytesOff:], data)
}

// Build finalizes the frame into a builder-owned buffer. The returned slice
// stays valid until the next Reset. A failed build leaves the builder
// failed until Reset.
func (b *Builder) Build() ([]byte, error) {
	if b.state == stateFinalized && b.err == nil && b.outOK {
		return b.out, nil
	}
	h, err := b.finalize()
	if err != nil {
		return nil, err
	}
	size := int(h.TotalSize)
	if cap(b.out) < size {
		b.out = make([]byte, size, max(size, 2*cap(b.out)))
	}
	b.out = b.out[:size]
	b.encode(h, b.out)
	b.state = stateFinalized
	b.outOK = true
	return b.out, nil
}

// BuildInto finalizes the frame directly into a buffer acquired from dst
// and commits it. Every error after a successful Acquire aborts the sink.
func (b *Builder) BuildInto(dst Sink) (int, error) {
	h, err := b.finalize()
	if err != nil {
		return 0, err
	}
	size := int(h.TotalSize)

	buf, err := dst.Acquire(size)
	if err != nil {
		dst.Abort()
		b.state = stateFailed
		b.fail(errors.Wrap(errors.ErrCodeSink, err, "acquire %d bytes", size))
		return 0, b.err
	}
	if len(buf) < size {
		dst.Abort()
		b.state = stateFailed
		b.fail(errors.New(errors.ErrCodeSink, "sink returned %d bytes, need %d", len(buf), size))
		return 0, b.err
	}
	b.encode(h, buf)
	if err := dst.Commit(size); err != nil {
		dst.Abort()
		b.state = stateFailed
		b.fail(errors.Wrap(errors.ErrCodeSink, err, "commit %d bytes", size))
		return 0, b.err
	}
	b.state = stateFinalized
	return size, nil
}

// SliceSink is an in-memory Sink. It double-buffers so that an aborted
// build never disturbs the last committed bytes.
type SliceSink struct {
	Buf     []byte // last committed drawlist
	pending []byte
	spare   []byte
}

// Acquire returns a buffer of size bytes.
func (s *SliceSink) Acquire(size int) ([]byte, error) {
	if cap(s.spare) < size {
		s.spare = make([]byte, size)
	}
	s.pending = s.spare[:size]
	return s.pending, nil
}

// Commit publishes the first n acquired bytes as Buf.
func (s *SliceSink) Commit(n int) error {
	if s.pending == nil || n > len(s.pending) {
		return errors.New(errors.ErrCodeSink, "commit of %d bytes without matching acquire", n)
	}
	s.Buf, s.spare = s.pending[:n], s.Buf[:0]
	s.pending = nil
	return nil
}

// Abort drops the acquired buffer and keeps Buf.
func (s *SliceSink) Abort() {
	s.pending = nil
}
