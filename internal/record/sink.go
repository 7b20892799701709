package record

import (
	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/errors"
)

var _ drawlist.Sink = (*FrameSink)(nil)

// FrameSink lets a drawlist be built directly into a recording. Committed
// bytes are appended as one frame; an aborted build stores nothing.
type FrameSink struct {
	r     *Recorder
	frame uint64
	meta  FrameMeta
	buf   []byte
}

// Sink returns a drawlist sink that records the next build as frame.
func (r *Recorder) Sink(frame uint64, meta FrameMeta) *FrameSink {
	return &FrameSink{r: r, frame: frame, meta: meta}
}

// Acquire hands out a pooled buffer of size bytes.
func (s *FrameSink) Acquire(size int) ([]byte, error) {
	if s.buf != nil {
		return nil, errors.New(errors.ErrCodeSink, "frame %d already acquired", s.frame)
	}
	b := frameBufPool.Get().([]byte)
	if cap(b) < size {
		b = make([]byte, size)
	}
	s.buf = b[:size]
	return s.buf, nil
}

// Commit records the first n acquired bytes.
func (s *FrameSink) Commit(n int) error {
	if s.buf == nil || n > len(s.buf) {
		return errors.New(errors.ErrCodeSink, "commit of %d bytes without matching acquire", n)
	}
	err := s.r.Append(s.frame, s.buf[:n], s.meta)
	s.release()
	return err
}

// Abort drops the acquired buffer.
func (s *FrameSink) Abort() {
	s.release()
}

func (s *FrameSink) release() {
	if s.buf != nil {
		releaseFrameBuf(s.buf)
		s.buf = nil
	}
}
