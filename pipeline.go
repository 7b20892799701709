package tuicore

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-tuicore/internal/dirty"
	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/layout"
	"github.com/grindlemire/go-tuicore/internal/measure"
	"github.com/grindlemire/go-tuicore/internal/record"
)

// Changes lists the instances that differ from the previous frame.
type Changes struct {
	Mounted []InstanceID
	Changed []InstanceID
}

// FrameResult is the output of one Pipeline.Frame call.
type FrameResult struct {
	// Drawlist is owned by the pipeline and valid until the next Frame.
	Drawlist []byte
	Tree     *Tree
	Dirty    *DirtySet
	Frame    uint64
}

// Pipeline runs the per-frame sequence: dirty computation, layout,
// rendering and drawlist encoding, optionally recording the result. It
// reuses one drawlist builder and is not safe for concurrent use.
type Pipeline struct {
	builder  *drawlist.Builder
	cache    *measure.Cache
	solver   layout.Solver
	renderer Renderer
	recorder *record.Recorder
	logger   *log.Logger

	cursor *drawlist.Cursor
	frame  uint64
	last   *layout.Tree
	lastW  int
	lastH  int
}

// NewPipeline creates a pipeline encoding the latest drawlist version with
// default limits unless options say otherwise.
func NewPipeline(opts ...PipelineOption) (*Pipeline, error) {
	p := &Pipeline{logger: log.New(io.Discard)}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.builder == nil {
		b, err := drawlist.NewBuilder(drawlist.Latest, drawlist.Limits{})
		if err != nil {
			return nil, err
		}
		p.builder = b
	}
	return p, nil
}

// SetCursor sets the cursor emitted with every following frame. nil stops
// emitting one. Drawlist v1 has no cursor command, so frames fail while a
// cursor is set on a v1 pipeline.
func (p *Pipeline) SetCursor(c *drawlist.Cursor) {
	p.cursor = c
}

// Frame lays out and renders root into a width x height viewport.
//
// The dirty set for ch is active for the duration of the layout, and the
// cache entries of dirty nodes are evicted first. A layout or build fault
// discards the frame: the builder is reset and the error returned.
func (p *Pipeline) Frame(root *Node, ch Changes, width, height int) (*FrameResult, error) {
	start := time.Now()
	set := dirty.Compute(root, ch.Mounted, ch.Changed)

	evicted := 0
	if p.cache != nil {
		evicted = p.cache.Forget(dirty.HandleList(set, root)...)
	}
	if width != p.lastW || height != p.lastH {
		p.logger.Debug("viewport resized", "width", width, "height", height)
		p.lastW, p.lastH = width, height
	}

	dirty.Push(set)
	tree, err := p.solver.Layout(root, 0, 0, width, height, AxisColumn, p.cache)
	dirty.Pop()
	if err != nil {
		p.logger.Warn("frame discarded", "frame", p.frame, "stage", "layout", "err", err)
		return nil, err
	}

	b := p.builder
	b.Reset()
	b.Clear()
	p.renderer.Render(b, tree)
	if p.cursor != nil {
		b.SetCursor(*p.cursor)
	}
	stats := b.Stats()
	out, err := b.Build()
	if err != nil {
		b.Reset()
		p.logger.Warn("frame discarded", "frame", p.frame, "stage", "build", "err", err)
		return nil, err
	}

	res := &FrameResult{Drawlist: out, Tree: tree, Dirty: set, Frame: p.frame}
	if p.recorder != nil {
		meta := record.FrameMeta{
			Width:   width,
			Height:  height,
			Version: uint32(b.Version()),
			Cmds:    stats.Cmds,
			Strings: stats.Strings,
			Blobs:   stats.Blobs,
			Dirty:   set.Len(),
		}
		if err := p.recorder.Append(p.frame, out, meta); err != nil {
			p.logger.Warn("frame not recorded", "frame", p.frame, "err", err)
		}
	}

	if p.cache != nil {
		cs := p.cache.Stats()
		p.logger.Debug("frame",
			"frame", p.frame, "dirty", set.Len(), "evicted", evicted,
			"cache_hits", cs.Hits, "cache_misses", cs.Misses,
			"cmds", stats.Cmds, "bytes", len(out), "took", time.Since(start))
	} else {
		p.logger.Debug("frame",
			"frame", p.frame, "dirty", set.Len(),
			"cmds", stats.Cmds, "bytes", len(out), "took", time.Since(start))
	}

	p.last = tree
	p.frame++
	return res, nil
}

// HitTest resolves (x, y) against the last successfully laid out frame.
func (p *Pipeline) HitTest(x, y int) (string, bool) {
	if p.last == nil {
		return "", false
	}
	return layout.HitTest(p.last, x, y)
}

// Frames returns the number the next frame will carry: the count of frames
// produced so far, offset by any frames a resumed recording already holds.
func (p *Pipeline) Frames() uint64 {
	return p.frame
}
