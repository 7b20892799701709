package tuicore

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-tuicore/internal/config"
	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/record"
	"github.com/grindlemire/go-tuicore/internal/textwidth"
)

// PipelineOption is a functional option for configuring a Pipeline.
type PipelineOption func(*Pipeline) error

// WithCache shares a measurement cache across frames. Without one every
// frame measures from scratch.
func WithCache(c *Cache) PipelineOption {
	return func(p *Pipeline) error {
		p.cache = c
		return nil
	}
}

// WithWidthFunc sets the text-width function used by layout and rendering.
func WithWidthFunc(fn textwidth.Func) PipelineOption {
	return func(p *Pipeline) error {
		if fn == nil {
			return fmt.Errorf("width function must not be nil")
		}
		p.solver.Width = fn
		p.renderer.Width = fn
		return nil
	}
}

// WithDrawlist selects the drawlist version and limits. Zero limit fields
// take their defaults.
func WithDrawlist(v drawlist.Version, limits drawlist.Limits) PipelineOption {
	return func(p *Pipeline) error {
		b, err := drawlist.NewBuilder(v, limits)
		if err != nil {
			return err
		}
		p.builder = b
		return nil
	}
}

// WithRecorder records every successful frame. Frame numbers continue after
// the last frame already stored in the recorder's session, so a resumed
// session is appended to rather than overwritten.
func WithRecorder(r *record.Recorder) PipelineOption {
	return func(p *Pipeline) error {
		next, err := r.NextFrame()
		if err != nil {
			return err
		}
		p.recorder = r
		p.frame = next
		return nil
	}
}

// WithLogger sets the logger. Frames log at debug and discarded frames at
// warn. The default discards everything.
func WithLogger(l *log.Logger) PipelineOption {
	return func(p *Pipeline) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		p.logger = l
		return nil
	}
}

// WithConfig applies the drawlist and text settings of cfg.
func WithConfig(cfg config.Config) PipelineOption {
	return func(p *Pipeline) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := WithDrawlist(cfg.Version(), cfg.Limits())(p); err != nil {
			return err
		}
		return WithWidthFunc(cfg.WidthFunc())(p)
	}
}
