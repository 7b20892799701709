package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tuicore"
	"github.com/grindlemire/go-tuicore/internal/config"
	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/record"
	"github.com/grindlemire/go-tuicore/internal/screen"
)

type renderOptions struct {
	width   int
	height  int
	frames  int
	out     string
	config  string
	record  bool
	preview bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo dashboard and write the last frame's drawlist",
		Long: `Render lays out and encodes the built-in demo dashboard for a number of
frames, advancing its animated widgets each frame, and writes the drawlist
of the last frame to --out. With --record (or [record] enabled in the
config) every frame is also stored in the recording database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 80, "viewport width in cells")
	cmd.Flags().IntVar(&opts.height, "height", 24, "viewport height in cells")
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", 1, "number of frames to render")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "frame.dl", "drawlist output file")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file")
	cmd.Flags().BoolVar(&opts.record, "record", false, "record every frame")
	cmd.Flags().BoolVarP(&opts.preview, "preview", "p", false, "print the last frame as it would appear on screen")

	return cmd
}

func runRender(ctx context.Context, w io.Writer, opts renderOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", opts.width, opts.height)
	}
	if opts.frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", opts.frames)
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if opts.record {
		cfg.Record.Enabled = true
	}

	logger := loggerFromContext(ctx)
	if !verboseFromContext(ctx) {
		logger.SetLevel(cfg.LogLevel())
	}

	pipeOpts := []tuicore.PipelineOption{
		tuicore.WithConfig(cfg),
		tuicore.WithCache(tuicore.NewCache()),
		tuicore.WithLogger(logger),
	}

	var rec *record.Recorder
	if cfg.Record.Enabled {
		rec, err = record.Open(cfg.Record.Path, record.Options{Timeout: time.Second, Logger: logger})
		if err != nil {
			return err
		}
		defer rec.Close()
		pipeOpts = append(pipeOpts, tuicore.WithRecorder(rec))
	}

	p, err := tuicore.NewPipeline(pipeOpts...)
	if err != nil {
		return err
	}
	if cfg.Version() >= drawlist.V2 {
		p.SetCursor(&drawlist.Cursor{X: 2, Y: max(0, opts.height-2), Shape: drawlist.CursorBar, Visible: true, Blink: true})
	}

	prog := newProgress(logger)
	scr := screen.New(opts.width, opts.height, cfg.WidthFunc())
	a := tuicore.NewArena(16)
	var last *tuicore.FrameResult
	for tick := 0; tick < opts.frames; tick++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.Reset()
		root := demoTree(a, tick)
		res, err := p.Frame(root, demoChanges(root, tick), opts.width, opts.height)
		if err != nil {
			return fmt.Errorf("frame %d: %w", tick, err)
		}
		last = res

		f, err := drawlist.Decode(res.Drawlist)
		if err != nil {
			return fmt.Errorf("frame %d: %w", tick, err)
		}
		if err := scr.Apply(f); err != nil {
			return fmt.Errorf("frame %d: %w", tick, err)
		}
		logger.Debug("screen updated", "frame", res.Frame, "cells", len(scr.Diff()))
		scr.Swap()
	}

	if err := os.WriteFile(opts.out, last.Drawlist, 0o644); err != nil {
		return fmt.Errorf("write drawlist: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %d frames", opts.frames))

	printSuccess(w, "Rendered %d frame(s) at %dx%d (%d bytes)", opts.frames, opts.width, opts.height, len(last.Drawlist))
	printFile(w, opts.out)
	if rec != nil {
		printKeyValue(w, "session", rec.Session().String())
		printKeyValue(w, "recording", cfg.Record.Path)
	}
	if opts.preview {
		fmt.Fprintln(w)
		printPreview(w, scr)
	}
	return nil
}
