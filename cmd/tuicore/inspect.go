package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/screen"
)

func newInspectCmd() *cobra.Command {
	var (
		preview       bool
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Decode a drawlist and print its header and commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read drawlist: %w", err)
			}
			f, err := drawlist.Decode(data)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := printFrame(w, f); err != nil {
				return err
			}
			if !preview {
				return nil
			}
			scr := screen.New(width, height, nil)
			if err := scr.Apply(f); err != nil {
				return err
			}
			fmt.Fprintln(w)
			printPreview(w, scr)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "replay the drawlist and print the resulting screen")
	cmd.Flags().IntVar(&width, "width", 80, "preview width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "preview height in cells")

	return cmd
}

func printFrame(w io.Writer, f *drawlist.Frame) error {
	rows := make([][]string, 0, len(f.Commands))
	for i, c := range f.Commands {
		desc, err := describeCommand(f, c)
		if err != nil {
			return err
		}
		rows = append(rows, []string{strconv.Itoa(i), c.Op.String(), desc})
	}

	h := f.Header
	printTitle(w, "Header")
	printKeyValue(w, "version", h.Version.String())
	printKeyValue(w, "size", fmt.Sprintf("%d bytes", h.TotalSize))
	printKeyValue(w, "commands", fmt.Sprintf("%d (%d bytes)", h.CmdCount, h.CmdBytes))
	printKeyValue(w, "strings", fmt.Sprintf("%d (%d bytes)", h.StrCount, h.StrBytesLen))
	printKeyValue(w, "blobs", fmt.Sprintf("%d (%d bytes)", h.BlobCount, h.BlobBytesLen))
	fmt.Fprintln(w)
	printTitle(w, "Commands")
	printTable(w, []string{"#", "Op", "Arguments"}, rows)
	return nil
}

var cursorShapes = map[drawlist.CursorShape]string{
	drawlist.CursorBlock:     "block",
	drawlist.CursorUnderline: "underline",
	drawlist.CursorBar:       "bar",
}

// describeCommand formats the operands of c for display.
func describeCommand(f *drawlist.Frame, c drawlist.Command) (string, error) {
	switch c.Op {
	case drawlist.OpFillRect:
		return join(rectString(c.Rect), styleString(c.Style)), nil
	case drawlist.OpDrawText:
		return join(fmt.Sprintf("(%d,%d) %q", c.X, c.Y, c.Text), styleString(c.Style)), nil
	case drawlist.OpPushClip:
		return rectString(c.Rect), nil
	case drawlist.OpDrawTextRun:
		segs, err := f.TextRun(c.Blob)
		if err != nil {
			return "", err
		}
		parts := []string{fmt.Sprintf("(%d,%d) blob %d:", c.X, c.Y, c.Blob)}
		for _, s := range segs {
			parts = append(parts, join(strconv.Quote(s.Text), styleString(s.Style)))
		}
		return strings.Join(parts, " "), nil
	case drawlist.OpSetCursor:
		cur := c.Cursor
		shape, ok := cursorShapes[cur.Shape]
		if !ok {
			shape = fmt.Sprintf("shape(%d)", cur.Shape)
		}
		return fmt.Sprintf("(%d,%d) %s visible=%t blink=%t", cur.X, cur.Y, shape, cur.Visible, cur.Blink), nil
	}
	return "", nil
}

func rectString(r geom.Rect) string {
	return fmt.Sprintf("(%d,%d) %dx%d", r.X, r.Y, r.Width, r.Height)
}

func styleString(s drawlist.WireStyle) string {
	var parts []string
	if s.Fg != 0 {
		parts = append(parts, fmt.Sprintf("fg=#%06x", s.Fg))
	}
	if s.Bg != 0 {
		parts = append(parts, fmt.Sprintf("bg=#%06x", s.Bg))
	}
	if names := s.Attrs.Names(); len(names) > 0 {
		parts = append(parts, strings.Join(names, "+"))
	}
	return strings.Join(parts, " ")
}

func join(a, b string) string {
	if b == "" {
		return a
	}
	return a + " " + b
}
