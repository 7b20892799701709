package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		session string
		frame   uint64
		out     string
	)

	cmd := &cobra.Command{
		Use:   "export DB",
		Short: "Write one recorded frame's drawlist to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSession(session)
			if err != nil {
				return err
			}
			rec, err := openRecording(args[0])
			if err != nil {
				return err
			}
			defer rec.Close()

			dl, meta, err := rec.Load(id, frame)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, dl, 0o644); err != nil {
				return fmt.Errorf("write drawlist: %w", err)
			}

			w := cmd.OutOrStdout()
			printSuccess(w, "Exported frame %d (%dx%d, %d bytes)", frame, meta.Width, meta.Height, len(dl))
			printFile(w, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&session, "session", "s", "", "session id")
	cmd.Flags().Uint64VarP(&frame, "frame", "f", 0, "frame number")
	cmd.Flags().StringVarP(&out, "out", "o", "", "drawlist output file")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
