package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tuicore/internal/record"
)

func newFramesCmd() *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "frames DB",
		Short: "List recorded sessions, or the frames of one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := openRecording(args[0])
			if err != nil {
				return err
			}
			defer rec.Close()

			w := cmd.OutOrStdout()
			if session == "" {
				return listSessions(w, rec)
			}
			id, err := parseSession(session)
			if err != nil {
				return err
			}
			return listFrames(w, rec, id)
		},
	}

	cmd.Flags().StringVarP(&session, "session", "s", "", "list the frames of this session")
	return cmd
}

func openRecording(path string) (*record.Recorder, error) {
	return record.Open(path, record.Options{ReadOnly: true, Timeout: time.Second})
}

func parseSession(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session id %q: %w", s, err)
	}
	return id, nil
}

func listSessions(w io.Writer, rec *record.Recorder) error {
	sessions, err := rec.Sessions()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(w, styleDim.Render("no sessions recorded"))
		return nil
	}
	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = []string{s.ID.String(), s.Started.Format(time.DateTime), strconv.Itoa(s.Frames)}
	}
	printTitle(w, "Sessions")
	printTable(w, []string{"Session", "Started", "Frames"}, rows)
	return nil
}

func listFrames(w io.Writer, rec *record.Recorder, session uuid.UUID) error {
	frames, err := rec.Frames(session)
	if err != nil {
		return err
	}
	rows := make([][]string, len(frames))
	for i, f := range frames {
		m := f.Meta
		rows[i] = []string{
			strconv.FormatUint(f.Frame, 10),
			fmt.Sprintf("%dx%d", m.Width, m.Height),
			fmt.Sprintf("v%d", m.Version),
			strconv.Itoa(m.Cmds),
			strconv.Itoa(m.Strings),
			strconv.Itoa(m.Blobs),
			strconv.Itoa(m.Dirty),
			fmt.Sprintf("%d/%d", f.Compressed, m.Bytes),
			m.Time.Format("15:04:05.000"),
		}
	}
	printTitle(w, "Session "+session.String())
	printTable(w, []string{"Frame", "Viewport", "Ver", "Cmds", "Strings", "Blobs", "Dirty", "Bytes (zstd/raw)", "Time"}, rows)
	return nil
}
