package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/delaneyj/signalscene/scene"
)

func timeline(ctx context.Context, cmd *cli.Command) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.seq.Close()

	frames := cfg.Frames()
	for i := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.step(cfg, i)
		if s.seq.Completed() {
			break
		}
	}

	writeTimeline(os.Stdout, s.seq.History())
	log.SetOutput(os.Stderr)
	log.Printf("Ran %s frames, %d of %d scenes reached", humanize.Comma(int64(frames)), s.seq.ActiveUntracked()+1, s.seq.Len())
	return nil
}

func writeTimeline(w io.Writer, history []scene.Transition) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "scene", "event", "at", "local"})
	for _, t := range history {
		local := ""
		if t.Kind == scene.Finished {
			local = fmt.Sprintf("%.0fms", t.Local)
		}
		table.Append([]string{
			fmt.Sprint(t.Index),
			t.Name,
			t.Kind.String(),
			fmt.Sprintf("%.0fms", t.At),
			local,
		})
	}
	table.Render()
}
