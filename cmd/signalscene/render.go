package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/delaneyj/signalscene/svg"
)

func render(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.seq.Close()

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}

	var (
		buf   bytes.Buffer
		total uint64
	)
	frames := cfg.Frames()
	for i := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.step(cfg, i)

		buf.Reset()
		svg.WriteDocument(&buf, s.seq.View(), cfg.Size)
		path := filepath.Join(cfg.OutDir, fmt.Sprintf("frame-%05d.svg", i))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
		total += uint64(buf.Len())
	}

	log.Printf("Wrote %s frames (%s) to %s in %v",
		humanize.Comma(int64(frames)), humanize.Bytes(total), cfg.OutDir, time.Since(start))
	return nil
}
