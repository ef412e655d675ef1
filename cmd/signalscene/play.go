package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"

	"github.com/delaneyj/signalscene/term"
)

func play(ctx context.Context, cmd *cli.Command) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// log lines would tear the screen
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.seq.Close()

	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	err = term.New(screen).Play(ctx, s.clk, cfg.FrameInterval(), s.seq.View)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
