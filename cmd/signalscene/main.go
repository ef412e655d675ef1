package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
	"github.com/delaneyj/signalscene/config"
	"github.com/delaneyj/signalscene/scene"
	"github.com/delaneyj/signalscene/scenes"
)

const (
	fpsKey      = "fps"
	durationKey = "duration"
	outKey      = "out"
	sizeKey     = "size"
	seedKey     = "seed"
	scenesKey   = "scenes"
	cascadesKey = "cascades"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "signalscene",
		Usage: "Play reactive SVG animation scenes",
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "Render scenes on a virtual clock to SVG frames",
				Flags:  append(commonFlags(), &cli.StringFlag{Name: outKey, Usage: "output directory (SIGNALSCENE_OUT_DIR)"}, &cli.IntFlag{Name: sizeKey, Usage: "frame size in pixels (SIGNALSCENE_SIZE)"}),
				Action: render,
			},
			{
				Name:   "play",
				Usage:  "Play scenes in the terminal, click circles to interact, q to quit",
				Flags:  commonFlags(),
				Action: play,
			},
			{
				Name:  "bench",
				Usage: "Measure per frame update and render time of each scene",
				Flags: append(commonFlags(), &cli.BoolFlag{
					Name:  cascadesKey,
					Usage: "also time clock ticks through chains of suppressing events",
				}),
				Action: bench,
			},
			{
				Name:   "timeline",
				Usage:  "Print when each scene activates and finishes",
				Flags:  commonFlags(),
				Action: timeline,
			},
		},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: fpsKey, Usage: "frames per second (SIGNALSCENE_FPS)"},
		&cli.DurationFlag{Name: durationKey, Aliases: []string{"d"}, Usage: "how long to run (SIGNALSCENE_DURATION)"},
		&cli.UintFlag{Name: seedKey, Usage: "random seed (SIGNALSCENE_SEED)"},
		&cli.StringSliceFlag{Name: scenesKey, Aliases: []string{"s"}, Usage: "scenes to play in order (SIGNALSCENE_SCENES)"},
	}
}

// settings loads the environment config and applies any flags given.
func settings(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if cmd.IsSet(fpsKey) {
		cfg.FPS = int(cmd.Int(fpsKey))
	}
	if cmd.IsSet(durationKey) {
		cfg.Duration = cmd.Duration(durationKey)
	}
	if cmd.IsSet(seedKey) {
		cfg.Seed = cmd.Uint(seedKey)
	}
	if cmd.IsSet(scenesKey) {
		cfg.Scenes = cmd.StringSlice(scenesKey)
	}
	if cmd.IsSet(outKey) {
		cfg.OutDir = cmd.String(outKey)
	}
	if cmd.IsSet(sizeKey) {
		cfg.Size = int(cmd.Int(sizeKey))
	}
	return cfg, cfg.Validate()
}

// session is one reactive system playing a list of scenes.
type session struct {
	rs  *alien.ReactiveSystem
	clk *clock.Clock
	seq *scene.Sequencer
}

func newSession(cfg config.Config, names ...string) (*session, error) {
	rs := alien.CreateReactiveSystem(func(from alien.SignalAware, err error) {
		log.Printf("effect error: %v", err)
	})
	clk := clock.New(rs)

	if len(names) == 0 {
		names = cfg.Scenes
	}
	list, err := scenes.Lookup(rs, rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)), names...)
	if err != nil {
		return nil, err
	}
	seq, err := scene.NewSequencer(rs, clk, list...)
	if err != nil {
		return nil, err
	}
	return &session{rs: rs, clk: clk, seq: seq}, nil
}

// step moves the virtual clock to frame i.
func (s *session) step(cfg config.Config, i int) {
	s.clk.Set(float64(i) * cfg.FrameMillis())
}
