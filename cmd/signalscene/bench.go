package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/delaneyj/signalscene/alien"
	"github.com/delaneyj/signalscene/clock"
	"github.com/delaneyj/signalscene/config"
	"github.com/delaneyj/signalscene/event"
	"github.com/delaneyj/signalscene/scenes"
	"github.com/delaneyj/signalscene/svg"
)

var (
	cascadeChains = []int{1, 10, 100}
	cascadeDepths = []int{1, 10, 100}
	cascadeTicks  = 100
)

// clock milliseconds between hops along a cascade
const cascadeStep = 1.0

func bench(ctx context.Context, cmd *cli.Command) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	names := cfg.Scenes
	if len(names) == 0 {
		names = scenes.Names()
	}

	// scene transitions are noise here
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	tbl := table.NewWriter()
	tbl.SetTitle("Scene frames")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"scene", "frames", "avg", "min", "p75", "p99", "max"})

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := benchScene(cfg, name)
		if err != nil {
			return err
		}
		tbl.AppendRow(row)
	}
	tbl.Render()

	if cmd.Bool(cascadesKey) {
		benchCascades(os.Stdout)
	}
	return nil
}

// benchScene times advancing the clock one frame and rendering the result.
func benchScene(cfg config.Config, name string) (table.Row, error) {
	s, err := newSession(cfg, name)
	if err != nil {
		return nil, err
	}
	defer s.seq.Close()

	frames := cfg.Frames()
	tach := tachymeter.New(&tachymeter.Config{Size: frames})
	for i := range frames {
		start := time.Now()
		s.step(cfg, i)
		svg.WriteDocument(io.Discard, s.seq.View(), cfg.Size)
		tach.AddTime(time.Since(start))
	}

	calc := tach.Calc()
	return table.Row{
		name,
		humanize.Comma(int64(frames)),
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	}, nil
}

// benchCascades times clock ticks through chains of events. Every event in a
// chain runs an After effect until the next event fires and suppresses it,
// so each tick hands the chain on by one event.
func benchCascades(w io.Writer) {
	tbl := table.NewWriter()
	tbl.SetTitle("Event cascades")
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"chains", "depth", "finished", "avg", "min", "p75", "p99", "max"})

	for _, chains := range cascadeChains {
		for _, depth := range cascadeDepths {
			calc, finished := benchCascade(chains, depth)
			tbl.AppendRow(table.Row{
				chains,
				depth,
				finished,
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			})
		}
	}
	tbl.Render()
}

func benchCascade(chains, depth int) (*tachymeter.Metrics, int) {
	rs := alien.CreateReactiveSystem(func(from alien.SignalAware, err error) {
		log.Panic(err)
	})
	clk := clock.New(rs)

	finished := 0
	for range chains {
		chain := make([]*event.Event, depth)
		for i := range chain {
			chain[i] = event.New(rs, clk)
		}
		for i, e := range chain {
			if i == depth-1 {
				e.On(func(float64, int) { finished++ })
				continue
			}
			next := chain[i+1]
			e.After(func(elapsed float64) {
				if elapsed >= cascadeStep {
					next.TriggerOnce()
				}
			}, next)
		}
		chain[0].Trigger()
	}

	tach := tachymeter.New(&tachymeter.Config{Size: cascadeTicks})
	for range cascadeTicks {
		start := time.Now()
		clk.Advance(cascadeStep)
		tach.AddTime(time.Since(start))
	}
	return tach.Calc(), finished
}
