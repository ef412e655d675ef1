package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/signalscene/config"
	"github.com/delaneyj/signalscene/scene"
)

func TestRender(t *testing.T) {
	dir := t.TempDir()
	err := newApp().Run(context.Background(), []string{
		"signalscene", "render",
		"--out", dir,
		"--fps", "10",
		"--duration", "500ms",
		"--scenes", "pulse",
		"--size", "64",
	})
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "frame-*.svg"))
	require.NoError(t, err)
	assert.Len(t, files, 5)

	last, err := os.ReadFile(filepath.Join(dir, "frame-00004.svg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(last), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-50 -50 100 100" width="64" height="64">`))
	assert.Contains(t, string(last), `<circle cx="0" cy="0" r="`)
}

func TestUnknownScene(t *testing.T) {
	err := newApp().Run(context.Background(), []string{
		"signalscene", "render", "--out", t.TempDir(), "--scenes", "nope",
	})
	assert.ErrorContains(t, err, "nope")
}

func TestInvalidFlags(t *testing.T) {
	err := newApp().Run(context.Background(), []string{
		"signalscene", "timeline", "--fps", "0",
	})
	assert.ErrorContains(t, err, "fps must be positive")
}

func TestSessionTimeline(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.FPS = 100
	cfg.Scenes = []string{"pulse", "counter"}

	s, err := newSession(cfg)
	require.NoError(t, err)
	for i := range 250 {
		s.step(cfg, i)
	}
	require.Equal(t, 1, s.seq.ActiveUntracked())

	history := s.seq.History()
	require.Len(t, history, 3)
	assert.Equal(t, scene.Finished, history[1].Kind)
	assert.Equal(t, 2000.0, history[1].At)

	var buf bytes.Buffer
	writeTimeline(&buf, history)
	out := buf.String()
	assert.Contains(t, out, "SCENE")
	assert.Contains(t, out, "pulse")
	assert.Contains(t, out, "finished")
	assert.Contains(t, out, "2000ms")
}

func TestBenchCascade(t *testing.T) {
	calc, finished := benchCascade(10, 50)
	require.NotNil(t, calc)
	assert.Equal(t, 10, finished)

	_, finished = benchCascade(3, cascadeTicks+2)
	assert.Zero(t, finished, "a chain longer than the run never finishes")
}

func TestBenchCascadesTable(t *testing.T) {
	var buf bytes.Buffer
	benchCascades(&buf)
	out := buf.String()
	assert.Contains(t, out, "Event cascades")
	assert.Contains(t, strings.ToLower(out), "finished")
}

func TestBenchCommand(t *testing.T) {
	err := newApp().Run(context.Background(), []string{
		"signalscene", "bench", "--fps", "10", "--duration", "200ms", "--scenes", "pulse", "--scenes", "counter",
	})
	require.NoError(t, err)
}
