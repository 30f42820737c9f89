// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"iter"
	"testing"

	"cogentcore.org/lab/base/randx"
	"cogentcore.org/core/cli"
	"cogentcore.org/triangles/events"
	"cogentcore.org/triangles/gpu"
	"cogentcore.org/triangles/gpu/gputest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWindow replays one batch of events per frame.
type testWindow struct {
	frames      [][]events.Event
	polls       int
	swaps       int
	shouldClose bool
	closeCalls  int
}

func (w *testWindow) Events() iter.Seq[events.Event] {
	return func(yield func(events.Event) bool) {
		w.polls++
		if len(w.frames) == 0 {
			return
		}
		batch := w.frames[0]
		w.frames = w.frames[1:]
		for _, ev := range batch {
			if !yield(ev) {
				return
			}
		}
	}
}

func (w *testWindow) ShouldClose() bool { return w.shouldClose }

func (w *testWindow) SetShouldClose(close bool) {
	w.closeCalls++
	w.shouldClose = close
}

func (w *testWindow) FramebufferSize() (int, int) { return 800, 600 }

func (w *testWindow) Swap() { w.swaps++ }

func testConfig(t *testing.T) *Config {
	cfg := &Config{}
	require.NoError(t, cli.SetFromDefaults(cfg))
	return cfg
}

func newTestApp(t *testing.T, ex *Exercise, frames ...[]events.Event) (*App, *testWindow, *gputest.Recorder) {
	win := &testWindow{frames: frames}
	rec := gputest.NewRecorder()
	a := New(testConfig(t), ex, win, rec, randx.NewSysRand(1))
	return a, win, rec
}

func click(x, y float32) events.Event {
	return events.NewMouse(events.MouseDown, events.Left, mgl32.Vec2{x, y})
}

func escape() events.Event {
	return events.NewKey(events.KeyDown, events.CodeEscape)
}

func TestConfigDefaults(t *testing.T) {
	cfg := testConfig(t)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 1, cfg.SwapInterval)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Debug)
	assert.NotNil(t, cfg.Rand())
}

func TestOptionsQuietOnSuccess(t *testing.T) {
	opts := Options("clicktriangles", "about")
	assert.Equal(t, "clicktriangles", opts.AppName)
	assert.False(t, opts.PrintSuccess)
	assert.True(t, opts.Fatal)
}

func TestExerciseTitles(t *testing.T) {
	assert.Equal(t, "Hello Triangle", HelloTriangle().Title)
	assert.Equal(t, "Click Triangles", ClickTriangles().Title)
}

func TestSetup(t *testing.T) {
	a, _, rec := newTestApp(t, ClickTriangles())
	assert.Equal(t, Running, a.State)
	assert.Equal(t, 0, a.Scene.Len())

	vp := rec.Named("Viewport")
	require.Len(t, vp, 1)
	assert.Equal(t, []any{int32(0), int32(0), int32(800), int32(600)}, vp[0].Args)

	proj := rec.Uniform(a.Program.Handle(), gpu.ProjectionUniform)
	want := mgl32.Ortho(0, 800, 600, 0, -1, 1)
	assert.Equal(t, want[:], proj)
	assert.Equal(t, []float32{-50, -50, 0, 50, -50, 0, 0, 50, 0}, rec.Buffer(a.Triangle.Buffer()))
}

func TestSetupShaderFailureContinues(t *testing.T) {
	win := &testWindow{}
	rec := gputest.NewRecorder()
	rec.LinkLog = "link failed"
	a := New(testConfig(t), HelloTriangle(), win, rec, nil)
	require.NotNil(t, a.Program)
	require.NotNil(t, a.Triangle)

	a.Render()
	assert.Len(t, rec.Draws, 1)
}

func TestEscapeClosesOnce(t *testing.T) {
	a, win, _ := newTestApp(t, ClickTriangles())
	a.Handle(escape())
	assert.Equal(t, Closing, a.State)
	assert.True(t, win.shouldClose)

	a.Handle(escape())
	a.Handle(&events.Close{})
	assert.False(t, a.Close())
	assert.Equal(t, Closing, a.State)
	assert.Equal(t, 1, win.closeCalls)
}

func TestIgnoredEvents(t *testing.T) {
	a, _, _ := newTestApp(t, ClickTriangles())
	a.Handle(events.NewKey(events.KeyUp, events.CodeEscape))
	a.Handle(events.NewKey(events.KeyDown, events.CodeSpacebar))
	a.Handle(events.NewMouse(events.MouseDown, events.Right, mgl32.Vec2{1, 1}))
	a.Handle(events.NewMouse(events.MouseUp, events.Left, mgl32.Vec2{1, 1}))
	assert.Equal(t, Running, a.State)
	assert.Equal(t, 0, a.Scene.Len())
}

func TestClicksSpawnInOrder(t *testing.T) {
	a, _, _ := newTestApp(t, ClickTriangles())
	pts := []mgl32.Vec2{{10, 20}, {30, 40}, {50, 60}, {10, 20}}
	for _, p := range pts {
		a.Handle(click(p[0], p[1]))
	}
	require.Equal(t, len(pts), a.Scene.Len())
	for i, sh := range a.Scene.All() {
		assert.Equal(t, pts[i], sh.Pos)
		for _, ch := range sh.Color {
			assert.GreaterOrEqual(t, ch, float32(0))
			assert.LessOrEqual(t, ch, float32(1))
		}
	}
}

func TestHelloTriangleIgnoresClicks(t *testing.T) {
	a, _, _ := newTestApp(t, HelloTriangle())
	a.Handle(click(100, 100))
	assert.Equal(t, 1, a.Scene.Len())
}

func TestClickScenarioDrawOrder(t *testing.T) {
	a, win, rec := newTestApp(t, ClickTriangles(),
		[]events.Event{click(100, 100), click(200, 150)},
	)
	rec.Reset()
	a.Frame()
	assert.Equal(t, 1, win.swaps)

	shapes := a.Scene.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, mgl32.Vec2{100, 100}, shapes[0].Pos)
	assert.Equal(t, mgl32.Vec2{200, 150}, shapes[1].Pos)

	require.Len(t, rec.Draws, 2)
	for i, d := range rec.Draws {
		sh := shapes[i]
		model := mgl32.Translate3D(sh.Pos[0], sh.Pos[1], 0)
		assert.Equal(t, model[:], d.Uniforms[gpu.ModelUniform])
		assert.Equal(t, []float32{sh.Color[0], sh.Color[1], sh.Color[2], 1}, d.Uniforms[gpu.ColorUniform])
		assert.Equal(t, a.Triangle.Handle(), d.VertexArray)
		assert.Equal(t, int32(0), d.First)
		assert.Equal(t, int32(3), d.Count)
	}
}

func TestRenderClearsFirst(t *testing.T) {
	a, _, rec := newTestApp(t, ClickTriangles())
	rec.Reset()
	a.Render()

	require.NotEmpty(t, rec.Calls)
	assert.Equal(t, "ClearColor", rec.Calls[0].Name)
	assert.Equal(t, []any{float32(0.1), float32(0.1), float32(0.1), float32(1)}, rec.Calls[0].Args)
	assert.Equal(t, "Clear", rec.Calls[1].Name)
	assert.Empty(t, rec.Draws, "an empty scene draws nothing")
	assert.Zero(t, rec.Count("LineWidth"))
}

func TestHelloTriangleRender(t *testing.T) {
	a, _, rec := newTestApp(t, HelloTriangle())

	want := mgl32.Ortho(-1, 1, -1, 1, -1, 1)
	assert.Equal(t, want[:], rec.Uniform(a.Program.Handle(), gpu.ProjectionUniform))
	assert.Equal(t, []float32{-0.65, 0.33, 0, -0.27, 0.53, 0, -0.61, 0.79, 0}, rec.Buffer(a.Triangle.Buffer()))

	rec.Reset()
	a.Render()
	require.Len(t, rec.Draws, 1)
	ident := mgl32.Ident4()
	assert.Equal(t, ident[:], rec.Draws[0].Uniforms[gpu.ModelUniform])
	assert.Equal(t, []float32{0, 0, 1, 1}, rec.Draws[0].Uniforms[gpu.ColorUniform])
	assert.Equal(t, []any{float32(10)}, rec.Named("LineWidth")[0].Args)
	assert.Equal(t, []any{float32(20)}, rec.Named("PointSize")[0].Args)
}

func TestRunStopsOnEscape(t *testing.T) {
	a, win, rec := newTestApp(t, ClickTriangles(),
		[]events.Event{click(100, 100)},
		nil,
		[]events.Event{click(200, 200), escape(), click(300, 300)},
		[]events.Event{click(400, 400)},
	)
	rec.Reset()
	a.Run()

	assert.Equal(t, Closing, a.State)
	assert.Equal(t, 3, a.Frames)
	assert.Equal(t, 3, win.polls)
	assert.Equal(t, 3, win.swaps)
	assert.Equal(t, 2, a.Scene.Len(), "clicks after escape are ignored")
	assert.Len(t, win.frames, 1, "the loop stops polling once closing")
}

func TestRunStopsOnWindowClose(t *testing.T) {
	a, win, _ := newTestApp(t, HelloTriangle(), nil, []events.Event{&events.Close{}})
	a.Run()
	assert.Equal(t, 2, a.Frames)
	assert.True(t, win.shouldClose)
}

func TestRunStopsOnCloseFlag(t *testing.T) {
	a, win, _ := newTestApp(t, HelloTriangle())
	win.shouldClose = true
	a.Run()
	assert.Equal(t, 1, a.Frames)
	assert.Equal(t, Closing, a.State)
}

func TestProjections(t *testing.T) {
	px := ClickTriangles().Projection(800, 600)
	tl := px.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	br := px.Mul4x1(mgl32.Vec4{800, 600, 0, 1})
	assert.True(t, tl.ApproxEqual(mgl32.Vec4{-1, 1, 0, 1}), "top left is %v", tl)
	assert.True(t, br.ApproxEqual(mgl32.Vec4{1, -1, 0, 1}), "bottom right is %v", br)

	ndc := HelloTriangle().Projection(800, 600)
	p := mgl32.Vec4{-0.65, 0.33, 0, 1}
	assert.True(t, ndc.Mul4x1(p).ApproxEqual(mgl32.Vec4{-0.65, 0.33, 0, 1}))
}

func TestStatesString(t *testing.T) {
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Closing", Closing.String())
}
