package engine

import (
	"sync"
	"testing"
	"time"

	"orbitview/engine/camera"
	"orbitview/engine/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T, name string) scene.Scene {
	t.Helper()
	cam := camera.NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{0, 0, 0}, 16.0/9.0)
	return scene.NewScene(name, cam)
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine().(*engine)
	assert.Equal(t, time.Second/60, e.engineTickRate)
	assert.False(t, e.profilingEnabled)
	assert.Zero(t, e.renderFrameLimit)
	require.NotNil(t, e.profiler)
	assert.Empty(t, e.Scenes())
}

func TestEngineOptions(t *testing.T) {
	s := testScene(t, "main")
	e := NewEngine(
		WithProfiling(true),
		WithTickRate(120),
		WithRenderFrameLimit(30),
		WithScene(0, s),
	).(*engine)

	assert.True(t, e.profilingEnabled)
	assert.Equal(t, time.Second/120, e.engineTickRate)
	assert.Equal(t, time.Second/30, e.renderFrameLimit)
	assert.Same(t, s, e.Scene(0))
}

func TestSceneRegistry(t *testing.T) {
	e := NewEngine()
	a := testScene(t, "a")
	b := testScene(t, "b")

	e.AddScene(0, a)
	e.AddScene(1, b)
	assert.Same(t, a, e.Scene(0))
	assert.Same(t, b, e.Scene(1))
	assert.Nil(t, e.Scene(2))

	e.RemoveScene(0)
	assert.Nil(t, e.Scene(0))
	assert.Len(t, e.Scenes(), 1)

	// Scenes returns a copy; mutating it must not touch the registry.
	cp := e.Scenes()
	delete(cp, 1)
	assert.Same(t, b, e.Scene(1))
}

func TestSceneRegistryConcurrentAccess(t *testing.T) {
	e := NewEngine().(*engine)
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(key int) {
			defer wg.Done()
			s := scene.NewScene("s", camera.NewOrbitCamera(5.0, 0, 0, mgl32.Vec3{}, 1.0))
			for j := 0; j < 100; j++ {
				e.AddScene(key, s)
				_ = e.Scene(key)
				_ = e.Scenes()
				_ = e.activeScenes()
				e.RemoveScene(key)
			}
			e.AddScene(key, s)
		}(i)
	}
	wg.Wait()

	assert.Len(t, e.Scenes(), 8)
}

func TestActiveScenesOrderedByZIndex(t *testing.T) {
	e := NewEngine().(*engine)
	back := testScene(t, "back")
	front := testScene(t, "front")
	back.SetActive(true)
	front.SetActive(true)

	e.AddScene(5, front)
	e.AddScene(1, back)
	e.AddScene(3, testScene(t, "hidden"))

	active := e.activeScenes()
	require.Len(t, active, 2)
	assert.Same(t, back, active[0])
	assert.Same(t, front, active[1])
}

func TestSetTickRateBeforeRun(t *testing.T) {
	e := NewEngine().(*engine)
	e.SetTickRate(144)
	assert.Equal(t, time.Second/144, e.engineTickRate)

	e.SetTickRate(0)
	assert.Equal(t, time.Second/60, e.engineTickRate)
}

func TestSetRenderFrameLimit(t *testing.T) {
	e := NewEngine().(*engine)
	e.SetRenderFrameLimit(60)
	assert.Equal(t, time.Second/60, e.renderFrameLimit)
	e.SetRenderFrameLimit(0)
	assert.Zero(t, e.renderFrameLimit)
}

func TestQuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.Quit()
	assert.NotPanics(t, func() { e.Quit() })
}
