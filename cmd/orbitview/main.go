package main

import (
	"flag"

	"orbitview/engine"
	"orbitview/engine/camera"
	"orbitview/engine/game_object"
	"orbitview/engine/light"
	"orbitview/engine/model"
	"orbitview/engine/renderer"
	"orbitview/engine/scene"
	"orbitview/engine/window"
	"orbitview/logging"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

func main() {
	var (
		width       = flag.Int("width", 1280, "window width in pixels")
		height      = flag.Int("height", 720, "window height in pixels")
		rotateSpeed = flag.Float64("rotate-speed", 0.0025, "drag sensitivity in radians per pixel")
		zoomSpeed   = flag.Float64("zoom-speed", 0.1, "camera distance change per scroll step")
		msaaOff     = flag.Bool("no-msaa", false, "disable multisample anti-aliasing")
		uncapped    = flag.Bool("uncapped", false, "render without vsync")
		profile     = flag.Bool("profile", false, "log frame and memory statistics once per second")
		logFile     = flag.String("log-file", "", "optional path for a rotating JSON log file")
		verbose     = flag.Bool("v", false, "verbose (debug) console logging")
	)
	flag.Parse()

	logOpts := []logging.LoggerOption{}
	if *verbose {
		logOpts = append(logOpts, logging.WithDevelopment())
	}
	if *logFile != "" {
		logOpts = append(logOpts, logging.WithRotatingFile(*logFile, 10, 3, 28))
	}
	logger := logging.NewLogger(logOpts...)
	defer func() { _ = logger.Sync() }()

	// ── Window + Engine ─────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle("Orbit Viewer"),
		window.WithWidth(*width),
		window.WithHeight(*height),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithLogger(logger),
		engine.WithProfiling(*profile),
		engine.WithTickRate(60),
	)

	// ── Renderer ────────────────────────────────────────────────────
	rOpts := []renderer.RendererBuilderOption{}
	if *msaaOff {
		rOpts = append(rOpts, renderer.WithMSAA(renderer.MSAAOff))
	}
	if *uncapped {
		rOpts = append(rOpts, renderer.WithPresentMode(renderer.PresentModeUncapped))
	}
	r := renderer.NewRenderer(renderer.BackendTypeWGPU, win, rOpts...)

	// ── Camera + input routing ──────────────────────────────────────
	aspect := float32(win.Width()) / float32(win.Height())
	cam := camera.NewOrbitCamera(5.0, 0.5, 0.8, mgl32.Vec3{0, 0, 0}, aspect)
	ctrl := camera.NewCameraController(
		camera.WithRotateSpeed(float32(*rotateSpeed)),
		camera.WithZoomSpeed(float32(*zoomSpeed)),
	)

	win.SetMouseButtonCallback(func(button int, pressed bool) {
		ctrl.ProcessDeviceEvent(camera.ButtonEvent{Button: button, Pressed: pressed}, cam)
	})
	win.SetMouseMoveCallback(func(dx, dy float32) {
		ctrl.ProcessDeviceEvent(camera.MotionEvent{DX: dx, DY: dy}, cam)
	})
	win.SetScrollCallback(func(delta float32) {
		ctrl.ProcessDeviceEvent(camera.ScrollEvent{Delta: delta}, cam)
	})
	win.SetKeyDownCallback(func(keyCode uint32) {
		ctrl.ProcessKeyEvent(int(keyCode), true)
	})
	win.SetKeyUpCallback(func(keyCode uint32) {
		ctrl.ProcessKeyEvent(int(keyCode), false)
	})

	// ── Scene ───────────────────────────────────────────────────────
	sc := scene.NewScene("viewer", cam,
		scene.WithActive(true),
		scene.WithRenderer(r),
		scene.WithLight(light.NewLight(
			light.WithPosition(2, 2, 2),
			light.WithColor(1, 1, 1),
		)),
	)

	sc.Add(game_object.NewGameObject(
		game_object.WithModel(model.NewPentagon()),
		game_object.WithRotationSpeed(0, 0.6, 0),
	))
	sc.Add(game_object.NewGameObject(
		game_object.WithModel(model.NewCube()),
		game_object.WithPosition(-2.5, 0, 0),
		game_object.WithScale(0.6, 0.6, 0.6),
		game_object.WithRotationSpeed(0.8, 0.4, 0),
	))
	sc.Add(game_object.NewGameObject(
		game_object.WithModel(model.NewCube()),
		game_object.WithPosition(2.5, 0, 0),
		game_object.WithScale(0.6, 0.6, 0.6),
		game_object.WithRotationSpeed(0, 0.4, 0.8),
	))

	if err := sc.InitGPUResources(); err != nil {
		logger.Fatal("failed to initialize GPU resources", zap.Error(err))
	}
	eng.AddScene(0, sc)

	logger.Info("starting orbit viewer",
		zap.Int("width", win.Width()),
		zap.Int("height", win.Height()),
		zap.Float64("rotate_speed", *rotateSpeed),
		zap.Float64("zoom_speed", *zoomSpeed),
	)
	logger.Info("controls: drag=orbit, shift+drag=pan, scroll=zoom, esc=quit")

	eng.Run()
}
