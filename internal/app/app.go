package app

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"learnopengl/internal/animation"
	"learnopengl/internal/config"
	"learnopengl/internal/graphics/renderer"
	"learnopengl/internal/input"
	"learnopengl/internal/profiling"
)

// Surface is the presentable window the frame loop drives. *glfw.Window
// satisfies it.
type Surface interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
}

// App owns the per-frame state and runs the frame loop until the surface is
// asked to close
type App struct {
	surface      Surface
	pollEvents   func()
	inputManager *input.InputManager
	renderer     *renderer.Renderer
	logger       *log.Logger

	sweep     *animation.Sweep
	transform mgl32.Mat4

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	frames     uint64
}

// NewApp wires the loop. pollEvents is normally glfw.PollEvents.
func NewApp(surface Surface, pollEvents func(), im *input.InputManager, r *renderer.Renderer, logger *log.Logger) *App {
	lo, hi, step := config.GetSweep()
	return &App{
		surface:      surface,
		pollEvents:   pollEvents,
		inputManager: im,
		renderer:     r,
		logger:       logger,
		sweep:        animation.NewSweep(lo, hi, step),
		transform:    mgl32.Ident4(),
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
}

// Run ticks until the surface should close
func (a *App) Run() {
	for !a.surface.ShouldClose() {
		a.tick()
	}
}

// Frames returns the number of completed frames
func (a *App) Frames() uint64 {
	return a.frames
}

// Offset returns the current horizontal sweep value
func (a *App) Offset() float32 {
	return a.sweep.Value()
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	a.update(dt)

	func() { defer profiling.Track("glfw.PollEvents")(); a.pollEvents() }()
	if a.inputManager.JustPressed(input.ActionQuit) {
		a.surface.SetShouldClose(true)
	}

	a.render(dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.surface.SwapBuffers() }()
	a.frames++

	if threshold := config.GetSlowFrameThreshold(); threshold > 0 {
		if d := time.Since(startTick); d > time.Duration(threshold)*time.Millisecond {
			a.logger.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(3))
		}
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags
	a.fpsLimiter.Wait()
}

func (a *App) update(dt float64) {
	a.sweep.Advance()
}

func (a *App) render(dt float64) {
	a.renderer.Render(renderer.RenderContext{
		DT:        dt,
		Offset:    a.sweep.Value(),
		Transform: a.transform,
	})
}
