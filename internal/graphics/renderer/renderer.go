package renderer

import (
	"fmt"

	"learnopengl/internal/config"
	"learnopengl/internal/graphics"
	"learnopengl/internal/profiling"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	dev         graphics.Device
	renderables []Renderable
}

// NewRenderer initializes the renderables in order. If one fails, the ones
// already initialized are disposed before the error is returned.
func NewRenderer(dev graphics.Device, rs ...Renderable) (*Renderer, error) {
	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}

	return &Renderer{
		dev:         dev,
		renderables: rs,
	}, nil
}

// Render clears the color buffer and draws every renderable
func (r *Renderer) Render(ctx RenderContext) {
	defer profiling.Track("renderer.Render")()

	// Clear the screen
	r.dev.ClearColor(config.GetClearColor())
	r.dev.ClearColorBuffer()

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// SetViewport resizes the viewport and forwards the size to renderables
func (r *Renderer) SetViewport(width, height int) {
	r.dev.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
