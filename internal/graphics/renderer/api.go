package renderer

import "github.com/go-gl/mathgl/mgl32"

// RenderContext provides shared per-frame values for all renderables
type RenderContext struct {
	DT        float64
	Offset    float32    // horizontal sweep applied by the vertex shader
	Transform mgl32.Mat4 // projection uploaded as matf4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
