package triangle

import (
	"log"

	"learnopengl/internal/graphics"
	"learnopengl/internal/graphics/renderer"
)

// Triangle draws a single green triangle shifted horizontally by the
// context offset
type Triangle struct {
	dev    graphics.Device
	logger *log.Logger

	program *graphics.Program
	mesh    *graphics.Mesh
	report  graphics.BuildReport
}

// NewTriangle creates the renderable. Shader diagnostics go to logger.
func NewTriangle(dev graphics.Device, logger *log.Logger) *Triangle {
	return &Triangle{dev: dev, logger: logger}
}

// Init builds the shader program and uploads the geometry. A failed shader
// build is not an error here; see Report.
func (t *Triangle) Init() error {
	t.program, t.report = graphics.BuildProgram(t.dev, t.logger, vertexShaderSource, fragmentShaderSource)
	t.program.CacheUniforms(uniformTransform, uniformOffset)

	t.mesh = graphics.NewMesh(t.dev, vertices, 3)
	return nil
}

// Report returns the diagnostics of the shader build done by Init
func (t *Triangle) Report() graphics.BuildReport {
	return t.report
}

func (t *Triangle) Render(ctx renderer.RenderContext) {
	t.program.Use()
	t.program.SetMatrix4(uniformTransform, ctx.Transform)
	t.program.SetFloat(uniformOffset, ctx.Offset)

	t.mesh.Draw()
}

// Dispose releases the geometry and the program
func (t *Triangle) Dispose() {
	if t.mesh != nil {
		t.mesh.Dispose()
		t.mesh = nil
	}
	if t.program != nil {
		t.program.Delete()
		t.program = nil
	}
}

// SetViewport is a no-op; the triangle lives in normalized device coordinates
func (t *Triangle) SetViewport(width, height int) {}
