package triangle

import (
	"bytes"
	"log"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnopengl/internal/graphics"
	"learnopengl/internal/graphics/gltest"
	"learnopengl/internal/graphics/renderer"
)

func newTriangle(t *testing.T, dev *gltest.Device) (*Triangle, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	tr := NewTriangle(dev, log.New(&out, "", 0))
	require.NoError(t, tr.Init())
	return tr, &out
}

func TestInitUploadsTriangle(t *testing.T) {
	dev := gltest.New()
	tr, _ := newTriangle(t, dev)

	assert.True(t, tr.Report().OK())
	assert.Equal(t, vertices, dev.BufferData[tr.mesh.VBO])
	assert.Equal(t, int32(3), tr.mesh.VertexCount())
}

func TestRenderSequence(t *testing.T) {
	dev := gltest.New()
	tr, _ := newTriangle(t, dev)
	dev.Reset()

	tr.Render(renderer.RenderContext{Offset: -0.3, Transform: mgl32.Ident4()})

	assert.Equal(t, []string{
		"UseProgram",
		"UniformMatrix4",
		"Uniform1f",
		"BindVertexArray",
		"DrawTriangles",
		"BindVertexArray",
	}, dev.Ops())
	assert.Equal(t, []any{int32(0), int32(3)}, dev.Calls[4].Args)
}

func TestUniformLocationsResolvedOnce(t *testing.T) {
	dev := gltest.New()
	tr, _ := newTriangle(t, dev)

	var last float32
	for i := 0; i < 500; i++ {
		last = float32(i) * 0.001
		tr.Render(renderer.RenderContext{Offset: last, Transform: mgl32.Ident4()})
	}

	assert.Equal(t, 1, dev.LocationLookups[uniformTransform])
	assert.Equal(t, 1, dev.LocationLookups[uniformOffset])
	assert.Equal(t, last, dev.Floats[tr.program.Location(uniformOffset)])
	assert.Equal(t, mgl32.Ident4(), dev.Matrices[tr.program.Location(uniformTransform)])
}

func TestFailedBuildStillDraws(t *testing.T) {
	dev := gltest.New()
	dev.LinkResult = func() (bool, string) { return false, "link error" }
	tr, out := newTriangle(t, dev)

	assert.False(t, tr.Report().OK())
	assert.ErrorIs(t, tr.Report().Err(), graphics.ErrShaderBuild)
	assert.Contains(t, out.String(), "Program linking failed!")

	dev.Reset()
	assert.NotPanics(t, func() {
		tr.Render(renderer.RenderContext{Transform: mgl32.Ident4()})
	})
	assert.Equal(t, 1, dev.Count("DrawTriangles"))
}

func TestDisposeReleasesEverything(t *testing.T) {
	dev := gltest.New()
	tr, _ := newTriangle(t, dev)

	tr.Dispose()
	tr.Dispose()

	assert.Equal(t, 0, dev.Live("program"))
	assert.Equal(t, 0, dev.Live("vertex array"))
	assert.Equal(t, 0, dev.Live("buffer"))
	assert.Equal(t, 0, dev.Live("shader"))
}

func TestShaderSourcesDeclareUniforms(t *testing.T) {
	assert.Contains(t, vertexShaderSource, "uniform float "+uniformOffset+";")
	assert.Contains(t, vertexShaderSource, "uniform mat4 "+uniformTransform+";")
	assert.Contains(t, vertexShaderSource, "layout (location = 0) in vec3 pos3;")
	assert.Contains(t, fragmentShaderSource, "vec4(0.0f, 0.7f, 0.2f, 1.0f)")
}
