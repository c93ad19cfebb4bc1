package graphics

import "github.com/go-gl/mathgl/mgl32"

// Stage identifies a programmable pipeline stage
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Device is the subset of the graphics API the program issues. All calls must
// happen on the thread that owns the current context.
type Device interface {
	// Shaders and programs
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	// ShaderStatus reports the compile status and the shader info log
	ShaderStatus(shader uint32) (compiled bool, infoLog string)
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramStatus reports the link status and the program info log
	ProgramStatus(program uint32) (linked bool, infoLog string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// Uniforms
	UniformLocation(program uint32, name string) int32
	Uniform1f(location int32, value float32)
	UniformMatrix4(location int32, m mgl32.Mat4)

	// Vertex data
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	ArrayBufferData(data []float32)
	VertexAttribPointer(index uint32, size, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DeleteBuffer(vbo uint32)

	// Framebuffer
	Viewport(x, y, width, height int32)
	ClearColor(c mgl32.Vec4)
	ClearColorBuffer()
	DrawTriangles(first, count int32)
}
