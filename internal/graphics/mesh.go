package graphics

// Mesh is a vertex array with a single position attribute at location 0,
// backed by one immutable vertex buffer
type Mesh struct {
	VAO, VBO    uint32
	dev         Device
	vertexCount int32
}

// NewMesh uploads positions (components floats per vertex) and describes
// them as attribute 0
func NewMesh(dev Device, positions []float32, components int32) *Mesh {
	vao := dev.GenVertexArray()
	vbo := dev.GenBuffer()

	dev.BindVertexArray(vao)
	dev.BindArrayBuffer(vbo)
	dev.ArrayBufferData(positions)

	dev.VertexAttribPointer(0, components, components*4, 0)
	dev.EnableVertexAttribArray(0)

	// unbind to reduce accidental state changes
	dev.BindArrayBuffer(0)
	dev.BindVertexArray(0)

	return &Mesh{
		VAO:         vao,
		VBO:         vbo,
		dev:         dev,
		vertexCount: int32(len(positions)) / components,
	}
}

// VertexCount returns the number of vertices drawn by Draw
func (m *Mesh) VertexCount() int32 {
	return m.vertexCount
}

// Draw submits the mesh as a triangle list
func (m *Mesh) Draw() {
	m.dev.BindVertexArray(m.VAO)
	m.dev.DrawTriangles(0, m.vertexCount)
	m.dev.BindVertexArray(0)
}

// Dispose deletes the vertex array and its buffer
func (m *Mesh) Dispose() {
	if m.VAO != 0 {
		m.dev.DeleteVertexArray(m.VAO)
		m.VAO = 0
	}
	if m.VBO != 0 {
		m.dev.DeleteBuffer(m.VBO)
		m.VBO = 0
	}
}
