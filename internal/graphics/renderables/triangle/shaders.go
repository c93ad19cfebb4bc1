package triangle

const vertexShaderSource = `#version 330
layout (location = 0) in vec3 pos3;
uniform float v;
uniform mat4 matf4;
void main() {
	vec3 pos = pos3;
	pos.x += v;
	gl_Position = matf4 * vec4(pos, 1.0);
}`

const fragmentShaderSource = `#version 330 core
layout (location = 0) out vec4 color;
void main() {
	color = vec4(0.0f, 0.7f, 0.2f, 1.0f);
}`

// Uniform names shared with the vertex shader
const (
	uniformTransform = "matf4"
	uniformOffset    = "v"
)

// Triangle positions in normalized device coordinates
var vertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}
