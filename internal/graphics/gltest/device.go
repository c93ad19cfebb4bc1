// Package gltest provides an in-memory graphics.Device for tests that need
// no window or driver.
package gltest

import (
	"github.com/go-gl/mathgl/mgl32"

	"learnopengl/internal/graphics"
)

// Call is one recorded device call
type Call struct {
	Op   string
	Args []any
}

// Device records every call and tracks live objects. Compile and link results
// default to success with an empty info log.
type Device struct {
	Calls []Call

	// CompileResult decides the status and info log of each compile
	CompileResult func(stage graphics.Stage, source string) (bool, string)
	// LinkResult decides the status and info log of each link
	LinkResult func() (bool, string)

	// LocationLookups counts UniformLocation calls per name
	LocationLookups map[string]int
	Floats          map[int32]float32
	Matrices        map[int32]mgl32.Mat4
	BufferData      map[uint32][]float32

	next        uint32
	live        map[uint32]string
	stages      map[uint32]graphics.Stage
	sources     map[uint32]string
	status      map[uint32]Result
	locations   map[string]int32
	boundBuffer uint32
}

// Result is a stored compile or link outcome
type Result struct {
	OK      bool
	InfoLog string
}

var _ graphics.Device = (*Device)(nil)

// New creates an empty fake device
func New() *Device {
	return &Device{
		LocationLookups: make(map[string]int),
		Floats:          make(map[int32]float32),
		Matrices:        make(map[int32]mgl32.Mat4),
		BufferData:      make(map[uint32][]float32),
		live:            make(map[uint32]string),
		stages:          make(map[uint32]graphics.Stage),
		sources:         make(map[uint32]string),
		status:          make(map[uint32]Result),
		locations:       make(map[string]int32),
	}
}

func (d *Device) record(op string, args ...any) {
	d.Calls = append(d.Calls, Call{Op: op, Args: args})
}

func (d *Device) alloc(kind string) uint32 {
	d.next++
	d.live[d.next] = kind
	return d.next
}

// Ops returns the recorded operation names in call order
func (d *Device) Ops() []string {
	ops := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was called
func (d *Device) Count(op string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls but keeps object state
func (d *Device) Reset() {
	d.Calls = nil
}

// Live returns the number of live objects of the given kind
// ("shader", "program", "vertex array", "buffer")
func (d *Device) Live(kind string) int {
	n := 0
	for _, k := range d.live {
		if k == kind {
			n++
		}
	}
	return n
}

func (d *Device) release(id uint32, kind string) {
	if d.live[id] == kind {
		delete(d.live, id)
	}
}

func (d *Device) CreateShader(stage graphics.Stage) uint32 {
	id := d.alloc("shader")
	d.stages[id] = stage
	d.record("CreateShader", stage)
	return id
}

func (d *Device) ShaderSource(shader uint32, source string) {
	d.sources[shader] = source
	d.record("ShaderSource", shader)
}

func (d *Device) CompileShader(shader uint32) {
	res := Result{OK: true}
	if d.CompileResult != nil {
		res.OK, res.InfoLog = d.CompileResult(d.stages[shader], d.sources[shader])
	}
	d.status[shader] = res
	d.record("CompileShader", shader)
}

func (d *Device) ShaderStatus(shader uint32) (bool, string) {
	d.record("ShaderStatus", shader)
	res := d.status[shader]
	return res.OK, res.InfoLog
}

func (d *Device) DeleteShader(shader uint32) {
	d.release(shader, "shader")
	d.record("DeleteShader", shader)
}

func (d *Device) CreateProgram() uint32 {
	id := d.alloc("program")
	d.record("CreateProgram")
	return id
}

func (d *Device) AttachShader(program, shader uint32) {
	d.record("AttachShader", program, shader)
}

func (d *Device) LinkProgram(program uint32) {
	res := Result{OK: true}
	if d.LinkResult != nil {
		res.OK, res.InfoLog = d.LinkResult()
	}
	d.status[program] = res
	d.record("LinkProgram", program)
}

func (d *Device) ProgramStatus(program uint32) (bool, string) {
	d.record("ProgramStatus", program)
	res := d.status[program]
	return res.OK, res.InfoLog
}

func (d *Device) UseProgram(program uint32) {
	d.record("UseProgram", program)
}

func (d *Device) DeleteProgram(program uint32) {
	d.release(program, "program")
	d.record("DeleteProgram", program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.LocationLookups[name]++
	d.record("UniformLocation", program, name)
	loc, ok := d.locations[name]
	if !ok {
		loc = int32(len(d.locations))
		d.locations[name] = loc
	}
	return loc
}

func (d *Device) Uniform1f(location int32, value float32) {
	d.Floats[location] = value
	d.record("Uniform1f", location, value)
}

func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	d.Matrices[location] = m
	d.record("UniformMatrix4", location, m)
}

func (d *Device) GenVertexArray() uint32 {
	id := d.alloc("vertex array")
	d.record("GenVertexArray")
	return id
}

func (d *Device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray", vao)
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.release(vao, "vertex array")
	d.record("DeleteVertexArray", vao)
}

func (d *Device) GenBuffer() uint32 {
	id := d.alloc("buffer")
	d.record("GenBuffer")
	return id
}

func (d *Device) BindArrayBuffer(vbo uint32) {
	d.boundBuffer = vbo
	d.record("BindArrayBuffer", vbo)
}

func (d *Device) ArrayBufferData(data []float32) {
	d.BufferData[d.boundBuffer] = append([]float32(nil), data...)
	d.record("ArrayBufferData", len(data))
}

func (d *Device) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	d.record("VertexAttribPointer", index, size, stride, offset)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
}

func (d *Device) DeleteBuffer(vbo uint32) {
	d.release(vbo, "buffer")
	d.record("DeleteBuffer", vbo)
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
}

func (d *Device) ClearColor(c mgl32.Vec4) {
	d.record("ClearColor", c)
}

func (d *Device) ClearColorBuffer() {
	d.record("ClearColorBuffer")
}

func (d *Device) DrawTriangles(first, count int32) {
	d.record("DrawTriangles", first, count)
}
