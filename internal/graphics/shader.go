package graphics

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrShaderBuild is wrapped by BuildReport.Err when a compile or link step failed
var ErrShaderBuild = errors.New("shader build failed")

// Diagnostic is the outcome of one compile or link step
type Diagnostic struct {
	Step    string // "Vertex shader compilation", "Program linking", ...
	Label   string // prefix used when printing the info log
	OK      bool
	InfoLog string
}

// BuildReport collects the diagnostics of a program build
type BuildReport struct {
	Vertex   Diagnostic
	Fragment Diagnostic
	Link     Diagnostic
}

// OK reports whether both stages compiled and the program linked
func (r BuildReport) OK() bool {
	return r.Vertex.OK && r.Fragment.OK && r.Link.OK
}

// Err returns nil for a successful build, otherwise an error wrapping
// ErrShaderBuild that names the failed steps
func (r BuildReport) Err() error {
	var failed []string
	for _, d := range []Diagnostic{r.Vertex, r.Fragment, r.Link} {
		if d.OK {
			continue
		}
		if d.InfoLog != "" {
			failed = append(failed, d.Step+": "+d.InfoLog)
		} else {
			failed = append(failed, d.Step)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrShaderBuild, strings.Join(failed, "; "))
}

// print writes the diagnostic the way the build reports it on the console:
// nothing for an empty log, a failure notice first when the step failed
func (d Diagnostic) print(logger *log.Logger) {
	if d.InfoLog == "" {
		return
	}
	if !d.OK {
		logger.Printf("%s failed!", d.Step)
	}
	logger.Printf("%s info: %s", d.Label, d.InfoLog)
}

// Program is a linked shader program with cached uniform locations
type Program struct {
	ID       uint32
	dev      Device
	uniforms map[string]int32
}

// BuildProgram compiles both stages, links them and deletes the shader
// objects. Compile and link failures are printed to logger and reported, not
// returned as errors: the program is returned either way so the caller
// decides whether to continue with it.
func BuildProgram(dev Device, logger *log.Logger, vertexSrc, fragmentSrc string) (*Program, BuildReport) {
	var report BuildReport
	var vertexShader, fragmentShader uint32

	vertexShader, report.Vertex = compileShader(dev, VertexStage, vertexSrc)
	report.Vertex.print(logger)

	fragmentShader, report.Fragment = compileShader(dev, FragmentStage, fragmentSrc)
	report.Fragment.print(logger)

	program := dev.CreateProgram()
	dev.AttachShader(program, vertexShader)
	dev.AttachShader(program, fragmentShader)
	dev.LinkProgram(program)

	linked, infoLog := dev.ProgramStatus(program)
	report.Link = Diagnostic{Step: "Program linking", Label: "Program linking", OK: linked, InfoLog: infoLog}
	report.Link.print(logger)

	// the linked program keeps what it needs from the stages
	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)

	return &Program{ID: program, dev: dev, uniforms: make(map[string]int32)}, report
}

func compileShader(dev Device, stage Stage, source string) (uint32, Diagnostic) {
	name := "Vertex shader"
	if stage == FragmentStage {
		name = "Fragment shader"
	}

	shader := dev.CreateShader(stage)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	compiled, infoLog := dev.ShaderStatus(shader)
	return shader, Diagnostic{Step: name + " compilation", Label: name, OK: compiled, InfoLog: infoLog}
}

// CacheUniforms resolves the given uniform locations once
func (p *Program) CacheUniforms(names ...string) {
	for _, name := range names {
		p.uniforms[name] = p.dev.UniformLocation(p.ID, name)
	}
}

// Location returns the cached location of a uniform, resolving it on first use
func (p *Program) Location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.dev.UniformLocation(p.ID, name)
	p.uniforms[name] = loc
	return loc
}

// Use activates the shader program
func (p *Program) Use() {
	p.dev.UseProgram(p.ID)
}

// SetFloat sets a float uniform
func (p *Program) SetFloat(name string, value float32) {
	p.dev.Uniform1f(p.Location(name), value)
}

// SetMatrix4 sets a 4x4 matrix uniform
func (p *Program) SetMatrix4(name string, value mgl32.Mat4) {
	p.dev.UniformMatrix4(p.Location(name), value)
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() {
	if p.ID == 0 {
		return
	}
	p.dev.DeleteProgram(p.ID)
	p.ID = 0
	clear(p.uniforms)
}
