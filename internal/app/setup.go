package app

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"learnopengl/internal/config"
)

var (
	ErrWindowCreate = errors.New("failed to create GLFW window")
	ErrLoaderInit   = errors.New("failed to init GL function loader")
)

// SetupWindow creates the window with an OpenGL 3.3 core, forward-compatible
// context, makes it current and loads the GL functions. glfw.Init must have
// succeeded on the calling thread.
func SetupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, config.GetWindowTitle(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowCreate, err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("%w: %w", ErrLoaderInit, err)
	}

	if interval := config.GetSwapInterval(); interval >= 0 {
		glfw.SwapInterval(interval)
	}

	return window, nil
}
