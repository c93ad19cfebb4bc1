package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"learnopengl/internal/app"
	"learnopengl/internal/graphics"
	"learnopengl/internal/graphics/renderables/triangle"
	"learnopengl/internal/graphics/renderer"
	"learnopengl/internal/input"
)

const exitFailure = -1

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println("Starting GLFW context, OpenGL 3.3")

	if err := glfw.Init(); err != nil {
		fmt.Println("Failed to init GLFW:", err)
		return exitFailure
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow()
	if err != nil {
		switch {
		case errors.Is(err, app.ErrLoaderInit):
			fmt.Println("Failed to init GL function loader:", err)
		default:
			fmt.Println("Failed to create GLFW window:", err)
		}
		return exitFailure
	}
	defer window.Destroy()

	im := input.NewInputManager()
	im.SetKeyCallback(window)

	// Shader diagnostics are printed verbatim
	logger := log.New(os.Stdout, "", 0)

	dev := graphics.NewGL()
	tri := triangle.NewTriangle(dev, logger)
	r, err := renderer.NewRenderer(dev, tri)
	if err != nil {
		fmt.Println("Failed to init renderer:", err)
		return exitFailure
	}
	defer r.Dispose()

	r.SetViewport(window.GetFramebufferSize())

	// A broken program renders nothing; keep running like the driver would
	if err := tri.Report().Err(); err != nil {
		log.Printf("continuing with invalid shader program: %v", err)
	}

	app.NewApp(window, glfw.PollEvents, im, r, logger).Run()
	return 0
}
