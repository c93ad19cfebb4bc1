package config

import "sync"

// WindowSettings holds window configuration
type WindowSettings struct {
	mu     sync.RWMutex
	width  int
	height int
	title  string
}

var globalWindowSettings = &WindowSettings{
	width:  800,
	height: 600,
	title:  "LearnOpenGL",
}

// GetWindowSize returns the window size in screen coordinates
func GetWindowSize() (int, int) {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.width, globalWindowSettings.height
}

// SetWindowSize sets the window size; dimensions below 1 are raised to 1
func SetWindowSize(width, height int) {
	width = max(width, 1)
	height = max(height, 1)
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()
	globalWindowSettings.width = width
	globalWindowSettings.height = height
}

// GetWindowTitle returns the window title
func GetWindowTitle() string {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.title
}

// SetWindowTitle sets the window title
func SetWindowTitle(title string) {
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()
	globalWindowSettings.title = title
}
