package config

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderSettings holds render configuration
type RenderSettings struct {
	mu                 sync.RWMutex
	clearColor         mgl32.Vec4
	swapInterval       int // -1 keeps the windowing default
	fpsLimit           int // 0 means unlimited
	slowFrameThreshold int // milliseconds, 0 disables slow-frame logging
}

var globalRenderSettings = &RenderSettings{
	clearColor:   mgl32.Vec4{0.2, 0.3, 0.3, 1.0},
	swapInterval: -1,
}

// GetClearColor returns the background color the color buffer is cleared to
func GetClearColor() mgl32.Vec4 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.clearColor
}

// SetClearColor sets the background color, clamping each channel to [0, 1]
func SetClearColor(c mgl32.Vec4) {
	for i := range c {
		c[i] = mgl32.Clamp(c[i], 0, 1)
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.clearColor = c
}

// GetSwapInterval returns the configured swap interval, or -1 if the
// windowing default should be kept
func GetSwapInterval() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.swapInterval
}

// SetSwapInterval sets the swap interval; negative values restore the default
func SetSwapInterval(interval int) {
	if interval < 0 {
		interval = -1
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.swapInterval = interval
}

// GetFPSLimit returns the frame cap, 0 for unlimited
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.fpsLimit = limit
}

// GetSlowFrameThreshold returns the slow-frame threshold in milliseconds
func GetSlowFrameThreshold() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.slowFrameThreshold
}

// SetSlowFrameThreshold sets the slow-frame threshold in milliseconds
func SetSlowFrameThreshold(ms int) {
	if ms < 0 {
		ms = 0
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.slowFrameThreshold = ms
}
