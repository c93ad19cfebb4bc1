package config

import "sync"

// AnimationSettings holds the horizontal sweep parameters
type AnimationSettings struct {
	mu       sync.RWMutex
	sweepMin float32
	sweepMax float32
	step     float32
}

var globalAnimationSettings = &AnimationSettings{
	sweepMin: -0.5,
	sweepMax: 0.5,
	step:     0.002,
}

// GetSweep returns the sweep range and the per-frame step
func GetSweep() (lo, hi, step float32) {
	globalAnimationSettings.mu.RLock()
	defer globalAnimationSettings.mu.RUnlock()
	return globalAnimationSettings.sweepMin, globalAnimationSettings.sweepMax, globalAnimationSettings.step
}

// SetSweep sets the sweep range and step. An empty range or a non-positive
// step leaves the settings unchanged.
func SetSweep(lo, hi, step float32) {
	if hi <= lo || step <= 0 {
		return
	}
	globalAnimationSettings.mu.Lock()
	defer globalAnimationSettings.mu.Unlock()
	globalAnimationSettings.sweepMin = lo
	globalAnimationSettings.sweepMax = hi
	globalAnimationSettings.step = step
}
