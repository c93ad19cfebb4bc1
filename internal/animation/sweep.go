// Package animation holds the per-frame animated values.
package animation

// Sweep is a sawtooth scalar that climbs from Min toward Max by a fixed step
// every frame and jumps back to Min once it reaches Max. The value is always
// in [Min, Max).
type Sweep struct {
	min, max float32
	step     float32
	value    float32
}

// NewSweep creates a sweep starting at lo
func NewSweep(lo, hi, step float32) *Sweep {
	return &Sweep{min: lo, max: hi, step: step, value: lo}
}

// Advance moves the sweep forward by one step and returns the new value
func (s *Sweep) Advance() float32 {
	s.value += s.step
	// Reset on equality too so the upper bound is never observed.
	if s.value >= s.max {
		s.value = s.min
	}
	return s.value
}

// Value returns the current value without advancing
func (s *Sweep) Value() float32 {
	return s.value
}

// Reset puts the sweep back at its lower bound
func (s *Sweep) Reset() {
	s.value = s.min
}

// Bounds returns the sweep range
func (s *Sweep) Bounds() (lo, hi float32) {
	return s.min, s.max
}
