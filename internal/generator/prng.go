package generator

// Mulberry32 is a small-state 32-bit PRNG. All arithmetic wraps at 32 bits so
// the same seed yields the same stream on every platform.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 creates a generator seeded with seed.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Next advances the state and returns the next raw 32-bit output.
func (m *Mulberry32) Next() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns the next value in [0, 1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Next()) / 4294967296
}
