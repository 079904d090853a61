package core

// DefaultSeed is the state a fresh generator starts from when no seed is given.
const DefaultSeed uint32 = 12345

// ArenaRandom reproduces the legacy linear congruential generator used to
// place distant scenery. Two instances with the same seed and call sequence
// yield identical streams.
type ArenaRandom struct {
	value uint32
}

// NewArenaRandom creates a generator seeded with the provided value.
func NewArenaRandom(seed uint32) *ArenaRandom {
	return &ArenaRandom{value: seed}
}

// Next advances the state and returns the upper 16 bits of the new value.
func (r *ArenaRandom) Next() int {
	r.value = r.value*7143469 + 1
	return int(r.value >> 16)
}

// Reseed replaces the generator state unconditionally.
func (r *ArenaRandom) Reseed(seed uint32) { r.value = seed }

// Seed returns the current state. After any Next call this is no longer the
// original seed.
func (r *ArenaRandom) Seed() uint32 { return r.value }
