package core

// RNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator). The whole generator is
// a single exported word so sessions can copy and hash it by value.
type RNG struct {
	State uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return RNG{State: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.State = r.State*6364136223846793005 + 1442695040888963407
	return r.State
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are far better distributed than the low ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Shuffle permutes n elements with the Fisher-Yates algorithm.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
