package game

// Rand is the randomness a Lane needs. *math/rand.Rand satisfies it; tests
// substitute a scripted source.
type Rand interface {
	Float64() float64
}

// uniform samples U(lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
