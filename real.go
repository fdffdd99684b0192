package mt19937

// Uint31 returns a pseudo-random value in [0, 0x7fffffff].
// It consumes a single word.
func (g *Generator) Uint31() uint32 {
	return g.Uint32() >> 1
}

// RealClosed returns a pseudo-random float64 in [0, 1], both ends included.
func (g *Generator) RealClosed() float64 {
	// divided by 2^32-1
	return float64(g.Uint32()) * (1.0 / 4294967295.0)
}

// Float64 returns a pseudo-random float64 in [0, 1).
// This is the genrand_real2 variant with 32 bits of resolution.
func (g *Generator) Float64() float64 {
	// divided by 2^32
	return float64(g.Uint32()) * (1.0 / 4294967296.0)
}

// RealOpen returns a pseudo-random float64 in (0, 1), both ends excluded.
func (g *Generator) RealOpen() float64 {
	return (float64(g.Uint32()) + 0.5) * (1.0 / 4294967296.0)
}

// Real53 returns a pseudo-random float64 in [0, 1) with 53-bit resolution.
// It consumes two words and matches numpy's random_sample().
func (g *Generator) Real53() float64 {
	a := g.Uint32() >> 5
	b := g.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}
