// Package mt19937 implements the MT19937 Mersenne Twister pseudo-random
// number generator.
//
// The generator reproduces the reference implementation by Matsumoto and
// Nishimura (mt19937ar.c) bit for bit: the same seed yields the same sequence
// of 32-bit words on every platform and in every language that follows the
// reference, including NumPy's RandomState and C++ std::mt19937.
//
// MT19937 is not cryptographically secure. 624 consecutive outputs are enough
// to recover the full state and predict every following value.
//
// A Generator is not safe for concurrent use. Give each goroutine its own
// instance or guard a shared one with a mutex.
//
// Basic usage:
//
//	g := mt19937.New(5489)
//	x := g.Uint32() // 3499211612
//	f := g.Float64() // in [0, 1)
package mt19937

import (
	"errors"
)

const (
	// N is the size of the state vector in 32-bit words.
	N = 624
	// M is the offset of the word mixed into each twisted word.
	M = 397

	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	// DefaultSeed is used when a never-seeded generator is drawn from.
	DefaultSeed = 5489

	keysBaseSeed = 19650218
	seedMult     = 1812433253
	keysMult1    = 1664525
	keysMult2    = 1566083941

	// unseeded marks a generator whose state has never been initialized.
	unseeded = N + 1
)

// ErrInvalidSeed is returned when seeding from an empty key sequence.
var ErrInvalidSeed = errors.New("mt19937: invalid seed")

// Generator is an MT19937 generator. Create one with New, NewFromKeys,
// NewFromClock or NewUnseeded; the zero value is not ready for use.
type Generator struct {
	mt  [N]uint32
	mti int
}

// New returns a generator seeded with a 32-bit scalar seed.
// This matches init_genrand(seed) and numpy.random.RandomState(seed).
func New(seed uint32) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// NewFromKeys returns a generator seeded with a key sequence, as
// init_by_array does. keys must not be empty.
func NewFromKeys(keys []uint32) (*Generator, error) {
	g := NewUnseeded()
	if err := g.SeedKeys(keys); err != nil {
		return nil, err
	}
	return g, nil
}

// NewUnseeded returns a generator that has not been seeded yet. The first
// draw seeds it with DefaultSeed.
func NewUnseeded() *Generator {
	return &Generator{mti: unseeded}
}

// Seed reinitializes the state from a 32-bit scalar seed.
func (g *Generator) Seed(seed uint32) {
	g.mt[0] = seed
	for i := 1; i < N; i++ {
		s := g.mt[i-1] ^ (g.mt[i-1] >> 30)
		g.mt[i] = seedMult*s + uint32(i)
	}
	g.mti = N
}

// SeedKeys reinitializes the state from a key sequence. An empty sequence
// returns ErrInvalidSeed and leaves the generator unchanged.
func (g *Generator) SeedKeys(keys []uint32) error {
	if len(keys) == 0 {
		return ErrInvalidSeed
	}

	g.Seed(keysBaseSeed)

	i, j := 1, 0
	k := N
	if len(keys) > k {
		k = len(keys)
	}
	for ; k > 0; k-- {
		s := g.mt[i-1] ^ (g.mt[i-1] >> 30)
		g.mt[i] = (g.mt[i] ^ (s * keysMult1)) + keys[j] + uint32(j)
		i++
		j++
		if i >= N {
			g.mt[0] = g.mt[N-1]
			i = 1
		}
		if j >= len(keys) {
			j = 0
		}
	}
	for k = N - 1; k > 0; k-- {
		s := g.mt[i-1] ^ (g.mt[i-1] >> 30)
		g.mt[i] = (g.mt[i] ^ (s * keysMult2)) - uint32(i)
		i++
		if i >= N {
			g.mt[0] = g.mt[N-1]
			i = 1
		}
	}

	// MSB is 1, so the initial vector is never all zero.
	g.mt[0] = upperMask
	return nil
}

// twist regenerates all N words of the state vector.
func (g *Generator) twist() {
	if g.mti == unseeded {
		g.Seed(DefaultSeed)
	}

	var y uint32
	mag01 := [2]uint32{0, matrixA}

	var kk int
	for kk = 0; kk < N-M; kk++ {
		y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
		g.mt[kk] = g.mt[kk+M] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < N-1; kk++ {
		y = (g.mt[kk] & upperMask) | (g.mt[kk+1] & lowerMask)
		g.mt[kk] = g.mt[kk+(M-N)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (g.mt[N-1] & upperMask) | (g.mt[0] & lowerMask)
	g.mt[N-1] = g.mt[M-1] ^ (y >> 1) ^ mag01[y&1]

	g.mti = 0
}

// Uint32 returns a pseudo-random value in [0, 0xffffffff].
func (g *Generator) Uint32() uint32 {
	if g.mti >= N {
		g.twist()
	}

	y := g.mt[g.mti]
	g.mti++

	return temper(y)
}

func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}
