package mt19937

import (
	"encoding/binary"
	"math/rand"
)

// Uint64 returns a pseudo-random 64-bit value built from two draws, the
// first becoming the high word.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}

// Int63 returns a non-negative pseudo-random int64.
func (g *Generator) Int63() int64 {
	return int64(g.Uint64() >> 1)
}

// Read fills p with pseudo-random bytes, each draw contributing four bytes
// in little-endian order. Bytes left over from a partial final word are
// discarded. It always returns len(p), nil.
func (g *Generator) Read(p []byte) (n int, err error) {
	var buf [4]byte
	for n < len(p) {
		binary.LittleEndian.PutUint32(buf[:], g.Uint32())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}

// source adapts a Generator to rand.Source64.
type source struct {
	g *Generator
}

// Source returns g as a math/rand source. Seed on the returned source
// truncates its argument to 32 bits.
//
//	r := rand.New(mt19937.Source(mt19937.New(42)))
func Source(g *Generator) rand.Source64 {
	return source{g: g}
}

func (s source) Seed(seed int64) { s.g.Seed(uint32(seed)) }
func (s source) Int63() int64 { return s.g.Int63() }
func (s source) Uint64() uint64 { return s.g.Uint64() }
