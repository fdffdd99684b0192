package mt19937

import "testing"

// twistModulo is the textbook form of the twist, indexing with modulo
// instead of the three split loops.
func twistModulo(mt *[N]uint32) {
	for kk := range N {
		y := (mt[kk] & upperMask) | (mt[(kk+1)%N] & lowerMask)
		next := mt[(kk+M)%N] ^ (y >> 1)
		if y&1 == 1 {
			next ^= matrixA
		}
		mt[kk] = next
	}
}

func TestTwistMatchesModuloForm(t *testing.T) {
	for _, seed := range []uint32{0, 1, 5489, 0xdeadbeef} {
		g := New(seed)
		want := g.mt
		for round := range 3 {
			g.twist()
			twistModulo(&want)
			if g.mt != want {
				t.Fatalf("seed %d round %d: state differs from modulo twist", seed, round)
			}
		}
	}
}

func TestRegenerationBoundary(t *testing.T) {
	g := New(5489)
	if g.mti != N {
		t.Fatalf("cursor after seeding: got %d, expected %d", g.mti, N)
	}

	g.Uint32()
	if g.mti != 1 {
		t.Fatalf("cursor after first draw: got %d, expected 1", g.mti)
	}
	firstTwist := g.mt

	for range N - 1 {
		g.Uint32()
	}
	if g.mti != N {
		t.Fatalf("cursor after %d draws: got %d, expected %d", N, g.mti, N)
	}
	if g.mt != firstTwist {
		t.Fatal("state rewritten before the vector was exhausted")
	}

	want := firstTwist
	twistModulo(&want)

	got := g.Uint32()
	if g.mti != 1 {
		t.Errorf("cursor after draw %d: got %d, expected 1", N+1, g.mti)
	}
	if g.mt != want {
		t.Error("draw 625 did not run exactly one twist")
	}
	if exp := temper(want[0]); got != exp {
		t.Errorf("draw %d: got %d, expected %d", N+1, got, exp)
	}
}

func TestSeedStateReference(t *testing.T) {
	// mt[1] of init_genrand(5489); check the wraparound multiply.
	g := New(5489)
	if want := uint32(1301868182); g.mt[1] != want {
		t.Errorf("mt[1]: got %d, expected %d", g.mt[1], want)
	}

	k, err := NewFromKeys([]uint32{1})
	if err != nil {
		t.Fatal(err)
	}
	if k.mt[0] != upperMask {
		t.Errorf("mt[0] after key seeding: got %#x, expected %#x", k.mt[0], upperMask)
	}
	if k.mti != N {
		t.Errorf("cursor after key seeding: got %d, expected %d", k.mti, N)
	}
}

func TestTemper(t *testing.T) {
	if got := temper(0); got != 0 {
		t.Errorf("temper(0): got %#x, expected 0", got)
	}

	// Every tempering step is invertible, so distinct inputs stay distinct.
	seen := make(map[uint32]uint32)
	for x := uint32(0); x < 1<<16; x++ {
		y := temper(x * 65537)
		if prev, ok := seen[y]; ok {
			t.Fatalf("temper collision: %#x and %#x both map to %#x", prev, x*65537, y)
		}
		seen[y] = x * 65537
	}
}
