package mt19937

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInvalidSnapshot is returned when restoring from malformed state.
var ErrInvalidSnapshot = errors.New("mt19937: invalid snapshot")

const (
	snapshotMagic   = "MT19"
	snapshotVersion = 1

	// SnapshotSize is the length of the encoding produced by MarshalBinary.
	SnapshotSize = len(snapshotMagic) + 1 + 2 + 4*N
)

// State returns a copy of the state vector.
func (g *Generator) State() [N]uint32 {
	return g.mt
}

// Cursor returns the index of the next word to be tempered. N means the
// vector is exhausted and N+1 means the generator was never seeded.
func (g *Generator) Cursor() int {
	return g.mti
}

// Restore replaces the generator state with state and cursor, as previously
// returned by State and Cursor.
func (g *Generator) Restore(state [N]uint32, cursor int) error {
	if cursor < 0 || cursor > unseeded {
		return fmt.Errorf("%w: cursor %d out of range [0, %d]", ErrInvalidSnapshot, cursor, unseeded)
	}
	g.mt = state
	g.mti = cursor
	return nil
}

// MarshalBinary encodes the generator state.
//
// Layout: "MT19", a version byte, the cursor as a big-endian uint16, then the
// N state words big-endian.
func (g *Generator) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, SnapshotSize)
	b = append(b, snapshotMagic...)
	b = append(b, snapshotVersion)
	b = binary.BigEndian.AppendUint16(b, uint16(g.mti))
	for _, w := range g.mt {
		b = binary.BigEndian.AppendUint32(b, w)
	}
	return b, nil
}

// UnmarshalBinary restores state encoded by MarshalBinary. On error the
// generator is left unchanged.
func (g *Generator) UnmarshalBinary(data []byte) error {
	if len(data) != SnapshotSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSnapshot, len(data), SnapshotSize)
	}
	if string(data[:len(snapshotMagic)]) != snapshotMagic {
		return fmt.Errorf("%w: bad magic %q", ErrInvalidSnapshot, data[:len(snapshotMagic)])
	}
	data = data[len(snapshotMagic):]
	if data[0] != snapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, data[0])
	}
	cursor := int(binary.BigEndian.Uint16(data[1:3]))
	data = data[3:]

	var state [N]uint32
	for i := range state {
		state[i] = binary.BigEndian.Uint32(data[4*i:])
	}
	return g.Restore(state, cursor)
}
