package drawlist

// minArenaCap is the first allocation of an arena.
const minArenaCap = 4096

// arena is a growable byte region shared by every entry of a table. It
// grows geometrically and is truncated, never freed, on reset.
type arena struct {
	buf []byte
}

// add copies b into the arena and returns its offset.
func (a *arena) add(b []byte) uint32 {
	a.reserve(len(b))
	off := len(a.buf)
	a.buf = append(a.buf, b...)
	return uint32(off)
}

// addString copies s into the arena and returns its offset.
func (a *arena) addString(s string) uint32 {
	a.reserve(len(s))
	off := len(a.buf)
	a.buf = append(a.buf, s...)
	return uint32(off)
}

func (a *arena) reserve(n int) {
	need := len(a.buf) + n
	if need <= cap(a.buf) {
		return
	}
	c := max(cap(a.buf)*2, minArenaCap)
	for c < need {
		c *= 2
	}
	grown := make([]byte, len(a.buf), c)
	copy(grown, a.buf)
	a.buf = grown
}

func (a *arena) bytes(off, n uint32) []byte {
	return a.buf[off : off+n]
}

func (a *arena) len() int {
	return len(a.buf)
}

func (a *arena) reset() {
	a.buf = a.buf[:0]
}
