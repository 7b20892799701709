package drawlist

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// span locates one entry inside a table's arena.
type span struct {
	off, len uint32
}

// stringTable interns strings by exact content.
type stringTable struct {
	index map[string]uint32
	spans []span
	data  arena
}

// intern returns the index of s, adding it on first sight.
func (t *stringTable) intern(s string) (idx uint32, added bool) {
	if i, ok := t.index[s]; ok {
		return i, false
	}
	if t.index == nil {
		t.index = make(map[string]uint32)
	}
	idx = uint32(len(t.spans))
	t.spans = append(t.spans, span{off: t.data.addString(s), len: uint32(len(s))})
	t.index[s] = idx
	return idx, true
}

func (t *stringTable) count() int {
	return len(t.spans)
}

func (t *stringTable) reset() {
	clear(t.index)
	t.spans = t.spans[:0]
	t.data.reset()
}

// blobTable interns byte blobs. Entries are found by xxhash digest and
// confirmed by comparing bytes, so digest collisions never merge blobs.
type blobTable struct {
	byDigest map[uint64][]uint32
	spans    []span
	data     arena
}

func (t *blobTable) intern(b []byte) (idx uint32, added bool) {
	digest := xxhash.Sum64(b)
	for _, i := range t.byDigest[digest] {
		sp := t.spans[i]
		if bytes.Equal(t.data.bytes(sp.off, sp.len), b) {
			return i, false
		}
	}
	if t.byDigest == nil {
		t.byDigest = make(map[uint64][]uint32)
	}
	idx = uint32(len(t.spans))
	t.spans = append(t.spans, span{off: t.data.add(b), len: uint32(len(b))})
	t.byDigest[digest] = append(t.byDigest[digest], idx)
	return idx, true
}

func (t *blobTable) count() int {
	return len(t.spans)
}

func (t *blobTable) reset() {
	clear(t.byDigest)
	t.spans = t.spans[:0]
	t.data.reset()
}
