package record

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoderLevel trades a little encode time for smaller recordings;
// drawlists are dominated by repeated style words and compress well.
const zstdEncoderLevel = zstd.SpeedBetterCompression

var (
	sharedZstdEncoder persistentZstdEncoder
	sharedZstdDecoder persistentZstdDecoder
)

type persistentZstdEncoder struct {
	once sync.Once
	mu   sync.Mutex
	enc  *zstd.Encoder
	err  error
}

func (p *persistentZstdEncoder) use(fn func(*zstd.Encoder) error) error {
	p.once.Do(func() {
		p.enc, p.err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstdEncoderLevel))
	})
	if p.err != nil {
		return p.err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return fn(p.enc)
}

type persistentZstdDecoder struct {
	once sync.Once
	mu   sync.Mutex
	dec  *zstd.Decoder
	err  error
}

func (p *persistentZstdDecoder) use(fn func(*zstd.Decoder) error) error {
	p.once.Do(func() {
		p.dec, p.err = zstd.NewReader(nil)
	})
	if p.err != nil {
		return p.err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return fn(p.dec)
}

// compress appends the zstd frame of data to dst.
func compress(dst, data []byte) ([]byte, error) {
	var out []byte
	err := sharedZstdEncoder.use(func(enc *zstd.Encoder) error {
		out = enc.EncodeAll(data, dst)
		return nil
	})
	return out, err
}

// decompress returns a fresh copy of the data in the zstd frame src.
func decompress(src []byte) ([]byte, error) {
	var out []byte
	err := sharedZstdDecoder.use(func(dec *zstd.Decoder) error {
		var err error
		out, err = dec.DecodeAll(src, nil)
		return err
	})
	return out, err
}

var frameBufPool = &sync.Pool{
	New: func() any {
		return make([]byte, 0, 64<<10)
	},
}

func releaseFrameBuf(b []byte) {
	frameBufPool.Put(b[:0])
}
