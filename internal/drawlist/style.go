package drawlist

import (
	"encoding/binary"

	"github.com/grindlemire/go-tuicore/internal/style"
)

// WireStyle is a style as encoded on the wire.
type WireStyle struct {
	Fg    uint32 // 0x00RRGGBB
	Bg    uint32 // 0x00RRGGBB
	Attrs style.Attr
}

// EncodeStyle converts s to its wire form. Palette colors are converted to
// RGB, the default color encodes as 0 and underline variants collapse to
// the underline bit.
func EncodeStyle(s style.Style) WireStyle {
	return WireStyle{
		Fg:    s.Fg.Packed(),
		Bg:    s.Bg.Packed(),
		Attrs: s.EffectiveAttrs(),
	}
}

func appendStyle(b []byte, s WireStyle) []byte {
	b = binary.LittleEndian.AppendUint32(b, s.Fg&0x00FFFFFF)
	b = binary.LittleEndian.AppendUint32(b, s.Bg&0x00FFFFFF)
	b = binary.LittleEndian.AppendUint32(b, uint32(s.Attrs))
	return binary.LittleEndian.AppendUint32(b, 0)
}

func readStyle(b []byte) WireStyle {
	return WireStyle{
		Fg:    binary.LittleEndian.Uint32(b[0:]),
		Bg:    binary.LittleEndian.Uint32(b[4:]),
		Attrs: style.Attr(binary.LittleEndian.Uint32(b[8:])),
	}
}
