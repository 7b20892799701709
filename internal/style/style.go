package style

// Attr represents text attributes as a bitfield.
// The bit order is the drawlist wire order.
type Attr uint8

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrItalic        Attr = 1 << 1
	AttrUnderline     Attr = 1 << 2
	AttrInverse       Attr = 1 << 3
	AttrDim           Attr = 1 << 4
	AttrStrikethrough Attr = 1 << 5
	AttrOverline      Attr = 1 << 6
	AttrBlink         Attr = 1 << 7
)

// attrNames lists attribute names in bit order.
var attrNames = [8]string{"bold", "italic", "underline", "inverse", "dim", "strikethrough", "overline", "blink"}

// Names returns the names of the set attributes in bit order.
func (a Attr) Names() []string {
	var out []string
	for i, name := range attrNames {
		if a&(1<<i) != 0 {
			out = append(out, name)
		}
	}
	return out
}

// UnderlineStyle selects an extended underline variant. Variants have no
// independent wire form and degrade to the plain underline bit.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineStraight
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Style combines text attributes with foreground and background colors.
// Zero value represents default styling (no attributes, default colors).
type Style struct {
	Fg        Color
	Bg        Color
	Attrs     Attr
	Underline UnderlineStyle
}

// NewStyle returns a new Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// With returns a new Style with the given attribute(s) added.
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style { return s.With(AttrBold) }

// Italic returns a new Style with the italic attribute set.
func (s Style) Italic() Style { return s.With(AttrItalic) }

// Dim returns a new Style with the dim attribute set.
func (s Style) Dim() Style { return s.With(AttrDim) }

// Inverse returns a new Style with the inverse attribute set.
func (s Style) Inverse() Style { return s.With(AttrInverse) }

// UnderlineVariant returns a new Style with the given underline variant.
func (s Style) UnderlineVariant(u UnderlineStyle) Style {
	s.Underline = u
	return s
}

// EffectiveAttrs returns the attribute bits as they go on the wire: any
// underline variant sets AttrUnderline.
func (s Style) EffectiveAttrs() Attr {
	if s.Underline != UnderlineNone {
		return s.Attrs | AttrUnderline
	}
	return s.Attrs
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) &&
		s.Attrs == other.Attrs && s.Underline == other.Underline
}

// HasAttr returns true if the style has the given attribute(s) set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
