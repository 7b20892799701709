package style

import (
	"reflect"
	"testing"
)

func TestHexColor(t *testing.T) {
	type tc struct {
		in      string
		want    uint32
		wantErr bool
	}

	tests := map[string]tc{
		"six digit":        {in: "#1a2b3c", want: 0x1a2b3c},
		"three digit":      {in: "#f0a", want: 0xff00aa},
		"no hash":          {in: "ffffff", want: 0xffffff},
		"bad length":       {in: "#12345", wantErr: true},
		"bad character":    {in: "#zz0000", wantErr: true},
		"bad short nibble": {in: "#g00", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := HexColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("HexColor(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexColor(%q) error = %v", tt.in, err)
			}
			if got := c.Packed(); got != tt.want {
				t.Errorf("Packed() = %#06x, want %#06x", got, tt.want)
			}
		})
	}
}

func TestColor_Packed(t *testing.T) {
	type tc struct {
		color Color
		want  uint32
	}

	tests := map[string]tc{
		"default is zero":    {color: DefaultColor(), want: 0},
		"ansi red":           {color: Red, want: 0xcd3131},
		"ansi cube 196":      {color: ANSIColor(196), want: 0xff0000},
		"ansi grayscale 232": {color: ANSIColor(232), want: 0x080808},
		"rgb passthrough":    {color: RGBColor(1, 2, 3), want: 0x010203},
		"packed roundtrip":   {color: PackedColor(0xabcdef), want: 0xabcdef},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.color.Packed(); got != tt.want {
				t.Errorf("Packed() = %#06x, want %#06x", got, tt.want)
			}
		})
	}
}

func TestStyle_EffectiveAttrs(t *testing.T) {
	type tc struct {
		style Style
		want  Attr
	}

	tests := map[string]tc{
		"plain":             {style: NewStyle(), want: AttrNone},
		"bold":              {style: NewStyle().Bold(), want: AttrBold},
		"curly underline":   {style: NewStyle().UnderlineVariant(UnderlineCurly), want: AttrUnderline},
		"double with dim":   {style: NewStyle().Dim().UnderlineVariant(UnderlineDouble), want: AttrDim | AttrUnderline},
		"explicit bit kept": {style: NewStyle().With(AttrUnderline), want: AttrUnderline},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.style.EffectiveAttrs(); got != tt.want {
				t.Errorf("EffectiveAttrs() = %08b, want %08b", got, tt.want)
			}
		})
	}
}

func TestAttr_Names(t *testing.T) {
	got := (AttrBold | AttrInverse | AttrBlink).Names()
	want := []string{"bold", "inverse", "blink"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestStyle_Equal(t *testing.T) {
	a := NewStyle().Foreground(Red).Bold()
	b := NewStyle().Foreground(Red).Bold()
	c := NewStyle().Foreground(Red).Bold().UnderlineVariant(UnderlineDotted)

	if !a.Equal(b) {
		t.Error("identical styles should be equal")
	}
	if a.Equal(c) {
		t.Error("styles differing in underline variant should not be equal")
	}
}
