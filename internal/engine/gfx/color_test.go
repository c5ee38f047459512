package gfx

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    PackedCol
		wantErr bool
	}{
		{"#99CCFF", PackedCol{0x99, 0xCC, 0xFF, 0xFF}, false},
		{"ffffff", White, false},
		{"#10203040", PackedCol{0x10, 0x20, 0x30, 0x40}, false},
		{" #000000 ", Black, false},
		{"#FFF", PackedCol{}, true},
		{"#GGGGGG", PackedCol{}, true},
		{"", PackedCol{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseHex(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#99CCFF", "#9B9B9B", "#10203040"} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("Hex() = %q, want %q", got, s)
		}
	}
}

func TestFloats(t *testing.T) {
	r, g, b, a := RGB(255, 0, 51).Floats()
	if r != 1 || g != 0 || a != 1 {
		t.Errorf("Floats() = (%f, %f, %f, %f)", r, g, b, a)
	}
	if b < 0.199 || b > 0.201 {
		t.Errorf("blue = %f, want 0.2", b)
	}
}

func TestFromFloats(t *testing.T) {
	tests := []struct {
		r, g, b, a float32
		want       PackedCol
	}{
		{0, 0.5, 1, 1, PackedCol{0, 128, 255, 255}},
		{-0.2, 1.7, 0.2, 0, PackedCol{0, 255, 51, 0}},
	}
	for _, tt := range tests {
		if got := FromFloats(tt.r, tt.g, tt.b, tt.a); got != tt.want {
			t.Errorf("FromFloats(%v, %v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, tt.a, got, tt.want)
		}
	}

	for _, c := range []PackedCol{RGB(0x12, 0x34, 0x56), {R: 1, G: 254, B: 127, A: 9}} {
		if got := FromFloats(c.Floats()); got != c {
			t.Errorf("FromFloats(%v.Floats()) = %v", c, got)
		}
	}
}
