package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	for _, p := range []uint16{0x0000, 0xFFFF, 0xF800, 0x07E0, 0x001F, 0x1234, 0x8410} {
		r, g, b := RGB888(p)
		if got := RGB565(r, g, b); got != p {
			t.Fatalf("round trip %#04x -> %#04x", p, got)
		}
	}
}
