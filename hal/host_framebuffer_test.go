package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		pixel   uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
	}
	for _, tt := range tests {
		p := rgb565(tt.r, tt.g, tt.b)
		if p != tt.pixel {
			t.Fatalf("rgb565(%d, %d, %d) = %#04x, want %#04x", tt.r, tt.g, tt.b, p, tt.pixel)
		}
		r, g, b := rgb888From565(p)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("rgb888From565(%#04x) = (%d, %d, %d), want (%d, %d, %d)", p, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestFramebufferClearRGB(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	fb.ClearRGB(255, 0, 0)

	buf := fb.Buffer()
	if len(buf) != 4*3*2 {
		t.Fatalf("Buffer() len = %d, want %d", len(buf), 4*3*2)
	}
	for i := 0; i < len(buf); i += 2 {
		p := uint16(buf[i]) | uint16(buf[i+1])<<8
		if p != 0xF800 {
			t.Fatalf("pixel %d = %#04x, want 0xF800", i/2, p)
		}
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := newHostFramebuffer(8, 8)
	fb.resize(10, 5)

	if fb.Width() != 10 || fb.Height() != 5 {
		t.Fatalf("size after resize = %dx%d, want 10x5", fb.Width(), fb.Height())
	}
	if fb.StrideBytes() != 20 {
		t.Fatalf("StrideBytes() = %d, want 20", fb.StrideBytes())
	}
	if len(fb.Buffer()) != 20*5 {
		t.Fatalf("Buffer() len = %d, want %d", len(fb.Buffer()), 20*5)
	}
}

func TestFramebufferResizeSameSizeKeepsBuffer(t *testing.T) {
	fb := newHostFramebuffer(6, 6)
	fb.ClearRGB(0, 255, 0)
	fb.resize(6, 6)

	p := uint16(fb.Buffer()[0]) | uint16(fb.Buffer()[1])<<8
	if p != 0x07E0 {
		t.Fatalf("pixel after same-size resize = %#04x, want 0x07E0", p)
	}
}

func TestFramebufferResizeClampsToMinimum(t *testing.T) {
	fb := newHostFramebuffer(6, 6)
	fb.resize(0, -3)

	if fb.Width() != 1 || fb.Height() != 1 {
		t.Fatalf("size after degenerate resize = %dx%d, want 1x1", fb.Width(), fb.Height())
	}
}
