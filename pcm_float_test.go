package wavdec

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/go-audio/audio"
)

func TestNormalizePCMInt(t *testing.T) {
	tests := []struct {
		name     string
		sample   int
		bitDepth int
		want     float32
	}{
		{"8bit min", 0, 8, -1},
		{"8bit max", 255, 8, 1},
		{"16bit min", -32768, 16, -1},
		{"16bit half", 16384, 16, 0.5},
		{"24bit min", -8388608, 24, -1},
		{"32bit quarter", 536870912, 32, 0.25},
		{"unsupported", 100, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizePCMInt(tt.sample, tt.bitDepth)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Fatalf("normalizePCMInt(%d,%d)=%f, want %f", tt.sample, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestPCMFloat32Buffer(t *testing.T) {
	d := newTestDecoder(t, 2, 8000, 16, []byte{0x00, 0x80, 0x00, 0x40, 0x00, 0x00, 0x00, 0xc0})
	buf := &audio.Float32Buffer{Data: make([]float32, 8)}

	n, err := d.PCMFloat32Buffer(buf)
	if err != nil {
		t.Fatal(err)
	}

	want := []float32{-1, 0.5, 0, -0.5}
	if n != len(want) {
		t.Fatalf("PCMFloat32Buffer()=%d, want %d", n, len(want))
	}

	for i, w := range want {
		if buf.Data[i] != w {
			t.Fatalf("sample[%d]=%f, want %f", i, buf.Data[i], w)
		}
	}

	if buf.Format == nil || buf.Format.NumChannels != 2 || buf.SourceBitDepth != 16 {
		t.Fatalf("unexpected buffer format %+v / %d", buf.Format, buf.SourceBitDepth)
	}

	if _, err := d.PCMFloat32Buffer(buf); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	if n, err := d.PCMFloat32Buffer(nil); n != 0 || err != nil {
		t.Fatalf("nil buffer: n=%d err=%v", n, err)
	}
}
