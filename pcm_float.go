package wavdec

import (
	"github.com/go-audio/audio"
)

const (
	scalePCMInt8  = 127.5
	scalePCMInt16 = 32768.0
	scalePCMInt24 = 8388608.0
	scalePCMInt32 = 2147483648.0
	pcm8Center    = 127.5
)

// PCMFloat32Buffer works like PCMBuffer but stores samples normalized to
// [-1, 1].
func (d *Decoder) PCMFloat32Buffer(buf *audio.Float32Buffer) (int, error) {
	if buf == nil {
		return 0, nil
	}

	ints := &audio.IntBuffer{Data: make([]int, len(buf.Data))}

	n, err := d.PCMBuffer(ints)
	if err != nil {
		return n, err
	}

	for i := 0; i < n; i++ {
		buf.Data[i] = normalizePCMInt(ints.Data[i], int(d.BitDepth))
	}

	buf.Format = ints.Format
	buf.SourceBitDepth = ints.SourceBitDepth

	return n, nil
}

func normalizePCMInt(sample int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32((float64(sample) - pcm8Center) / scalePCMInt8)
	case 16:
		return float32(float64(sample) / scalePCMInt16)
	case 24:
		return float32(float64(sample) / scalePCMInt24)
	case 32:
		return float32(float64(sample) / scalePCMInt32)
	default:
		return 0
	}
}
