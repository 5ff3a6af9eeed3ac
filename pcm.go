package wavdec

import (
	"encoding/binary"
	"io"

	"github.com/go-audio/audio"
)

// PCMBuffer decodes frames starting at the cursor into buf.Data, as many as
// fit in the buffer and remain in the stream, and advances the cursor past
// them. It returns the number of samples written, or 0 and io.EOF once the
// cursor is at the end of the stream. Err reports the same result.
//
// 8 bit samples are unsigned (0..255); the other depths are signed.
func (d *Decoder) PCMBuffer(buf *audio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, d.setErr(nil)
	}

	if d == nil || d.file == nil {
		return 0, d.setErr(ErrClosed)
	}

	remaining := d.TotalFrames() - d.cursor
	if remaining == 0 {
		return 0, d.setErr(io.EOF)
	}

	frames := uint32(len(buf.Data) / int(d.NumChans))
	if frames > remaining {
		frames = remaining
	}

	buf.Format = d.Format()
	buf.SourceBitDepth = int(d.BitDepth)

	if frames == 0 {
		return 0, d.setErr(nil)
	}

	raw := make([]byte, frames*d.FrameSize())

	_, err := d.Read(raw, frames)
	if err != nil {
		return 0, err
	}

	decode := sampleDecodeFunc(int(d.BitDepth))
	bPerSample := bytesPerSample(int(d.BitDepth))

	n := int(frames) * int(d.NumChans)
	for i := 0; i < n; i++ {
		buf.Data[i] = decode(raw[i*bPerSample:])
	}

	d.cursor += frames

	return n, nil
}

// sampleDecodeFunc returns a function converting the little endian sample
// at the start of a byte slice to an int.
func sampleDecodeFunc(bitsPerSample int) func([]byte) int {
	switch bitsPerSample {
	case 8:
		return func(b []byte) int {
			return int(b[0])
		}
	case 16:
		return func(b []byte) int {
			return int(int16(binary.LittleEndian.Uint16(b[:2])))
		}
	case 24:
		return func(b []byte) int {
			return int(audio.Int24LETo32(b[:3]))
		}
	default:
		return func(b []byte) int {
			return int(int32(binary.LittleEndian.Uint32(b[:4])))
		}
	}
}
