package wavdec

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// FormatChunk returns a copy of the parsed fmt chunk, if available.
func (d *Decoder) FormatChunk() *FmtChunk {
	if d == nil || d.FmtChunk == nil {
		return nil
	}

	return d.FmtChunk.Clone()
}

// Format returns the audio format of the decoded content.
func (d *Decoder) Format() *audio.Format {
	if d == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(d.NumChans),
		SampleRate:  int(d.SampleRate),
	}
}

// ByteRate returns the number of audio bytes played per second.
func (d *Decoder) ByteRate() uint32 {
	if d == nil {
		return 0
	}

	return d.SampleRate * d.FrameSize()
}

// Duration returns the playing time of the whole data chunk.
func (d *Decoder) Duration() time.Duration {
	if d == nil {
		return 0
	}

	return durationFromFrames(d.TotalFrames(), d.SampleRate)
}

// String implements the Stringer interface.
func (d *Decoder) String() string {
	if d == nil {
		return "<nil>"
	}

	return fmt.Sprintf("Format: WAVE - %d channels @ %d / %d bits - Duration: %f seconds",
		d.NumChans, d.SampleRate, d.BitDepth, d.Duration().Seconds())
}
