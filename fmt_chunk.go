package wavdec

import (
	"bytes"
	"fmt"

	"github.com/go-audio/riff"
)

const wavFormatPCM = 1

// FmtChunk stores the fixed PCM fields of a WAV fmt chunk.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	// Size is the payload size declared by the chunk header. Bytes past the
	// first 16 are never parsed.
	Size uint32
}

func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}

// decodeFmtChunk decodes the 16 byte PCM payload of a fmt chunk.
func decodeFmtChunk(payload []byte, size uint32) (*FmtChunk, error) {
	chunk := &riff.Chunk{
		ID:   riff.FmtID,
		Size: len(payload),
		R:    bytes.NewReader(payload),
	}

	fmtChunk := &FmtChunk{Size: size}

	err := chunk.ReadLE(&fmtChunk.FormatTag)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav format: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.NumChannels)
	if err != nil {
		return nil, fmt.Errorf("failed to read channels: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample rate: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.AvgBytesPerSec)
	if err != nil {
		return nil, fmt.Errorf("failed to read avg bytes/sec: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.BlockAlign)
	if err != nil {
		return nil, fmt.Errorf("failed to read block align: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.BitsPerSample)
	if err != nil {
		return nil, fmt.Errorf("failed to read bit depth: %w", err)
	}

	return fmtChunk, nil
}

func validSampleBit(bits uint16) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}
