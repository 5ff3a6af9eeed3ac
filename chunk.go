package wavdec

import (
	"fmt"

	"github.com/go-audio/riff"
)

// findSubChunk walks the sibling chunks found in the size bytes starting at
// start and returns the offset, relative to start, of the first chunk
// with the given id.
//
// Declared chunk sizes are never trusted: a chunk is only read while more
// than a header worth of range remains, and a matching chunk must fit in
// what is left of the range.
func findSubChunk(f File, id [4]byte, start, size uint32) (uint32, error) {
	remaining := int64(size)

	var pos int64

	for remaining > chunkHeaderSize {
		hdr, err := readChunkHeader(f, int64(start)+pos)
		if err != nil {
			return 0, err
		}

		span := chunkHeaderSize + int64(hdr.Size)

		if hdr.ID == id {
			if remaining < span {
				return 0, fmt.Errorf("%w: %q declares %d bytes, %d left in range",
					ErrIllegalChunkSize, id[:], hdr.Size, remaining-chunkHeaderSize)
			}

			return uint32(pos), nil
		}

		pos += span
		remaining -= span
	}

	if remaining != 0 {
		return 0, ErrInsufficientData
	}

	switch id {
	case riff.FmtID:
		return 0, ErrMissingFmtChunk
	case riff.DataFormatID:
		return 0, ErrMissingDataChunk
	default:
		return 0, fmt.Errorf("%w: %q", ErrChunkNotFound, id[:])
	}
}
