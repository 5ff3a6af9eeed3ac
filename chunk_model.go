package wavdec

import (
	"encoding/binary"
	"io"

	"github.com/go-audio/riff"
)

const (
	// chunkHeaderSize is the size of a RIFF chunk id + size prefix.
	chunkHeaderSize = 8
	// riffHeaderSize covers the outer RIFF header including the form type.
	riffHeaderSize = chunkHeaderSize + 4
	// fmtPayloadSize is the size of the fixed PCM part of the fmt chunk.
	fmtPayloadSize = 16
	fmtChunkSize   = chunkHeaderSize + fmtPayloadSize
	// minFileSize is the smallest file that can hold RIFF, fmt and data headers.
	minFileSize = riffHeaderSize + fmtChunkSize + chunkHeaderSize
)

// chunkHeader is the 8 byte prefix of every RIFF sub-chunk.
// Size excludes the header itself.
type chunkHeader struct {
	ID   [4]byte
	Size uint32
}

// chunkReader is a riff.Parser positioned on a chunk header of f.
type chunkReader struct {
	f      File
	err    error
	parser *riff.Parser
}

// newChunkReader moves f to offset and returns a parser reading from there.
func newChunkReader(f File, offset int64) (*chunkReader, error) {
	if err := f.SeekTo(offset); err != nil {
		return nil, fileError(ErrFileSeek, err)
	}

	r := &chunkReader{f: f}
	r.parser = riff.New(r)

	return r, nil
}

// Read records the first failure of f. riff.Parser.IDnSize drops errors
// from the size field, so they are checked here.
func (r *chunkReader) Read(p []byte) (int, error) {
	n, err := r.f.Read(p)
	if err != nil && r.err == nil {
		r.err = err
	}

	return n, err
}

// header reads the id and size at the current position.
func (r *chunkReader) header() (chunkHeader, error) {
	id, size, err := r.parser.IDnSize()
	if err == nil {
		err = r.err
	}

	if err != nil {
		return chunkHeader{}, fileError(ErrFileRead, err)
	}

	return chunkHeader{ID: id, Size: size}, nil
}

// formType reads the 4 byte form type that follows the outer RIFF header.
func (r *chunkReader) formType() ([4]byte, error) {
	var form [4]byte

	if err := binary.Read(r, binary.BigEndian, &form); err != nil {
		return form, fileError(ErrFileRead, err)
	}

	return form, nil
}

// readChunkHeader reads the chunk header located at offset.
func readChunkHeader(f File, offset int64) (chunkHeader, error) {
	r, err := newChunkReader(f, offset)
	if err != nil {
		return chunkHeader{}, err
	}

	return r.header()
}

// readAt fills p with the bytes found at offset.
func readAt(f File, offset int64, p []byte) error {
	if err := f.SeekTo(offset); err != nil {
		return fileError(ErrFileSeek, err)
	}

	if _, err := io.ReadFull(f, p); err != nil {
		return fileError(ErrFileRead, err)
	}

	return nil
}
