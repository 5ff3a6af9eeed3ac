package wavdec

import (
	"fmt"
	"io"
)

// Decoder reads PCM frames from a validated WAV file.
//
// A Decoder is not safe for concurrent use. Decoders opened on the same
// path hold independent files and cursors.
type Decoder struct {
	file File

	// FileSize is the size of the whole file in bytes.
	FileSize   uint32
	NumChans   uint16
	SampleRate uint32
	BitDepth   uint16
	// DataSize is the size in bytes of the audio held by the data chunk.
	DataSize uint32

	// FmtOffset and DataOffset are the file offsets of the fmt and data
	// chunk headers.
	FmtOffset  uint32
	DataOffset uint32

	FmtChunk *FmtChunk

	// cursor is the current frame, 0 <= cursor <= TotalFrames().
	cursor uint32
	err    error
}

// FrameSize returns the size in bytes of one frame (a sample for every
// channel).
func (d *Decoder) FrameSize() uint32 {
	if d == nil {
		return 0
	}

	return uint32(d.NumChans) * uint32(d.BitDepth/8)
}

// TotalFrames returns the number of whole frames in the data chunk.
func (d *Decoder) TotalFrames() uint32 {
	fs := d.FrameSize()
	if fs == 0 {
		return 0
	}

	return d.DataSize / fs
}

// Position returns the frame the next Read starts at.
func (d *Decoder) Position() uint32 {
	if d == nil {
		return 0
	}

	return d.cursor
}

// Err returns the error of the most recent operation, or nil if it
// succeeded. Operations report their errors directly; Err only mirrors
// them.
func (d *Decoder) Err() error {
	if d == nil {
		return nil
	}

	return d.err
}

// Seek moves the frame cursor. whence is io.SeekStart, io.SeekCurrent or
// io.SeekEnd; any other value is treated as io.SeekCurrent.
// Positions outside [0, TotalFrames()] fail with ErrFrameOverflow and
// leave the cursor where it was. Seek returns the cursor after the call.
func (d *Decoder) Seek(offset int64, whence int) (int64, error) {
	if d == nil || d.file == nil {
		return 0, d.setErr(ErrClosed)
	}

	total := int64(d.TotalFrames())

	var base int64

	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekEnd:
		base = total
	default:
		base = int64(d.cursor)
	}

	pos := base + offset
	if pos < 0 || pos > total {
		return int64(d.cursor), d.setErr(fmt.Errorf("%w: frame %d, stream has %d", ErrFrameOverflow, pos, total))
	}

	d.cursor = uint32(pos)
	d.err = nil

	return pos, nil
}

// Read reads frames frames starting at the cursor into p and returns the
// number of bytes read. p must hold at least frames*FrameSize() bytes.
// Read does not move the cursor.
func (d *Decoder) Read(p []byte, frames uint32) (int, error) {
	if d == nil || d.file == nil {
		return 0, d.setErr(ErrClosed)
	}

	if uint64(d.cursor)+uint64(frames) > uint64(d.TotalFrames()) {
		return 0, d.setErr(fmt.Errorf("%w: %d frames at frame %d, stream has %d",
			ErrReadOverflow, frames, d.cursor, d.TotalFrames()))
	}

	size := uint64(frames) * uint64(d.FrameSize())
	if uint64(len(p)) < size {
		return 0, d.setErr(fmt.Errorf("%w: buffer holds %d bytes, need %d", ErrIllegalArgument, len(p), size))
	}

	offset := int64(d.DataOffset) + chunkHeaderSize + int64(d.cursor)*int64(d.FrameSize())

	err := d.file.SeekTo(offset)
	if err != nil {
		return 0, d.setErr(fileError(ErrFileSeek, err))
	}

	n, err := io.ReadFull(d.file, p[:size])
	if err != nil {
		return n, d.setErr(fileError(ErrFileRead, err))
	}

	d.err = nil

	return n, nil
}

// Close releases the underlying file. The decoder must not be used
// afterwards.
func (d *Decoder) Close() error {
	if d == nil || d.file == nil {
		return ErrClosed
	}

	f := d.file
	d.file = nil

	err := f.Close()
	if err != nil {
		return d.setErr(fileError(ErrFileClose, err))
	}

	d.err = nil

	return nil
}

func (d *Decoder) setErr(err error) error {
	if d != nil {
		d.err = err
	}

	return err
}
