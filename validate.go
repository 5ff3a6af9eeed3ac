package wavdec

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

// Open opens path through fsys and validates it as a PCM WAV file.
// A nil fsys uses the local filesystem.
//
// The opened file is owned by the returned Decoder and released by its
// Close method. If validation fails the file is closed before Open
// returns.
func Open(fsys FileSystem, path string) (*Decoder, error) {
	if fsys == nil {
		fsys = OSFileSystem{}
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, fileError(ErrFileOpen, err)
	}

	if f == nil {
		return nil, fmt.Errorf("%w: no file returned for %s", ErrFileOpen, path)
	}

	d, err := NewDecoder(f)
	if err != nil {
		if cerr := f.Close(); cerr != nil {
			return nil, errors.Join(err, fileError(ErrFileClose, cerr))
		}

		return nil, err
	}

	return d, nil
}

// OpenFile opens and validates a WAV file from the local filesystem.
func OpenFile(path string) (*Decoder, error) {
	return Open(OSFileSystem{}, path)
}

// NewDecoder validates the WAV container in f and returns a decoder
// positioned on the first frame. No decoder is returned on failure and f is
// left open for the caller to close.
func NewDecoder(f File) (*Decoder, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil file", ErrIllegalArgument)
	}

	fileSize, err := f.Size()
	if err != nil {
		return nil, fileError(ErrFileSize, err)
	}

	if fileSize < minFileSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrInsufficientData, fileSize, minFileSize)
	}

	if fileSize > math.MaxUint32 {
		return nil, fmt.Errorf("%w: file is %d bytes", ErrIllegalChunkSize, fileSize)
	}

	d := &Decoder{file: f, FileSize: uint32(fileSize)}

	riffSize, err := d.readRIFFHeader()
	if err != nil {
		return nil, err
	}

	// The declared RIFF size counts the form type, which precedes the
	// sub-chunks.
	rangeSize := riffSize - 4

	err = d.readFmtChunk(rangeSize)
	if err != nil {
		return nil, err
	}

	err = d.readDataChunk(rangeSize)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Decoder) readRIFFHeader() (uint32, error) {
	r, err := newChunkReader(d.file, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to read RIFF header: %w", err)
	}

	hdr, err := r.header()
	if err != nil {
		return 0, fmt.Errorf("failed to read RIFF header: %w", err)
	}

	if hdr.ID != riff.RiffID {
		return 0, fmt.Errorf("%w: found %q", ErrMissingRIFFChunk, hdr.ID[:])
	}

	if int64(hdr.Size)+chunkHeaderSize != int64(d.FileSize) {
		return 0, fmt.Errorf("%w: RIFF declares %d bytes, file holds %d",
			ErrIllegalChunkSize, hdr.Size, d.FileSize-chunkHeaderSize)
	}

	form, err := r.formType()
	if err != nil {
		return 0, fmt.Errorf("failed to read RIFF form type: %w", err)
	}

	if form != riff.WavFormatID {
		return 0, fmt.Errorf("%w: %q", ErrIllegalFormType, form[:])
	}

	return hdr.Size, nil
}

func (d *Decoder) readFmtChunk(rangeSize uint32) error {
	off, err := findSubChunk(d.file, riff.FmtID, riffHeaderSize, rangeSize)
	if err != nil {
		return err
	}

	d.FmtOffset = riffHeaderSize + off

	hdr, err := readChunkHeader(d.file, int64(d.FmtOffset))
	if err != nil {
		return fmt.Errorf("failed to read fmt chunk header: %w", err)
	}

	if hdr.Size < fmtPayloadSize {
		return fmt.Errorf("%w: fmt chunk is %d bytes", ErrIllegalChunkSize, hdr.Size)
	}

	var payload [fmtPayloadSize]byte

	err = readAt(d.file, int64(d.FmtOffset)+chunkHeaderSize, payload[:])
	if err != nil {
		return fmt.Errorf("failed to read fmt chunk: %w", err)
	}

	fmtChunk, err := decodeFmtChunk(payload[:], hdr.Size)
	if err != nil {
		return fmt.Errorf("failed to decode fmt chunk: %w", err)
	}

	if fmtChunk.FormatTag != wavFormatPCM {
		return fmt.Errorf("%w: format tag %d", ErrIllegalAudioFormat, fmtChunk.FormatTag)
	}

	if fmtChunk.NumChannels != 1 && fmtChunk.NumChannels != 2 {
		return fmt.Errorf("%w: %d", ErrIllegalChannelCount, fmtChunk.NumChannels)
	}

	if fmtChunk.SampleRate == 0 {
		return ErrIllegalSampleRate
	}

	if !validSampleBit(fmtChunk.BitsPerSample) {
		return fmt.Errorf("%w: %d", ErrIllegalSampleBit, fmtChunk.BitsPerSample)
	}

	d.FmtChunk = fmtChunk
	d.NumChans = fmtChunk.NumChannels
	d.SampleRate = fmtChunk.SampleRate
	d.BitDepth = fmtChunk.BitsPerSample

	return nil
}

func (d *Decoder) readDataChunk(rangeSize uint32) error {
	off, err := findSubChunk(d.file, riff.DataFormatID, riffHeaderSize, rangeSize)
	if err != nil {
		return err
	}

	d.DataOffset = riffHeaderSize + off

	hdr, err := readChunkHeader(d.file, int64(d.DataOffset))
	if err != nil {
		return fmt.Errorf("failed to read data chunk header: %w", err)
	}

	d.DataSize = hdr.Size

	return nil
}
