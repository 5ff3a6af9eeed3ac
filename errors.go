package wavdec

import (
	"errors"
	"fmt"
)

var (
	// ErrFileAccess groups failures reported by the file-access backend.
	ErrFileAccess = errors.New("file access failed")
	// ErrValidate groups structural defects found while validating a file.
	ErrValidate = errors.New("invalid wav file")
	// ErrUsage groups caller misuse of the decoder API.
	ErrUsage = errors.New("illegal operation")
)

// File access errors. The backend error is wrapped alongside them.
var (
	ErrFileOpen  = fmt.Errorf("%w: open", ErrFileAccess)
	ErrFileSize  = fmt.Errorf("%w: size", ErrFileAccess)
	ErrFileSeek  = fmt.Errorf("%w: seek", ErrFileAccess)
	ErrFileRead  = fmt.Errorf("%w: read", ErrFileAccess)
	ErrFileClose = fmt.Errorf("%w: close", ErrFileAccess)
)

// Validation errors. Validation stops at the first defect found.
var (
	ErrInsufficientData    = fmt.Errorf("%w: insufficient data", ErrValidate)
	ErrMissingRIFFChunk    = fmt.Errorf("%w: missing RIFF chunk", ErrValidate)
	ErrIllegalFormType     = fmt.Errorf("%w: illegal form type", ErrValidate)
	ErrIllegalChunkSize    = fmt.Errorf("%w: illegal chunk size", ErrValidate)
	ErrMissingFmtChunk     = fmt.Errorf("%w: missing fmt chunk", ErrValidate)
	ErrIllegalAudioFormat  = fmt.Errorf("%w: illegal audio format", ErrValidate)
	ErrIllegalChannelCount = fmt.Errorf("%w: illegal channel count", ErrValidate)
	ErrIllegalSampleRate   = fmt.Errorf("%w: illegal sample rate", ErrValidate)
	ErrIllegalSampleBit    = fmt.Errorf("%w: illegal bits per sample", ErrValidate)
	ErrMissingDataChunk    = fmt.Errorf("%w: missing data chunk", ErrValidate)
	// ErrChunkNotFound is returned when a chunk other than fmt/data is
	// searched for and the range is exhausted without a match.
	ErrChunkNotFound = fmt.Errorf("%w: chunk not found", ErrValidate)
)

// Usage errors.
var (
	ErrIllegalArgument = fmt.Errorf("%w: illegal argument", ErrUsage)
	ErrFrameOverflow   = fmt.Errorf("%w: frame position out of range", ErrUsage)
	// ErrReadOverflow is returned when a read would go past the last frame
	// of the data chunk.
	ErrReadOverflow = fmt.Errorf("%w: read past end of data", ErrUsage)
	ErrClosed       = fmt.Errorf("%w: decoder is closed", ErrUsage)
)

func fileError(kind, cause error) error {
	if cause == nil {
		return kind
	}

	return fmt.Errorf("%w: %w", kind, cause)
}
