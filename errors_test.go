package wavdec

import (
	"errors"
	"testing"
)

func TestErrorGroups(t *testing.T) {
	tests := []struct {
		err   error
		group error
	}{
		{ErrFileOpen, ErrFileAccess},
		{ErrFileSize, ErrFileAccess},
		{ErrFileSeek, ErrFileAccess},
		{ErrFileRead, ErrFileAccess},
		{ErrFileClose, ErrFileAccess},
		{ErrInsufficientData, ErrValidate},
		{ErrMissingRIFFChunk, ErrValidate},
		{ErrIllegalFormType, ErrValidate},
		{ErrIllegalChunkSize, ErrValidate},
		{ErrMissingFmtChunk, ErrValidate},
		{ErrIllegalAudioFormat, ErrValidate},
		{ErrIllegalChannelCount, ErrValidate},
		{ErrIllegalSampleRate, ErrValidate},
		{ErrIllegalSampleBit, ErrValidate},
		{ErrMissingDataChunk, ErrValidate},
		{ErrChunkNotFound, ErrValidate},
		{ErrIllegalArgument, ErrUsage},
		{ErrFrameOverflow, ErrUsage},
		{ErrReadOverflow, ErrUsage},
		{ErrClosed, ErrUsage},
	}

	groups := []error{ErrFileAccess, ErrValidate, ErrUsage}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			for _, g := range groups {
				if errors.Is(tt.err, g) != (g == tt.group) {
					t.Fatalf("errors.Is(%v, %v)=%t", tt.err, g, errors.Is(tt.err, g))
				}
			}
		})
	}
}

func TestFileErrorWrapsCause(t *testing.T) {
	err := fileError(ErrFileRead, errInjected)
	if !errors.Is(err, ErrFileRead) || !errors.Is(err, ErrFileAccess) || !errors.Is(err, errInjected) {
		t.Fatalf("fileError() lost part of the chain: %v", err)
	}

	if fileError(ErrFileSeek, nil) != ErrFileSeek {
		t.Fatal("fileError() without a cause should return the kind")
	}

	want := "file access failed: read: injected failure"
	if err.Error() != want {
		t.Fatalf("Error()=%q, want %q", err.Error(), want)
	}
}
