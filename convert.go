package wavdec

import (
	"fmt"
	"math/bits"
)

// Conversion selects the unit conversion performed by Decoder.Convert.
type Conversion int

const (
	// MsToFrames converts milliseconds to frames, rounding to the nearest
	// frame (halves round up).
	MsToFrames Conversion = iota
	// MsToBytes converts milliseconds to bytes of whole frames.
	MsToBytes
	// FramesToMs converts frames to milliseconds, truncating.
	FramesToMs
	// FramesToBytes converts frames to bytes.
	FramesToBytes
)

func (c Conversion) String() string {
	switch c {
	case MsToFrames:
		return "ms->frames"
	case MsToBytes:
		return "ms->bytes"
	case FramesToMs:
		return "frames->ms"
	case FramesToBytes:
		return "frames->bytes"
	default:
		return fmt.Sprintf("Conversion(%d)", int(c))
	}
}

// Convert converts value between milliseconds, frames and bytes using the
// stream's sample rate and frame size.
//
// FramesToMs truncates while MsToFrames rounds, so converting frames to
// milliseconds and back does not always return the same frame count.
// An unknown mode, or a result that does not fit in 64 bits, fails with
// ErrIllegalArgument.
func (d *Decoder) Convert(value uint64, mode Conversion) (uint64, error) {
	if d == nil || d.SampleRate == 0 {
		return 0, d.setErr(fmt.Errorf("%w: decoder has no sample rate", ErrIllegalArgument))
	}

	rate := uint64(d.SampleRate)
	frameSize := uint64(d.FrameSize())

	var (
		out      uint64
		overflow bool
	)

	switch mode {
	case MsToFrames:
		out, overflow = msToFrames(value, rate)
	case MsToBytes:
		out, overflow = msToFrames(value, rate)
		out, overflow = mulOverflow(out, frameSize, overflow)
	case FramesToMs:
		out, overflow = mulOverflow(value, 1000, false)
		out /= rate
	case FramesToBytes:
		out, overflow = mulOverflow(value, frameSize, false)
	default:
		return 0, d.setErr(fmt.Errorf("%w: conversion mode %s", ErrIllegalArgument, mode))
	}

	if overflow {
		return 0, d.setErr(fmt.Errorf("%w: %d overflows %s", ErrIllegalArgument, value, mode))
	}

	d.err = nil

	return out, nil
}

func msToFrames(ms, rate uint64) (uint64, bool) {
	n, overflow := mulOverflow(rate, ms, false)
	if n > ^uint64(0)-500 {
		return 0, true
	}

	return (n + 500) / 1000, overflow
}

// mulOverflow returns a*b and whether it, or an earlier step, overflowed.
func mulOverflow(a, b uint64, overflow bool) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)

	return lo, overflow || hi != 0
}
