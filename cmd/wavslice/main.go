// This tool extracts a time range of raw interleaved PCM from a wav file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wavdec"
)

var errEmptyRange = errors.New("end time must be after start time")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavslice", flag.ContinueOnError)

	input := flagSet.String("input", "", "wav file to read from")
	output := flagSet.String("output", "slice.pcm", "file to write the raw PCM data to")
	start := flagSet.Uint64("start", 2*60*1000, "start time in milliseconds")
	end := flagSet.Uint64("end", 3*60*1000, "end time in milliseconds")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *input == "" {
		return fmt.Errorf("the -input flag is required")
	}

	if *end <= *start {
		return fmt.Errorf("%w: %d ms to %d ms", errEmptyRange, *start, *end)
	}

	dec, err := wavdec.OpenFile(*input)
	if err != nil {
		return fmt.Errorf("failed to initialize %s: %w", *input, err)
	}
	defer dec.Close()

	fmt.Fprintf(out, "[Frame size]: %d\n", dec.FrameSize())
	fmt.Fprintf(out, "[Total frames]: %d\n", dec.TotalFrames())

	total := uint64(dec.TotalFrames())

	durationMs, err := dec.Convert(total, wavdec.FramesToMs)
	if err != nil {
		return err
	}

	// durationMs is truncated, one more millisecond may still round to a
	// frame inside the stream.
	if *start > durationMs+1 {
		return fmt.Errorf("%w: start at %d ms, stream lasts %d ms", wavdec.ErrFrameOverflow, *start, durationMs)
	}

	if *end > durationMs+1 {
		return fmt.Errorf("%w: end at %d ms, stream lasts %d ms", wavdec.ErrReadOverflow, *end, durationMs)
	}

	frames, err := dec.Convert(*end-*start, wavdec.MsToFrames)
	if err != nil {
		return err
	}

	size, err := dec.Convert(*end-*start, wavdec.MsToBytes)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "[Audio frames]: %d\n", frames)
	fmt.Fprintf(out, "[Audio bytes]: %d\n", size)

	startFrame, err := dec.Convert(*start, wavdec.MsToFrames)
	if err != nil {
		return err
	}

	_, err = dec.Seek(int64(startFrame), io.SeekStart)
	if err != nil {
		return fmt.Errorf("failed to seek audio data: %w", err)
	}

	if frames > total-startFrame {
		return fmt.Errorf("%w: %d frames at frame %d, stream has %d",
			wavdec.ErrReadOverflow, frames, startFrame, total)
	}

	buf := make([]byte, size)

	n, err := dec.Read(buf, uint32(frames))
	if err != nil {
		return fmt.Errorf("failed to read audio data: %w", err)
	}

	log.Printf("read %d bytes starting at frame %d", n, startFrame)

	err = os.WriteFile(*output, buf[:n], 0o644)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}

	return dec.Close()
}
