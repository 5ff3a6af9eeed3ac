// This tool prints the stream information of the passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wavdec"
)

const missingPathMessage = "You must pass the path of the wav file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	dec, err := wavdec.OpenFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to initialize %s: %w", args[0], err)
	}
	defer dec.Close()

	fmt.Fprintf(out, "          [File size]: %d\n", dec.FileSize)
	fmt.Fprintf(out, "    [Num of channels]: %d\n", dec.NumChans)
	fmt.Fprintf(out, "        [Sample rate]: %d\n", dec.SampleRate)
	fmt.Fprintf(out, "    [Bits per sample]: %d\n", dec.BitDepth)
	fmt.Fprintf(out, "    [Audio data rate]: %d\n", dec.ByteRate())
	fmt.Fprintf(out, "    [Audio data size]: %d\n", dec.DataSize)
	fmt.Fprintf(out, "[\"fmt \" chunk offset]: %d\n", dec.FmtOffset)
	fmt.Fprintf(out, "[\"data\" chunk offset]: %d\n", dec.DataOffset)
	fmt.Fprintf(out, "         [Frame size]: %d\n", dec.FrameSize())
	fmt.Fprintf(out, "       [Total frames]: %d\n", dec.TotalFrames())
	fmt.Fprintf(out, "           [Duration]: %s\n", dec.Duration())

	return dec.Close()
}
