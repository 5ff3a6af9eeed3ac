// This tool converts a PCM wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavdec"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

const bufferSize = 1000000

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)
	path := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*path)
	if err != nil {
		return err
	}

	decoder, err := wavdec.OpenFile(sourcePath)
	if err != nil {
		return fmt.Errorf("invalid WAV file %s: %w", sourcePath, err)
	}
	defer decoder.Close()

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	err = convert(decoder, outFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

func convert(decoder *wavdec.Decoder, w io.WriteSeeker) error {
	encoder := aiff.NewEncoder(w, int(decoder.SampleRate), int(decoder.BitDepth), int(decoder.NumChans))

	frames := bufferSize / int(decoder.NumChans)
	buf := &audio.IntBuffer{Data: make([]int, frames*int(decoder.NumChans))}

	for {
		num, err := decoder.PCMBuffer(buf)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("failed to decode PCM data: %w", err)
		}

		chunk := &audio.IntBuffer{
			Format:         buf.Format,
			SourceBitDepth: buf.SourceBitDepth,
			Data:           buf.Data[:num],
		}

		// wav stores 8 bit samples unsigned, aiff signed.
		if decoder.BitDepth == 8 {
			for i := range chunk.Data {
				chunk.Data[i] -= 128
			}
		}

		err = encoder.Write(chunk)
		if err != nil {
			return fmt.Errorf("failed to write aiff data: %w", err)
		}
	}

	return encoder.Close()
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}
