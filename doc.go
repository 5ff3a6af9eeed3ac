// Package wavdec decodes canonical PCM WAV (RIFF/WAVE) files.
//
// A Decoder validates the container, locates the "fmt " and "data"
// sub-chunks and exposes the stream metadata. Audio is addressed in frames:
// the decoder keeps a frame cursor that Seek moves and Read reads from.
//
// All file access goes through the FileSystem and File interfaces, so the
// decoder can run against the local filesystem (OSFileSystem), an in-memory
// buffer (NewReaderFile) or any other backend:
//
//	dec, err := wavdec.OpenFile("song.wav")
//	if err != nil {
//		return err
//	}
//	defer dec.Close()
//
//	start, _ := dec.Convert(2*60*1000, wavdec.MsToFrames)
//	if _, err := dec.Seek(int64(start), io.SeekStart); err != nil {
//		return err
//	}
//
//	buf := make([]byte, 1024*dec.FrameSize())
//	n, err := dec.Read(buf, 1024)
//
// Only uncompressed PCM with one or two channels and 8, 16, 24 or 32 bits
// per sample is supported.
package wavdec
