package wavdec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
}

var (
	errInjected   = errors.New("injected failure")
	errNoSuchFile = errors.New("no such test file")
)

// newTestChunk returns a chunk whose declared size matches its payload.
func newTestChunk(id string, data []byte) testChunk {
	return testChunk{id: id, size: uint32(len(data)), data: data}
}

func encodeChunks(chunks ...testChunk) []byte {
	var buf bytes.Buffer

	for _, ch := range chunks {
		buf.WriteString(ch.id)
		binary.Write(&buf, binary.LittleEndian, ch.size)
		buf.Write(ch.data)
	}

	return buf.Bytes()
}

// buildWav wraps chunks in a RIFF/WAVE header whose size matches the
// resulting file.
func buildWav(chunks ...testChunk) []byte {
	return buildRIFF("RIFF", "WAVE", chunks...)
}

func buildRIFF(id, form string, chunks ...testChunk) []byte {
	body := encodeChunks(chunks...)

	var buf bytes.Buffer

	buf.WriteString(id)
	binary.Write(&buf, binary.LittleEndian, uint32(4+len(body)))
	buf.WriteString(form)
	buf.Write(body)

	return buf.Bytes()
}

func fmtPayload(format, chans uint16, rate uint32, bits uint16) []byte {
	var buf bytes.Buffer

	frameSize := chans * (bits / 8)

	binary.Write(&buf, binary.LittleEndian, format)
	binary.Write(&buf, binary.LittleEndian, chans)
	binary.Write(&buf, binary.LittleEndian, rate)
	binary.Write(&buf, binary.LittleEndian, rate*uint32(frameSize))
	binary.Write(&buf, binary.LittleEndian, frameSize)
	binary.Write(&buf, binary.LittleEndian, bits)

	return buf.Bytes()
}

// pcmWav builds a canonical 44 byte header WAV file around data.
func pcmWav(chans uint16, rate uint32, bits uint16, data []byte) []byte {
	return buildWav(
		newTestChunk("fmt ", fmtPayload(wavFormatPCM, chans, rate, bits)),
		newTestChunk("data", data),
	)
}

func setRIFFSize(data []byte, size uint32) []byte {
	out := append([]byte(nil), data...)
	binary.LittleEndian.PutUint32(out[4:8], size)

	return out
}

// spyFile counts the calls made on a File and can inject failures.
type spyFile struct {
	File

	reads  int
	seeks  int
	closes int

	sizeErr  error
	seekErr  error
	closeErr error
	// readErrAt makes the n-th Read call (1-based) fail.
	readErrAt int
}

func newSpyFile(data []byte) *spyFile {
	return &spyFile{File: NewReaderFile(bytes.NewReader(data))}
}

func (s *spyFile) Read(p []byte) (int, error) {
	s.reads++
	if s.readErrAt > 0 && s.reads == s.readErrAt {
		return 0, errInjected
	}

	return s.File.Read(p)
}

func (s *spyFile) Size() (int64, error) {
	if s.sizeErr != nil {
		return 0, s.sizeErr
	}

	return s.File.Size()
}

func (s *spyFile) SeekTo(offset int64) error {
	s.seeks++
	if s.seekErr != nil {
		return s.seekErr
	}

	return s.File.SeekTo(offset)
}

func (s *spyFile) Close() error {
	s.closes++
	if s.closeErr != nil {
		return s.closeErr
	}

	return s.File.Close()
}

// memFS serves spyFiles from memory.
type memFS struct {
	files  map[string][]byte
	opened []*spyFile
	// closeErr is injected in every file opened.
	closeErr error
}

func (m *memFS) Open(path string) (File, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, errNoSuchFile)
	}

	f := newSpyFile(data)
	f.closeErr = m.closeErr
	m.opened = append(m.opened, f)

	return f, nil
}

// syntheticFile is a read-only File holding a WAV header followed by
// generated audio where the byte at file offset i is byte(i). It lets tests
// address long streams without allocating them.
type syntheticFile struct {
	header []byte
	size   int64
	pos    int64
}

func newSyntheticPCM(chans uint16, rate uint32, bits uint16, dataSize uint32) *syntheticFile {
	hdr := buildWav(
		newTestChunk("fmt ", fmtPayload(wavFormatPCM, chans, rate, bits)),
		testChunk{id: "data", size: dataSize},
	)
	hdr = setRIFFSize(hdr, uint32(len(hdr))-8+dataSize)

	return &syntheticFile{header: hdr, size: int64(len(hdr)) + int64(dataSize)}
}

func (s *syntheticFile) byteAt(off int64) byte {
	if off < int64(len(s.header)) {
		return s.header[off]
	}

	return byte(off)
}

func (s *syntheticFile) Read(p []byte) (int, error) {
	if s.pos >= s.size {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) && s.pos < s.size {
		p[n] = s.byteAt(s.pos)
		n++
		s.pos++
	}

	return n, nil
}

func (s *syntheticFile) Size() (int64, error) { return s.size, nil }

func (s *syntheticFile) SeekTo(offset int64) error {
	if offset < 0 {
		return errInjected
	}

	s.pos = offset

	return nil
}

func (s *syntheticFile) Close() error { return nil }
