package wavdec

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// FileSystem opens files for a Decoder.
type FileSystem interface {
	Open(path string) (File, error)
}

// File is the minimal access a Decoder needs to an opened file.
// Read follows the io.Reader contract.
type File interface {
	io.Reader
	// Size returns the total size of the file in bytes.
	Size() (int64, error)
	// SeekTo moves the read position to offset bytes from the start.
	SeekTo(offset int64) error
	Close() error
}

var errNilReader = errors.New("nil reader")

// OSFileSystem opens files from the local filesystem.
type OSFileSystem struct{}

// Open implements FileSystem.
func (OSFileSystem) Open(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &osFile{f: f}, nil
}

type osFile struct {
	f *os.File
}

func (o *osFile) Read(p []byte) (int, error) {
	return o.f.Read(p)
}

func (o *osFile) Size() (int64, error) {
	fi, err := o.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", o.f.Name(), err)
	}

	return fi.Size(), nil
}

func (o *osFile) SeekTo(offset int64) error {
	_, err := o.f.Seek(offset, io.SeekStart)

	return err
}

func (o *osFile) Close() error {
	return o.f.Close()
}

// NewReaderFile wraps an io.ReadSeeker, such as a *bytes.Reader, as a File.
// If rs also implements io.Closer, Close is forwarded to it.
func NewReaderFile(rs io.ReadSeeker) File {
	return &readerFile{rs: rs}
}

type readerFile struct {
	rs io.ReadSeeker
}

func (r *readerFile) Read(p []byte) (int, error) {
	if r.rs == nil {
		return 0, errNilReader
	}

	return r.rs.Read(p)
}

func (r *readerFile) Size() (int64, error) {
	if r.rs == nil {
		return 0, errNilReader
	}

	cur, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	end, err := r.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	if _, err := r.rs.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}

	return end, nil
}

func (r *readerFile) SeekTo(offset int64) error {
	if r.rs == nil {
		return errNilReader
	}

	_, err := r.rs.Seek(offset, io.SeekStart)

	return err
}

func (r *readerFile) Close() error {
	if c, ok := r.rs.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
