package backend

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// LogoUpload is an uploaded logo spooled to a temp file between parsing
// the operator's form and streaming it to the platform API. It is an
// acquire/release pair: Spool acquires the file, Release removes it.
// Release is idempotent and must run on every path out of a form
// submission, success or failure.
type LogoUpload struct {
	name string
	path string
	size int64

	once sync.Once
}

// SpoolLogo copies the upload to a temp file and returns the handle.
func SpoolLogo(name string, r io.Reader) (*LogoUpload, error) {
	f, err := os.CreateTemp("", "logo-"+uuid.NewString()+"-*")
	if err != nil {
		return nil, fmt.Errorf("spool logo: %w", err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("spool logo: %w", err)
	}

	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}

	return &LogoUpload{
		name: base,
		path: f.Name(),
		size: size,
	}, nil
}

// Name is the original file name, used for the multipart part.
func (l *LogoUpload) Name() string {
	if l.name == "" {
		return "logo"
	}
	return l.name
}

// Size is the spooled byte count.
func (l *LogoUpload) Size() int64 {
	return l.size
}

// Open returns a reader over the spooled bytes.
func (l *LogoUpload) Open() (io.ReadCloser, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open spooled logo: %w", err)
	}
	return f, nil
}

// Release removes the spooled file. Safe to call more than once.
func (l *LogoUpload) Release() {
	l.once.Do(func() {
		_ = os.Remove(l.path)
	})
}
