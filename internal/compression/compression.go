// Package compression wraps export streams in xz or gzip compression,
// chosen by file name.
package compression

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ulikunitz/xz"
)

// DefaultLimit caps the decompressed size of a stream read back in.
const DefaultLimit = 16 * 1024 * 1024

// ErrSizeLimit is returned once a LimitedReader has been drained.
var ErrSizeLimit = errors.New("decompression size limit exceeded")

// Kind is a compression format.
type Kind int

const (
	None Kind = iota
	Xz
	Gzip
)

var extensions = map[Kind]string{Xz: ".xz", Gzip: ".gz"}

func (k Kind) String() string {
	switch k {
	case Xz:
		return "xz"
	case Gzip:
		return "gzip"
	default:
		return "none"
	}
}

// KindOf picks the format from the extension of path.
func KindOf(path string) Kind {
	lower := strings.ToLower(path)
	for k, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return k
		}
	}
	return None
}

// TrimExt strips the compression extension from path, so the inner format
// can be read off what remains ("palette.json.xz" -> "palette.json").
func TrimExt(path string) string {
	if k := KindOf(path); k != None {
		return path[:len(path)-len(extensions[k])]
	}
	return path
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewWriter wraps w in a compressor. Closing the result flushes the
// compressor but leaves w open.
func NewWriter(w io.Writer, k Kind) (io.WriteCloser, error) {
	switch k {
	case Xz:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xw, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	default:
		return nopCloser{w}, nil
	}
}

// NewReader wraps r in a decompressor that fails after limit decompressed
// bytes.
func NewReader(r io.Reader, k Kind, limit int64) (io.Reader, error) {
	var dr io.Reader
	switch k {
	case Xz:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		dr = xr
	case Gzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		dr = gr
	default:
		dr = r
	}
	return NewLimitedReader(dr, limit), nil
}

// LimitedReader wraps an io.Reader and fails once more than Remaining
// bytes have been read, guarding against decompression bombs.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader returns a reader that allows at most maxBytes.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{R: r, Remaining: maxBytes}
}

// Read implements io.Reader.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}
