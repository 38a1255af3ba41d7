// Package imagecache downloads remote images into a local cache so they can
// be loaded like any other image file.
package imagecache

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/jmylchreest/substance/internal/compression"
	"github.com/jmylchreest/substance/internal/version"
)

const (
	// UserAgentName is the application name used in the User-Agent header.
	UserAgentName = "substance"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBytes caps the size of a downloaded image.
	DefaultMaxBytes = 32 * 1024 * 1024
)

// Options configures a Cache.
type Options struct {
	// Dir is where images are stored. If empty, DefaultDir is used.
	Dir string

	// Timeout specifies the HTTP request timeout.
	// If zero, DefaultTimeout is used.
	Timeout time.Duration

	// MaxBytes caps the response body. If zero, DefaultMaxBytes is used.
	MaxBytes int64

	// Refresh downloads the image even when a cached copy exists.
	Refresh bool

	Logger hclog.Logger
}

// Cache stores downloaded images on a filesystem, keyed by URL.
type Cache struct {
	fs     afero.Fs
	opts   Options
	client *http.Client
}

// DefaultDir returns $XDG_CACHE_HOME/substance/images or the platform
// equivalent.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "substance", "images"), nil
	}
	return filepath.Join(cacheDir, "substance", "images"), nil
}

// New returns a cache writing to fs.
func New(fs afero.Fs, opts Options) (*Cache, error) {
	if opts.Dir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		opts.Dir = dir
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	return &Cache{fs: fs, opts: opts, client: &http.Client{Timeout: opts.Timeout}}, nil
}

// IsRemote reports whether s names an http or https resource rather than a
// local path.
func IsRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Filename is the cache file name for rawURL: a hash of the URL plus the
// extension of its path, defaulting to .jpg.
func Filename(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))

	ext := ".jpg"
	if u, err := url.Parse(rawURL); err == nil {
		if e := path.Ext(u.Path); e != "" && len(e) <= 5 {
			ext = strings.ToLower(e)
		}
	}
	return fmt.Sprintf("%x%s", hash[:16], ext)
}

func validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: must start with http:// or https://", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return nil
}

// Fetch returns the path on the cache filesystem holding the image at
// rawURL, downloading it first unless a cached copy exists.
func (c *Cache) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := validate(rawURL); err != nil {
		return "", err
	}

	cached := filepath.Join(c.opts.Dir, Filename(rawURL))
	if !c.opts.Refresh {
		if _, err := c.fs.Stat(cached); err == nil {
			c.opts.Logger.Debug("image cache hit", "url", rawURL, "path", cached)
			return cached, nil
		}
	}

	data, err := c.download(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	if err := c.fs.MkdirAll(c.opts.Dir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := afero.WriteFile(c.fs, cached, data, 0o644); err != nil { // #nosec G306 - Cache files need standard read permissions
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	c.opts.Logger.Debug("image cached", "url", rawURL, "path", cached, "bytes", len(data))
	return cached, nil
}

func (c *Cache) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("%s/%s", UserAgentName, version.Get().Version))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	// One byte of headroom lets a body of exactly MaxBytes finish with EOF.
	data, err := io.ReadAll(compression.NewLimitedReader(resp.Body, c.opts.MaxBytes+1))
	if errors.Is(err, compression.ErrSizeLimit) {
		return nil, fmt.Errorf("image larger than %d bytes", c.opts.MaxBytes)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}
