package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
)

func TestIsRemote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com/wall.png", true},
		{"http://example.com/wall.png", true},
		{"/home/user/wall.png", false},
		{"wall.png", false},
		{"ftp://example.com/wall.png", false},
	}
	for _, tt := range tests {
		if got := IsRemote(tt.in); got != tt.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantExt string
	}{
		{name: "extension kept", url: "https://example.com/a/wall.PNG", wantExt: ".png"},
		{name: "query ignored", url: "https://example.com/wall.webp?w=1920", wantExt: ".webp"},
		{name: "no extension", url: "https://example.com/image", wantExt: ".jpg"},
		{name: "long extension", url: "https://example.com/wall.download", wantExt: ".jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename(tt.url)
			if !strings.HasSuffix(got, tt.wantExt) || len(got) != 32+len(tt.wantExt) {
				t.Errorf("Filename(%q) = %q, want 32 hex digits and %s", tt.url, got, tt.wantExt)
			}
		})
	}

	if Filename("https://example.com/a.png") == Filename("https://example.com/b.png") {
		t.Error("Filename() gave two URLs the same name")
	}
}

func TestFetch(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if !strings.HasPrefix(r.UserAgent(), UserAgentName+"/") {
			t.Errorf("User-Agent = %q, want %s/<version>", r.UserAgent(), UserAgentName)
		}
		switch r.URL.Path {
		case "/wall.png":
			_, _ = w.Write([]byte("png bytes"))
		case "/big.png":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	c, err := New(fs, Options{Dir: "/cache", MaxBytes: 32})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	ctx := context.Background()

	path, err := c.Fetch(ctx, srv.URL+"/wall.png")
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if !strings.HasPrefix(path, "/cache/") || !strings.HasSuffix(path, ".png") {
		t.Errorf("Fetch() = %q, want a .png under /cache", path)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if string(data) != "png bytes" {
		t.Errorf("cached data = %q, want %q", data, "png bytes")
	}

	again, err := c.Fetch(ctx, srv.URL+"/wall.png")
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if again != path || requests.Load() != 1 {
		t.Errorf("second Fetch() = %q after %d requests, want cached %q after 1", again, requests.Load(), path)
	}

	for _, u := range []string{srv.URL + "/missing.png", srv.URL + "/big.png", "ftp://example.com/a.png", "https://"} {
		if _, err := c.Fetch(ctx, u); err == nil {
			t.Errorf("Fetch(%q) expected an error", u)
		}
	}
}

func TestFetchRefresh(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte("png bytes"))
	}))
	defer srv.Close()

	c, err := New(afero.NewMemMapFs(), Options{Dir: "/cache", Refresh: true})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	for range 2 {
		if _, err := c.Fetch(context.Background(), srv.URL+"/wall.png"); err != nil {
			t.Fatalf("Fetch() unexpected error: %v", err)
		}
	}
	if got := requests.Load(); got != 2 {
		t.Errorf("requests = %d, want 2 with Refresh", got)
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/xdg-cache")
	got, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir() unexpected error: %v", err)
	}
	if got != "/xdg-cache/substance/images" {
		t.Errorf("DefaultDir() = %q, want /xdg-cache/substance/images", got)
	}
}
