// Package source materializes the inputs a check run works through:
// local files, remote pages, glob patterns, and piped stdin. Each
// input exposes the URL it is addressable at, if any, which seeds the
// resolver's base for every link found inside it.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// InputSource is one input to check.
type InputSource interface {
	// Name identifies the source in logs and reports.
	Name() string
	// ToURL returns the URL the source is addressable at. (nil, nil)
	// means the source has no addressable base, like piped stdin.
	ToURL() (*url.URL, error)
	// Reader opens the source's content.
	Reader(ctx context.Context) (io.ReadCloser, error)
}

// Stdin is piped input. It has no addressable base, so only
// fully-qualified links inside it can resolve.
type Stdin struct {
	r io.Reader
}

func NewStdin(r io.Reader) *Stdin {
	return &Stdin{r: r}
}

func (s *Stdin) Name() string {
	return "stdin"
}

func (s *Stdin) ToURL() (*url.URL, error) {
	return nil, nil
}

func (s *Stdin) Reader(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}

// File is a document on a filesystem.
type File struct {
	fs   afero.Fs
	path string
}

func NewFile(fs afero.Fs, path string) *File {
	return &File{fs: fs, path: path}
}

func (f *File) Name() string {
	return f.path
}

func (f *File) ToURL() (*url.URL, error) {
	path := f.path
	if !filepath.IsAbs(path) && !isWindowsDrivePath(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		path = abs
	}
	return URLFromPath(path)
}

func (f *File) Reader(_ context.Context) (io.ReadCloser, error) {
	return f.fs.Open(f.path)
}

// Remote is a document fetched over HTTP(S). The response header is
// kept around after the first read so Link headers can be mined for
// links too.
type Remote struct {
	url    *url.URL
	client *http.Client
	header http.Header
}

func NewRemote(u *url.URL, client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{url: u, client: client}
}

func (r *Remote) Name() string {
	return r.url.String()
}

func (r *Remote) ToURL() (*url.URL, error) {
	clone := *r.url
	return &clone, nil
}

func (r *Remote) Reader(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status %s", r.url, resp.Status)
	}

	r.header = resp.Header
	return resp.Body, nil
}

// Header returns the response header of the last successful fetch, or
// nil if the source was never read.
func (r *Remote) Header() http.Header {
	return r.header
}

// Resolve expands the raw input arguments into sources: "-" is stdin,
// absolute URLs are remote pages, glob patterns expand against the
// filesystem, everything else is a file path.
func Resolve(fs afero.Fs, client *http.Client, args []string) ([]InputSource, error) {
	var sources []InputSource

	for _, arg := range args {
		switch {
		case arg == "-":
			sources = append(sources, NewStdin(os.Stdin))
		case isRemoteArg(arg):
			u, err := url.Parse(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid input URL %q: %w", arg, err)
			}
			sources = append(sources, NewRemote(u, client))
		case isGlobArg(arg):
			matches, err := globFiles(fs, arg)
			if err != nil {
				return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
			}
			for _, match := range matches {
				sources = append(sources, NewFile(fs, match))
			}
		default:
			sources = append(sources, NewFile(fs, arg))
		}
	}

	return sources, nil
}

func isRemoteArg(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

func isGlobArg(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

// globFiles expands a doublestar pattern. io/fs paths are unrooted, so
// a leading slash is peeled off for matching and glued back on after.
func globFiles(fs afero.Fs, pattern string) ([]string, error) {
	rooted := strings.HasPrefix(pattern, "/")
	lookup := strings.TrimPrefix(pattern, "/")

	matches, err := doublestar.Glob(afero.NewIOFS(fs), lookup)
	if err != nil {
		return nil, err
	}

	if rooted {
		for i, match := range matches {
			matches[i] = "/" + match
		}
	}
	return matches, nil
}
