package source

import (
	"net/url"
	"path/filepath"

	"github.com/linkrot/linkrot/internal/pkg/resolver"
)

// Base is a user-declared base: either a remote URL or a local
// absolute path. A local path converts to a file: directory URL.
type Base struct {
	value  string
	remote *url.URL
}

// NewBase classifies a user-supplied value as a remote or local base.
// Remote values must be usable as a base URL: opaque schemes like
// data: or mailto: are rejected. Anything that is not an absolute URL
// must be an absolute filesystem path.
func NewBase(value string) (*Base, error) {
	// A windows drive path would otherwise parse as a URL with the
	// drive letter as its scheme.
	if isWindowsDrivePath(value) {
		return &Base{value: value}, nil
	}

	parsed, err := url.Parse(value)
	if err == nil && parsed.IsAbs() {
		if parsed.Opaque != "" || (parsed.Host == "" && parsed.Path == "") {
			return nil, &resolver.InvalidBaseError{
				Value:  value,
				Reason: "the given URL cannot be used as a base URL",
			}
		}
		return &Base{value: value, remote: parsed}, nil
	}

	if filepath.IsAbs(value) {
		return &Base{value: value}, nil
	}

	return nil, &resolver.InvalidBaseError{
		Value:  value,
		Reason: "base must either be a full URL (with scheme) or an absolute local path",
	}
}

// NewLocalBase declares a base for a local path. The path must be
// absolute, the same constraint NewBase applies.
func NewLocalBase(path string) (*Base, error) {
	if !filepath.IsAbs(path) && !isWindowsDrivePath(path) {
		return nil, &resolver.InvalidBaseError{
			Value:  path,
			Reason: "must be an absolute path",
		}
	}
	return &Base{value: path}, nil
}

func (b *Base) IsLocal() bool {
	return b.remote == nil
}

// ToURL converts the base to a URL. Local paths become file: directory
// URLs with a trailing slash, so that joins treat them as a directory
// even when the path names a file.
func (b *Base) ToURL() (*url.URL, error) {
	if b.remote != nil {
		clone := *b.remote
		return &clone, nil
	}
	return DirURLFromPath(b.value)
}

func (b *Base) String() string {
	return b.value
}
